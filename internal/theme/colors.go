package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "35" // Green - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Attempt outcome colors
const (
	ColorFailed    Color = "1" // Red
	ColorSucceeded Color = "2" // Green
	ColorSkipped   Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Table colors
const (
	ColorTableBorder   Color = "240"
	ColorTableSelected Color = "229"
	ColorTableSelectBg Color = "28"
)
