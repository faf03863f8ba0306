package ui

import (
	"fmt"

	"greener/internal/theme"
	"greener/version"
)

// RenderHeader renders the app name, version and tagline, with an optional subtitle below
func RenderHeader(subtitle string) string {
	result := theme.AppNameStyle.Render("greener") +
		theme.VersionStyle.Render(fmt.Sprintf(" %s", version.Version)) + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	return result + "\n"
}
