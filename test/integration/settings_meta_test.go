package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"greener/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedStdout []string
		validateJSON   bool
	}{
		{
			name: "table format",
			args: []string{"settings", "meta"},
			expectedStdout: []string{
				"Settings file:",
				"commit_count",
				"section_count",
				"push",
			},
		},
		{
			name:         "json format",
			args:         []string{"settings", "meta", "--format", "json"},
			validateJSON: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			for _, expected := range tt.expectedStdout {
				harness.AssertStdoutContains(t, result, expected)
			}

			if tt.validateJSON {
				var output struct {
					Format       map[string]any `json:"format"`
					SettingsFile string         `json:"settings_file"`
				}
				harness.AssertValidJSON(t, result, &output)
				assert.Equal(t, filepath.Join(env.GreenerHome, "settings.json"), output.SettingsFile)
				assert.Contains(t, output.Format, "commit_message")
				assert.Contains(t, output.Format, "journal")
			}
		})
	}
}

func TestInvalidSettingsFallBackToDefaults(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"push": "sometimes"}`)

	result := harness.RunCommand(t, env, "settings", "meta")

	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "settings")
}
