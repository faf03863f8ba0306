package config

import (
	"reflect"
	"strings"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "commit_count":
				return domain.DefaultCommitCount
			case "max_log_files":
				return logging.DefaultMaxLogFiles
			case "section_count":
				return domain.DefaultSectionCount
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "commit_message":
			return domain.DefaultCommitMessage
		case "push":
			return PushAsk
		default:
			return "example"
		}
	}

	return nil
}
