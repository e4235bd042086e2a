package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"root":        ".",
		"output_dir":  "agent-output",
		"strictness":  "",
		"registry":    "",
		"exclude":     []string{},
		"debug":       false,
		"no_progress": false,
	}
}
