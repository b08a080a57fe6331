package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Render Defaults
	DefaultRenderColor        = ""
	DefaultRenderStrictLimits = false
	DefaultRenderPretty       = false
	DefaultMaxFileSizeMB      = 25

	// Config file lookup
	ConfigPathEnvVar  = "EMBEDKIT_CONFIG_PATH"
	MaxConfigFileSize = 10 * 1024 * 1024
)

// DefaultConfigFiles are looked up in order in the working directory and next to the executable
var DefaultConfigFiles = []string{"embedkit.yaml", "embedkit.yml", "embedkit.json"}
