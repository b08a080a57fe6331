package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the root of the embedkit configuration file
type Config struct {
	Log    LogConfig    `json:"log,omitempty" yaml:"log,omitempty"`
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`
}

// NewDefaultConfig returns a configuration with every default applied
func NewDefaultConfig() *Config {
	return &Config{
		Log:    NewDefaultLogConfig(),
		Render: NewDefaultRenderConfig(),
	}
}

// LoadConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both JSON and YAML.
// YAML is used if the file extension is .yaml or .yml. With no file found the defaults are returned.
func LoadConfig(providedPath string, logger zerolog.Logger) (*Config, error) {
	logger = logger.With().Str("component", "ConfigLoader").Logger()
	cfg := NewDefaultConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing files above MaxConfigFileSize
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to stat config file")
	}
	if info.IsDir() {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "path is a directory")
	}
	if info.Size() > MaxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file is too large")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *Config) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
