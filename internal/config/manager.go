package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"threshold-cli/internal/interfaces"
	"threshold-cli/internal/transform"
)

// Manager implements the ConfigManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("THRESHOLD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("overflow_policy", string(transform.PolicyWrap))
}

// DefaultPath returns ~/.config/threshold/config.toml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "threshold", "config.toml"), nil
}

// Load loads configuration from the specified path.
// A missing file is not an error; defaults and env apply. Without a home
// directory there is no default file, which is treated the same way.
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return m.getConfigFromViper(), nil
		}
		path = defaultPath
	}

	path = expandPath(path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return m.getConfigFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Config, error) {
	config := m.getConfigFromViper()

	m.applyFlagOverrides(config)

	return config, nil
}

// applyFlagOverrides applies non-empty string flag values over the configuration
func (m *Manager) applyFlagOverrides(config *interfaces.Config) {
	if str := m.flagString("log_level"); str != "" {
		config.LogLevel = str
	}
	if str := m.flagString("log_format"); str != "" {
		config.LogFormat = str
	}
	if str := m.flagString("overflow_policy"); str != "" {
		config.OverflowPolicy = str
	}
}

func (m *Manager) flagString(key string) string {
	val, exists := m.flags[key]
	if !exists || val == nil {
		return ""
	}
	str, _ := val.(string)
	return strings.ToLower(strings.TrimSpace(str))
}

// Validate validates the configuration values
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[config.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be 'debug', 'info', 'warn' or 'error')", config.LogLevel)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[config.LogFormat] {
		return fmt.Errorf("invalid log_format: %s (must be 'console' or 'json')", config.LogFormat)
	}

	if _, err := transform.ParsePolicy(config.OverflowPolicy); err != nil {
		return err
	}

	return nil
}

// getConfigFromViper converts viper configuration to Config struct
// This handles env > config > defaults precedence (flags are applied separately)
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		LogLevel:       strings.ToLower(m.v.GetString("log_level")),
		LogFormat:      strings.ToLower(m.v.GetString("log_format")),
		OverflowPolicy: strings.ToLower(m.v.GetString("overflow_policy")),
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, path[2:])
}
