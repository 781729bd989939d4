package interfaces

// Config represents the application configuration
type Config struct {
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	OverflowPolicy string `toml:"overflow_policy"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path
	Load(path string) (*Config, error)

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Config, error)

	// Validate validates the configuration values
	Validate(config *Config) error
}
