package model

// Storage backends for the persistent slot.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents a data directory's settings.
// Stored at <data dir>/config.toml.
type Config struct {
	Schema       string `toml:"schema"`
	Backend      string `toml:"backend,omitempty"`
	DefaultColor string `toml:"default_color,omitempty"`
	Port         int    `toml:"port,omitempty"`
}

// DefaultPort is the port `serve` starts probing from.
const DefaultPort = 3000

// DefaultConfig returns a config with every field populated.
func DefaultConfig() *Config {
	return &Config{
		Backend:      BackendFile,
		DefaultColor: DefaultColor,
		Port:         DefaultPort,
	}
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.DefaultColor == "" {
		c.DefaultColor = DefaultColor
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}
