package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the boreholedepth command.
type Config struct {
	Geometry  string    `mapstructure:"geometry"`  // Path of the YAML geometry file.
	Precision int       `mapstructure:"precision"` // Decimals printed for depths.
	Log       LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration into v from defaults, an optional boreholedepth.yaml
// and BOREHOLEDEPTH_* environment variables. Flags bound to v before the call
// take precedence over all of them.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("geometry", "")
	v.SetDefault("precision", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("boreholedepth")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// BOREHOLEDEPTH_LOG_LEVEL → log.level
	v.SetEnvPrefix("BOREHOLEDEPTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Geometry == "" {
		errs = append(errs, "geometry is required")
	}
	if c.Precision < 0 || c.Precision > 17 {
		errs = append(errs, fmt.Sprintf("precision must be 0-17, got %d", c.Precision))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
