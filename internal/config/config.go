// Package config loads runtime configuration for the excelmerge CLI.
// Pipeline limits (file size cap, file count cap, accepted extensions) are
// compile-time constants in the merger package, not configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime-configurable settings.
type Config struct {
	OutputDir string
	Log       LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the EXCELMERGE_
// prefix. The output directory defaults to the system temp location.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXCELMERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output_dir", os.TempDir())
	v.SetDefault("log.level", "info")

	cfg := &Config{
		OutputDir: filepath.Clean(v.GetString("output_dir")),
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}
	return cfg, nil
}
