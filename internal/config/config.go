// Package config loads the interactive app's preferences from file and
// environment. Env var overrides use the prefix CRMKIT_.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Export ExportConfig
}

// UIConfig holds presentation settings for the browser.
type UIConfig struct {
	StartObject    string `mapstructure:"start_object"`
	RecordsPerPage int    `mapstructure:"records_per_page"`
}

// ExportConfig holds defaults for the layout export action.
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from an optional config file and the
// environment. Missing files are fine; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.start_object", "Account")
	v.SetDefault("ui.records_per_page", 10)
	v.SetDefault("export.path", "crm_layout.json")

	v.SetConfigType("yaml")

	if cfgPath := os.Getenv("CRMKIT_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "crmkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CRMKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.RecordsPerPage <= 0 {
		c.UI.RecordsPerPage = 10
	}
	return c, nil
}
