package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings are prompt defaults read from an optional leetplan.yaml in
// the journey directory. Every value can still be overridden
// interactively; the file just moves the defaults.
type Settings struct {
	ProblemsPerDay int    `mapstructure:"problems_per_day"`
	Richness       string `mapstructure:"richness"`
	OverdueFocus   int    `mapstructure:"overdue_focus"`
}

// LoadSettings reads leetplan.yaml from base if present. A missing file
// yields the defaults; a malformed file is an error.
func LoadSettings(base string) (Settings, error) {
	v := viper.New()
	v.SetConfigName("leetplan")
	v.SetConfigType("yaml")
	v.AddConfigPath(base)
	v.SetDefault("problems_per_day", 3)
	v.SetDefault("richness", "minimal")
	v.SetDefault("overdue_focus", 2)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read leetplan.yaml: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse leetplan.yaml: %w", err)
	}
	return s, nil
}
