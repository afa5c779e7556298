package harness

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings control where the harness writes its artifacts.
type Settings struct {
	OutputDir string `mapstructure:"output_dir"`
}

func DefaultSettings() Settings {
	return Settings{OutputDir: "."}
}

// LoadSettings loads harness settings from the specified profile path
func LoadSettings(profilePath string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)
	v.SetDefault("output_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse harness settings: %w", err)
	}
	return &settings, nil
}
