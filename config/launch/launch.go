// Package launch reads the options a player can set before the window opens:
// an optional peerfinder.json next to the binary and PEERFINDER_* variables.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Options are the resolved launch options.
type Options struct {
	LogLevel string `mapstructure:"logLevel"`
	SkipMenu bool   `mapstructure:"skipMenu"`
	Server   struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Player struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"player"`
	Display struct {
		Zoom    float64 `mapstructure:"zoom"`
		UIScale float64 `mapstructure:"uiScale"`
	} `mapstructure:"display"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("skipMenu", false)
	viper.SetDefault("server.address", "ws://localhost:7373")
	viper.SetDefault("player.name", "Farmer")
	viper.SetDefault("display.zoom", 0.0)
	viper.SetDefault("display.uiScale", 0.0)
}

// Load reads peerfinder.json from configDir if present. A missing file is
// not an error; a malformed one is.
func Load(configDir string) (Options, error) {
	var opts Options

	setDefaults()

	viper.SetConfigName("peerfinder")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("PEERFINDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return opts, fmt.Errorf("read launch config: %w", err)
		}
	}

	if err := viper.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("decode launch config: %w", err)
	}
	return opts, nil
}
