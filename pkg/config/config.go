package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the session-level knobs. Everything has a default; a
// config file is optional.
type Config struct {
	LogPath      string
	LogLevel     string
	SeedPerBoard int
	Mouse        bool
}

// Load reads ~/.unihub.yaml (or ./.unihub.yaml) plus UNIHUB_* env
// overrides.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("logpath", filepath.Join(home, ".unihub", "unihub.log"))
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("seed", 5)
	viper.SetDefault("mouse", true)

	viper.SetConfigName(".unihub") // .yaml is implicit
	viper.SetEnvPrefix("UNIHUB")
	viper.AutomaticEnv()

	if override := os.Getenv("UNIHUB_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath(home)
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		LogPath:      viper.GetString("logpath"),
		LogLevel:     viper.GetString("loglevel"),
		SeedPerBoard: viper.GetInt("seed"),
		Mouse:        viper.GetBool("mouse"),
	}, nil
}
