package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultHost    = "http://localhost:7700"
	defaultTimeout = 60 * time.Second
)

// clientConfig carries everything needed to reach the search engine.
type clientConfig struct {
	Host    string        `mapstructure:"host"`
	APIKey  string        `mapstructure:"api-key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// loadClientConfig layers configuration sources: defaults, then a
// meilikey.yaml config file, then MEILIKEY_* environment variables, then
// command line flags. A missing config file is not an error.
func loadClientConfig(flags *pflag.FlagSet) (clientConfig, error) {
	v := viper.New()
	v.SetDefault("host", defaultHost)
	v.SetDefault("timeout", defaultTimeout)

	v.SetConfigName("meilikey")
	v.SetConfigType("yaml")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "meilikey"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return clientConfig{}, err
		}
	}

	v.SetEnvPrefix("meilikey")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return clientConfig{}, err
		}
	}

	var config clientConfig
	if err := v.Unmarshal(&config); err != nil {
		return clientConfig{}, err
	}
	return config, nil
}
