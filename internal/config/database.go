package config

import (
	"path"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/binaudit/binaudit/internal"
)

// database contains the advisory database configuration options available to the user via the application config.
type database struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // the directory holding the advisory TOML tree
}

func (cfg database) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("db.dir", path.Join(xdg.DataHome, internal.ApplicationName, "db"))
}

func (cfg *database) parseConfigValues() error {
	expanded, err := homedir.Expand(cfg.Dir)
	if err != nil {
		return err
	}
	cfg.Dir = expanded
	return nil
}
