package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logging contains all logging-related configuration options available to the user via the application config.
type logging struct {
	Structured   bool         `yaml:"structured" mapstructure:"structured"` // show all log entries as JSON formatted strings
	Level        string       `yaml:"level" mapstructure:"level"`           // the log level string hint
	FileLocation string       `yaml:"file" mapstructure:"file"`             // the file path to write logs to
	LevelOpt     logrus.Level `yaml:"-" json:"-"`
}

func (cfg logging) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("log.structured", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
}

func (cfg *logging) parseConfigValues(quiet bool, verbosity int) error {
	switch {
	case quiet:
		cfg.LevelOpt = logrus.PanicLevel
	case verbosity == 1:
		cfg.LevelOpt = logrus.InfoLevel
	case verbosity >= 2:
		cfg.LevelOpt = logrus.DebugLevel
	case cfg.Level != "":
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("bad log level value %q: %w", cfg.Level, err)
		}
		cfg.LevelOpt = level
	default:
		cfg.LevelOpt = logrus.WarnLevel
	}
	return nil
}
