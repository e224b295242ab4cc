package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/internal"
)

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

// CliOnlyOptions carries values only settable from the command line.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

type Application struct {
	ConfigPath     string             `yaml:",omitempty"` // the location where the application config was read from (either from -c or discovered while loading)
	Output         string             `yaml:"output" mapstructure:"output"`                     // -o, the presenter hint string to use for report formatting
	Quiet          bool               `yaml:"quiet" mapstructure:"quiet"`                       // -q, suppress all status output
	FailOn         string             `yaml:"fail-on-severity" mapstructure:"fail-on-severity"` // -f, exit nonzero when a vulnerability at or above this severity is reported
	FailOnSeverity *advisory.Severity `yaml:"-" json:"-"`
	DB             database           `yaml:"db" mapstructure:"db"`
	Log            logging            `yaml:"log" mapstructure:"log"`
	CliOptions     CliOnlyOptions     `yaml:"-" json:"-"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)
	return config
}

func (cfg Application) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("output", "table")
	v.SetDefault("quiet", false)
	v.SetDefault("fail-on-severity", "")

	cfg.DB.loadDefaultValues(v)
	cfg.Log.loadDefaultValues(v)
}

// LoadApplicationConfig populates the given viper object with application configuration discovered on disk
func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// the user may not have a config, and this is OK, we can use the default config + default cobra cli values instead
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return config, nil
}

func (cfg *Application) parseConfigValues() error {
	if cfg.FailOn != "" {
		severity := advisory.ParseSeverity(cfg.FailOn)
		if severity == advisory.SeverityUnknown {
			return fmt.Errorf("bad --fail-on severity value %q", cfg.FailOn)
		}
		cfg.FailOnSeverity = &severity
	}

	if err := cfg.DB.parseConfigValues(); err != nil {
		return err
	}

	return cfg.Log.parseConfigValues(cfg.Quiet, cfg.CliOptions.Verbosity)
}

func (cfg Application) String() string {
	// yaml is pretty human friendly (at least when compared to json)
	appCfgStr, err := yaml.Marshal(&cfg)
	if err != nil {
		return err.Error()
	}
	return string(appCfgStr)
}

func readConfig(v *viper.Viper, configPath string) error {
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. pod.context = APPNAME_POD_CONTEXT
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		return nil
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config: %w", err)
	}

	// 2. look for <appname>/config.yaml (in the user's XDG config path)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config: %w", err)
	}

	// 3. look for .<appname>.yaml (in the user's home directory)
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + internal.ApplicationName)
		if err := v.ReadInConfig(); err == nil {
			return nil
		} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config: %w", err)
		}
	}

	return ErrApplicationConfigNotFound
}
