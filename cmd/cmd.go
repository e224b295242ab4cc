package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/binaudit/binaudit/binaudit"
	"github.com/binaudit/binaudit/internal"
	"github.com/binaudit/binaudit/internal/config"
	"github.com/binaudit/binaudit/internal/log"
	"github.com/binaudit/binaudit/internal/logger"
	"github.com/binaudit/binaudit/internal/version"
)

var appConfig *config.Application

func init() {
	cobra.OnInitialize(
		initAppConfig,
		initLogging,
		logAppConfig,
		logAppVersion,
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func initAppConfig() {
	cfg, err := config.LoadApplicationConfig(viper.GetViper(), persistentOpts)
	if err != nil {
		fmt.Printf("failed to load application config: \n\t%+v\n", err)
		os.Exit(1)
	}
	appConfig = cfg
}

func initLogging() {
	cfg := logger.LogrusConfig{
		EnableConsole: (appConfig.Log.FileLocation == "" || appConfig.CliOptions.Verbosity > 0) && !appConfig.Quiet,
		EnableFile:    appConfig.Log.FileLocation != "",
		Level:         appConfig.Log.LevelOpt,
		Structured:    appConfig.Log.Structured,
		FileLocation:  appConfig.Log.FileLocation,
	}

	binaudit.SetLogger(logger.NewLogrusLogger(cfg))
}

func logAppConfig() {
	log.Debugf("application config:\n%s", appConfig)
}

func logAppVersion() {
	versionInfo := version.FromBuild()
	log.Infof("%s version: %s", internal.ApplicationName, versionInfo.Version)
}
