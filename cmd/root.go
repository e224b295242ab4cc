package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/binaudit/binaudit/binaudit"
	"github.com/binaudit/binaudit/binaudit/pkg"
	"github.com/binaudit/binaudit/binaudit/presenter"
	"github.com/binaudit/binaudit/binaudit/report"
	"github.com/binaudit/binaudit/internal"
	"github.com/binaudit/binaudit/internal/config"
	"github.com/binaudit/binaudit/internal/log"
)

var persistentOpts config.CliOnlyOptions

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [BINARY]", internal.ApplicationName),
	Short: "A vulnerability auditor for compiled binaries",
	Long: fmt.Sprintf(`Audit a compiled binary against the advisory database.

%s reads the dependency list embedded in binaries built with dependency
tracking enabled, matches it against the advisory database, and reports only
the advisories that can apply to the binary's container format (ELF, PE,
Mach-O).`, internal.ApplicationName),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(args))
	},
}

func init() {
	setRootFlags(rootCmd.Flags())

	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output", "o", "table",
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)
	flags.StringP(
		"fail-on", "f", "",
		"set the return code to 2 if a vulnerability is found with a severity >= the given severity",
	)
	flags.StringP(
		"db", "d", "",
		"advisory database directory",
	)
	flags.BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)

	for flagName, configName := range map[string]string{
		"output":  "output",
		"fail-on": "fail-on-severity",
		"db":      "db.dir",
		"quiet":   "quiet",
	} {
		if err := viper.BindPFlag(configName, flags.Lookup(flagName)); err != nil {
			fmt.Printf("unable to bind flag '%s': %+v\n", flagName, err)
			os.Exit(1)
		}
	}
}

func runDefaultCmd(args []string) int {
	binaryPath := args[0]

	store, err := binaudit.LoadDatabase(appConfig.DB.Dir)
	if err != nil {
		if store == nil {
			log.Errorf("unable to load advisory database: %+v", err)
			return 1
		}
		// a partially loaded database is still usable
		log.Warnf("advisory database loaded with errors: %+v", err)
	}

	format, auditReport, err := binaudit.AuditFile(binaryPath, store)
	if err != nil {
		if errors.Is(err, pkg.ErrNoAuditInfo) {
			log.Errorf("unable to audit %q: %v", binaryPath, err)
		} else {
			log.Errorf("unable to audit %q: %+v", binaryPath, err)
		}
		return 1
	}

	outputOption := appConfig.Output
	presenterType := presenter.ParseOption(outputOption)
	if presenterType == presenter.UnknownPresenter {
		log.Errorf("cannot find an output presenter for option: %s", outputOption)
		return 1
	}

	if err := presenter.GetPresenter(presenterType).Present(os.Stdout, format, &auditReport); err != nil {
		log.Errorf("could not format audit report: %+v", err)
		return 1
	}

	if aboveFailOnSeverity(auditReport) {
		return 2
	}
	return 0
}

func aboveFailOnSeverity(r report.Report) bool {
	if appConfig.FailOnSeverity == nil {
		return false
	}
	for _, v := range r.Vulnerabilities.List {
		if v.Advisory.Severity.AtLeast(*appConfig.FailOnSeverity) {
			return true
		}
	}
	return false
}
