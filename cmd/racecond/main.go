// Command racecond interprets the age, sex and state-bred restrictions in
// race conditions text.
//
// Usage:
//
//	racecond parse "FOR FILLIES AND MARES THREE YEARS OLD AND UPWARD. (NW2 L)"
//	racecond parse --file conditions.txt --format yaml
//	racecond normalize < conditions.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	applog "github.com/padraicbc/racecond/logger"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		restore func()
		logger  *zap.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "racecond",
		Short: "Race conditions restriction parser",
		Long: `racecond reads the free text conditions printed on race charts and
reports who may run: minimum and maximum age, the sexes allowed, whether the
race is restricted to state-breds, and any restriction code such as NW2 L.

Each input yields exactly one record. Text that cannot be interpreted yields
the open record: unknown ages, all sexes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := applog.NewConsole(debug)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			logger = l
			restore = zap.ReplaceGlobals(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if restore != nil {
				restore()
			}
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log rejected clauses to stderr")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(normalizeCmd())
	return rootCmd
}
