// Command torpedosched is the scheduling engine's command-line
// dispatcher, per spec.md §6: "parse", "echo-ins", "initial-solution",
// "solve", and "print-solution" subcommands, each taking an instance
// file path. Grounded on
// jhkimqd-chaos-utils/cmd/chaos-runner/main.go's rootCmd + persistent
// flags + one file per subcommand layout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/internal/telemetry"
)

var (
	logConfigPath string
	logLevelFlag  string

	logger *telemetry.Logger
)

var rootCmd = &cobra.Command{
	Use:   "torpedosched",
	Short: "Blast-furnace-to-converter torpedo scheduling engine",
	Long: `torpedosched assigns blast-furnace taps to converter charge windows,
hill-climbs the assignment to reduce desulfurization time, and repairs any
remaining transit-corridor conflicts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := telemetry.LoadLogConfig(logConfigPath)
		if err != nil {
			return err
		}
		if logLevelFlag != "" {
			cfg.Level = telemetry.Level(logLevelFlag)
		}
		logger = telemetry.New(cfg, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logConfigPath, "log-config", "", "path to a YAML log config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(echoInsCmd)
	rootCmd.AddCommand(initialSolutionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(printSolutionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
