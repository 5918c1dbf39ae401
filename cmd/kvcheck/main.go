// Command kvcheck runs the built-in model-checking demo suites and
// prints a pass/fail report for each scenario explored.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dreamware/kvcheck/internal/demo"
	"github.com/dreamware/kvcheck/internal/kvlog"
	"github.com/dreamware/kvcheck/internal/report"
	"github.com/dreamware/kvcheck/internal/runner"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kvcheck",
	Short: "kvcheck exhaustively checks concurrent client scenarios against a revisioned key/value store",
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one or all built-in demo suites",
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		logger := kvlog.New(kvlog.Config{Level: kvlog.Level(logLevel), JSON: logJSON})

		suiteName, _ := cmd.Flags().GetString("suite")
		workers, _ := cmd.Flags().GetInt("workers")

		runID := uuid.New()
		logger.Info().Str("run_id", runID.String()).Str("suite", suiteName).Int("workers", workers).Msg("starting kvcheck run")

		suites := demo.Suites()
		if suiteName != "" {
			filtered := suites[:0]
			for _, s := range suites {
				if s.Name == suiteName {
					filtered = append(filtered, s)
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("unknown suite %q", suiteName)
			}
			suites = filtered
		}

		allPass := true
		for _, suite := range suites {
			r := runner.New[string, demo.Op, demo.Config](suite.Configs)
			r.Logger = logger
			if workers > 0 {
				r.Workers = workers
			}
			for _, scenario := range suite.Scenarios {
				r.Add(scenario)
			}

			rep := r.Run()
			for _, cr := range rep.Configs {
				report.PrintConfigHeader(os.Stdout, cr.Config)
				for _, res := range cr.Results {
					report.PrintScenario[string, demo.Op](os.Stdout, res)
				}
			}
			report.PrintSummary(os.Stdout, rep)

			if !rep.Pass() {
				allPass = false
			}
		}

		logger.Info().Str("run_id", runID.String()).Bool("pass", allPass).Msg("kvcheck run finished")

		if !allPass {
			return fmt.Errorf("one or more scenarios failed")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("suite", "", "Run only this built-in suite (default: all)")
	runCmd.Flags().Int("workers", 0, "Worker pool size (default: runner's own default)")
}
