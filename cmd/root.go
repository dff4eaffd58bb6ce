package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	score "github.com/score-adapter/score-adapter/score"
	"github.com/score-adapter/score-adapter/score/interp"
	"github.com/score-adapter/score-adapter/score/model"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Deployment config YAML
	inputPath  string // Input CSV of applicant rows
	outputPath string // Output CSV of scored rows
	workers    int    // Concurrent scoring calls
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "score-adapter",
	Short: "Real-time scoring adapter for deployed classification models",
}

// runCmd scores one input table row by row through the embedded runtime
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score an input table with the deployed model",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if inputPath == "" {
			logrus.Fatalf("Input table not provided. Exiting.")
		}

		cfg, err := LoadDeploymentConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to read deployment config: %v", err)
		}
		predictor, err := model.Load(cfg.Artifact)
		if err != nil {
			logrus.Fatalf("unable to load model artifact: %v", err)
		}

		table := cfg.ImputationTable()
		scorer := score.NewScorer(score.Config{
			Table:    table,
			Runtime:  interp.NewRuntime(predictor),
			ModuleID: cfg.Module,
			Routine:  cfg.Routine,
		})

		logrus.Infof("Scoring %s with module %s (%d features, %d workers)",
			inputPath, cfg.Module, len(cfg.Features), workers)

		if err := scoreTable(scorer, table, inputPath, outputPath, workers); err != nil {
			logrus.Fatalf("scoring run failed: %v", err)
		}
		logrus.Info("Scoring complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "deployment.yaml", "Deployment config YAML")
	runCmd.Flags().StringVar(&inputPath, "input", "", "Input CSV of applicant rows")
	runCmd.Flags().StringVar(&outputPath, "output", "scores.csv", "Output CSV of scored rows")
	runCmd.Flags().IntVar(&workers, "workers", 4, "Concurrent scoring calls")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
