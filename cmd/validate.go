package cmd

import (
	"fmt"
	"os"

	"brick-validator/core/config"
	"brick-validator/core/logger"
	"brick-validator/core/parquet"
	"brick-validator/feature/integrity"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd runs the full validation pipeline against a repository.
var validateCmd = &cobra.Command{
	Use:   "validate [repo-path]",
	Short: "Validate a brick repository's metadata",
	Long: `Validates the BIOBRICK.yaml manifest of a brick repository:
manifest structure, asset existence, asset-set reconciliation, and
declared-vs-actual schema checks for parquet and SQLite assets.

The repository root defaults to the configured path when omitted.
Exits 0 if no errors were found (warnings are non-fatal), 1 otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logg = logger.WithRunID(logg, uuid.NewString())

		repoPath := cfg.Brick.DefaultRoot
		if len(args) == 1 {
			repoPath = args[0]
		}

		svc := integrity.NewService(repoPath, cfg.Brick, parquet.FileInspector{}, logg)
		rep := svc.Run(cmd.Context())
		rep.Render(os.Stdout)

		if rep.HasCriticalErrors() {
			return fmt.Errorf("validation failed with %d error(s)", len(rep.Errors()))
		}
		logg.Info("Validation passed",
			zap.Int("successes", len(rep.Successes())),
			zap.Int("warnings", len(rep.Warnings())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
