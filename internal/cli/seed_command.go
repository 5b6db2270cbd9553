// filepath: internal/cli/seed_command.go
package cli

import (
	"context"
	"fmt"

	"todohub/internal/initconfig"
	"todohub/internal/repository"
	"todohub/internal/services"

	"github.com/spf13/cobra"
)

func NewSeedCommand(globalOptions *GlobalOptions) *cobra.Command {
	var seedFile string

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create todo lists and items from a TOML file",
		Long: `Reads a TOML file of [[list]] tables, each with optional [[list.item]] entries,
and creates them through the regular service layer. Lists whose title already
exists are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), globalOptions, seedFile)
		},
	}

	seedCmd.Flags().StringVar(&seedFile, "file", "seed.toml", "Path to the TOML seed file.")

	return seedCmd
}

func runSeed(ctx context.Context, globalOptions *GlobalOptions, path string) error {
	cfg := globalOptions.Conf
	logger := globalOptions.Logger

	pool, err := openStore(globalOptions)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewRepository(pool.Dialect(), logger, nil)
	todoService := services.NewTodoService(pool, repo, logger, cfg.IsStrictValidation())

	report, err := initconfig.Run(ctx, todoService, path, logger)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	if report.Failures > 0 {
		return fmt.Errorf("seed finished with %d failure(s)", report.Failures)
	}
	return nil
}
