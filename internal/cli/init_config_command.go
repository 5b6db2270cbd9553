// filepath: internal/cli/init_config_command.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"todohub/internal/config"
	"todohub/internal/shared"

	"github.com/spf13/cobra"
)

func NewInitConfigCommand(globalOptions *GlobalOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a config file with every setting at its default",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaultConfig(globalOptions.CfgFilePath, force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	return initCmd
}

// writeDefaultConfig saves a fully defaulted configuration to path.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w (use --force to overwrite)", path, shared.ErrorFileExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	if err := config.SaveConfig(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}
