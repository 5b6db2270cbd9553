// filepath: internal/cli/cli.go
package cli

import (
	"fmt"
	"os"
	"time"

	"todohub/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X todohub/internal/cli.Version=...".
var Version = "1.0.0"

type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string
	StartTime   time.Time

	Logger *logrus.Logger
	Conf   *config.Config
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{StartTime: time.Now()}
	serveOptions := &ServeOptions{}

	rootCMD := &cobra.Command{
		Use:   "todohub",
		Short: "TodoHub API",
		Long:  "A REST API for todo lists and their items, backed by SQLite or PostgreSQL.",
		// loads the configuration before any command runs
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.loadConfig(cmd)
		},
		// without a subcommand the server is started
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(globalOptions, serveOptions)
		},
		SilenceUsage: true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)
	serveOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewMigrateCommand(globalOptions))
	rootCMD.AddCommand(NewSeedCommand(globalOptions))
	rootCMD.AddCommand(NewInitConfigCommand(globalOptions))
	rootCMD.AddCommand(NewVersionCommand())

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", "config.toml", "Path to the base configuration file. (Env: TODOHUB_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: TODOHUB_LOGGING_LEVEL)")
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
