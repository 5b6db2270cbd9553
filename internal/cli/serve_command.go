// filepath: internal/cli/serve_command.go
package cli

import (
	"github.com/spf13/cobra"
)

// ServeOptions holds the flags that only matter when the server runs.
// Their values reach the config through loadConfig.
type ServeOptions struct {
	Port         int
	AuditEnabled bool
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(globalOptions, serveOptions)
		},
	}

	serveOptions.registerFlags(serveCmd)

	return serveCmd
}

func (options *ServeOptions) registerFlags(cmd *cobra.Command) {
	// flags for the serve command only
	cmd.Flags().IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: TODOHUB_SERVER_PORT)")
	cmd.Flags().BoolVar(&options.AuditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: TODOHUB_LOGGING_AUDIT_ENABLED=true)")
}
