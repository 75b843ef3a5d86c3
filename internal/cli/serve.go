package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the kanban API server",
		Long: `Start the HTTP server exposing the board page and the issue API.

The server starts with a seeded demo board. State lives in the configured
store (in-memory by default) and resets on restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = wire.Config().ListenAddr
			}

			server := wire.Server()
			if err := server.Run(context.Background(), addr); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to config listen_addr)")
	return cmd
}
