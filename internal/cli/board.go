package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/tui"
	"github.com/example/kanban/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the kanban board as a full-screen terminal UI.

Requires a running server (see "kanban serve"). The board talks to the
server configured in .kanban/config.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tui.Run(wire.Cache()); err != nil {
				return fmt.Errorf("board exited: %w", err)
			}
			return nil
		},
	}
}
