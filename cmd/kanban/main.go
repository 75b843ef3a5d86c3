package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/cli"
	"github.com/example/kanban/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kanban",
		Short:   "kanban - a small issue board with a web UI, CLI, and TUI",
		Version: version.String(),
		Long: `kanban serves a drag-and-drop issue board over HTTP and drives the same
API from the command line or a full-screen terminal board.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.IssueCmd())
	rootCmd.AddCommand(cli.BoardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
