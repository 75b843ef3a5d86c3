package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config to .kanban/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()

			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.ListenAddr = addr
			}
			if store, _ := cmd.Flags().GetString("store"); store != "" {
				cfg.Store = store
			}
			if dsn, _ := cmd.Flags().GetString("sqlite-dsn"); dsn != "" {
				cfg.SQLiteDSN = dsn
			}
			if url, _ := cmd.Flags().GetString("server-url"); url != "" {
				cfg.ServerURL = url
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(".", cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Println("✓ Wrote .kanban/config.json")
			fmt.Printf("  listen_addr: %s\n", cfg.ListenAddr)
			fmt.Printf("  store:       %s\n", cfg.Store)
			fmt.Printf("  server_url:  %s\n", cfg.ServerURL)
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address for the server")
	cmd.Flags().String("store", "", "Store backend: memory or sqlite")
	cmd.Flags().String("sqlite-dsn", "", "SQLite DSN when store is sqlite")
	cmd.Flags().String("server-url", "", "Base URL client commands talk to")
	return cmd
}
