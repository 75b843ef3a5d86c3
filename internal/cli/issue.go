package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/client"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/wire"
)

// IssueCmd returns the issue command
func IssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage issues on the board",
		Long:  "Create, list, move, update, and delete issues through the kanban API",
	}

	cmd.AddCommand(issueCreateCmd())
	cmd.AddCommand(issueListCmd())
	cmd.AddCommand(issueShowCmd())
	cmd.AddCommand(issueMoveCmd())
	cmd.AddCommand(issueUpdateCmd())
	cmd.AddCommand(issuePatchCmd())
	cmd.AddCommand(issueDeleteCmd())

	return cmd
}

func issueCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a new issue",
		Long: `Create a new issue on the board.

Examples:
  kanban issue create "Fix login flow" --description "Session expires too early"
  kanban issue create "Write docs" -d "Getting started guide" -s doing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			status, _ := cmd.Flags().GetString("status")

			_, err := wire.IssueAdapter().Create(context.Background(), client.IssueFields{
				Title:       args[0],
				Description: description,
				Status:      status,
			})
			return err
		},
	}

	cmd.Flags().StringP("description", "d", "", "Issue description")
	cmd.Flags().StringP("status", "s", models.StatusTodo, "Initial status")
	return cmd
}

func issueListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			_, err := wire.IssueAdapter().List(context.Background(), status)
			return err
		},
	}

	cmd.Flags().StringP("status", "s", "", "Filter by status")
	return cmd
}

func issueShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a single issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.IssueAdapter().Show(context.Background(), args[0])
			return err
		},
	}
}

func issueMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [id] [status]",
		Short: "Move an issue to another column",
		Long: fmt.Sprintf(`Move an issue to a different status column.

Known statuses: %s`, strings.Join(models.Statuses(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.IssueAdapter().Move(context.Background(), args[0], args[1])
			return err
		},
	}
}

func issueUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Replace every field of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			status, _ := cmd.Flags().GetString("status")

			_, err := wire.IssueAdapter().Update(context.Background(), args[0], client.IssueFields{
				Title:       title,
				Description: description,
				Status:      status,
			})
			return err
		},
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("description", "d", "", "New description")
	cmd.Flags().StringP("status", "s", "", "New status")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("status")
	return cmd
}

func issuePatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch [id]",
		Short: "Change individual fields of an issue",
		Long: `Change only the fields given by flags, leaving the rest untouched.

Examples:
  kanban issue patch 3 --title "Better title"
  kanban issue patch 3 -s done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch client.IssuePatch
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				status, _ := cmd.Flags().GetString("status")
				patch.Status = &status
			}
			if patch.Title == nil && patch.Description == nil && patch.Status == nil {
				return fmt.Errorf("nothing to change\nHint: pass at least one of --title, --description, --status")
			}

			_, err := wire.IssueAdapter().Patch(context.Background(), args[0], patch)
			return err
		},
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("description", "d", "", "New description")
	cmd.Flags().StringP("status", "s", "", "New status")
	return cmd
}

func issueDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.IssueAdapter().Delete(context.Background(), args[0])
		},
	}
}
