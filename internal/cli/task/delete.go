package task

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/tui/huhforms"
)

// confirmDelete asks the user before deleting. Replaced in tests.
var confirmDelete = func(title string) (bool, error) {
	var confirmed bool
	if err := huhforms.CreateDeleteConfirm(title, &confirmed).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())
	force, _ := cmd.Flags().GetBool("force")

	id := taskID(cmd, args)
	if id == "" {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID",
			errors.New("task ID is required"),
			"Usage: taskman task delete <id> [--force]")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	ctx := cliInstance.Context()

	// Get task details for confirmation
	task, err := cli.Result(cliInstance.App.API.Get(ctx, id))
	if err != nil {
		return formatter.APIFailure(err)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		confirmed, err := confirmDelete(task.Title)
		if err != nil {
			return formatter.Fail(cli.ExitError, "PROMPT_ERROR", err, "Use --force in non-interactive shells")
		}
		if !confirmed {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if _, err := cli.Result(cliInstance.App.API.Remove(ctx, id)); err != nil {
		return formatter.APIFailure(err)
	}
	slog.Info("task deleted", "id", id)

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"task_id": id,
		})
	}

	formatter.Println("✓ Task " + id + " deleted successfully")
	return nil
}
