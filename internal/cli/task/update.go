package task

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update fields of an existing task.

The task is fetched first and only the flags you pass are changed, then the
whole task is written back.

Examples:
  taskman task update 1 --status=completed
  taskman task update --id=1 --title="New title" --due=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddTaskFlags(cmd.Flags())
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())

	id := taskID(cmd, args)
	if id == "" {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID",
			errors.New("task ID is required"),
			"Usage: taskman task update <id> [flags]")
	}

	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("status") &&
		!flags.Changed("priority") && !flags.Changed("due") {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			errors.New("at least one of --title, --description, --status, --priority, --due must be given"), "")
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
	current, err := cli.Result(cliInstance.App.API.Get(ctx, id))
	if err != nil {
		return formatter.APIFailure(err)
	}

	if err := cli.ApplyTaskFlags(flags, &current, os.Stdin); err != nil {
		return flagFailure(formatter, err)
	}
	if current.Title == "" {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE",
			errors.New("title cannot be empty"), "")
	}

	task, err := cli.Result(cliInstance.App.API.Update(ctx, id, current))
	if err != nil {
		return formatter.APIFailure(err)
	}
	slog.Info("task updated", "id", task.ID)

	return writeTask(formatter, task, "updated")
}
