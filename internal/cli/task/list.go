package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/cli/styles"
	"github.com/thenoetrevino/taskman/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List every task in server order.

Examples:
  taskman task list
  taskman task list --json
  for id in $(taskman task list --quiet); do taskman task show $id; done
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd.Flags())
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	tasks, err := cli.Result(cliInstance.App.API.List(cliInstance.Context()))
	if err != nil {
		return formatter.APIFailure(err)
	}

	if formatter.Quiet {
		// Just print IDs
		for _, t := range tasks {
			_, _ = fmt.Fprintln(formatter.Writer(), t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		formatter.Println("No tasks found")
		return nil
	}

	formatter.Println(fmt.Sprintf("Found %d tasks:\n", len(tasks)))
	for _, t := range tasks {
		formatter.Println(formatRow(t))
	}
	return nil
}

// formatRow renders one task as a single list line
func formatRow(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  [%s] %s  %s  %s",
		t.ID,
		t.Title,
		styles.RenderStatus(t.Status),
		styles.RenderPriority(t.Priority),
	)
	if t.DueDate != "" {
		b.WriteString("  " + styles.SubtitleStyle.Render("due "+t.DueDate))
	}
	return b.String()
}
