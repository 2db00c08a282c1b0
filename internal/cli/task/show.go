package task

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/cli/styles"
	"github.com/thenoetrevino/taskman/internal/models"
)

// descriptionWidth is the wrap width inside the task card
const descriptionWidth = 72

// timeLayout is how timestamps are shown to humans
const timeLayout = "Jan 2, 2006 3:04 PM"

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown unless --plain is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("plain", false, "Word-wrap the description instead of rendering markdown")
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

// taskID reads the task ID from the first positional arg or --id
func taskID(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	id, _ := cmd.Flags().GetString("id")
	return strings.TrimSpace(id)
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())
	plain, _ := cmd.Flags().GetBool("plain")

	id := taskID(cmd, args)
	if id == "" {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID",
			errors.New("task ID is required"),
			"Usage: taskman task show <id> or taskman task show --id=<id>")
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

	task, err := cli.Result(cliInstance.App.API.Get(cliInstance.Context(), id))
	if err != nil {
		return formatter.APIFailure(err)
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	formatter.Println(renderTaskCard(task, plain))
	return nil
}

// renderTaskCard renders the human-readable view of one task
func renderTaskCard(task models.Task, plain bool) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("ID " + task.ID))
	content.WriteString("\n\n")

	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.RenderStatus(task.Status),
		styles.LabelStyle.Render("Priority:"),
		styles.RenderPriority(task.Priority),
	)

	if task.DueDate != "" {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Due:"),
			styles.ValueStyle.Render(task.DueDate),
		)
	}

	// Timestamps
	if task.CreatedAt != nil {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(task.CreatedAt.Local().Format(timeLayout)),
		)
	}
	if task.UpdatedAt != nil {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Updated:"),
			styles.SubtitleStyle.Render(task.UpdatedAt.Local().Format(timeLayout)),
		)
	}

	if strings.TrimSpace(task.Description) != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderDescription(task.Description, plain))
	}

	return styles.RenderCard(strings.TrimRight(content.String(), "\n"))
}

// renderDescription renders markdown with glamour, or wraps plain text
func renderDescription(description string, plain bool) string {
	if plain {
		return wordwrap.String(description, descriptionWidth)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(descriptionWidth),
	)
	if err != nil {
		slog.Debug("glamour unavailable, falling back to plain text", "error", err)
		return wordwrap.String(description, descriptionWidth)
	}

	rendered, err := renderer.Render(description)
	if err != nil {
		return wordwrap.String(description, descriptionWidth)
	}
	return strings.Trim(rendered, "\n")
}
