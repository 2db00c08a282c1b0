package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/cli/serve"
	"github.com/thenoetrevino/taskman/internal/cli/task"
	"github.com/thenoetrevino/taskman/internal/launcher"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/taskman/cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the taskman command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskman",
		Short: "taskman - manage tasks from the terminal",
		Long: `taskman is a terminal client for a REST task API.

Run it without arguments to open the interactive task list, use the task
subcommands from scripts, or start a local API with 'taskman serve'.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _ := cmd.Flags().GetString(cli.APIFlag)
			return launcher.Launch(launcher.Options{BaseURL: api})
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})
	rootCmd.PersistentFlags().String(cli.APIFlag, "", "Task API base URL (overrides config and TASKMAN_API_URL)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(serve.ServeCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Formatters already printed reported errors
	if !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
