// Package task implements the `taskman task` subcommands.
package task

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/logging"
)

// TaskCmd returns the task parent command. Subcommands log to the taskman
// log file; stdout and stderr carry only command output.
func TaskCmd() *cobra.Command {
	var logFile io.Closer

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			closer, err := logging.Init()
			if err != nil {
				logging.Install(io.Discard, slog.LevelInfo)
				return
			}
			logFile = closer
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
