package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/testutil"
)

func TestUpdateTask_OverlaysChangedFlags(t *testing.T) {
	api, ctx := setupCLITest(t)
	task := api.SeedTask(t, "Old", models.StatusPending, models.PriorityHigh)

	output, err := run(t, ctx, UpdateCmd(), task.ID, "--title", "New", "--due", "2025-12-24", "--json")
	require.NoError(t, err)

	updated := testutil.ParseJSON(t, output)["task"].(map[string]any)
	assert.Equal(t, "New", updated["title"])

	stored, err := api.Repo.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Title)
	assert.Equal(t, "2025-12-24", stored.DueDate)
	assert.Equal(t, models.PriorityHigh, stored.Priority, "unchanged flags keep their value")
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateTask_ClearDueDate(t *testing.T) {
	api, ctx := setupCLITest(t)
	task := api.SeedTask(t, "Dated", models.StatusPending, models.PriorityLow)
	_, err := run(t, ctx, UpdateCmd(), task.ID, "--due", "2025-01-01", "--quiet")
	require.NoError(t, err)

	_, err = run(t, ctx, UpdateCmd(), "--id", task.ID, "--due", "", "--quiet")
	require.NoError(t, err)

	stored, err := api.Repo.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.DueDate)
}

func TestUpdateTask_Negative(t *testing.T) {
	api, ctx := setupCLITest(t)
	task := api.SeedTask(t, "Keep", models.StatusPending, models.PriorityLow)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no id", []string{"--title", "x"}, cli.ExitUsage},
		{"no changes", []string{task.ID}, cli.ExitUsage},
		{"unknown id", []string{"nope", "--title", "x"}, cli.ExitNotFound},
		{"invalid status", []string{task.ID, "--status", "blocked"}, cli.ExitValidation},
		{"blank title", []string{task.ID, "--title", " "}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, ctx, UpdateCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}

	stored, err := api.Repo.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep", stored.Title)
}
