package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/testutil"
)

// ============================================================================
// END-TO-END AGAINST THE REFERENCE API
// ============================================================================

func setupContract(t *testing.T) (*Client, *testutil.TestAPI) {
	t.Helper()
	api := testutil.SetupTestAPI(t)
	c, err := New(api.BaseURL(), WithHTTPClient(api.HTTP.Client()))
	require.NoError(t, err)
	return c, api
}

func TestContract_CreateThenListContainsTask(t *testing.T) {
	c, _ := setupContract(t)
	ctx := context.Background()

	draft := models.NewDraft()
	draft.Title = "Buy milk"

	created, err := c.Create(ctx, draft)
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.NotEmpty(t, created.Data.ID)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.Data.ID, list.Data[0].ID)
	assert.Equal(t, "Buy milk", list.Data[0].Title)
}

func TestContract_UpdateReplacesFields(t *testing.T) {
	c, api := setupContract(t)
	ctx := context.Background()
	seeded := api.SeedTask(t, "Old", models.StatusPending, models.PriorityHigh)

	edited := seeded.Clone()
	edited.Title = "New"
	edited.Status = models.StatusInProgress

	resp, err := c.Update(ctx, seeded.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Data.Title)

	got, err := c.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Data.Status)
	assert.Equal(t, models.PriorityHigh, got.Data.Priority)
}

func TestContract_RemoveThenGetIsNotFound(t *testing.T) {
	c, api := setupContract(t)
	ctx := context.Background()
	seeded := api.SeedTask(t, "Temp", models.StatusPending, models.PriorityLow)

	resp, err := c.Remove(ctx, seeded.ID)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = c.Get(ctx, seeded.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

// Edge case: server-side validation surfaces as a 400 with the envelope text
func TestContract_InvalidTaskIsBadRequest(t *testing.T) {
	c, _ := setupContract(t)

	draft := models.NewDraft()
	draft.Title = "x"
	draft.Status = models.Status("done")

	_, err := c.Create(context.Background(), draft)
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.NotEmpty(t, statusErr.Message)
}
