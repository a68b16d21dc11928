package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/repository"
	"intent-engine/internal/intent/repository/sqlite"
	"intent-engine/pkg/log"
)

var (
	createProduct = intent.Pair{Task: intent.TaskProductManagement, Intent: intent.IntentCreateProduct}
	getOrders     = intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentGetOrders}
)

func open(t *testing.T, path string) repository.Repository {
	t.Helper()
	r, err := sqlite.Open(context.Background(), log.NewNop(), path)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	r := open(t, ":memory:")
	base := time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

	events := []intent.LearningEvent{
		{ID: "e1", Text: "old", Predicted: createProduct, Correct: createProduct, Timestamp: base.Add(-48 * time.Hour)},
		{ID: "e2", Text: "הזמנות", Predicted: createProduct, Correct: getOrders, Timestamp: base.Add(-time.Hour)},
		{ID: "e3", Text: "new", Predicted: getOrders, Correct: getOrders, Timestamp: base},
	}
	for _, ev := range events {
		require.NoError(t, r.SaveEvent(ctx, ev))
	}

	t.Run("all", func(t *testing.T) {
		got, err := r.ListEvents(ctx, repository.ListEventsOptions{})
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("since", func(t *testing.T) {
		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Since: base.Add(-24 * time.Hour)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "e2", got[0].ID)
		assert.Equal(t, getOrders, got[0].Correct)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e1", got[0].ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := r.SaveEvent(ctx, events[0])
		assert.ErrorIs(t, err, repository.ErrFailedToInsert)
	})
}

func TestMessages(t *testing.T) {
	ctx := context.Background()
	r := open(t, ":memory:")
	base := time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

	for i, m := range []struct {
		text  string
		pair  intent.Pair
		score float64
		age   time.Duration
	}{
		{"add product mug", createProduct, 30, 10 * 24 * time.Hour},
		{"show orders", getOrders, 42, time.Hour},
		{"orders maybe", getOrders, 3, 30 * time.Minute},
		{"show recent orders", getOrders, 18, 0},
	} {
		msg, err := r.SaveMessage(ctx, repository.SaveMessageOptions{
			Text: m.text, Pair: m.pair, Score: m.score, CreatedAt: base.Add(-m.age),
		})
		require.NoError(t, err, i)
		assert.NotEmpty(t, msg.ID)
	}

	got, err := r.ListMessages(ctx, repository.ListMessagesOptions{
		Since:    base.Add(-7 * 24 * time.Hour),
		MinScore: 15,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "show orders", got[0].Text)
	assert.Equal(t, "show recent orders", got[1].Text)
	assert.Equal(t, intent.TaskOrderManagement, got[1].Task)
	assert.Equal(t, intent.IntentGetOrders, got[1].Intent)
	assert.Equal(t, base, got[1].CreatedAt)

	all, err := r.ListMessages(ctx, repository.ListMessagesOptions{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "add product mug", all[0].Text)
}

func TestOpen_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "intent.db")

	r, err := sqlite.Open(ctx, log.NewNop(), path)
	require.NoError(t, err)
	_, err = r.SaveMessage(ctx, repository.SaveMessageOptions{Text: "hello", Pair: createProduct, Score: 20})
	require.NoError(t, err)
	require.NoError(t, r.Close())

	reopened := open(t, path)
	got, err := reopened.ListMessages(ctx, repository.ListMessagesOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Text)
}
