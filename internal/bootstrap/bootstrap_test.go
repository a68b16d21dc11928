package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-engine/config"
	"intent-engine/internal/intent"
	"intent-engine/pkg/log"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Intent: config.IntentConfig{
			OverlayPath:          filepath.Join(dir, "learned.json"),
			Timezone:             "Asia/Jerusalem",
			WeekStart:            "sunday",
			TrustThreshold:       15,
			MaxKeywordsPerIntent: 20,
			MinKeywordLength:     2,
			MaxKeywordLength:     30,
		},
		Storage: config.StorageConfig{SQLitePath: filepath.Join(dir, "intent.db")},
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	e, err := Build(ctx, log.NewNop(), cfg)
	require.NoError(t, err)

	res := e.UseCase.Classify(ctx, "order number 42", "")
	assert.Equal(t, intent.TaskOrderManagement, res.TaskType)
	assert.Equal(t, intent.IntentGetOrder, res.IntentType)

	require.NoError(t, e.UseCase.LearnFromFeedback(ctx, intent.FeedbackInput{
		Text:      "shipments",
		Predicted: intent.Pair{Task: intent.TaskGeneral, Intent: intent.IntentGeneral},
		Correct:   intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentGetOrders},
	}))
	require.NoError(t, e.Close())

	// History and learned keywords survive a rebuild.
	e2, err := Build(ctx, log.NewNop(), cfg)
	require.NoError(t, err)
	defer e2.Close()

	stats := e2.UseCase.AnalyzeLearningHistory(ctx, 0)
	assert.Equal(t, 1, stats.TotalFeedback)
	assert.True(t, e2.Store.Snapshot().Overlay().Contains(
		intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentGetOrders}, "shipments"))
}

func TestBuild_WithoutStorage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.SQLitePath = ""

	e, err := Build(context.Background(), log.NewNop(), cfg)
	require.NoError(t, err)
	assert.NoError(t, e.Close())

	_, err = e.UseCase.MineRecent(context.Background(), intent.MineInput{})
	assert.ErrorIs(t, err, intent.ErrNoCorpus)
}

func TestBuild_BadWeekStart(t *testing.T) {
	cfg := testConfig(t)
	cfg.Intent.WeekStart = "someday"

	_, err := Build(context.Background(), log.NewNop(), cfg)
	assert.ErrorContains(t, err, "week_start")
}

func TestBuild_BadTimezoneFallsBack(t *testing.T) {
	cfg := testConfig(t)
	cfg.Intent.Timezone = "Mars/Olympus"
	cfg.Storage.SQLitePath = ""

	e, err := Build(context.Background(), log.NewNop(), cfg)
	require.NoError(t, err)
	assert.NoError(t, e.Close())
}
