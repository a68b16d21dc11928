package usecase

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/extractor"
	"intent-engine/internal/intent/learner"
	"intent-engine/internal/intent/repository"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/datemath"
	"intent-engine/pkg/log"
)

var fixedNow = time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu       sync.Mutex
	events   []intent.LearningEvent
	messages []intent.CorpusMessage
	listOpts []repository.ListMessagesOptions
	saveErr  error
	listErr  error
}

func (m *mockRepo) SaveEvent(ctx context.Context, ev intent.LearningEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]intent.LearningEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]intent.LearningEvent(nil), m.events...), nil
}

func (m *mockRepo) SaveMessage(ctx context.Context, opt repository.SaveMessageOptions) (intent.CorpusMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return intent.CorpusMessage{}, m.saveErr
	}
	msg := intent.CorpusMessage{Text: opt.Text, Task: opt.Pair.Task, Intent: opt.Pair.Intent, Score: opt.Score}
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *mockRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]intent.CorpusMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listOpts = append(m.listOpts, opt)
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []intent.CorpusMessage
	for _, msg := range m.messages {
		if msg.Score >= opt.MinScore {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockRepo) Close() error { return nil }

func newTestUseCase(t *testing.T, repo repository.Repository) *implUseCase {
	t.Helper()
	ctx := context.Background()

	store, err := taxonomy.New(ctx, log.NewNop(), taxonomy.Options{
		OverlayPath: filepath.Join(t.TempDir(), "learned.json"),
	})
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	clock := func() time.Time { return fixedNow }

	lr := learner.New(log.NewNop(), store, learner.DefaultConfig(), learner.WithClock(clock))
	uc, err := New(log.NewNop(), store, extractor.New(dates, extractor.WithClock(clock)), lr, repo, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	uc.clock = clock
	return uc
}
