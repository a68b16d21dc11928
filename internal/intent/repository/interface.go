package repository

import (
	"context"

	"intent-engine/internal/intent"
)

// Repository is the composed interface for the intent engine data store.
type Repository interface {
	EventRepository
	CorpusRepository
	Close() error
}

// EventRepository stores feedback corrections so accuracy history survives
// restarts.
type EventRepository interface {
	SaveEvent(ctx context.Context, ev intent.LearningEvent) error
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]intent.LearningEvent, error)
}

// CorpusRepository stores classified utterances for keyword mining.
type CorpusRepository interface {
	SaveMessage(ctx context.Context, opt SaveMessageOptions) (intent.CorpusMessage, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]intent.CorpusMessage, error)
}
