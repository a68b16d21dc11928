package repository

import (
	"time"

	"intent-engine/internal/intent"
)

// ListEventsOptions filters learning events. Zero values disable a filter.
type ListEventsOptions struct {
	Since time.Time
	Limit int
}

// SaveMessageOptions holds one classified utterance.
type SaveMessageOptions struct {
	Text      string
	Pair      intent.Pair
	Score     float64
	CreatedAt time.Time // zero means now
}

// ListMessagesOptions filters the corpus. Results are ordered oldest first.
type ListMessagesOptions struct {
	Since    time.Time
	MinScore float64
	Limit    int
}
