package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intent-engine/internal/intent"
	repo "intent-engine/internal/intent/repository"
)

// SaveEvent inserts one learning event. Events are never deduplicated; a
// repeated ID is an insert failure.
func (r *implRepository) SaveEvent(ctx context.Context, ev intent.LearningEvent) error {
	const query = `
		INSERT INTO learning_events (id, text, predicted_task, predicted_intent, correct_task, correct_intent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.Text,
		string(ev.Predicted.Task), string(ev.Predicted.Intent),
		string(ev.Correct.Task), string(ev.Correct.Intent),
		ev.Timestamp.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveEvent"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListEvents returns events oldest first.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]intent.LearningEvent, error) {
	var conditions []string
	var args []any
	if !opt.Since.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opt.Since.UnixNano())
	}

	query := `SELECT id, text, predicted_task, predicted_intent, correct_task, correct_intent, created_at FROM learning_events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC, rowid ASC"
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []intent.LearningEvent
	for rows.Next() {
		var (
			ev             intent.LearningEvent
			pTask, pIntent string
			cTask, cIntent string
			createdAt      int64
		)
		if err := rows.Scan(&ev.ID, &ev.Text, &pTask, &pIntent, &cTask, &cIntent, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		ev.Predicted = intent.Pair{Task: intent.TaskType(pTask), Intent: intent.IntentType(pIntent)}
		ev.Correct = intent.Pair{Task: intent.TaskType(cTask), Intent: intent.IntentType(cIntent)}
		ev.Timestamp = time.Unix(0, createdAt).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
