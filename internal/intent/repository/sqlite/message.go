package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"intent-engine/internal/intent"
	repo "intent-engine/internal/intent/repository"
)

// SaveMessage appends one classified utterance to the corpus.
func (r *implRepository) SaveMessage(ctx context.Context, opt repo.SaveMessageOptions) (intent.CorpusMessage, error) {
	const query = `
		INSERT INTO messages (id, text, task_type, intent_type, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock()
	}
	msg := intent.CorpusMessage{
		ID:        uuid.NewString(),
		Text:      opt.Text,
		Task:      opt.Pair.Task,
		Intent:    opt.Pair.Intent,
		Score:     opt.Score,
		CreatedAt: createdAt.UTC(),
	}

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.Text, string(msg.Task), string(msg.Intent), msg.Score, createdAt.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveMessage"), err)
		return intent.CorpusMessage{}, repo.ErrFailedToInsert
	}
	return msg, nil
}

// ListMessages returns corpus messages oldest first.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]intent.CorpusMessage, error) {
	mods, args := r.buildListMessagesQuery(opt)
	query := `SELECT id, text, task_type, intent_type, score, created_at FROM messages ` + mods

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []intent.CorpusMessage
	for rows.Next() {
		var (
			msg       intent.CorpusMessage
			task, it  string
			createdAt int64
		)
		if err := rows.Scan(&msg.ID, &msg.Text, &task, &it, &msg.Score, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		msg.Task = intent.TaskType(task)
		msg.Intent = intent.IntentType(it)
		msg.CreatedAt = time.Unix(0, createdAt).UTC()
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// buildListMessagesQuery builds the WHERE + ORDER + LIMIT clause for ListMessages.
func (r *implRepository) buildListMessagesQuery(opt repo.ListMessagesOptions) (string, []any) {
	var conditions []string
	var args []any

	if !opt.Since.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opt.Since.UnixNano())
	}
	if opt.MinScore > 0 {
		conditions = append(conditions, "score >= ?")
		args = append(args, opt.MinScore)
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at ASC, rowid ASC")
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT %d", opt.Limit))
	}
	return strings.Join(parts, " "), args
}
