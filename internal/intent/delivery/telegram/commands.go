package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"intent-engine/internal/intent"
)

const (
	intentsLimit = 5
	defaultDays  = 7
)

// handleCorrect turns the chat's last classified message into feedback.
// Accepts "/correct task intent" and "/correct task.intent".
func (h *handler) handleCorrect(ctx context.Context, chatID int64, args []string) error {
	if len(args) == 1 {
		args = strings.SplitN(args[0], ".", 2)
	}
	if len(args) != 2 {
		return h.bot.SendMessage(chatID, msgCorrectUsage)
	}

	last, ok := h.turns.Get(chatID)
	if !ok {
		return h.bot.SendMessage(chatID, msgNothingToCorrect)
	}

	correct := intent.NewPair(args[0], args[1])
	err := h.uc.LearnFromFeedback(ctx, intent.FeedbackInput{
		Text:      last.text,
		Predicted: last.predicted,
		Correct:   correct,
	})
	switch {
	case errors.Is(err, intent.ErrUnknownTaskType), errors.Is(err, intent.ErrUnknownIntent):
		return h.bot.SendMessage(chatID, fmt.Sprintf(msgUnknownIntent, correct))
	case err != nil:
		return err
	}

	h.turns.Add(chatID, turn{text: last.text, predicted: correct})
	return h.bot.SendMessage(chatID, fmt.Sprintf(msgLearned, last.predicted, correct))
}

func (h *handler) handleStats(ctx context.Context, chatID int64, args []string) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return h.bot.SendMessage(chatID, msgStatsUsage)
		}
		days = n
	}

	stats := h.uc.AnalyzeLearningHistory(ctx, days)
	return h.bot.SendMessageWithMode(chatID, formatStats(stats), "Markdown")
}

func (h *handler) handleIntents(ctx context.Context, chatID int64, args []string) error {
	if len(args) == 0 {
		return h.bot.SendMessage(chatID, msgIntentsUsage)
	}
	matches := h.uc.SearchIntents(ctx, strings.Join(args, " "), intentsLimit)
	if len(matches) == 0 {
		return h.bot.SendMessage(chatID, msgNoIntents)
	}
	return h.bot.SendMessageWithMode(chatID, formatMatches(matches), "Markdown")
}
