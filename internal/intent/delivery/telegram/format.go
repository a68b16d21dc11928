package telegram

import (
	"fmt"
	"strings"

	"intent-engine/internal/intent"
)

const (
	msgWelcome = "👋 Welcome! / ברוכים הבאים!\n\n" +
		"Write what you need in English or Hebrew and I will work out the task, the intent and its details.\n\n" +
		"_Example: \"show orders from 2023-01-01 to 2023-01-31\"_\n\nSend /help for commands."
	msgHelp = "*Commands*\n\n" +
		"/correct `<task> <intent>` teach me the right intent for your last message\n" +
		"/stats `[days]` feedback accuracy (default 7 days, 0 for all)\n" +
		"/intents `<words>` search the intents I know"
	msgInternalError    = "Something went wrong while processing your message. Please try again."
	msgCorrectUsage     = "Usage: /correct <task_type> <intent_type>, e.g. /correct product_management create_product"
	msgNothingToCorrect = "There is no recent message to correct. Send a message first."
	msgUnknownIntent    = "I don't know the intent %s. Try /intents to find the right name."
	msgLearned          = "✅ Thanks! Learned: %s → %s"
	msgStatsUsage       = "Usage: /stats [days], days must be 0 or more"
	msgIntentsUsage     = "Usage: /intents <words>"
	msgNoIntents        = "No matching intents."
)

func formatUnderstand(out intent.UnderstandOutput) string {
	var b strings.Builder
	res := out.Result

	switch {
	case res.IntentType == intent.IntentGreeting:
		b.WriteString("👋 Hi! How can I help?")
		return b.String()
	case out.Trusted:
		fmt.Fprintf(&b, "🎯 *%s* / *%s* (score %.1f)\n%s", res.TaskType, res.IntentType, res.Score, out.Description)
	default:
		fmt.Fprintf(&b, "🤔 Not sure. This looks like *%s*.\nReply /correct `<task> <intent>` to teach me.", res.TaskType)
	}

	if keys := out.Params.Keys(); len(keys) > 0 {
		b.WriteString("\n\n*Parameters*")
		for _, k := range keys {
			fmt.Fprintf(&b, "\n• %s: `%s`", k, out.Params[k])
		}
	}
	return b.String()
}

func formatStats(s intent.HistoryStats) string {
	window := fmt.Sprintf("last %d days", s.DaysAnalyzed)
	if s.DaysAnalyzed <= 0 {
		window = "all time"
	}
	return fmt.Sprintf("📊 *Feedback (%s)*\nTotal: %d\nCorrect: %d\nAccuracy: %.0f%%",
		window, s.TotalFeedback, s.CorrectPredictions, s.Accuracy*100)
}

func formatMatches(matches []intent.IntentMatch) string {
	var b strings.Builder
	b.WriteString("*Intents*")
	for _, m := range matches {
		fmt.Fprintf(&b, "\n• `%s %s` %s", m.Pair.Task, m.Pair.Intent, m.Description)
	}
	return b.String()
}
