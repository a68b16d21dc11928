package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	pkgResponse "intent-engine/pkg/response"
	pkgTelegram "intent-engine/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers the chat from a background
// goroutine, detached from the request context.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, msgInternalError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage routes a single message to a command or to Understand.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		cmd, args := parseCommand(text)
		switch cmd {
		case "/start":
			return h.bot.SendMessageWithMode(msg.Chat.ID, msgWelcome, "Markdown")
		case "/help":
			return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")
		case "/correct":
			return h.handleCorrect(ctx, msg.Chat.ID, args)
		case "/stats":
			return h.handleStats(ctx, msg.Chat.ID, args)
		case "/intents":
			return h.handleIntents(ctx, msg.Chat.ID, args)
		}
	}

	out := h.uc.Understand(ctx, text)
	h.turns.Add(msg.Chat.ID, turn{text: text, predicted: out.Result.Pair()})
	return h.bot.SendMessageWithMode(msg.Chat.ID, formatUnderstand(out), "Markdown")
}

// parseCommand splits "/cmd@bot a b" into "/cmd" and its arguments.
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return cmd, fields[1:]
}
