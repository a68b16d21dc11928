package telegram

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"intent-engine/internal/intent"
	pkgLog "intent-engine/pkg/log"
)

const (
	maxRememberedChats = 10000
	turnTTL            = 30 * time.Minute
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Bot API the handler needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

// turn is the last classified message of a chat, kept so /correct can
// turn it into feedback.
type turn struct {
	text      string
	predicted intent.Pair
}

type handler struct {
	l     pkgLog.Logger
	uc    intent.UseCase
	bot   Sender
	turns *expirable.LRU[int64, turn]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc intent.UseCase, bot Sender) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		bot:   bot,
		turns: expirable.NewLRU[int64, turn](maxRememberedChats, nil, turnTTL),
	}
}
