package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// APIError is a request Telegram answered with ok=false.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.Code, e.Description)
}

// isParseError reports whether Telegram rejected the message markup.
func (e *APIError) isParseError() bool {
	return e.Code == http.StatusBadRequest && strings.Contains(e.Description, "can't parse entities")
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(webhookURL string) error {
	return b.call("setWebhook", map[string]string{"url": webhookURL})
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
// Replies echo user text, so markup Telegram cannot parse is resent as plain text.
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	err := b.call("sendMessage", SendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode})

	var apiErr *APIError
	if parseMode != "" && errors.As(err, &apiErr) && apiErr.isParseError() {
		return b.call("sendMessage", SendMessageRequest{ChatID: chatID, Text: text})
	}
	return err
}

// call posts payload to method and checks the ok flag of the reply.
func (b *Bot) call(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	resp, err := b.httpClient.Post(b.apiURL+"/"+method, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: status %d: decode response: %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: apiResp.Description}
	}
	return nil
}
