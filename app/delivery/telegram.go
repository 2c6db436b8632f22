package delivery

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram delivers scripts to a chat through the Bot API. Send failures
// are reported as a boolean and never raised past the caller.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func New(token, chatID string) (*Telegram, error) {
	return NewWithEndpoint(token, chatID, tgbotapi.APIEndpoint)
}

// NewWithEndpoint creates a deliverer against a custom Bot API endpoint.
func NewWithEndpoint(token, chatID, endpoint string) (*Telegram, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID %q: %w", chatID, err)
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Telegram{api: api, chatID: id}, nil
}

// SendScript delivers the generated script wrapped in the standard template.
func (t *Telegram) SendScript(script string) bool {
	return t.send(formatScript(script, time.Now()))
}

// SendError delivers a best-effort failure notification.
func (t *Telegram) SendError(reason string) bool {
	return t.send(formatError(reason))
}

func (t *Telegram) send(text string) bool {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := t.api.Send(msg); err != nil {
		slog.Error("Failed to send Telegram message", "error", err)
		return false
	}

	slog.Info("Message sent to Telegram", "length", len(text))
	return true
}
