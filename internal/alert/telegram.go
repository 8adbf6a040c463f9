package alert

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog/log"
)

// Telegram delivers alerts as messages to a single chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram connects the bot API. An error here only means alerts will not
// be pushed, the caller can fall back to the Nop sink.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Permitted() bool {
	return t.bot != nil && t.chatID != 0
}

func (t *Telegram) Fire(title, body, tag string) {
	if !t.Permitted() {
		return
	}

	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("%s\n%s", title, body))
	_, err := t.bot.Send(msg)
	if err != nil {
		// Best effort only, never fail the caller
		log.Warn().Err(err).Str("tag", tag).Msg("alert delivery failed")
	}
}
