package telegram

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier mirrors notifications to users who linked a telegram chat. It is
// an optional delivery channel next to the live hub; the durable record never
// depends on it.
type Notifier struct {
	api *botApi.BotAPI
}

func NewNotifier(token string) (*Notifier, error) {
	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Notifier{api: api}, nil
}

func (n *Notifier) Send(chatID int64, text string) error {
	msg := botApi.NewMessage(chatID, text)
	_, err := n.api.Send(msg)
	return err
}
