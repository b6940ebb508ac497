// Package telegram is the message channel between Telegram chats and the
// event wizard: command routing in, replies out.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kalendo/kalendo/pkg/wizard"
	log "github.com/sirupsen/logrus"
)

// Wizard is the conversation engine the bot feeds inbound messages to.
type Wizard interface {
	Start(ctx context.Context, sessionID string) (wizard.Reply, error)
	HandleInput(ctx context.Context, sessionID string, text string) (wizard.Reply, error)
	Cancel(ctx context.Context, sessionID string) (wizard.Reply, error)
}

// client is the slice of the Telegram API the bot talks to; tests stub it.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api    *tgbotapi.BotAPI
	client client
	token  string
	wizard Wizard
}

func NewBot(token string, w Wizard) (*Bot, error) {
	if token == "" {
		return nil, errors.New("telegram token is not configured")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	log.Infof("Authorized on Telegram as @%s", api.Self.UserName)
	return &Bot{api: api, client: api, token: token, wizard: w}, nil
}

// Run registers the bot commands and consumes updates over long polling
// until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.registerCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) registerCommands() {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "addevent", Description: "Create a calendar event"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Abandon the event being created"},
	)
	if _, err := b.client.Request(commands); err != nil {
		log.Warnf("failed to register bot commands: %v", err)
	}
}

// handleUpdate routes one update to the wizard. The chat ID doubles as the
// wizard session ID: one conversation, one session.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	sessionID := strconv.FormatInt(chatID, 10)

	var reply wizard.Reply
	var err error
	switch {
	case msg.IsCommand() && msg.Command() == "addevent":
		reply, err = b.wizard.Start(ctx, sessionID)
	case msg.IsCommand() && msg.Command() == "cancel":
		reply, err = b.wizard.Cancel(ctx, sessionID)
	case msg.IsCommand():
		reply = wizard.Reply{Text: "Unknown command. Use /addevent to create an event."}
	default:
		// Non-text messages (photos, stickers) carry an empty Text.
		reply, err = b.wizard.HandleInput(ctx, sessionID, msg.Text)
	}
	if err != nil {
		log.Errorf("failed to handle message for chat %d: %v", chatID, err)
		return
	}

	if err := b.send(chatID, reply); err != nil {
		log.Errorf("failed to send reply to chat %d: %v", chatID, err)
	}
}

func (b *Bot) send(chatID int64, reply wizard.Reply) error {
	out := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.HTML {
		out.ParseMode = tgbotapi.ModeHTML
	}
	if reply.RemoveKeyboard {
		out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}
	_, err := b.client.Send(out)
	return err
}
