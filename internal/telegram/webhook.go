package telegram

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
)

// RegisterWebhook tells Telegram to deliver updates to publicURL. The bot
// token is embedded in the path so that only Telegram can reach the handler.
func (b *Bot) RegisterWebhook(publicURL string) error {
	wh, err := tgbotapi.NewWebhook(strings.TrimSuffix(publicURL, "/") + "/webhook/" + b.token)
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}
	if _, err := b.client.Request(wh); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}
	b.registerCommands()
	return nil
}

// HandleWebhook decodes an update delivered by Telegram and feeds it to the
// wizard.
func (b *Bot) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if subtle.ConstantTimeCompare([]byte(mux.Vars(r)["secret"]), []byte(b.token)) != 1 {
		http.NotFound(w, r)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid update payload", http.StatusBadRequest)
		return
	}

	b.handleUpdate(r.Context(), update)
	w.WriteHeader(http.StatusOK)
}
