package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram relays order and service notifications to the staff chat through
// the Bot API. The confirm dialog itself runs inside the guest's mini-app;
// the backend only waits for its outcome.
type Telegram struct {
	token       string
	staffChatID string
	confirms    *ConfirmRegistry
	http        *http.Client
	log         *slog.Logger
	apiBase     string
}

func NewTelegram(token, staffChatID string, confirms *ConfirmRegistry, log *slog.Logger) *Telegram {
	return &Telegram{
		token:       token,
		staffChatID: staffChatID,
		confirms:    confirms,
		http:        &http.Client{Timeout: 10 * time.Second},
		log:         log,
		apiBase:     defaultAPIBase,
	}
}

func (t *Telegram) RequestConfirmation(ctx context.Context, hotelID, message string) (bool, error) {
	t.log.Info("awaiting guest confirmation", "hotelId", hotelID, "prompt", message)
	return t.confirms.Wait(ctx, hotelID)
}

func (t *Telegram) Relay(ctx context.Context, text string) error {
	body, _ := json.Marshal(map[string]string{
		"chat_id": t.staffChatID,
		"text":    text,
	})

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: sendMessage returned %d", ErrRelayUnavailable, res.StatusCode)
	}
	return nil
}

func (t *Telegram) GuestName(ctx context.Context) string {
	return GuestNameFromContext(ctx)
}
