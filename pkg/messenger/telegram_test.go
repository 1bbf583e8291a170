package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yunus-I/Hotel-App/pkg/logging"
)

func TestTelegramRelay(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegram("tok123", "chat456", NewConfirmRegistry(), logging.New())
	tg.apiBase = srv.URL

	if err := tg.Relay(context.Background(), "🛎️ New Order"); err != nil {
		t.Fatalf("relay: %v", err)
	}
	if gotPath != "/bottok123/sendMessage" {
		t.Fatalf("bad path %q", gotPath)
	}
	if gotBody["chat_id"] != "chat456" || gotBody["text"] != "🛎️ New Order" {
		t.Fatalf("bad body %v", gotBody)
	}
}

func TestTelegramRelayUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tg := NewTelegram("tok", "chat", NewConfirmRegistry(), logging.New())
	tg.apiBase = srv.URL

	if err := tg.Relay(context.Background(), "hi"); !errors.Is(err, ErrRelayUnavailable) {
		t.Fatalf("want ErrRelayUnavailable, got %v", err)
	}
}

func TestLocalRelayDegradesGracefully(t *testing.T) {
	l := NewLocal(NewConfirmRegistry(), logging.New())
	if err := l.Relay(context.Background(), "hi"); err != nil {
		t.Fatalf("local relay must not error: %v", err)
	}
}
