package mockserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func testBotUser() tgbotapi.User {
	return tgbotapi.User{ID: 1234, IsBot: true, FirstName: "MockBot", UserName: "mock_bot"}
}

func TestServer_SendMessageRoundTrip(t *testing.T) {
	srv := NewServer(testBotUser(), NewState(), nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	body, _ := json.Marshal(map[string]any{
		"chat_id": -12345678,
		"text":    "hello",
	})
	url := fmt.Sprintf("http://127.0.0.1:%d/bot1234:TEST/sendMessage", mgr.Port)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var decoded struct {
		OK     bool           `json:"ok"`
		Result tgbotapi.Message `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.OK {
		t.Fatal("expected ok=true")
	}
	if decoded.Result.Text != "hello" {
		t.Fatalf("text = %q, want %q", decoded.Result.Text, "hello")
	}
	if decoded.Result.MessageID != 1 {
		t.Fatalf("message_id = %d, want 1", decoded.Result.MessageID)
	}
}

func TestServer_UnknownEndpointReturns500WithDescription(t *testing.T) {
	srv := NewServer(testBotUser(), NewState(), nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	url := fmt.Sprintf("http://127.0.0.1:%d/bot1234:TEST/someFutureEndpoint", mgr.Port)
	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestServer_StopWaitsForGracefulShutdown(t *testing.T) {
	srv := NewServer(testBotUser(), NewState(), nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := mgr.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestServer_GetMeReturnsBotUser(t *testing.T) {
	srv := NewServer(testBotUser(), NewState(), nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	url := fmt.Sprintf("http://127.0.0.1:%d/bot1234:TEST/getMe", mgr.Port)
	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	var decoded struct {
		Result tgbotapi.User `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Result.UserName != "mock_bot" {
		t.Fatalf("username = %q, want %q", decoded.Result.UserName, "mock_bot")
	}
}
