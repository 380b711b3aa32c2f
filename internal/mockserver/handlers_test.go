package mockserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func postJSON(t *testing.T, port int, endpoint string, body map[string]any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	url := fmt.Sprintf("http://127.0.0.1:%d/bot1234:TEST/%s", port, endpoint)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", endpoint, err)
	}
	return resp
}

func TestHandleBanChatMember_RevokeMessagesDeletesAuthoredMessages(t *testing.T) {
	state := NewState()
	const chatID int64 = -999
	const userID int64 = 77
	state.Messages.Add(tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: userID},
		Text: "spam 1",
	})
	state.Messages.Add(tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: userID},
		Text: "spam 2",
	})
	state.Messages.Add(tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: 1},
		Text: "innocent",
	})

	srv := NewServer(testBotUser(), state, nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postJSON(t, mgr.Port, "banChatMember", map[string]any{
		"chat_id":         chatID,
		"user_id":         userID,
		"revoke_messages": true,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	remaining := state.Messages.All()
	if len(remaining) != 1 {
		t.Fatalf("remaining messages = %d, want 1", len(remaining))
	}
	if remaining[0].Text != "innocent" {
		t.Fatalf("surviving message = %q, want %q", remaining[0].Text, "innocent")
	}
}

func TestHandleCopyMessage_ReturnsBareMessageID(t *testing.T) {
	state := NewState()
	original := state.Messages.Add(tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: -1},
		From: &tgbotapi.User{ID: 2},
		Text: "copy me",
	})

	srv := NewServer(testBotUser(), state, nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postJSON(t, mgr.Port, "copyMessage", map[string]any{
		"chat_id":      -2,
		"from_chat_id": -1,
		"message_id":   original.MessageID,
	})
	defer resp.Body.Close()

	var decoded struct {
		Result struct {
			MessageID int `json:"message_id"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Result.MessageID == 0 {
		t.Fatal("expected a non-zero message_id in the copy response")
	}
}

func TestHandleEditMessageText_RejectsNoOpEdit(t *testing.T) {
	state := NewState()
	original := state.Messages.Add(tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: -1},
		Text: "same",
	})

	srv := NewServer(testBotUser(), state, nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postJSON(t, mgr.Port, "editMessageText", map[string]any{
		"chat_id":    -1,
		"message_id": original.MessageID,
		"text":       "same",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a no-op edit", resp.StatusCode)
	}
}

func TestHandleDeleteMessage_UnknownIDFails(t *testing.T) {
	srv := NewServer(testBotUser(), NewState(), nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postJSON(t, mgr.Port, "deleteMessage", map[string]any{
		"chat_id":    -1,
		"message_id": 999,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
