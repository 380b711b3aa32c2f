package mockserver

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestMessageStore_AddAssignsSequentialIDs(t *testing.T) {
	store := NewMessageStore()
	first := store.Add(tgbotapi.Message{Text: "one"})
	second := store.Add(tgbotapi.Message{Text: "two"})
	if first.MessageID != 1 || second.MessageID != 2 {
		t.Fatalf("got ids %d, %d; want 1, 2", first.MessageID, second.MessageID)
	}
}

func TestMessageStore_AddReassignsCollidingID(t *testing.T) {
	store := NewMessageStore()
	store.Add(tgbotapi.Message{MessageID: 5, Text: "seed"})
	collided := store.Add(tgbotapi.Message{MessageID: 5, Text: "clash"})
	if collided.MessageID != 6 {
		t.Fatalf("colliding id = %d, want 6", collided.MessageID)
	}
}

func TestMessageStore_AddReassignsNonAdvancingID(t *testing.T) {
	store := NewMessageStore()
	store.Add(tgbotapi.Message{MessageID: 10})
	stale := store.Add(tgbotapi.Message{MessageID: 3})
	if stale.MessageID != 11 {
		t.Fatalf("non-advancing id = %d, want 11", stale.MessageID)
	}
}

func TestMessageStore_EditFieldMutatesAndPersists(t *testing.T) {
	store := NewMessageStore()
	added := store.Add(tgbotapi.Message{Text: "before"})
	edited, ok := store.EditField(added.MessageID, func(m *tgbotapi.Message) {
		m.Text = "after"
	})
	if !ok || edited.Text != "after" {
		t.Fatalf("edit failed: ok=%v text=%q", ok, edited.Text)
	}
	got, _ := store.Get(added.MessageID)
	if got.Text != "after" {
		t.Fatalf("stored text = %q, want %q", got.Text, "after")
	}
}

func TestMessageStore_DeleteRemoves(t *testing.T) {
	store := NewMessageStore()
	added := store.Add(tgbotapi.Message{Text: "gone"})
	deleted, ok := store.Delete(added.MessageID)
	if !ok || deleted.Text != "gone" {
		t.Fatalf("delete failed: ok=%v", ok)
	}
	if _, ok := store.Get(added.MessageID); ok {
		t.Fatal("message still present after delete")
	}
}

func TestMessageStore_AllIsSortedByID(t *testing.T) {
	store := NewMessageStore()
	store.Add(tgbotapi.Message{MessageID: 3})
	store.Add(tgbotapi.Message{MessageID: 1})
	store.Add(tgbotapi.Message{MessageID: 2})
	all := store.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].MessageID > all[i].MessageID {
			t.Fatalf("All() not sorted: %+v", all)
		}
	}
}

func TestState_ResetClearsResponsesOnly(t *testing.T) {
	state := NewState()
	state.Messages.Add(tgbotapi.Message{Text: "kept"})
	state.RegisterFile(FileMeta{ID: "f1"}, "f1")
	unlock := state.Lock()
	state.Responses.recordEndpoint("SendMessage", true, nil)
	unlock()

	state.Reset()

	if len(state.Responses.ByEndpoint) != 0 {
		t.Fatal("expected response log cleared")
	}
	if len(state.Messages.All()) != 1 {
		t.Fatal("expected messages to persist across reset")
	}
	if len(state.Files) != 1 {
		t.Fatal("expected files to persist across reset")
	}
}

func TestState_FindFile(t *testing.T) {
	state := NewState()
	state.RegisterFile(FileMeta{ID: "abc", UniqueID: "u1", Size: 42}, "abc")
	found, ok := state.FindFile("abc")
	if !ok || found.Meta.Size != 42 {
		t.Fatalf("FindFile failed: ok=%v found=%+v", ok, found)
	}
	if _, ok := state.FindFile("missing"); ok {
		t.Fatal("expected FindFile to report missing id as not found")
	}
}
