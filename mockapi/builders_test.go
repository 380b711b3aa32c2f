package mockapi

import "testing"

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser().Build()
	if u.ID != defaultUserID {
		t.Errorf("id = %d, want %d", u.ID, defaultUserID)
	}
	if u.IsBot {
		t.Error("expected IsBot = false")
	}
	if u.FirstName != "First" {
		t.Errorf("first name = %q, want %q", u.FirstName, "First")
	}
}

func TestNewUser_WithID(t *testing.T) {
	u := NewUser().WithID(AsUserID(int64(99))).Build()
	if u.ID != 99 {
		t.Errorf("id = %d, want 99", u.ID)
	}
}

func TestNewGroupChat_Defaults(t *testing.T) {
	c := NewGroupChat().Build()
	if c.ID != DefaultChatID {
		t.Errorf("id = %d, want %d", c.ID, DefaultChatID)
	}
	if c.Type != "group" {
		t.Errorf("type = %q, want group", c.Type)
	}
}

func TestNewPrivateChat_DefaultsToUserID(t *testing.T) {
	c := NewPrivateChat().Build()
	if c.ID != defaultUserID {
		t.Errorf("private chat id = %d, want %d (the default user's id)", c.ID, defaultUserID)
	}
	if c.Type != "private" {
		t.Errorf("type = %q, want private", c.Type)
	}
}

func TestNewChannelChat_WithUsername(t *testing.T) {
	c := NewChannelChat().WithUserName("test_channel").Build()
	if c.UserName != "test_channel" {
		t.Errorf("username = %q, want test_channel", c.UserName)
	}
	if c.Type != "channel" {
		t.Errorf("type = %q, want channel", c.Type)
	}
}

func TestNewSupergroupChat_IsForumDefaultsFalse(t *testing.T) {
	c := NewSupergroupChat().Build()
	if c.IsForum {
		t.Error("expected is_forum = false by default")
	}
}

func TestNewMessage_Defaults(t *testing.T) {
	m := NewMessage().Build()
	if m.MessageID != DefaultMessageID {
		t.Errorf("message id = %d, want %d", m.MessageID, DefaultMessageID)
	}
	if m.Text != "Text" {
		t.Errorf("text = %q, want Text", m.Text)
	}
	if m.Chat == nil || m.Chat.ID != defaultUserID {
		t.Error("expected default private chat with user's id")
	}
}

func TestMessageBuilder_WithPhotoClearsText(t *testing.T) {
	m := NewMessage().WithPhoto().Build()
	if m.Text != "" {
		t.Errorf("expected text cleared, got %q", m.Text)
	}
	if len(m.Photo) != 1 {
		t.Fatalf("expected one default photo size, got %d", len(m.Photo))
	}
	if m.Photo[0].Width != 100 || m.Photo[0].Height != 100 {
		t.Errorf("expected 100x100 default dimensions, got %dx%d", m.Photo[0].Width, m.Photo[0].Height)
	}
}

func TestMessageBuilder_IntoUpdate(t *testing.T) {
	var next int32 = 42
	updates := NewMessage().IntoUpdate(&next)
	if len(updates) != 1 {
		t.Fatalf("expected one update, got %d", len(updates))
	}
	if updates[0].UpdateID != 42 {
		t.Errorf("update id = %d, want 42", updates[0].UpdateID)
	}
	if next != 43 {
		t.Errorf("counter not advanced: got %d, want 43", next)
	}
	if updates[0].Message == nil {
		t.Fatal("expected Message to be set")
	}
}

func TestEditedMessageBuilder_IntoUpdate(t *testing.T) {
	var next int32
	updates := NewMessage().WithText("edited").AsEdited().IntoUpdate(&next)
	if updates[0].EditedMessage == nil {
		t.Fatal("expected EditedMessage to be set")
	}
	if updates[0].Message != nil {
		t.Fatal("expected Message to be nil on an edited-message update")
	}
}

func TestCallbackQueryBuilder_IntoUpdate(t *testing.T) {
	var next int32
	updates := NewCallbackQuery().WithData("calc:+1").IntoUpdate(&next)
	if updates[0].CallbackQuery == nil {
		t.Fatal("expected CallbackQuery to be set")
	}
	if updates[0].CallbackQuery.Data != "calc:+1" {
		t.Errorf("data = %q, want calc:+1", updates[0].CallbackQuery.Data)
	}
}
