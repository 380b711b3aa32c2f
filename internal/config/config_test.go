package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/basket/telemock/internal/config"
)

func TestLoad_EmptyPathReturnsStandardDefaults(t *testing.T) {
	d, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.StandardDefaults()
	if d != want {
		t.Fatalf("expected standard defaults, got %+v", d)
	}
}

func TestLoad_MissingFileReturnsStandardDefaults(t *testing.T) {
	d, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d != config.StandardDefaults() {
		t.Fatalf("expected standard defaults, got %+v", d)
	}
}

func TestLoad_OverridesMergeOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemock.yaml")
	if err := os.WriteFile(path, []byte("starting_update_id: 100\ndefault_group_chat_id: -99\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	d, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.StartingUpdateID != 100 {
		t.Fatalf("expected starting_update_id=100, got %d", d.StartingUpdateID)
	}
	if d.DefaultGroupChat != -99 {
		t.Fatalf("expected default_group_chat_id=-99, got %d", d.DefaultGroupChat)
	}
	// Unset fields keep the standard default.
	if d.BotToken != config.StandardDefaults().BotToken {
		t.Fatalf("expected bot token to keep default, got %q", d.BotToken)
	}
}

func TestStandardDefaults_MatchesSpecLiterals(t *testing.T) {
	d := config.StandardDefaults()
	if d.BotToken != "1234567890:QWERTYUIOPASDFGHJKLZXCVBNMQWERTYUIO" {
		t.Fatalf("unexpected bot token: %q", d.BotToken)
	}
	if d.BotUserID != 1234 {
		t.Fatalf("unexpected bot user id: %d", d.BotUserID)
	}
	if d.DefaultGroupChat != -12345678 {
		t.Fatalf("unexpected default group chat id: %d", d.DefaultGroupChat)
	}
	if d.FirstMessageID != 1 {
		t.Fatalf("unexpected first message id: %d", d.FirstMessageID)
	}
	if d.StartingUpdateID != 42 {
		t.Fatalf("unexpected starting update id: %d", d.StartingUpdateID)
	}
}
