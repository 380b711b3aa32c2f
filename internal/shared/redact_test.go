package shared

import "testing"

func TestRedact_BearerToken(t *testing.T) {
	input := "Bearer abc123def456ghi789jkl0mno"
	result := Redact(input)
	if result == input {
		t.Fatalf("expected redaction, got %q", result)
	}
	if result != "Bearer [REDACTED]" {
		t.Fatalf("expected 'Bearer [REDACTED]', got %q", result)
	}
}

func TestRedact_BotToken(t *testing.T) {
	input := "calling https://api.telegram.org/bot1234567890:QWERTYUIOPASDFGHJKLZXCVBNMQWERTYUIO/sendMessage"
	result := Redact(input)
	if result == input {
		t.Fatalf("expected redaction, got %q", result)
	}
}

func TestRedact_NoSecret(t *testing.T) {
	input := "dispatching update 42 to handler tree"
	if got := Redact(input); got != input {
		t.Fatalf("expected no redaction, got %q", got)
	}
}

func TestRedact_Empty(t *testing.T) {
	if got := Redact(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestRedactKey(t *testing.T) {
	cases := []struct {
		key    string
		expect bool
	}{
		{"token", true},
		{"bot_token", true},
		{"authorization", true},
		{"chat_id", false},
		{"text", false},
	}
	for _, tc := range cases {
		if got := RedactKey(tc.key); got != tc.expect {
			t.Errorf("RedactKey(%q) = %v, want %v", tc.key, got, tc.expect)
		}
	}
}
