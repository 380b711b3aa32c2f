// Package config loads the server defaults a MockBot is constructed with.
//
// A MockBot never needs a config *file* to run — StandardDefaults returns
// the stable literal constants every test suite observes. The YAML loader
// exists for the less common case of a test package that wants to pin a
// different starting update id or chat id across its whole fixture set
// (e.g. to avoid id collisions when composing two MockBot instances in one
// test binary) without touching call sites.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the constants a freshly constructed MockBot uses unless a
// caller overrides them.
type Defaults struct {
	BotToken         string `yaml:"bot_token"`
	BotUserID        int64  `yaml:"bot_user_id"`
	DefaultGroupChat int64  `yaml:"default_group_chat_id"`
	FirstMessageID   int    `yaml:"first_message_id"`
	StartingUpdateID int32  `yaml:"starting_update_id"`
	LogLevel         string `yaml:"log_level"`
}

// StandardDefaults is the stable literal constant set: bot token
// "1234567890:QWERTYUIOPASDFGHJKLZXCVBNMQWERTYUIO", user id 1234, group chat
// id -12345678, first message id 1, starting update id 42.
func StandardDefaults() Defaults {
	return Defaults{
		BotToken:         "1234567890:QWERTYUIOPASDFGHJKLZXCVBNMQWERTYUIO",
		BotUserID:        1234,
		DefaultGroupChat: -12345678,
		FirstMessageID:   1,
		StartingUpdateID: 42,
		LogLevel:         "info",
	}
}

// Load returns StandardDefaults() merged with overrides from path, if path
// is non-empty and the file exists. A missing path is not an error — it
// means "use the stable defaults", which is what nearly every test does.
func Load(path string) (Defaults, error) {
	d := StandardDefaults()
	if path == "" {
		return d, nil
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return Defaults{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return d, nil
}
