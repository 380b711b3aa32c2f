// Package mockapi provides fluent builders for Telegram Bot API entities:
// users, chats, messages of every kind, callback queries, and the updates
// that carry them. Every builder starts from a fixed, documented default and
// exposes chainable WithXxx mutators, matching the field set a test fixture
// actually needs to set instead of every field the wire format allows.
package mockapi

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// ChatID is a strong type over a Telegram chat identifier.
type ChatID int64

// UserID is a strong type over a Telegram user identifier.
type UserID int64

// MessageID is a strong type over a Telegram message identifier.
type MessageID int

// IntoChatID is implemented by every type a chat-id mutator accepts: the raw
// integer kinds and the strong ChatID/UserID types (a private chat's id
// equals its user's id, so converting from UserID is meaningful).
type IntoChatID interface {
	IntoChatID() int64
}

// IntoUserID is implemented by every type a user-id mutator accepts.
type IntoUserID interface {
	IntoUserID() int64
}

// IntoMessageID is implemented by every type a message-id mutator accepts.
type IntoMessageID interface {
	IntoMessageID() int
}

func (id ChatID) IntoChatID() int64    { return int64(id) }
func (id UserID) IntoChatID() int64    { return int64(id) }
func (id UserID) IntoUserID() int64    { return int64(id) }
func (id MessageID) IntoMessageID() int { return int(id) }

type int64ChatID int64

func (id int64ChatID) IntoChatID() int64 { return int64(id) }

type int32ChatID int32

func (id int32ChatID) IntoChatID() int64 { return int64(id) }

type int64UserID int64

func (id int64UserID) IntoUserID() int64 { return int64(id) }

type int32UserID int32

func (id int32UserID) IntoUserID() int64 { return int64(id) }

type uint64UserID uint64

func (id uint64UserID) IntoUserID() int64 { return int64(id) }

type intMessageID int

func (id intMessageID) IntoMessageID() int { return int(id) }

type int32MessageID int32

func (id int32MessageID) IntoMessageID() int { return int(id) }

// AsChatID wraps a raw int64/int32 as an IntoChatID, for call sites that
// have a plain integer rather than a ChatID/UserID.
func AsChatID[T int64 | int32](v T) IntoChatID {
	switch x := any(v).(type) {
	case int64:
		return int64ChatID(x)
	case int32:
		return int32ChatID(x)
	}
	panic("unreachable")
}

// AsUserID wraps a raw int64/int32/uint64 as an IntoUserID.
func AsUserID[T int64 | int32 | uint64](v T) IntoUserID {
	switch x := any(v).(type) {
	case int64:
		return int64UserID(x)
	case int32:
		return int32UserID(x)
	case uint64:
		return uint64UserID(x)
	}
	panic("unreachable")
}

// AsMessageID wraps a raw int/int32 as an IntoMessageID.
func AsMessageID[T int | int32](v T) IntoMessageID {
	switch x := any(v).(type) {
	case int:
		return intMessageID(x)
	case int32:
		return int32MessageID(x)
	}
	panic("unreachable")
}

// IntoUpdate is implemented by every builder that can stand on its own as a
// top-level Telegram update: messages, edited messages, and callback
// queries. next is the MockBot's shared monotonic update-id counter.
type IntoUpdate interface {
	IntoUpdate(next *int32) []tgbotapi.Update
}

func nextUpdateID(next *int32) int {
	id := *next
	*next++
	return int(id)
}
