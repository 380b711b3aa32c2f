// Package telemock is the dispatch harness: it owns one fake Telegram Bot
// API server per MockBot, reroutes a real tgbotapi.BotAPI client at it, and
// drives a caller-supplied handler tree through one batch of updates at a
// time.
package telemock

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdatesChannel is the single-shot update stream a HandlerTree consumes
// during one Dispatch call. It yields exactly the updates that dispatch
// materialized and is closed once they have all been sent.
type UpdatesChannel <-chan tgbotapi.Update

// DependencyMap carries the values a handler tree's state machine closes
// over, keyed by name — the Go analogue of a per-dispatch dependency
// injection container.
type DependencyMap map[string]any

// HandlerTree is the minimal dispatcher shape a bot program must implement
// to be driven by a MockBot. The upstream client library
// (telegram-bot-api/v5) defines no dispatcher abstraction of its own, so
// this is this module's: given the rerouted bot client, a finite stream of
// updates, and the dependency map, run the program's update handling to
// completion and report the first error encountered, if any. Example bots
// under examples/ show one concrete shape; it is not prescriptive.
type HandlerTree interface {
	Dispatch(ctx context.Context, bot *tgbotapi.BotAPI, updates UpdatesChannel, deps DependencyMap) error
}

// DistributionFunc assigns a partition key to an update, mirroring the
// distribution-function concept update-dispatch libraries use to shard
// work across concurrent handlers. A MockBot processes updates
// single-threaded and in order, so the default function is purely
// informational — it only affects the partition attribute recorded on the
// per-update trace span.
type DistributionFunc func(update tgbotapi.Update) string

func defaultDistribution(update tgbotapi.Update) string {
	return "default"
}

// ErrorHandler observes an error returned by the handler tree's Dispatch
// call. It never suppresses the error — Dispatch still returns it — it is
// a hook for tests that want to assert on handler errors without plumbing
// them through a channel themselves.
type ErrorHandler func(ctx context.Context, err error)
