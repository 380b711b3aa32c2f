// Package mockserver implements the fake Telegram Bot API HTTP service: a
// message store with monotonic id allocation, a file registry, a
// per-endpoint response log, and one HTTP handler per emulated endpoint, all
// behind a single mutex.
//
// Grounded on the request-capture/response-log shape of
// prilive-com-galigo's internal/testutil mock server and on the message
// store semantics of teremock's state.rs and server/messages.rs.
package mockserver

import (
	"sort"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FileMeta describes one uploaded or referenced file.
type FileMeta struct {
	ID       string
	UniqueID string
	Size     int
}

// StoredFile pairs a FileMeta with the synthetic path the mock assigns it.
type StoredFile struct {
	Meta FileMeta
	Path string
}

// MessageStore is an append-only-with-edit/delete container of messages
// keyed by message id, allocating fresh ids as max(existing)+1.
type MessageStore struct {
	mu       sync.Mutex
	messages map[int]tgbotapi.Message
}

// NewMessageStore returns an empty store.
func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[int]tgbotapi.Message)}
}

// MaxMessageID returns the highest message id in the store, or 0 if empty.
func (s *MessageStore) MaxMessageID() int {
	max := 0
	for id := range s.messages {
		if id > max {
			max = id
		}
	}
	return max
}

// Get returns a copy of the message with the given id.
func (s *MessageStore) Get(id int) (tgbotapi.Message, bool) {
	m, ok := s.messages[id]
	return m, ok
}

// Add inserts msg, assigning it a fresh id if its current id collides with
// an existing message or is not ahead of the high-water mark — mirroring
// teremock's add_message, which leaves a caller-chosen id alone only when it
// doesn't collide.
func (s *MessageStore) Add(msg tgbotapi.Message) tgbotapi.Message {
	max := s.MaxMessageID()
	if _, exists := s.messages[msg.MessageID]; exists || msg.MessageID <= max {
		msg.MessageID = max + 1
	}
	s.messages[msg.MessageID] = msg
	return msg
}

// EditField applies one in-place mutation to the stored message and
// persists the result. Returns false if the message does not exist.
func (s *MessageStore) EditField(id int, mutate func(*tgbotapi.Message)) (tgbotapi.Message, bool) {
	msg, ok := s.messages[id]
	if !ok {
		return tgbotapi.Message{}, false
	}
	mutate(&msg)
	s.messages[id] = msg
	return msg, true
}

// Delete removes and returns the message with the given id.
func (s *MessageStore) Delete(id int) (tgbotapi.Message, bool) {
	msg, ok := s.messages[id]
	if ok {
		delete(s.messages, id)
	}
	return msg, ok
}

// All returns every stored message, sorted by id for deterministic
// iteration.
func (s *MessageStore) All() []tgbotapi.Message {
	out := make([]tgbotapi.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageID < out[j].MessageID })
	return out
}

// EndpointCall pairs a synthesized response entity with the request body
// that produced it, the unit recorded in each endpoint-specific response
// log bucket.
type EndpointCall struct {
	Synthesized any
	BotRequest  any
}

// Responses is the per-dispatch response log: a flat feed of every message
// the bot sent, plus one bucket per emulated endpoint of
// {synthesized, bot_request} pairs.
type Responses struct {
	SentMessages []tgbotapi.Message
	ByEndpoint   map[string][]EndpointCall
}

// NewResponses returns an empty response log.
func NewResponses() *Responses {
	return &Responses{ByEndpoint: make(map[string][]EndpointCall)}
}

func (r *Responses) recordEndpoint(endpoint string, synthesized, botRequest any) {
	r.ByEndpoint[endpoint] = append(r.ByEndpoint[endpoint], EndpointCall{
		Synthesized: synthesized,
		BotRequest:  botRequest,
	})
}

func (r *Responses) recordSentMessage(msg tgbotapi.Message, endpoint string, botRequest any) {
	r.SentMessages = append(r.SentMessages, msg)
	r.recordEndpoint(endpoint, msg, botRequest)
}

// Endpoint returns the recorded calls for one endpoint, in call order.
func (r *Responses) Endpoint(name string) []EndpointCall {
	return r.ByEndpoint[name]
}

// State is the server's complete shared mutable state: messages, files, and
// the response log, all behind one lock. Every request handler acquires the
// lock for the duration of its work; no lock is held across blocking I/O.
type State struct {
	mu        sync.Mutex
	Files     []StoredFile
	Responses *Responses
	Messages  *MessageStore
}

// NewState returns a fresh, empty State.
func NewState() *State {
	return &State{
		Responses: NewResponses(),
		Messages:  NewMessageStore(),
	}
}

// Lock acquires the state lock and returns an unlock function, so handlers
// can write `defer state.Lock()()`.
func (s *State) Lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// Reset clears the response log at the start of a new dispatch. Messages
// and files persist across dispatches within one MockBot, matching the
// server-state lifetime teremock's State::reset documents.
func (s *State) Reset() {
	unlock := s.Lock()
	defer unlock()
	s.Responses = NewResponses()
}

// RegisterFile appends a file to the registry. Files are never removed.
func (s *State) RegisterFile(meta FileMeta, path string) {
	s.Files = append(s.Files, StoredFile{Meta: meta, Path: path})
}

// FindFile looks up a file by its id.
func (s *State) FindFile(id string) (StoredFile, bool) {
	for _, f := range s.Files {
		if f.Meta.ID == id {
			return f, true
		}
	}
	return StoredFile{}, false
}
