package telemock

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/basket/telemock/internal/mockserver"
)

// EndpointCall pairs one endpoint invocation's synthesized response with
// the request body that produced it.
type EndpointCall = mockserver.EndpointCall

// Responses is a deep-copied snapshot of a dispatch's response log: every
// message the bot sent, plus one bucket per emulated endpoint of
// {synthesized, bot_request} pairs. It is safe to hold onto after the
// MockBot it came from runs another Dispatch.
type Responses struct {
	SentMessages []tgbotapi.Message
	ByEndpoint   map[string][]EndpointCall
}

// Endpoint returns the recorded calls for one endpoint, in call order.
func (r Responses) Endpoint(name string) []EndpointCall {
	return r.ByEndpoint[name]
}

// GetResponses returns a deep copy of the current response log. Safe to
// call at any point after Dispatch returns, including after a subsequent
// Dispatch has started mutating the live log.
func (mb *MockBot) GetResponses() Responses {
	unlock := mb.state.Lock()
	defer unlock()

	sent := make([]tgbotapi.Message, len(mb.state.Responses.SentMessages))
	copy(sent, mb.state.Responses.SentMessages)

	byEndpoint := make(map[string][]EndpointCall, len(mb.state.Responses.ByEndpoint))
	for name, calls := range mb.state.Responses.ByEndpoint {
		cp := make([]EndpointCall, len(calls))
		copy(cp, calls)
		byEndpoint[name] = cp
	}

	return Responses{SentMessages: sent, ByEndpoint: byEndpoint}
}
