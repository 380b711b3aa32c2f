package mockserver

import "net/http"

type answerCallbackQueryBody struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

func (s *Server) handleAnswerCallbackQuery(w http.ResponseWriter, r *http.Request) {
	var body answerCallbackQueryBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("AnswerCallbackQuery", true, body)
	unlock()
	writeResult(w, true)
}

type pinChatMessageBody struct {
	ChatID              BodyChatID `json:"chat_id"`
	MessageID           int        `json:"message_id"`
	DisableNotification bool       `json:"disable_notification,omitempty"`
}

func (s *Server) handlePinChatMessage(w http.ResponseWriter, r *http.Request) {
	var body pinChatMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	if _, ok := s.state.Messages.Get(body.MessageID); !ok {
		writeError(w, badRequest("Bad Request: message to pin not found"))
		return
	}
	s.state.Responses.recordEndpoint("PinChatMessage", true, body)
	writeResult(w, true)
}

type unpinChatMessageBody struct {
	ChatID    BodyChatID `json:"chat_id"`
	MessageID *int       `json:"message_id,omitempty"`
}

func (s *Server) handleUnpinChatMessage(w http.ResponseWriter, r *http.Request) {
	var body unpinChatMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("UnpinChatMessage", true, body)
	unlock()
	writeResult(w, true)
}

type unpinAllChatMessagesBody struct {
	ChatID BodyChatID `json:"chat_id"`
}

func (s *Server) handleUnpinAllChatMessages(w http.ResponseWriter, r *http.Request) {
	var body unpinAllChatMessagesBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("UnpinAllChatMessages", true, body)
	unlock()
	writeResult(w, true)
}

type banChatMemberBody struct {
	ChatID         BodyChatID `json:"chat_id"`
	UserID         int64      `json:"user_id"`
	UntilDate      *int64     `json:"until_date,omitempty"`
	RevokeMessages *bool      `json:"revoke_messages,omitempty"`
}

// handleBanChatMember mirrors teremock's ban_chat_member.rs: when
// revoke_messages is true, every message in the chat authored by that user
// is bulk-removed from the store.
func (s *Server) handleBanChatMember(w http.ResponseWriter, r *http.Request) {
	var body banChatMemberBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	if body.RevokeMessages != nil && *body.RevokeMessages {
		chatID := body.ChatID.ID()
		var toDelete []int
		for _, m := range s.state.Messages.All() {
			if m.Chat != nil && m.Chat.ID == chatID && m.From != nil && m.From.ID == body.UserID {
				toDelete = append(toDelete, m.MessageID)
			}
		}
		for _, id := range toDelete {
			s.state.Messages.Delete(id)
		}
	}

	s.state.Responses.recordEndpoint("BanChatMember", true, body)
	writeResult(w, true)
}

type unbanChatMemberBody struct {
	ChatID       BodyChatID `json:"chat_id"`
	UserID       int64      `json:"user_id"`
	OnlyIfBanned bool       `json:"only_if_banned,omitempty"`
}

func (s *Server) handleUnbanChatMember(w http.ResponseWriter, r *http.Request) {
	var body unbanChatMemberBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("UnbanChatMember", true, body)
	unlock()
	writeResult(w, true)
}

type restrictChatMemberBody struct {
	ChatID    BodyChatID `json:"chat_id"`
	UserID    int64      `json:"user_id"`
	UntilDate *int64     `json:"until_date,omitempty"`
}

func (s *Server) handleRestrictChatMember(w http.ResponseWriter, r *http.Request) {
	var body restrictChatMemberBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("RestrictChatMember", true, body)
	unlock()
	writeResult(w, true)
}

type setMessageReactionBody struct {
	ChatID    BodyChatID `json:"chat_id"`
	MessageID int        `json:"message_id"`
	Reaction  []any      `json:"reaction,omitempty"`
}

func (s *Server) handleSetMessageReaction(w http.ResponseWriter, r *http.Request) {
	var body setMessageReactionBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	defer unlock()
	if _, ok := s.state.Messages.Get(body.MessageID); !ok {
		writeError(w, badRequest("Bad Request: message not found"))
		return
	}
	s.state.Responses.recordEndpoint("SetMessageReaction", true, body)
	writeResult(w, true)
}

type setMyCommandsBody struct {
	Commands []struct {
		Command     string `json:"command"`
		Description string `json:"description"`
	} `json:"commands"`
}

func (s *Server) handleSetMyCommands(w http.ResponseWriter, r *http.Request) {
	var body setMyCommandsBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("SetMyCommands", true, body)
	unlock()
	writeResult(w, true)
}
