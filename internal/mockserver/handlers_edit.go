package mockserver

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type editMessageTextBody struct {
	ChatID          *BodyChatID                    `json:"chat_id,omitempty"`
	MessageID       *int                           `json:"message_id,omitempty"`
	InlineMessageID *string                        `json:"inline_message_id,omitempty"`
	Text            string                         `json:"text"`
	ReplyMarkup     *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// handleEditMessageText mirrors teremock's edit_message_text.rs: a no-op
// edit (same text, same markup) is rejected as "message is not modified"
// rather than silently succeeding. An inline_message_id with no message_id
// addresses a message this mock never persisted (it belongs to an inline
// query result, not a chat message), so it reports success without looking
// anything up.
func (s *Server) handleEditMessageText(w http.ResponseWriter, r *http.Request) {
	var body editMessageTextBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.MessageID == nil && body.InlineMessageID != nil {
		s.state.Responses.recordEndpoint("EditMessageText", true, body)
		writeResult(w, true)
		return
	}
	if body.MessageID == nil {
		writeError(w, badRequest("No message_id or inline_message_id were provided"))
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	old, ok := s.state.Messages.Get(*body.MessageID)
	if !ok {
		writeError(w, badRequest("Bad Request: message to edit not found"))
		return
	}
	if old.Text == body.Text && sameReplyMarkup(old.ReplyMarkup, body.ReplyMarkup) {
		writeError(w, badRequest("Bad Request: message is not modified"))
		return
	}

	edited, ok := s.state.Messages.EditField(*body.MessageID, func(m *tgbotapi.Message) {
		m.Text = body.Text
		m.ReplyMarkup = body.ReplyMarkup
	})
	if !ok {
		writeError(w, badRequest("Bad Request: message to edit not found"))
		return
	}

	s.state.Responses.recordEndpoint("EditMessageText", edited, body)
	writeResult(w, edited)
}

type editMessageCaptionBody struct {
	ChatID          *BodyChatID                    `json:"chat_id,omitempty"`
	MessageID       *int                           `json:"message_id,omitempty"`
	InlineMessageID *string                        `json:"inline_message_id,omitempty"`
	Caption         string                         `json:"caption"`
	ReplyMarkup     *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

func (s *Server) handleEditMessageCaption(w http.ResponseWriter, r *http.Request) {
	var body editMessageCaptionBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.MessageID == nil && body.InlineMessageID != nil {
		s.state.Responses.recordEndpoint("EditMessageCaption", true, body)
		writeResult(w, true)
		return
	}
	if body.MessageID == nil {
		writeError(w, badRequest("No message_id or inline_message_id were provided"))
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	old, ok := s.state.Messages.Get(*body.MessageID)
	if !ok {
		writeError(w, badRequest("Bad Request: message to edit not found"))
		return
	}
	if old.Caption == body.Caption && sameReplyMarkup(old.ReplyMarkup, body.ReplyMarkup) {
		writeError(w, badRequest("Bad Request: message is not modified"))
		return
	}

	edited, _ := s.state.Messages.EditField(*body.MessageID, func(m *tgbotapi.Message) {
		m.Caption = body.Caption
		m.ReplyMarkup = body.ReplyMarkup
	})
	s.state.Responses.recordEndpoint("EditMessageCaption", edited, body)
	writeResult(w, edited)
}

type editMessageReplyMarkupBody struct {
	ChatID          *BodyChatID                    `json:"chat_id,omitempty"`
	MessageID       *int                           `json:"message_id,omitempty"`
	InlineMessageID *string                        `json:"inline_message_id,omitempty"`
	ReplyMarkup     *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

func (s *Server) handleEditMessageReplyMarkup(w http.ResponseWriter, r *http.Request) {
	var body editMessageReplyMarkupBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.MessageID == nil && body.InlineMessageID != nil {
		s.state.Responses.recordEndpoint("EditMessageReplyMarkup", true, body)
		writeResult(w, true)
		return
	}
	if body.MessageID == nil {
		writeError(w, badRequest("No message_id or inline_message_id were provided"))
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	old, ok := s.state.Messages.Get(*body.MessageID)
	if !ok {
		writeError(w, badRequest("Bad Request: message to edit not found"))
		return
	}
	if sameReplyMarkup(old.ReplyMarkup, body.ReplyMarkup) {
		writeError(w, badRequest("Bad Request: message is not modified"))
		return
	}

	edited, _ := s.state.Messages.EditField(*body.MessageID, func(m *tgbotapi.Message) {
		m.ReplyMarkup = body.ReplyMarkup
	})
	s.state.Responses.recordEndpoint("EditMessageReplyMarkup", edited, body)
	writeResult(w, edited)
}

func sameReplyMarkup(a, b *tgbotapi.InlineKeyboardMarkup) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.InlineKeyboard) != len(b.InlineKeyboard) {
		return false
	}
	for i := range a.InlineKeyboard {
		if len(a.InlineKeyboard[i]) != len(b.InlineKeyboard[i]) {
			return false
		}
		for j := range a.InlineKeyboard[i] {
			if a.InlineKeyboard[i][j].Text != b.InlineKeyboard[i][j].Text {
				return false
			}
			if a.InlineKeyboard[i][j].CallbackData == nil || b.InlineKeyboard[i][j].CallbackData == nil {
				if a.InlineKeyboard[i][j].CallbackData != b.InlineKeyboard[i][j].CallbackData {
					return false
				}
				continue
			}
			if *a.InlineKeyboard[i][j].CallbackData != *b.InlineKeyboard[i][j].CallbackData {
				return false
			}
		}
	}
	return true
}
