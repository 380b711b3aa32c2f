package mockserver

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type deleteMessageBody struct {
	ChatID    BodyChatID `json:"chat_id"`
	MessageID int        `json:"message_id"`
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	var body deleteMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	deleted, ok := s.state.Messages.Delete(body.MessageID)
	if ok {
		s.state.Responses.recordEndpoint("DeleteMessage", deleted, body)
	}
	unlock()

	if !ok {
		writeError(w, badRequest("Bad Request: message to delete not found"))
		return
	}
	writeResult(w, true)
}

type deleteMessagesBody struct {
	ChatID     BodyChatID `json:"chat_id"`
	MessageIDs []int      `json:"message_ids"`
}

func (s *Server) handleDeleteMessages(w http.ResponseWriter, r *http.Request) {
	var body deleteMessagesBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	for _, id := range body.MessageIDs {
		s.state.Messages.Delete(id)
	}
	s.state.Responses.recordEndpoint("DeleteMessages", body.MessageIDs, body)
	unlock()
	writeResult(w, true)
}

type forwardMessageBody struct {
	ChatID         BodyChatID `json:"chat_id"`
	FromChatID     BodyChatID `json:"from_chat_id"`
	MessageID      int        `json:"message_id"`
	ProtectContent *bool      `json:"protect_content,omitempty"`
}

func (s *Server) handleForwardMessage(w http.ResponseWriter, r *http.Request) {
	var body forwardMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	original, ok := s.state.Messages.Get(body.MessageID)
	if !ok {
		writeError(w, badRequest("Bad Request: message to forward not found"))
		return
	}
	if original.HasProtectedContent {
		writeError(w, badRequest("Bad Request: Message can't be forwarded, it has protected content"))
		return
	}

	forwarded := original
	forwarded.ForwardOrigin = resolveForwardOrigin(original)
	chat := tgbotapi.Chat{ID: body.ChatID.ID()}
	forwarded.Chat = &chat
	botUser := s.botUser
	forwarded.From = &botUser
	if body.ProtectContent != nil {
		forwarded.HasProtectedContent = *body.ProtectContent
	}

	stored := s.state.Messages.Add(forwarded)
	s.state.Responses.recordSentMessage(stored, "ForwardMessage", body)
	writeResult(w, stored)
}

// resolveForwardOrigin mirrors teremock's forward_message.rs origin match:
// a channel post forwards as Channel, a message sent on behalf of a chat
// (e.g. an anonymous admin) forwards as Chat, an ordinary user message
// forwards as User, and the unreachable-in-practice remainder forwards as
// HiddenUser.
func resolveForwardOrigin(original tgbotapi.Message) *tgbotapi.MessageOrigin {
	switch {
	case original.Chat != nil && original.Chat.IsChannel():
		return &tgbotapi.MessageOrigin{
			Type:      "channel",
			Date:      original.Date,
			Chat:      original.Chat,
			MessageID: original.MessageID,
		}
	case original.SenderChat != nil:
		return &tgbotapi.MessageOrigin{
			Type:       "chat",
			Date:       original.Date,
			SenderChat: original.SenderChat,
		}
	case original.From != nil:
		return &tgbotapi.MessageOrigin{
			Type:       "user",
			Date:       original.Date,
			SenderUser: original.From,
		}
	default:
		return &tgbotapi.MessageOrigin{
			Type:           "hidden_user",
			Date:           original.Date,
			SenderUserName: "Unknown user",
		}
	}
}

type copyMessageBody struct {
	ChatID         BodyChatID `json:"chat_id"`
	FromChatID     BodyChatID `json:"from_chat_id"`
	MessageID      int        `json:"message_id"`
	Caption        *string    `json:"caption,omitempty"`
	ProtectContent *bool      `json:"protect_content,omitempty"`
}

// handleCopyMessage differs from forward in that the copy carries no
// forward-origin link back to the source message — it looks exactly like a
// message the bot composed fresh.
func (s *Server) handleCopyMessage(w http.ResponseWriter, r *http.Request) {
	var body copyMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	defer unlock()

	original, ok := s.state.Messages.Get(body.MessageID)
	if !ok {
		writeError(w, badRequest("Bad Request: message to copy not found"))
		return
	}

	copied := original
	copied.ForwardOrigin = nil
	chat := tgbotapi.Chat{ID: body.ChatID.ID()}
	copied.Chat = &chat
	botUser := s.botUser
	copied.From = &botUser
	if body.Caption != nil {
		copied.Caption = *body.Caption
	}
	if body.ProtectContent != nil {
		copied.HasProtectedContent = *body.ProtectContent
	}

	stored := s.state.Messages.Add(copied)
	s.state.Responses.recordSentMessage(stored, "CopyMessage", body)
	writeResult(w, map[string]any{"message_id": stored.MessageID})
}
