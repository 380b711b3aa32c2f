package mockserver

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// replyParametersBody mirrors the subset of Telegram's reply_parameters
// object every send endpoint accepts: a reference to the message being
// replied to.
type replyParametersBody struct {
	MessageID int `json:"message_id"`
}

// commonSendFields is embedded into every per-endpoint send-request body so
// the reply/markup/protect-content plumbing is written once, grounded on
// teremock's MessageSetup helper in server/routes/common.rs.
type commonSendFields struct {
	ChatID              BodyChatID                    `json:"chat_id"`
	MessageThreadID      *int                          `json:"message_thread_id,omitempty"`
	ReplyParameters      *replyParametersBody          `json:"reply_parameters,omitempty"`
	ReplyMarkup          *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	ProtectContent       *bool                          `json:"protect_content,omitempty"`
	DisableNotification  *bool                          `json:"disable_notification,omitempty"`
}

// parseCommonScalars builds commonSendFields from a multipart form's scalar
// fields, where every value arrives as plain text rather than typed JSON.
func parseCommonScalars(scalars map[string]string) commonSendFields {
	var common commonSendFields
	if v, ok := scalars["chat_id"]; ok {
		_ = json.Unmarshal([]byte(v), &common.ChatID)
		if common.ChatID.ID() == 0 {
			// chat_id arrived as a bare (unquoted) scalar, not JSON.
			_ = json.Unmarshal([]byte(`"`+v+`"`), &common.ChatID)
		}
	}
	if v, ok := scalars["reply_parameters"]; ok {
		var rp replyParametersBody
		if json.Unmarshal([]byte(v), &rp) == nil {
			common.ReplyParameters = &rp
		}
	}
	if v, ok := scalars["reply_markup"]; ok {
		var markup tgbotapi.InlineKeyboardMarkup
		if json.Unmarshal([]byte(v), &markup) == nil {
			common.ReplyMarkup = &markup
		}
	}
	if v, ok := scalars["protect_content"]; ok {
		protect := v == "true"
		common.ProtectContent = &protect
	}
	return common
}

func decodeJSON(r *http.Request, dst any) *apiError {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return badRequest("Failed to parse request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return badRequest("Failed to parse request body")
	}
	return nil
}

// newOutgoingMessage starts a synthesized message: From is the bot user,
// Chat/date/protect-content/reply-to/reply-markup are filled from the
// request's common fields. Returns a referential-failure 400 if
// reply_parameters points at a message the store doesn't have.
func (s *Server) newOutgoingMessage(common commonSendFields) (tgbotapi.Message, *apiError) {
	chat := tgbotapi.Chat{ID: common.ChatID.ID()}

	var replyTo *tgbotapi.Message
	if common.ReplyParameters != nil {
		unlock := s.state.Lock()
		msg, ok := s.state.Messages.Get(common.ReplyParameters.MessageID)
		unlock()
		if !ok {
			return tgbotapi.Message{}, badRequest("Bad Request: message to reply not found")
		}
		replyTo = &msg
	}

	protect := false
	if common.ProtectContent != nil {
		protect = *common.ProtectContent
	}

	botUser := s.botUser
	return tgbotapi.Message{
		From:                &botUser,
		Chat:                &chat,
		Date:                int(time.Now().Unix()),
		ReplyToMessage:      replyTo,
		ReplyMarkup:         common.ReplyMarkup,
		HasProtectedContent: protect,
	}, nil
}

// store assigns the message a fresh id, registers any carried file, appends
// it to the response log under endpoint, and writes the success envelope.
func (s *Server) store(w http.ResponseWriter, endpoint string, msg tgbotapi.Message, botRequest any) {
	s.storeNamed(w, endpoint, msg, botRequest, "")
}

// storeNamed is store, but registers an uploaded file's registry path as
// fileName rather than falling back to its generated file id, mirroring
// teremock's send_photo.rs which stores path: body.file_name.clone().
func (s *Server) storeNamed(w http.ResponseWriter, endpoint string, msg tgbotapi.Message, botRequest any, fileName string) {
	unlock := s.state.Lock()
	stored := s.state.Messages.Add(msg)
	if meta, path, ok := extractFileMeta(stored); ok {
		if fileName != "" {
			path = fileName
		}
		s.state.RegisterFile(meta, path)
	}
	s.state.Responses.recordSentMessage(stored, endpoint, botRequest)
	unlock()
	writeResult(w, stored)
}

// extractFileMeta pulls the file identity out of whichever media field a
// message carries, mirroring teremock's state.rs extract_file_meta. The
// returned path is the synthetic file_path GetFile later hands back.
func extractFileMeta(msg tgbotapi.Message) (FileMeta, string, bool) {
	meta, ok := func() (FileMeta, bool) {
		switch {
		case msg.Document != nil:
			return FileMeta{ID: msg.Document.FileID, UniqueID: msg.Document.FileUniqueID, Size: msg.Document.FileSize}, true
		case len(msg.Photo) > 0:
			largest := msg.Photo[len(msg.Photo)-1]
			return FileMeta{ID: largest.FileID, UniqueID: largest.FileUniqueID, Size: largest.FileSize}, true
		case msg.Audio != nil:
			return FileMeta{ID: msg.Audio.FileID, UniqueID: msg.Audio.FileUniqueID, Size: int(msg.Audio.FileSize)}, true
		case msg.Video != nil:
			return FileMeta{ID: msg.Video.FileID, UniqueID: msg.Video.FileUniqueID, Size: int(msg.Video.FileSize)}, true
		case msg.Voice != nil:
			return FileMeta{ID: msg.Voice.FileID, UniqueID: msg.Voice.FileUniqueID, Size: int(msg.Voice.FileSize)}, true
		case msg.VideoNote != nil:
			return FileMeta{ID: msg.VideoNote.FileID, UniqueID: msg.VideoNote.FileUniqueID, Size: msg.VideoNote.FileSize}, true
		case msg.Animation != nil:
			return FileMeta{ID: msg.Animation.FileID, UniqueID: msg.Animation.FileUniqueID, Size: int(msg.Animation.FileSize)}, true
		case msg.Sticker != nil:
			return FileMeta{ID: msg.Sticker.FileID, UniqueID: msg.Sticker.FileUniqueID, Size: msg.Sticker.FileSize}, true
		default:
			return FileMeta{}, false
		}
	}()
	if !ok {
		return FileMeta{}, "", false
	}
	return meta, meta.ID, true
}
