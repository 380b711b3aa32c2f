package mockserver

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// resolvedUpload carries what every multipart media handler needs after
// extracting its file field: either the raw uploaded bytes (fresh file id
// generated) or a passthrough file id string the caller supplied directly.
type resolvedUpload struct {
	fileID   string
	uniqueID string
	size     int
	fileName string
}

func (s *Server) resolveMediaField(w http.ResponseWriter, r *http.Request, field string) (commonSendFields, resolvedUpload, bool) {
	scalars, attachments, err := extractMultipart(r)
	if err != nil {
		writeError(w, badRequest("Failed to parse request body"))
		return commonSendFields{}, resolvedUpload{}, false
	}
	common := parseCommonScalars(scalars)

	data, fileName, passthroughID, ok := resolveUpload(scalars, attachments, field)
	if !ok {
		writeError(w, badRequest("Failed to parse request body"))
		return commonSendFields{}, resolvedUpload{}, false
	}
	if passthroughID != "" {
		return common, resolvedUpload{fileID: passthroughID, uniqueID: generateFileUniqueID(), fileName: fileName}, true
	}
	return common, resolvedUpload{
		fileID:   generateFileID(),
		uniqueID: generateFileUniqueID(),
		size:     len(data),
		fileName: fileName,
	}, true
}

func (s *Server) handleSendPhoto(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "photo")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Photo = []tgbotapi.PhotoSize{{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Width: defaultDimension, Height: defaultDimension, FileSize: up.size,
	}}
	s.storeNamed(w, "SendPhoto", msg, common, up.fileName)
}

func (s *Server) handleSendVideo(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "video")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Video = &tgbotapi.Video{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Width: defaultDimension, Height: defaultDimension,
		Duration: defaultDurationSec, MimeType: defaultVideoMIME, FileSize: int64(up.size),
	}
	s.storeNamed(w, "SendVideo", msg, common, up.fileName)
}

func (s *Server) handleSendAudio(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "audio")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Audio = &tgbotapi.Audio{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Duration: 0, MimeType: defaultAudioMIME, FileSize: int64(up.size),
	}
	s.storeNamed(w, "SendAudio", msg, common, up.fileName)
}

func (s *Server) handleSendVoice(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "voice")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Voice = &tgbotapi.Voice{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Duration: 0, MimeType: defaultAudioMIME, FileSize: int64(up.size),
	}
	s.storeNamed(w, "SendVoice", msg, common, up.fileName)
}

func (s *Server) handleSendVideoNote(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "video_note")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.VideoNote = &tgbotapi.VideoNote{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Length: defaultDimension, Duration: defaultDurationSec, FileSize: up.size,
	}
	s.storeNamed(w, "SendVideoNote", msg, common, up.fileName)
}

func (s *Server) handleSendAnimation(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "animation")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Animation = &tgbotapi.Animation{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Width: defaultDimension, Height: defaultDimension,
		Duration: defaultDurationSec, MimeType: defaultAnimMIME, FileSize: int64(up.size),
	}
	s.storeNamed(w, "SendAnimation", msg, common, up.fileName)
}

func (s *Server) handleSendDocument(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "document")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Document = &tgbotapi.Document{
		FileID: up.fileID, FileUniqueID: up.uniqueID, FileName: up.fileName,
		MimeType: guessMIMEFromFilename(up.fileName), FileSize: up.size,
	}
	s.storeNamed(w, "SendDocument", msg, common, up.fileName)
}

func (s *Server) handleSendSticker(w http.ResponseWriter, r *http.Request) {
	common, up, ok := s.resolveMediaField(w, r, "sticker")
	if !ok {
		return
	}
	msg, err := s.newOutgoingMessage(common)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Sticker = &tgbotapi.Sticker{
		FileID: up.fileID, FileUniqueID: up.uniqueID, Width: defaultDimension, Height: defaultDimension, FileSize: up.size,
	}
	s.storeNamed(w, "SendSticker", msg, common, up.fileName)
}
