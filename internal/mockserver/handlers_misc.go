package mockserver

import (
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.botUser)
}

// handleGetUpdates always answers with an empty batch: a MockBot drives its
// handler tree by direct dispatch rather than long polling, so there is
// never a pending-update queue for a real bot to pull from.
func (s *Server) handleGetUpdates(w http.ResponseWriter, r *http.Request) {
	writeResult(w, []tgbotapi.Update{})
}

func (s *Server) handleGetWebhookInfo(w http.ResponseWriter, r *http.Request) {
	writeResult(w, tgbotapi.WebhookInfo{URL: ""})
}

type getFileBody struct {
	FileID string `json:"file_id"`
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	var body getFileBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	unlock := s.state.Lock()
	stored, ok := s.state.FindFile(body.FileID)
	unlock()
	if !ok {
		writeError(w, badRequest("Bad Request: file not found"))
		return
	}

	writeResult(w, tgbotapi.File{
		FileID:       stored.Meta.ID,
		FileUniqueID: stored.Meta.UniqueID,
		FileSize:     int64(stored.Meta.Size),
		FilePath:     stored.Path,
	})
}

// handleGetFileContent serves the static GET /file/bot{token}/{file_name}
// route: it returns synthetic bytes sized to the registered file's recorded
// size, standing in for the real file download a bot would perform.
func (s *Server) handleGetFileContent(w http.ResponseWriter, r *http.Request, fileName string) {
	unlock := s.state.Lock()
	var found *StoredFile
	for i := range s.state.Files {
		if s.state.Files[i].Path == fileName || s.state.Files[i].Meta.ID == fileName {
			f := s.state.Files[i]
			found = &f
			break
		}
	}
	unlock()
	if found == nil {
		writeError(w, badRequest("Bad Request: file not found"))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(found.Meta.Size))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(make([]byte, found.Meta.Size))
}
