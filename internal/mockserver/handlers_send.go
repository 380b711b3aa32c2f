package mockserver

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sendMessageBody struct {
	commonSendFields
	Text string `json:"text"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var body sendMessageBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Text = body.Text
	s.store(w, "SendMessage", msg, body)
}

func (s *Server) handleSendLocation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Location = &tgbotapi.Location{Latitude: body.Latitude, Longitude: body.Longitude}
	s.store(w, "SendLocation", msg, body)
}

func (s *Server) handleSendVenue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Title     string  `json:"title"`
		Address   string  `json:"address"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Venue = &tgbotapi.Venue{
		Location: tgbotapi.Location{Latitude: body.Latitude, Longitude: body.Longitude},
		Title:    body.Title,
		Address:  body.Address,
	}
	s.store(w, "SendVenue", msg, body)
}

func (s *Server) handleSendContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		PhoneNumber string `json:"phone_number"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Contact = &tgbotapi.Contact{PhoneNumber: body.PhoneNumber, FirstName: body.FirstName, LastName: body.LastName}
	s.store(w, "SendContact", msg, body)
}

func (s *Server) handleSendDice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Emoji string `json:"emoji"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	emoji := body.Emoji
	if emoji == "" {
		emoji = "🎲"
	}
	msg.Dice = &tgbotapi.Dice{Emoji: emoji, Value: 4}
	s.store(w, "SendDice", msg, body)
}

func (s *Server) handleSendPoll(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Question              string   `json:"question"`
		Options               []string `json:"options"`
		IsAnonymous            *bool    `json:"is_anonymous,omitempty"`
		Type                   string   `json:"type,omitempty"`
		AllowsMultipleAnswers  bool     `json:"allows_multiple_answers,omitempty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	options := make([]tgbotapi.PollOption, len(body.Options))
	for i, text := range body.Options {
		options[i] = tgbotapi.PollOption{Text: text}
	}
	pollType := body.Type
	if pollType == "" {
		pollType = "regular"
	}
	anonymous := true
	if body.IsAnonymous != nil {
		anonymous = *body.IsAnonymous
	}
	msg.Poll = &tgbotapi.Poll{
		ID:                    randomAlphanumeric(16),
		Question:              body.Question,
		Options:               options,
		IsAnonymous:           anonymous,
		Type:                  pollType,
		AllowsMultipleAnswers: body.AllowsMultipleAnswers,
	}
	s.store(w, "SendPoll", msg, body)
}

func (s *Server) handleSendChatAction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChatID BodyChatID `json:"chat_id"`
		Action string     `json:"action"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("SendChatAction", true, body)
	unlock()
	writeResult(w, true)
}

func (s *Server) handleSendInvoice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Title       string `json:"title"`
		Description string `json:"description"`
		Payload     string `json:"payload"`
		Currency    string `json:"currency"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.newOutgoingMessage(body.commonSendFields)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Invoice = &tgbotapi.Invoice{Title: body.Title, Description: body.Description, StartParameter: body.Payload, Currency: body.Currency}
	s.store(w, "SendInvoice", msg, body)
}

// mediaGroupItem is one element of SendMediaGroup's media array: the
// Telegram wire format reuses the same shape for photo and video members,
// distinguished by the type field.
type mediaGroupItem struct {
	Type    string `json:"type"`
	Media   string `json:"media"`
	Caption string `json:"caption,omitempty"`
}

func (s *Server) handleSendMediaGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		commonSendFields
		Media []mediaGroupItem `json:"media"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	sent := make([]tgbotapi.Message, 0, len(body.Media))
	for _, item := range body.Media {
		msg, err := s.newOutgoingMessage(body.commonSendFields)
		if err != nil {
			writeError(w, err)
			return
		}
		msg.Caption = item.Caption
		fileID := generateFileID()
		switch item.Type {
		case "video":
			msg.Video = &tgbotapi.Video{FileID: fileID, FileUniqueID: generateFileUniqueID(), Width: defaultDimension, Height: defaultDimension, Duration: defaultDurationSec, MimeType: defaultVideoMIME}
		default:
			msg.Photo = []tgbotapi.PhotoSize{{FileID: fileID, FileUniqueID: generateFileUniqueID(), Width: defaultDimension, Height: defaultDimension}}
		}

		unlock := s.state.Lock()
		stored := s.state.Messages.Add(msg)
		if meta, path, ok := extractFileMeta(stored); ok {
			s.state.RegisterFile(meta, path)
		}
		s.state.Responses.SentMessages = append(s.state.Responses.SentMessages, stored)
		unlock()
		sent = append(sent, stored)
	}

	unlock := s.state.Lock()
	s.state.Responses.recordEndpoint("SendMediaGroup", sent, body)
	unlock()
	writeResult(w, sent)
}
