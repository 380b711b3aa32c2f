package mockapi

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultMessageID is the id the store's very first inserted message carries.
const DefaultMessageID = 1

// defaultMessageDate is a fixed, reproducible timestamp every builder starts
// from so fixture diffs never depend on wall-clock time.
var defaultMessageDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type chatBuilder interface {
	Build() tgbotapi.Chat
}

// MessageBuilder constructs a tgbotapi.Message of any one kind (text, photo,
// document, ...). Exactly one kind-setter should be called; the last one
// called wins, matching the underlying wire format where a message carries
// at most one content kind.
type MessageBuilder struct {
	id                  int
	from                *tgbotapi.User
	chat                tgbotapi.Chat
	date                time.Time
	text                string
	caption             string
	replyToMessage      *tgbotapi.Message
	replyMarkup         *tgbotapi.InlineKeyboardMarkup
	hasProtectedContent bool

	photo     []tgbotapi.PhotoSize
	document  *tgbotapi.Document
	audio     *tgbotapi.Audio
	video     *tgbotapi.Video
	voice     *tgbotapi.Voice
	videoNote *tgbotapi.VideoNote
	animation *tgbotapi.Animation
	sticker   *tgbotapi.Sticker
	location  *tgbotapi.Location
	venue     *tgbotapi.Venue
	contact   *tgbotapi.Contact
	dice      *tgbotapi.Dice
	poll      *tgbotapi.Poll
}

// NewMessage returns a builder for the default mock text message: id 1, sent
// by NewUser() in NewPrivateChat(), dated 2000-01-01T00:00:00Z, text
// "Text".
func NewMessage() MessageBuilder {
	from := NewUser().Build()
	return MessageBuilder{
		id:   DefaultMessageID,
		from: &from,
		chat: NewPrivateChat().Build(),
		date: defaultMessageDate,
		text: "Text",
	}
}

func (b MessageBuilder) WithID(id IntoMessageID) MessageBuilder {
	b.id = id.IntoMessageID()
	return b
}

func (b MessageBuilder) WithFrom(u UserBuilder) MessageBuilder {
	user := u.Build()
	b.from = &user
	return b
}

func (b MessageBuilder) WithChat(c chatBuilder) MessageBuilder {
	b.chat = c.Build()
	return b
}

func (b MessageBuilder) WithDate(t time.Time) MessageBuilder {
	b.date = t
	return b
}

func (b MessageBuilder) WithText(v string) MessageBuilder {
	b.text = v
	return b
}

func (b MessageBuilder) WithCaption(v string) MessageBuilder {
	b.caption = v
	return b
}

func (b MessageBuilder) WithReplyToMessage(m tgbotapi.Message) MessageBuilder {
	b.replyToMessage = &m
	return b
}

func (b MessageBuilder) WithReplyMarkup(m tgbotapi.InlineKeyboardMarkup) MessageBuilder {
	b.replyMarkup = &m
	return b
}

func (b MessageBuilder) WithHasProtectedContent(v bool) MessageBuilder {
	b.hasProtectedContent = v
	return b
}

// WithPhoto sets the photo kind, clearing text and any other kind.
func (b MessageBuilder) WithPhoto(sizes ...tgbotapi.PhotoSize) MessageBuilder {
	b.clearKinds()
	if len(sizes) == 0 {
		sizes = []tgbotapi.PhotoSize{defaultPhotoSize()}
	}
	b.photo = sizes
	return b
}

// WithDocument sets the document kind.
func (b MessageBuilder) WithDocument(d tgbotapi.Document) MessageBuilder {
	b.clearKinds()
	b.document = &d
	return b
}

// WithAudio sets the audio kind.
func (b MessageBuilder) WithAudio(a tgbotapi.Audio) MessageBuilder {
	b.clearKinds()
	b.audio = &a
	return b
}

// WithVideo sets the video kind.
func (b MessageBuilder) WithVideo(v tgbotapi.Video) MessageBuilder {
	b.clearKinds()
	b.video = &v
	return b
}

// WithVoice sets the voice kind.
func (b MessageBuilder) WithVoice(v tgbotapi.Voice) MessageBuilder {
	b.clearKinds()
	b.voice = &v
	return b
}

// WithVideoNote sets the video-note kind.
func (b MessageBuilder) WithVideoNote(v tgbotapi.VideoNote) MessageBuilder {
	b.clearKinds()
	b.videoNote = &v
	return b
}

// WithAnimation sets the animation kind.
func (b MessageBuilder) WithAnimation(a tgbotapi.Animation) MessageBuilder {
	b.clearKinds()
	b.animation = &a
	return b
}

// WithSticker sets the sticker kind.
func (b MessageBuilder) WithSticker(s tgbotapi.Sticker) MessageBuilder {
	b.clearKinds()
	b.sticker = &s
	return b
}

// WithLocation sets the location kind.
func (b MessageBuilder) WithLocation(lat, lon float64) MessageBuilder {
	b.clearKinds()
	b.location = &tgbotapi.Location{Latitude: lat, Longitude: lon}
	return b
}

// WithVenue sets the venue kind.
func (b MessageBuilder) WithVenue(v tgbotapi.Venue) MessageBuilder {
	b.clearKinds()
	b.venue = &v
	return b
}

// WithContact sets the contact kind.
func (b MessageBuilder) WithContact(c tgbotapi.Contact) MessageBuilder {
	b.clearKinds()
	b.contact = &c
	return b
}

// WithDice sets the dice kind, defaulting the emoji to the classic die if
// unset.
func (b MessageBuilder) WithDice(emoji string, value int) MessageBuilder {
	b.clearKinds()
	if emoji == "" {
		emoji = "🎲"
	}
	b.dice = &tgbotapi.Dice{Emoji: emoji, Value: value}
	return b
}

// WithPoll sets the poll kind.
func (b MessageBuilder) WithPoll(p tgbotapi.Poll) MessageBuilder {
	b.clearKinds()
	b.poll = &p
	return b
}

func (b *MessageBuilder) clearKinds() {
	b.text = ""
	b.photo = nil
	b.document = nil
	b.audio = nil
	b.video = nil
	b.voice = nil
	b.videoNote = nil
	b.animation = nil
	b.sticker = nil
	b.location = nil
	b.venue = nil
	b.contact = nil
	b.dice = nil
	b.poll = nil
}

func defaultPhotoSize() tgbotapi.PhotoSize {
	return tgbotapi.PhotoSize{FileID: "FAKE_FILE_ID", FileUniqueID: "FAKE_ID", Width: 100, Height: 100}
}

// IntoMessageID lets a MessageBuilder be used directly wherever a reply-to
// or edit-target message id is expected.
func (b MessageBuilder) IntoMessageID() int { return b.id }

func (b MessageBuilder) IntoChatID() int64 { return b.chat.ID }

// Build returns the underlying tgbotapi.Message.
func (b MessageBuilder) Build() tgbotapi.Message {
	msg := tgbotapi.Message{
		MessageID:           b.id,
		From:                b.from,
		Chat:                &b.chat,
		Date:                int(b.date.Unix()),
		Text:                b.text,
		Caption:             b.caption,
		ReplyToMessage:      b.replyToMessage,
		ReplyMarkup:         b.replyMarkup,
		HasProtectedContent: b.hasProtectedContent,
	}
	if b.photo != nil {
		msg.Photo = b.photo
	}
	msg.Document = b.document
	msg.Audio = b.audio
	msg.Video = b.video
	msg.Voice = b.voice
	msg.VideoNote = b.videoNote
	msg.Animation = b.animation
	msg.Sticker = b.sticker
	msg.Location = b.location
	msg.Venue = b.venue
	msg.Contact = b.contact
	msg.Dice = b.dice
	msg.Poll = b.poll
	return msg
}

// IntoUpdate stamps this message as a top-level Message update.
func (b MessageBuilder) IntoUpdate(next *int32) []tgbotapi.Update {
	msg := b.Build()
	return []tgbotapi.Update{{UpdateID: nextUpdateID(next), Message: &msg}}
}

// EditedMessageBuilder wraps a MessageBuilder so it stamps as an
// EditedMessage update instead of a fresh Message update — the distinction
// the message store needs to decide insert-vs-mutate on dispatch.
type EditedMessageBuilder struct {
	MessageBuilder
}

// AsEdited reinterprets a MessageBuilder's result as an edit to an existing
// message rather than a new one.
func (b MessageBuilder) AsEdited() EditedMessageBuilder {
	return EditedMessageBuilder{MessageBuilder: b}
}

// IntoUpdate stamps this message as a top-level EditedMessage update.
func (b EditedMessageBuilder) IntoUpdate(next *int32) []tgbotapi.Update {
	msg := b.Build()
	return []tgbotapi.Update{{UpdateID: nextUpdateID(next), EditedMessage: &msg}}
}
