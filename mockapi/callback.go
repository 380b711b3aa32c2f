package mockapi

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// CallbackQueryBuilder constructs a tgbotapi.CallbackQuery.
type CallbackQueryBuilder struct {
	id              string
	from            tgbotapi.User
	message         *tgbotapi.Message
	inlineMessageID string
	chatInstance    string
	data            string
	gameShortName   string
}

// NewCallbackQuery returns a builder for the default mock callback: id
// "id", from NewUser(), attached to NewMessage(), empty data.
func NewCallbackQuery() CallbackQueryBuilder {
	msg := NewMessage().Build()
	return CallbackQueryBuilder{
		id:           "id",
		from:         NewUser().Build(),
		message:      &msg,
		chatInstance: "chat_instance",
	}
}

func (b CallbackQueryBuilder) WithID(v string) CallbackQueryBuilder {
	b.id = v
	return b
}

func (b CallbackQueryBuilder) WithFrom(u UserBuilder) CallbackQueryBuilder {
	b.from = u.Build()
	return b
}

func (b CallbackQueryBuilder) WithMessage(m MessageBuilder) CallbackQueryBuilder {
	msg := m.Build()
	b.message = &msg
	return b
}

func (b CallbackQueryBuilder) WithInlineMessageID(v string) CallbackQueryBuilder {
	b.inlineMessageID = v
	return b
}

func (b CallbackQueryBuilder) WithChatInstance(v string) CallbackQueryBuilder {
	b.chatInstance = v
	return b
}

func (b CallbackQueryBuilder) WithData(v string) CallbackQueryBuilder {
	b.data = v
	return b
}

func (b CallbackQueryBuilder) WithGameShortName(v string) CallbackQueryBuilder {
	b.gameShortName = v
	return b
}

// Build returns the underlying tgbotapi.CallbackQuery.
func (b CallbackQueryBuilder) Build() tgbotapi.CallbackQuery {
	return tgbotapi.CallbackQuery{
		ID:              b.id,
		From:            &b.from,
		Message:         b.message,
		InlineMessageID: b.inlineMessageID,
		ChatInstance:    b.chatInstance,
		Data:            b.data,
		GameShortName:   b.gameShortName,
	}
}

// IntoUpdate stamps this callback query as a top-level CallbackQuery update.
func (b CallbackQueryBuilder) IntoUpdate(next *int32) []tgbotapi.Update {
	cq := b.Build()
	return []tgbotapi.Update{{UpdateID: nextUpdateID(next), CallbackQuery: &cq}}
}
