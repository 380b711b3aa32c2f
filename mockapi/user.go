package mockapi

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// UserID default for every builder that needs a "the" user: the bot's own
// operator in tests, distinct from the bot user itself.
const defaultUserID = 1234

// UserBuilder constructs a tgbotapi.User with a fixed default identity.
type UserBuilder struct {
	id           int64
	isBot        bool
	firstName    string
	lastName     string
	userName     string
	languageCode string
}

// NewUser returns a builder for the default mock user: id 1234, first name
// "First", not a bot.
func NewUser() UserBuilder {
	return UserBuilder{
		id:        defaultUserID,
		isBot:     false,
		firstName: "First",
	}
}

// NewBotUser returns a builder for a bot-flagged user, used as the MockBot's
// own identity (GetMe) and as the From of synthesized messages.
func NewBotUser() UserBuilder {
	return UserBuilder{
		id:        defaultUserID,
		isBot:     true,
		firstName: "First",
		userName:  "mock_bot",
	}
}

func (b UserBuilder) WithID(id IntoUserID) UserBuilder {
	b.id = id.IntoUserID()
	return b
}

func (b UserBuilder) WithIsBot(v bool) UserBuilder {
	b.isBot = v
	return b
}

func (b UserBuilder) WithFirstName(v string) UserBuilder {
	b.firstName = v
	return b
}

func (b UserBuilder) WithLastName(v string) UserBuilder {
	b.lastName = v
	return b
}

func (b UserBuilder) WithUserName(v string) UserBuilder {
	b.userName = v
	return b
}

func (b UserBuilder) WithLanguageCode(v string) UserBuilder {
	b.languageCode = v
	return b
}

func (b UserBuilder) IntoChatID() int64 { return b.id }
func (b UserBuilder) IntoUserID() int64 { return b.id }

// Build returns the underlying tgbotapi.User.
func (b UserBuilder) Build() tgbotapi.User {
	return tgbotapi.User{
		ID:           b.id,
		IsBot:        b.isBot,
		FirstName:    b.firstName,
		LastName:     b.lastName,
		UserName:     b.userName,
		LanguageCode: b.languageCode,
	}
}
