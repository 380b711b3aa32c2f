package mockapi

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// DefaultChatID is the fixed id every public (group/supergroup/channel) chat
// builder starts from.
const DefaultChatID int64 = -12345678

// GroupChatBuilder builds a tgbotapi.Chat of type "group".
type GroupChatBuilder struct {
	id    int64
	title string
}

// NewGroupChat returns a builder defaulted to id -12345678, no title.
func NewGroupChat() GroupChatBuilder {
	return GroupChatBuilder{id: DefaultChatID}
}

func (b GroupChatBuilder) WithID(id IntoChatID) GroupChatBuilder {
	b.id = id.IntoChatID()
	return b
}

func (b GroupChatBuilder) WithTitle(v string) GroupChatBuilder {
	b.title = v
	return b
}

func (b GroupChatBuilder) IntoChatID() int64 { return b.id }

func (b GroupChatBuilder) Build() tgbotapi.Chat {
	return tgbotapi.Chat{ID: b.id, Type: "group", Title: b.title}
}

// SupergroupChatBuilder builds a tgbotapi.Chat of type "supergroup".
type SupergroupChatBuilder struct {
	id       int64
	title    string
	userName string
	isForum  bool
}

// NewSupergroupChat returns a builder defaulted to id -12345678, is_forum
// false, no username.
func NewSupergroupChat() SupergroupChatBuilder {
	return SupergroupChatBuilder{id: DefaultChatID}
}

func (b SupergroupChatBuilder) WithID(id IntoChatID) SupergroupChatBuilder {
	b.id = id.IntoChatID()
	return b
}

func (b SupergroupChatBuilder) WithTitle(v string) SupergroupChatBuilder {
	b.title = v
	return b
}

func (b SupergroupChatBuilder) WithUserName(v string) SupergroupChatBuilder {
	b.userName = v
	return b
}

func (b SupergroupChatBuilder) WithIsForum(v bool) SupergroupChatBuilder {
	b.isForum = v
	return b
}

func (b SupergroupChatBuilder) IntoChatID() int64 { return b.id }

func (b SupergroupChatBuilder) Build() tgbotapi.Chat {
	return tgbotapi.Chat{ID: b.id, Type: "supergroup", Title: b.title, UserName: b.userName, IsForum: b.isForum}
}

// ChannelChatBuilder builds a tgbotapi.Chat of type "channel".
type ChannelChatBuilder struct {
	id       int64
	title    string
	userName string
}

// NewChannelChat returns a builder defaulted to id -12345678, no username.
func NewChannelChat() ChannelChatBuilder {
	return ChannelChatBuilder{id: DefaultChatID}
}

func (b ChannelChatBuilder) WithID(id IntoChatID) ChannelChatBuilder {
	b.id = id.IntoChatID()
	return b
}

func (b ChannelChatBuilder) WithTitle(v string) ChannelChatBuilder {
	b.title = v
	return b
}

func (b ChannelChatBuilder) WithUserName(v string) ChannelChatBuilder {
	b.userName = v
	return b
}

func (b ChannelChatBuilder) IntoChatID() int64 { return b.id }

func (b ChannelChatBuilder) Build() tgbotapi.Chat {
	return tgbotapi.Chat{ID: b.id, Type: "channel", Title: b.title, UserName: b.userName}
}

// PrivateChatBuilder builds a tgbotapi.Chat of type "private". Its id
// defaults to the default mock user's id, not DefaultChatID — a private
// chat's id equals the id of the user on the other end of it.
type PrivateChatBuilder struct {
	id        int64
	userName  string
	firstName string
	lastName  string
}

// NewPrivateChat returns a builder defaulted to id 1234 (NewUser's id),
// first name "First".
func NewPrivateChat() PrivateChatBuilder {
	return PrivateChatBuilder{id: defaultUserID, firstName: "First"}
}

func (b PrivateChatBuilder) WithID(id IntoChatID) PrivateChatBuilder {
	b.id = id.IntoChatID()
	return b
}

func (b PrivateChatBuilder) WithUserName(v string) PrivateChatBuilder {
	b.userName = v
	return b
}

func (b PrivateChatBuilder) WithFirstName(v string) PrivateChatBuilder {
	b.firstName = v
	return b
}

func (b PrivateChatBuilder) WithLastName(v string) PrivateChatBuilder {
	b.lastName = v
	return b
}

func (b PrivateChatBuilder) IntoChatID() int64 { return b.id }

func (b PrivateChatBuilder) Build() tgbotapi.Chat {
	return tgbotapi.Chat{ID: b.id, Type: "private", UserName: b.userName, FirstName: b.firstName, LastName: b.lastName}
}
