package mockserver

import (
	"encoding/json"
	"strconv"
)

// DefaultUsernameChatID is the fixed numeric chat id a username-addressed
// chat ("@some_channel") resolves to. Username resolution is an explicit
// stub (see Non-goals): every username collapses to this one id rather than
// maintaining a username registry.
const DefaultUsernameChatID int64 = 123456789

// BodyChatID unmarshals a Telegram chat_id field, which the wire format
// allows to be either a JSON number or an "@username" string.
type BodyChatID struct {
	id int64
}

// ID returns the resolved numeric chat id.
func (c BodyChatID) ID() int64 { return c.id }

func (c *BodyChatID) UnmarshalJSON(data []byte) error {
	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		c.id = asNumber
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	if numeric, err := strconv.ParseInt(asString, 10, 64); err == nil {
		c.id = numeric
		return nil
	}
	c.id = DefaultUsernameChatID
	return nil
}
