// Package validate adapts the teacher's JSON Schema request validator
// (internal/engine/structured.go upstream) to a much narrower job: reject a
// malformed body before it ever reaches a handler, rather than validate a
// language model's structured output.
package validate

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemas holds one minimal JSON Schema per JSON-bodied endpoint, keyed the
// same way Server's endpoint map is (lowercased method name). Endpoints that
// arrive as multipart/form-data (the media-upload sends) are validated by
// their own multipart field parsing instead and carry no entry here.
// Endpoints that take no meaningful body (GetMe, GetUpdates,
// GetWebhookInfo) are likewise absent — an absent entry is permissive, not
// an oversight.
var schemas = map[string]string{
	"sendmessage": `{
		"type": "object",
		"required": ["chat_id", "text"],
		"properties": {"text": {"type": "string", "minLength": 1}}
	}`,
	"sendlocation": `{
		"type": "object",
		"required": ["chat_id", "latitude", "longitude"]
	}`,
	"sendvenue": `{
		"type": "object",
		"required": ["chat_id", "latitude", "longitude", "title", "address"]
	}`,
	"sendcontact": `{
		"type": "object",
		"required": ["chat_id", "phone_number", "first_name"]
	}`,
	"senddice": `{
		"type": "object",
		"required": ["chat_id"]
	}`,
	"sendpoll": `{
		"type": "object",
		"required": ["chat_id", "question", "options"],
		"properties": {"options": {"type": "array", "minItems": 2}}
	}`,
	"sendchataction": `{
		"type": "object",
		"required": ["chat_id", "action"]
	}`,
	"editmessagetext": `{
		"type": "object",
		"required": ["text"],
		"properties": {"text": {"type": "string", "minLength": 1}}
	}`,
	"editmessagecaption": `{
		"type": "object"
	}`,
	"editmessagereplymarkup": `{
		"type": "object"
	}`,
	"deletemessage": `{
		"type": "object",
		"required": ["chat_id", "message_id"]
	}`,
	"deletemessages": `{
		"type": "object",
		"required": ["chat_id", "message_ids"],
		"properties": {"message_ids": {"type": "array", "minItems": 1}}
	}`,
	"forwardmessage": `{
		"type": "object",
		"required": ["chat_id", "from_chat_id", "message_id"]
	}`,
	"copymessage": `{
		"type": "object",
		"required": ["chat_id", "from_chat_id", "message_id"]
	}`,
	"answercallbackquery": `{
		"type": "object",
		"required": ["callback_query_id"]
	}`,
	"pinchatmessage": `{
		"type": "object",
		"required": ["chat_id", "message_id"]
	}`,
	"unpinchatmessage": `{
		"type": "object",
		"required": ["chat_id"]
	}`,
	"unpinallchatmessages": `{
		"type": "object",
		"required": ["chat_id"]
	}`,
	"banchatmember": `{
		"type": "object",
		"required": ["chat_id", "user_id"]
	}`,
	"unbanchatmember": `{
		"type": "object",
		"required": ["chat_id", "user_id"]
	}`,
	"restrictchatmember": `{
		"type": "object",
		"required": ["chat_id", "user_id", "permissions"]
	}`,
	"setmessagereaction": `{
		"type": "object",
		"required": ["chat_id", "message_id"]
	}`,
	"setmycommands": `{
		"type": "object",
		"required": ["commands"],
		"properties": {"commands": {"type": "array"}}
	}`,
	"getfile": `{
		"type": "object",
		"required": ["file_id"]
	}`,
}

// Validator holds one compiled schema per entry in schemas.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// New compiles every registered endpoint schema once at startup so request
// handling never pays compilation cost.
func New() (*Validator, error) {
	compiled := make(map[string]*jsonschema.Schema, len(schemas))
	for endpoint, raw := range schemas {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("unmarshal schema for %s: %w", endpoint, err)
		}
		c := jsonschema.NewCompiler()
		resource := endpoint + ".json"
		if err := c.AddResource(resource, doc); err != nil {
			return nil, fmt.Errorf("add schema resource for %s: %w", endpoint, err)
		}
		schema, err := c.Compile(resource)
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", endpoint, err)
		}
		compiled[endpoint] = schema
	}
	return &Validator{compiled: compiled}, nil
}

// Error reports a schema violation. Its message is deliberately generic —
// mirroring real Telegram's own "Bad Request" responses — rather than
// echoing the jsonschema library's verbose validation trace.
type Error struct {
	Endpoint string
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("request body for %s failed schema validation: %s", e.Endpoint, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// Validate checks body against endpoint's registered schema, if any. An
// endpoint with no registered schema always passes — it is either
// multipart-bodied or takes no meaningful body.
func (v *Validator) Validate(endpoint string, body []byte) error {
	schema, ok := v.compiled[endpoint]
	if !ok {
		return nil
	}
	if len(body) == 0 {
		return &Error{Endpoint: endpoint, cause: fmt.Errorf("empty body")}
	}
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(body)))
	if err != nil {
		return &Error{Endpoint: endpoint, cause: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return &Error{Endpoint: endpoint, cause: err}
	}
	return nil
}
