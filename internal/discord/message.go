package discord

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Message represents the outbound message object: an interaction response or a
// webhook execution payload. Keys without a typed field (attachments, poll,
// message_reference, ...) are kept in Extra and written back after the typed fields.
type Message struct {
	TTS             bool                   `json:"tts,omitempty"`              // Whether this is a text-to-speech message
	Content         string                 `json:"content,omitempty"`          // Message content (text)
	Username        string                 `json:"username,omitempty"`         // Override the default webhook username
	AvatarURL       string                 `json:"avatar_url,omitempty"`       // Override the default webhook avatar
	Embeds          []EmbedObject          `json:"embeds,omitempty"`           // Array of embed objects
	AllowedMentions *AllowedMentions       `json:"allowed_mentions,omitempty"` // Allowed mentions for the message
	Components      []discordgo.ActionsRow `json:"components,omitempty"`       // Action rows
	Flags           int                    `json:"flags,omitempty"`            // Message flags bitfield

	Extra map[string]json.RawMessage `json:"-"`
}

// messageFields has the layout of Message without its JSON methods.
type messageFields Message

var messageKeys = typedMessageKeys()

func typedMessageKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	t := reflect.TypeOf(messageFields{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
}

// MarshalJSON writes the typed fields followed by the Extra keys in sorted order.
// Extra keys that name a typed field are ignored.
func (m Message) MarshalJSON() ([]byte, error) {
	data, err := MarshalJSON(messageFields(m))
	if err != nil || len(m.Extra) == 0 {
		return data, err
	}

	keys := make([]string, 0, len(m.Extra))
	for key := range m.Extra {
		if _, typed := messageKeys[key]; !typed {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	buf := bytes.NewBuffer(data[:len(data)-1])
	for i, key := range keys {
		if i > 0 || len(data) > 2 {
			buf.WriteByte(',')
		}
		name, err := MarshalJSON(key)
		if err != nil {
			return nil, err
		}
		value := m.Extra[key]
		if len(value) == 0 {
			value = json.RawMessage("null")
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the typed fields and keeps every other key in Extra.
func (m *Message) UnmarshalJSON(data []byte) error {
	var fields messageFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range messageKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		fields.Extra = raw
	}
	*m = Message(fields)
	return nil
}

// AllowedMentions specifies how mentions should be handled in a message.
type AllowedMentions struct {
	Parse       []string `json:"parse,omitempty"`        // Types of mentions to parse (e.g., "roles", "users", "everyone")
	Roles       []string `json:"roles,omitempty"`        // Array of role_ids to mention (max 100)
	Users       []string `json:"users,omitempty"`        // Array of user_ids to mention (max 100)
	RepliedUser bool     `json:"replied_user,omitempty"` // For replies, whether to mention the author of the message being replied to
}

// MessageSource is anything that renders to a Message.
type MessageSource interface {
	RenderMessage() Message
}

// RenderMessage makes a plain Message usable wherever a MessageSource is accepted.
func (m Message) RenderMessage() Message {
	return m
}

// MarshalJSON encodes v the way Discord clients do: no HTML escaping and no trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
