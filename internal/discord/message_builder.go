package discord

import (
	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/bwmarrin/discordgo"
)

// EmbedSource yields embed objects for MessageBuilder.AddEmbed.
type EmbedSource interface {
	EmbedObjects() []EmbedObject
}

// EmbedList is a list of embed builders flattened by AddEmbed
type EmbedList []*Embed

// EmbedObjects implements EmbedSource
func (l EmbedList) EmbedObjects() []EmbedObject {
	out := make([]EmbedObject, 0, len(l))
	for _, e := range l {
		if e != nil {
			out = append(out, e.Render())
		}
	}
	return out
}

// EmbedObjectList is a list of plain embed objects flattened by AddEmbed
type EmbedObjectList []EmbedObject

// EmbedObjects implements EmbedSource
func (l EmbedObjectList) EmbedObjects() []EmbedObject {
	out := make([]EmbedObject, 0, len(l))
	for _, o := range l {
		out = append(out, o.DeepCopy())
	}
	return out
}

// Rendered is the output of MessageBuilder.Render. Form is set only when the
// message carries attachments; Message is always set.
type Rendered struct {
	Message Message
	Form    *FormData
}

// IsMultipart reports whether the message must be sent as multipart/form-data
func (r *Rendered) IsMultipart() bool {
	return r.Form != nil
}

// MessageBuilder composes content, embeds, components and files into one outbound message.
type MessageBuilder struct {
	message Message
	files   *FileBuilder
}

// NewMessageBuilder creates an empty message builder
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// NewMessageBuilderFrom creates a message builder starting from msg
func NewMessageBuilderFrom(msg Message) *MessageBuilder {
	return &MessageBuilder{message: msg}
}

// SetMessage replaces the whole message with the rendered source
func (b *MessageBuilder) SetMessage(source MessageSource) *MessageBuilder {
	if source == nil {
		b.message = Message{}
		return b
	}
	b.message = source.RenderMessage()
	return b
}

// WithContent sets the message text
func (b *MessageBuilder) WithContent(content string) *MessageBuilder {
	b.message.Content = content
	return b
}

// AddEmbed replaces the message embeds with the flattened sources
func (b *MessageBuilder) AddEmbed(sources ...EmbedSource) *MessageBuilder {
	embeds := make([]EmbedObject, 0, len(sources))
	for _, source := range sources {
		if source == nil {
			continue
		}
		embeds = append(embeds, source.EmbedObjects()...)
	}
	b.message.Embeds = embeds
	return b
}

// AddFiles merges a copy of files into the message attachments. The argument is
// never retained or modified.
func (b *MessageBuilder) AddFiles(files *FileBuilder) *MessageBuilder {
	if files == nil {
		return b
	}
	if b.files == nil {
		b.files = files.Clone()
		return b
	}
	for _, file := range files.Clone().files {
		b.files.Add(file.Name, file.Data)
	}
	return b
}

// AddComponentRow appends one action row holding the flattened components
func (b *MessageBuilder) AddComponentRow(sources ...ComponentSource) *MessageBuilder {
	row := make([]discordgo.MessageComponent, 0, len(sources))
	for _, source := range sources {
		if source == nil {
			continue
		}
		row = append(row, source.RowComponents()...)
	}
	b.message.Components = append(b.message.Components, discordgo.ActionsRow{Components: row})
	return b
}

// Message returns the message object accumulated so far
func (b *MessageBuilder) Message() Message {
	return b.message
}

// Files returns the attachments owned by the builder, nil when none were added
func (b *MessageBuilder) Files() *FileBuilder {
	return b.files
}

// RenderMessage implements MessageSource. A nil builder renders an empty message.
func (b *MessageBuilder) RenderMessage() Message {
	if b == nil {
		return Message{}
	}
	return b.message
}

// Render produces the plain message, or a multipart form carrying the files and
// a payload_json field when at least one file is attached.
func (b *MessageBuilder) Render() (*Rendered, error) {
	if b.files == nil || b.files.Len() == 0 {
		return &Rendered{Message: b.message}, nil
	}

	form, err := b.files.ToFormData()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to render message files")
	}
	payload, err := MarshalJSON(b.message)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal message payload")
	}
	form.Append("payload_json", string(payload))

	return &Rendered{Message: b.message, Form: form}, nil
}
