package parser

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/rs/zerolog"
)

// InputKind names the branch a parser input was classified into
type InputKind string

const (
	KindMessageBuilder InputKind = "message_builder"
	KindEmbed          InputKind = "embed"
	KindFileBuilder    InputKind = "file_builder"
	KindStringified    InputKind = "stringified"
	KindMessage        InputKind = "message"
)

type messageBuilderUnwrapper interface {
	Unwrap() *discord.MessageBuilder
}

type embedUnwrapper interface {
	Unwrap() *discord.Embed
}

// Parser normalizes arbitrary inputs into message builders and request bodies.
type Parser struct {
	logger       zerolog.Logger
	strictLimits bool
	validator    *discord.EmbedValidator
}

// Option configures a Parser
type Option func(*Parser)

// WithStrictLimits makes rendering fail when an embed exceeds Discord limits
func WithStrictLimits(strict bool) Option {
	return func(p *Parser) {
		p.strictLimits = strict
	}
}

// New creates a parser
func New(logger zerolog.Logger, opts ...Option) *Parser {
	p := &Parser{
		logger:    logger.With().Str("component", "Parser").Logger(),
		validator: discord.NewEmbedValidator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New(zerolog.Nop())

// Classify returns the branch ToMessageBuilder takes for input. Checks run in a
// fixed order and the first match wins.
func Classify(input any) InputKind {
	if isNilPointer(input) {
		return KindStringified
	}

	switch input.(type) {
	case *discord.MessageBuilder, messageBuilderUnwrapper:
		return KindMessageBuilder
	case *discord.Embed, embedUnwrapper:
		return KindEmbed
	case *discord.FileBuilder:
		return KindFileBuilder
	case json.RawMessage:
		return KindMessage
	}

	if isStringified(input) {
		return KindStringified
	}
	return KindMessage
}

// ToMessageBuilder normalizes input into a message builder. Message builders are
// returned as-is, everything else is wrapped in a new builder.
func (p *Parser) ToMessageBuilder(input any) (*discord.MessageBuilder, error) {
	kind := Classify(input)
	p.logger.Debug().Str("kind", string(kind)).Str("type", fmt.Sprintf("%T", input)).Msg("Classified message input")

	switch kind {
	case KindMessageBuilder:
		if b, ok := input.(*discord.MessageBuilder); ok {
			return b, nil
		}
		return input.(messageBuilderUnwrapper).Unwrap(), nil
	case KindEmbed:
		embed, ok := input.(*discord.Embed)
		if !ok {
			embed = input.(embedUnwrapper).Unwrap()
		}
		return discord.NewMessageBuilder().AddEmbed(embed), nil
	case KindFileBuilder:
		return discord.NewMessageBuilder().AddFiles(input.(*discord.FileBuilder)), nil
	case KindStringified:
		if isNilPointer(input) {
			input = nil
		}
		return discord.NewMessageBuilder().SetMessage(discord.Message{Content: ResolveString(input)}), nil
	}

	msg, err := toMessage(input)
	if err != nil {
		p.logger.Error().Err(err).Str("type", fmt.Sprintf("%T", input)).Msg("Failed to convert input to a message")
		return nil, err
	}
	return discord.NewMessageBuilder().SetMessage(msg), nil
}

// Render classifies and renders input
func (p *Parser) Render(input any) (*discord.Rendered, error) {
	builder, err := p.ToMessageBuilder(input)
	if err != nil {
		return nil, err
	}
	if p.strictLimits {
		if err := p.checkEmbedLimits(builder.Message()); err != nil {
			p.logger.Warn().Err(err).Msg("Message rejected, embed limits exceeded")
			return nil, err
		}
	}
	return builder.Render()
}

// Parse renders input and wraps it into a request descriptor
func (p *Parser) Parse(input any) (*RequestData, error) {
	rendered, err := p.Render(input)
	if err != nil {
		return nil, err
	}
	request, err := newRequestData(rendered)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().Str("request_id", request.ID).Bool("multipart", request.Form != nil).Int("embeds", len(rendered.Message.Embeds)).Msg("Built request data")
	return request, nil
}

// ParseToMessageBuilder normalizes input with the default parser
func ParseToMessageBuilder(input any) (*discord.MessageBuilder, error) {
	return defaultParser.ToMessageBuilder(input)
}

// ParseMessage classifies and renders input with the default parser
func ParseMessage(input any) (*discord.Rendered, error) {
	return defaultParser.Render(input)
}

// Parse builds a request descriptor for input with the default parser
func Parse(input any) (*RequestData, error) {
	return defaultParser.Parse(input)
}

// toMessage converts a raw message-shaped value. Values that are not already a
// message go through a JSON round trip; keys without a typed field land in Message.Extra.
func toMessage(input any) (discord.Message, error) {
	switch v := input.(type) {
	case discord.Message:
		return v, nil
	case *discord.Message:
		return *v, nil
	case discord.MessageSource:
		return v.RenderMessage(), nil
	case json.RawMessage:
		return decodeMessage(v)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return discord.Message{}, fmt.Errorf("%w: %T cannot be encoded: %v", errorwrapper.ErrUnsupportedInput, input, err)
	}
	return decodeMessage(data)
}

func decodeMessage(data []byte) (discord.Message, error) {
	var msg discord.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return discord.Message{}, fmt.Errorf("%w: value is not a message object: %v", errorwrapper.ErrUnsupportedInput, err)
	}
	return msg, nil
}

func (p *Parser) checkEmbedLimits(msg discord.Message) error {
	for i, embed := range msg.Embeds {
		if err := p.validator.ValidateEmbed(embed); err != nil {
			return errorwrapper.WrapError(err, fmt.Sprintf("embed %d", i))
		}
	}
	return nil
}

func isNilPointer(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
