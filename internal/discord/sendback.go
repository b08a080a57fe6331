package discord

// EmbedSendbackHandler receives the embed when Send is called, plus the Send arguments.
type EmbedSendbackHandler[R any, O any] func(builder *Embed, options ...O) R

// EmbedWithSendback is an embed builder bound to a handler that delivers it.
type EmbedWithSendback[R any, O any] struct {
	*Embed
	handler EmbedSendbackHandler[R, O]
}

// NewEmbedWithSendback creates an embed from the default prototype bound to handler
func NewEmbedWithSendback[R any, O any](handler EmbedSendbackHandler[R, O]) *EmbedWithSendback[R, O] {
	return &EmbedWithSendback[R, O]{Embed: NewEmbed(), handler: handler}
}

// Send calls the handler with the embed and options and returns its result
func (s *EmbedWithSendback[R, O]) Send(options ...O) R {
	if s.handler == nil {
		var zero R
		return zero
	}
	return s.handler(s.Embed, options...)
}

// Unwrap returns the underlying embed builder
func (s *EmbedWithSendback[R, O]) Unwrap() *Embed {
	return s.Embed
}

// SendbackHandler receives the message builder when Send is called, plus the Send arguments.
type SendbackHandler[R any, O any] func(builder *MessageBuilder, options ...O) R

// MessageBuilderWithSendback is a message builder bound to a handler that delivers it.
type MessageBuilderWithSendback[R any, O any] struct {
	*MessageBuilder
	handler SendbackHandler[R, O]
}

// NewMessageBuilderWithSendback creates an empty message builder bound to handler
func NewMessageBuilderWithSendback[R any, O any](handler SendbackHandler[R, O]) *MessageBuilderWithSendback[R, O] {
	return &MessageBuilderWithSendback[R, O]{MessageBuilder: NewMessageBuilder(), handler: handler}
}

// Send calls the handler with the builder and options and returns its result
func (s *MessageBuilderWithSendback[R, O]) Send(options ...O) R {
	if s.handler == nil {
		var zero R
		return zero
	}
	return s.handler(s.MessageBuilder, options...)
}

// Unwrap returns the underlying message builder
func (s *MessageBuilderWithSendback[R, O]) Unwrap() *MessageBuilder {
	return s.MessageBuilder
}
