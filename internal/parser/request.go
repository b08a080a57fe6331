package parser

import (
	"io"
	"strings"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/google/uuid"
)

// RequestData is the request descriptor handed to the HTTP client. Exactly one
// of Body and Form carries the payload.
type RequestData struct {
	ID              string            // correlates log lines of one request
	Body            string            // JSON body, empty when Form is set
	Form            *discord.FormData // multipart body when the message has attachments
	PassThroughBody bool              // the client must send the body as-is
	Headers         map[string]string
}

func newRequestData(rendered *discord.Rendered) (*RequestData, error) {
	if rendered.IsMultipart() {
		return &RequestData{
			ID:              uuid.NewString(),
			Form:            rendered.Form,
			PassThroughBody: true,
			Headers:         rendered.Form.Headers(),
		}, nil
	}

	body, err := discord.MarshalJSON(rendered.Message)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal message")
	}
	return &RequestData{
		ID:              uuid.NewString(),
		Body:            string(body),
		PassThroughBody: true,
		Headers:         map[string]string{"Content-Type": "application/json"},
	}, nil
}

// IsMultipart reports whether the body is a multipart form
func (r *RequestData) IsMultipart() bool {
	return r.Form != nil
}

// Reader returns the wire bytes of the body
func (r *RequestData) Reader() (io.Reader, error) {
	if r.Form != nil {
		return r.Form.Reader()
	}
	return strings.NewReader(r.Body), nil
}
