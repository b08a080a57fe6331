package discord

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// FormPart is one entry of a multipart form. Filename is empty for plain fields.
type FormPart struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// FormData is a multipart/form-data body built up with Append calls and encoded
// on demand. The boundary is fixed when the form is created so Headers can be
// read before the body is encoded.
type FormData struct {
	boundary string
	parts    []FormPart
}

// NewFormData creates an empty form with a random boundary
func NewFormData() *FormData {
	return &FormData{boundary: multipart.NewWriter(io.Discard).Boundary()}
}

// Append adds a plain text field
func (f *FormData) Append(name, value string) *FormData {
	f.parts = append(f.parts, FormPart{Name: name, Data: []byte(value)})
	return f
}

// AppendFile adds a file field. data is referenced, not copied.
func (f *FormData) AppendFile(name, filename, contentType string, data []byte) *FormData {
	f.parts = append(f.parts, FormPart{
		Name:        name,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	})
	return f
}

// Fields returns the form entries in insertion order
func (f *FormData) Fields() []FormPart {
	out := make([]FormPart, len(f.parts))
	copy(out, f.parts)
	return out
}

// Field returns the first entry with the given field name
func (f *FormData) Field(name string) (FormPart, bool) {
	for _, part := range f.parts {
		if part.Name == name {
			return part, true
		}
	}
	return FormPart{}, false
}

// Boundary returns the multipart boundary
func (f *FormData) Boundary() string {
	return f.boundary
}

// ContentType returns the Content-Type header value for the encoded body
func (f *FormData) ContentType() string {
	return "multipart/form-data; boundary=" + f.boundary
}

// Headers returns the request headers the encoded body needs
func (f *FormData) Headers() map[string]string {
	return map[string]string{"Content-Type": f.ContentType()}
}

// Encode renders the form to its wire representation
func (f *FormData) Encode() ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.SetBoundary(f.boundary); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to set multipart boundary")
	}

	for _, part := range f.parts {
		header := make(textproto.MIMEHeader)
		if part.Filename != "" {
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				quoteEscaper.Replace(part.Name), quoteEscaper.Replace(part.Filename)))
		} else {
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, quoteEscaper.Replace(part.Name)))
		}
		if part.ContentType != "" {
			header.Set("Content-Type", part.ContentType)
		}

		w, err := writer.CreatePart(header)
		if err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to create form part '%s'", part.Name))
		}
		if _, err := w.Write(part.Data); err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to write form part '%s'", part.Name))
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to close multipart writer")
	}
	return body.Bytes(), nil
}

// Reader encodes the form and returns a reader over the body
func (f *FormData) Reader() (io.Reader, error) {
	body, err := f.Encode()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}
