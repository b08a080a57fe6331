package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

// MaxDocumentSize caps the size of a message document file
const MaxDocumentSize = 1024 * 1024

// Document is a message described in a YAML or JSON file
type Document struct {
	Content    string             `json:"content,omitempty" yaml:"content,omitempty" validate:"max=2000"`
	TTS        bool               `json:"tts,omitempty" yaml:"tts,omitempty"`
	Username   string             `json:"username,omitempty" yaml:"username,omitempty" validate:"max=80"`
	AvatarURL  string             `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	Flags      int                `json:"flags,omitempty" yaml:"flags,omitempty" validate:"min=0"`
	Embeds     []EmbedSpec        `json:"embeds,omitempty" yaml:"embeds,omitempty" validate:"max=10,dive"`
	Files      []FileSpec         `json:"files,omitempty" yaml:"files,omitempty" validate:"max=10,dive"`
	Components [][]map[string]any `json:"components,omitempty" yaml:"components,omitempty" validate:"max=5,dive,min=1,max=5"`

	// Path is the file the document was loaded from. Relative file paths resolve against its directory.
	Path string `json:"-" yaml:"-"`
}

// EmbedSpec describes one embed in builder terms
type EmbedSpec struct {
	Color        ColorValue  `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,color"`
	Title        string      `json:"title,omitempty" yaml:"title,omitempty"`
	URL          string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Description  string      `json:"description,omitempty" yaml:"description,omitempty"`
	Author       *AuthorSpec `json:"author,omitempty" yaml:"author,omitempty"`
	Fields       []FieldSpec `json:"fields,omitempty" yaml:"fields,omitempty" validate:"dive"`
	Thumbnail    *MediaSpec  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Image        *MediaSpec  `json:"image,omitempty" yaml:"image,omitempty"`
	Video        *MediaSpec  `json:"video,omitempty" yaml:"video,omitempty"`
	Footer       *FooterSpec `json:"footer,omitempty" yaml:"footer,omitempty"`
	Timestamp    *time.Time  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	TimestampNow bool        `json:"timestamp_now,omitempty" yaml:"timestamp_now,omitempty"`
}

type AuthorSpec struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty" validate:"omitempty,url"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
}

type FieldSpec struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Value  string `json:"value" yaml:"value" validate:"required"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"`
}

type MediaSpec struct {
	URL    string `json:"url" yaml:"url" validate:"required,url"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty" validate:"min=0"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty" validate:"min=0"`
}

type FooterSpec struct {
	Text    string `json:"text" yaml:"text"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty" validate:"omitempty,url"`
}

// FileSpec attaches a file from disk. Name defaults to the base name of Path.
type FileSpec struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Path string `json:"path" yaml:"path" validate:"required"`
}

// AttachmentName returns the name the file is uploaded under
func (f FileSpec) AttachmentName() string {
	if f.Name != "" {
		return f.Name
	}
	return filepath.Base(f.Path)
}

// Load reads a message document. The format follows the extension: .yaml and .yml
// are YAML, .json is JSON.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to stat document")
	}
	if info.IsDir() {
		return nil, errorwrapper.NewValidationError("document", path, "path is a directory")
	}
	if info.Size() > MaxDocumentSize {
		return nil, errorwrapper.NewValidationError("document", path, "document is too large")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read document")
	}

	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to parse document '%s'", path))
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes document content. ext selects the format and includes the leading dot.
func Parse(data []byte, ext string) (*Document, error) {
	doc := &Document{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, errorwrapper.NewError("failed to unmarshal YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errorwrapper.NewError("failed to unmarshal JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: document extension %q", errorwrapper.ErrUnsupportedInput, ext)
	}
	return doc, nil
}

// resolvePath returns p relative to the document directory unless it is absolute
func (d *Document) resolvePath(p string) string {
	if filepath.IsAbs(p) || d.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(d.Path), p)
}
