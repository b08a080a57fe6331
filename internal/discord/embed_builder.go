package discord

import (
	"sync"
	"time"
)

// TimestampLayout is the ISO8601 layout Discord expects, with millisecond precision in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var (
	defaultEmbedMu sync.RWMutex
	defaultEmbed   EmbedObject
)

// SetDefaultEmbed replaces the prototype every NewEmbed call starts from.
// The prototype is copied, later changes to e do not leak into new embeds.
func SetDefaultEmbed(e *Embed) {
	defaultEmbedMu.Lock()
	defer defaultEmbedMu.Unlock()
	if e == nil {
		defaultEmbed = EmbedObject{}
		return
	}
	defaultEmbed = e.obj.DeepCopy()
}

// Embed helps in constructing EmbedObject values. Setters mutate the builder and
// return it so calls can be chained.
type Embed struct {
	obj EmbedObject
}

// NewEmbed creates a new embed builder cloned from the default prototype
func NewEmbed() *Embed {
	defaultEmbedMu.RLock()
	defer defaultEmbedMu.RUnlock()
	return &Embed{obj: defaultEmbed.DeepCopy()}
}

// NewEmbedFrom wraps an existing embed object
func NewEmbedFrom(obj EmbedObject) *Embed {
	return &Embed{obj: obj.DeepCopy()}
}

// WithColor sets the embed color
func (e *Embed) WithColor(color int) *Embed {
	e.obj.Color = color
	return e
}

// WithColorName sets the embed color from a named color or a hex/decimal literal.
// Names that cannot be resolved leave the color unchanged.
func (e *Embed) WithColorName(name string) *Embed {
	if color, ok := ResolveColor(name); ok {
		e.obj.Color = color
	}
	return e
}

// WithAuthor replaces the embed author
func (e *Embed) WithAuthor(name, iconURL, url string) *Embed {
	e.obj.Author = &EmbedAuthor{
		Name:    name,
		IconURL: iconURL,
		URL:     url,
	}
	return e
}

// WithTitle sets the title and the URL anchored to it. Empty arguments keep the previous value.
func (e *Embed) WithTitle(title, url string) *Embed {
	if title != "" {
		e.obj.Title = title
	}
	if url != "" {
		e.obj.URL = url
	}
	return e
}

// WithDescription sets the embed description
func (e *Embed) WithDescription(description string) *Embed {
	e.obj.Description = description
	return e
}

// AddField adds a field to the embed
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.obj.Fields = append(e.obj.Fields, NewEmbedField(name, value, inline))
	return e
}

// WithThumbnail sets the thumbnail, size is an optional width and height
func (e *Embed) WithThumbnail(url string, size ...int) *Embed {
	e.obj.Thumbnail = NewEmbedMedia(url, size...)
	return e
}

// WithImage sets the image, size is an optional width and height
func (e *Embed) WithImage(url string, size ...int) *Embed {
	e.obj.Image = NewEmbedMedia(url, size...)
	return e
}

// WithVideo sets the video, size is an optional width and height
func (e *Embed) WithVideo(url string, size ...int) *Embed {
	e.obj.Video = NewEmbedMedia(url, size...)
	return e
}

// WithFooter updates the footer. Empty arguments keep the previous value.
func (e *Embed) WithFooter(text, iconURL string) *Embed {
	if e.obj.Footer == nil {
		e.obj.Footer = &EmbedFooter{Text: ""}
	}
	if text != "" {
		e.obj.Footer.Text = text
	}
	if iconURL != "" {
		e.obj.Footer.IconURL = iconURL
	}
	return e
}

// WithTimestamp sets the embed timestamp. A zero time means now.
func (e *Embed) WithTimestamp(timestamp time.Time) *Embed {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	e.obj.Timestamp = timestamp.UTC().Format(TimestampLayout)
	return e
}

// WithCurrentTimestamp sets the embed timestamp to now
func (e *Embed) WithCurrentTimestamp() *Embed {
	return e.WithTimestamp(time.Time{})
}

// Clone returns an independent copy of the builder
func (e *Embed) Clone() *Embed {
	return &Embed{obj: e.obj.DeepCopy()}
}

// Length returns the number of characters that count against the total embed limit
func (e *Embed) Length() int {
	return e.obj.Length()
}

// ExceedsLimits reports whether any Discord embed limit is exceeded
func (e *Embed) ExceedsLimits() bool {
	return e.obj.ExceedsLimits()
}

// Validate returns a validation error listing every exceeded limit
func (e *Embed) Validate() error {
	return defaultEmbedValidator.ValidateEmbed(e.obj)
}

// Render returns a copy of the accumulated embed object
func (e *Embed) Render() EmbedObject {
	return e.obj.DeepCopy()
}

// EmbedObjects renders the builder for MessageBuilder.AddEmbed. A nil builder yields nothing.
func (e *Embed) EmbedObjects() []EmbedObject {
	if e == nil {
		return nil
	}
	return []EmbedObject{e.Render()}
}
