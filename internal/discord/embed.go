package discord

// EmbedObject represents a Discord embed object as it is sent on the wire.
type EmbedObject struct {
	Title       string       `json:"title,omitempty"`       // Title of embed
	Description string       `json:"description,omitempty"` // Description of embed
	URL         string       `json:"url,omitempty"`         // URL anchored to the title
	Timestamp   string       `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       int          `json:"color,omitempty"`       // Color code of the embed, 0 (Default) is omitted and the client shows its own color
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Image       *EmbedMedia  `json:"image,omitempty"`
	Thumbnail   *EmbedMedia  `json:"thumbnail,omitempty"`
	Video       *EmbedMedia  `json:"video,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"` // Array of embed field objects
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// EmbedMedia represents the image, thumbnail or video of an embed.
type EmbedMedia struct {
	URL    string `json:"url"`              // Source URL (only supports http(s) and attachments)
	Width  int    `json:"width,omitempty"`  // Fixed width, zero when unset
	Height int    `json:"height,omitempty"` // Fixed height, zero when unset
}

// NewEmbedMedia creates media with an optional width and height, in that order.
func NewEmbedMedia(url string, size ...int) *EmbedMedia {
	media := &EmbedMedia{URL: url}
	if len(size) > 0 {
		media.Width = size[0]
	}
	if len(size) > 1 {
		media.Height = size[1]
	}
	return media
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`               // Name of author
	IconURL string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
	URL     string `json:"url,omitempty"`      // URL of author (only supports http(s))
}

// DeepCopy returns a copy of the embed that shares no pointers or slices with o.
func (o EmbedObject) DeepCopy() EmbedObject {
	c := o
	if o.Footer != nil {
		footer := *o.Footer
		c.Footer = &footer
	}
	c.Image = o.Image.copy()
	c.Thumbnail = o.Thumbnail.copy()
	c.Video = o.Video.copy()
	if o.Author != nil {
		author := *o.Author
		c.Author = &author
	}
	if o.Fields != nil {
		c.Fields = make([]EmbedField, len(o.Fields))
		copy(c.Fields, o.Fields)
	}
	return c
}

// EmbedObjects makes a plain embed object usable wherever an EmbedSource is accepted.
func (o EmbedObject) EmbedObjects() []EmbedObject {
	return []EmbedObject{o.DeepCopy()}
}

func (m *EmbedMedia) copy() *EmbedMedia {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
