package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/config"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// BuildOptions carries the render defaults applied while building a document
type BuildOptions struct {
	DefaultColor  string
	DefaultFooter string
	// MaxFileSize caps each attachment in bytes, 0 disables the check
	MaxFileSize  int64
	StrictLimits bool
}

// OptionsFromConfig maps the render section of the config file to build options
func OptionsFromConfig(rc config.RenderConfig) BuildOptions {
	return BuildOptions{
		DefaultColor:  rc.DefaultColor,
		DefaultFooter: rc.DefaultFooter,
		MaxFileSize:   rc.MaxFileSizeBytes(),
		StrictLimits:  rc.StrictLimits,
	}
}

// Builder turns documents into message builders
type Builder struct {
	logger    zerolog.Logger
	opts      BuildOptions
	validator *discord.EmbedValidator
}

// NewBuilder creates a document builder
func NewBuilder(logger zerolog.Logger, opts BuildOptions) *Builder {
	return &Builder{
		logger:    logger.With().Str("component", "DocumentBuilder").Logger(),
		opts:      opts,
		validator: discord.NewEmbedValidator(),
	}
}

// Build builds the document with the given options and no logging
func (d *Document) Build(opts BuildOptions) (*discord.MessageBuilder, error) {
	return NewBuilder(zerolog.Nop(), opts).Build(d)
}

// Build assembles the message, reads attachments from disk and decodes components
func (b *Builder) Build(doc *Document) (*discord.MessageBuilder, error) {
	builder := discord.NewMessageBuilderFrom(discord.Message{
		TTS:       doc.TTS,
		Content:   doc.Content,
		Username:  doc.Username,
		AvatarURL: doc.AvatarURL,
		Flags:     doc.Flags,
	})

	if len(doc.Embeds) > 0 {
		embeds := make(discord.EmbedList, 0, len(doc.Embeds))
		for i, spec := range doc.Embeds {
			embed := buildEmbed(spec, b.opts)
			if b.opts.StrictLimits {
				if err := b.validator.ValidateEmbed(embed.Render()); err != nil {
					return nil, errorwrapper.WrapError(err, fmt.Sprintf("embed %d", i))
				}
			}
			embeds = append(embeds, embed)
		}
		builder.AddEmbed(embeds)
	}

	if len(doc.Files) > 0 {
		files, err := b.readFiles(doc)
		if err != nil {
			return nil, err
		}
		builder.AddFiles(files)
	}

	for i, row := range doc.Components {
		actionsRow, err := decodeRow(row)
		if err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("component row %d", i))
		}
		builder.AddComponentRow(discord.Components(actionsRow.Components...))
	}

	b.logger.Debug().
		Str("document", doc.Path).
		Int("embeds", len(doc.Embeds)).
		Int("files", len(doc.Files)).
		Int("component_rows", len(doc.Components)).
		Msg("Document built")
	return builder, nil
}

func (b *Builder) readFiles(doc *Document) (*discord.FileBuilder, error) {
	files := discord.NewFileBuilder()
	for _, spec := range doc.Files {
		path := doc.resolvePath(spec.Path)
		info, err := os.Stat(path)
		if err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("attachment '%s'", spec.Path))
		}
		if info.IsDir() {
			return nil, errorwrapper.NewValidationError("files.path", spec.Path, "attachment is a directory")
		}
		if b.opts.MaxFileSize > 0 && info.Size() > b.opts.MaxFileSize {
			return nil, errorwrapper.NewValidationError("files.path", spec.Path, fmt.Sprintf("attachment is %s, limit is %s",
				humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(b.opts.MaxFileSize))))
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read attachment '%s'", spec.Path))
		}
		b.logger.Debug().Str("name", spec.AttachmentName()).Str("size", humanize.IBytes(uint64(len(data)))).Msg("Attachment loaded")
		files.Add(spec.AttachmentName(), data)
	}
	return files, nil
}

func buildEmbed(spec EmbedSpec, opts BuildOptions) *discord.Embed {
	embed := discord.NewEmbed()

	color := spec.Color
	if color == "" {
		color = ColorValue(opts.DefaultColor)
	}
	if color != "" {
		embed.WithColorName(string(color))
	}

	embed.WithTitle(spec.Title, spec.URL)
	if spec.Description != "" {
		embed.WithDescription(spec.Description)
	}
	if spec.Author != nil {
		embed.WithAuthor(spec.Author.Name, spec.Author.IconURL, spec.Author.URL)
	}
	for _, field := range spec.Fields {
		embed.AddField(field.Name, field.Value, field.Inline)
	}
	if spec.Thumbnail != nil {
		embed.WithThumbnail(spec.Thumbnail.URL, spec.Thumbnail.Width, spec.Thumbnail.Height)
	}
	if spec.Image != nil {
		embed.WithImage(spec.Image.URL, spec.Image.Width, spec.Image.Height)
	}
	if spec.Video != nil {
		embed.WithVideo(spec.Video.URL, spec.Video.Width, spec.Video.Height)
	}

	switch {
	case spec.Footer != nil:
		embed.WithFooter(spec.Footer.Text, spec.Footer.IconURL)
	case opts.DefaultFooter != "":
		embed.WithFooter(opts.DefaultFooter, "")
	}

	switch {
	case spec.Timestamp != nil:
		embed.WithTimestamp(*spec.Timestamp)
	case spec.TimestampNow:
		embed.WithCurrentTimestamp()
	}
	return embed
}

// decodeRow lets discordgo pick the concrete component type of each entry
func decodeRow(row []map[string]any) (discordgo.ActionsRow, error) {
	data, err := json.Marshal(map[string]any{
		"type":       discordgo.ActionsRowComponent,
		"components": row,
	})
	if err != nil {
		return discordgo.ActionsRow{}, fmt.Errorf("%w: %v", errorwrapper.ErrUnsupportedInput, err)
	}

	var actionsRow discordgo.ActionsRow
	if err := json.Unmarshal(data, &actionsRow); err != nil {
		return discordgo.ActionsRow{}, fmt.Errorf("%w: %v", errorwrapper.ErrUnsupportedInput, err)
	}
	return actionsRow, nil
}
