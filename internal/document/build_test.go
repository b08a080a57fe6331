package document

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/config"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func loadRelease(t *testing.T) *Document {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "release.yaml"), releaseYAML)
	writeFile(t, filepath.Join(dir, "notes.txt"), "release notes")
	writeFile(t, filepath.Join(dir, "logs", "build.log"), "ok")

	doc, err := Load(filepath.Join(dir, "release.yaml"))
	require.NoError(t, err)
	return doc
}

func TestBuild_Release(t *testing.T) {
	doc := loadRelease(t)

	builder, err := NewBuilder(zerolog.Nop(), BuildOptions{}).Build(doc)
	require.NoError(t, err)

	rendered, err := builder.Render()
	require.NoError(t, err)
	require.True(t, rendered.IsMultipart())

	payload, ok := rendered.Form.Field("payload_json")
	require.True(t, ok)
	body := string(payload.Data)

	assert.Equal(t, "Release 1.4 is out", gjson.Get(body, "content").String())
	assert.Equal(t, "release-bot", gjson.Get(body, "username").String())
	assert.Equal(t, int64(4), gjson.Get(body, "flags").Int())
	assert.Equal(t, "Changelog", gjson.Get(body, "embeds.0.title").String())
	assert.Equal(t, "https://example.com/changelog", gjson.Get(body, "embeds.0.url").String())
	assert.Equal(t, int64(0x57F287), gjson.Get(body, "embeds.0.color").Int())
	assert.Equal(t, "CI", gjson.Get(body, "embeds.0.author.name").String())
	assert.Equal(t, "2024-03-01T10:20:30.000Z", gjson.Get(body, "embeds.0.timestamp").String())
	assert.Equal(t, "build 812", gjson.Get(body, "embeds.0.footer.text").String())
	assert.Equal(t, int64(0xFF0000), gjson.Get(body, "embeds.1.color").Int())
	assert.False(t, gjson.Get(body, "embeds.1.footer").Exists())

	assert.Equal(t, int64(1), gjson.Get(body, "components.0.type").Int())
	assert.Equal(t, "Download", gjson.Get(body, "components.0.components.0.label").String())
	assert.Equal(t, int64(5), gjson.Get(body, "components.0.components.0.style").Int())
	assert.Equal(t, "ack", gjson.Get(body, "components.0.components.1.custom_id").String())

	file0, ok := rendered.Form.Field("file0")
	require.True(t, ok)
	assert.Equal(t, "notes.txt", file0.Filename)
	assert.Equal(t, "release notes", string(file0.Data))
	file1, ok := rendered.Form.Field("file1")
	require.True(t, ok)
	assert.Equal(t, "renamed.log", file1.Filename)
}

func TestBuild_Defaults(t *testing.T) {
	doc := &Document{Embeds: []EmbedSpec{
		{Title: "plain"},
		{Title: "own", Color: "red", Footer: &FooterSpec{Text: "mine"}},
		{Title: "now", TimestampNow: true},
	}}

	builder, err := doc.Build(BuildOptions{DefaultColor: "blurple", DefaultFooter: "embedkit"})
	require.NoError(t, err)

	msg := builder.Message()
	require.Len(t, msg.Embeds, 3)
	assert.Equal(t, 0x5865F2, msg.Embeds[0].Color)
	assert.Equal(t, "embedkit", msg.Embeds[0].Footer.Text)
	assert.Equal(t, 0xED4245, msg.Embeds[1].Color)
	assert.Equal(t, "mine", msg.Embeds[1].Footer.Text)
	assert.NotEmpty(t, msg.Embeds[2].Timestamp)
	assert.Nil(t, builder.Files())
}

func TestBuild_FileSizeCap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.bin"), strings.Repeat("x", 2048))
	doc := &Document{Path: filepath.Join(dir, "doc.yaml"), Files: []FileSpec{{Path: "big.bin"}}}

	_, err := doc.Build(BuildOptions{MaxFileSize: 1024})
	require.Error(t, err)
	var verr *errorwrapper.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "attachment is 2.0 KiB, limit is 1.0 KiB")

	_, err = doc.Build(BuildOptions{})
	assert.NoError(t, err)

	missing := &Document{Path: filepath.Join(dir, "doc.yaml"), Files: []FileSpec{{Path: "nope.bin"}}}
	_, err = missing.Build(BuildOptions{})
	assert.ErrorContains(t, err, "attachment 'nope.bin'")
}

func TestBuild_StrictLimits(t *testing.T) {
	doc := &Document{Embeds: []EmbedSpec{{Title: "ok"}, {Description: strings.Repeat("d", 4097)}}}

	_, err := doc.Build(BuildOptions{})
	assert.NoError(t, err)

	_, err = doc.Build(BuildOptions{StrictLimits: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed 1")
	assert.Contains(t, err.Error(), "Description must be at most 4096")
}

func TestBuild_UnknownComponentType(t *testing.T) {
	doc := &Document{Components: [][]map[string]any{{{"type": 99}}}}

	_, err := doc.Build(BuildOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrUnsupportedInput))
	assert.Contains(t, err.Error(), "component row 0")
}

func TestOptionsFromConfig(t *testing.T) {
	rc := config.NewDefaultRenderConfig()
	rc.DefaultColor = "gold"
	rc.StrictLimits = true

	opts := OptionsFromConfig(rc)
	assert.Equal(t, "gold", opts.DefaultColor)
	assert.True(t, opts.StrictLimits)
	assert.Equal(t, int64(config.DefaultMaxFileSizeMB)*1024*1024, opts.MaxFileSize)
}

func TestBuild_UsesDefaultEmbedPrototype(t *testing.T) {
	discord.SetDefaultEmbed(discord.NewEmbed().WithFooter("prototype", ""))
	t.Cleanup(func() { discord.SetDefaultEmbed(nil) })

	builder, err := (&Document{Embeds: []EmbedSpec{{Title: "x"}}}).Build(BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "prototype", builder.Message().Embeds[0].Footer.Text)
}
