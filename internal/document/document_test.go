package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseYAML = `
content: Release 1.4 is out
username: release-bot
flags: 4
embeds:
  - title: Changelog
    url: https://example.com/changelog
    color: green
    description: Highlights of this release
    author:
      name: CI
    fields:
      - name: Added
        value: dark mode
        inline: true
      - name: Fixed
        value: crash on start
    footer:
      text: build 812
    timestamp: 2024-03-01T10:20:30Z
  - description: second
    color: 16711680
files:
  - path: notes.txt
  - name: renamed.log
    path: logs/build.log
components:
  - - type: 2
      label: Download
      style: 5
      url: https://example.com/download
    - type: 2
      label: Ack
      custom_id: ack
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yaml")
	writeFile(t, path, releaseYAML)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "Release 1.4 is out", doc.Content)
	assert.Equal(t, 4, doc.Flags)
	require.Len(t, doc.Embeds, 2)
	assert.Equal(t, ColorValue("green"), doc.Embeds[0].Color)
	assert.Equal(t, ColorValue("16711680"), doc.Embeds[1].Color)
	require.NotNil(t, doc.Embeds[0].Timestamp)
	assert.True(t, doc.Embeds[0].Timestamp.Equal(time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)))
	assert.Len(t, doc.Embeds[0].Fields, 2)
	require.Len(t, doc.Files, 2)
	assert.Equal(t, "notes.txt", doc.Files[0].AttachmentName())
	assert.Equal(t, "renamed.log", doc.Files[1].AttachmentName())
	require.Len(t, doc.Components, 1)
	assert.Len(t, doc.Components[0], 2)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alert.json")
	writeFile(t, path, `{
		"content": "disk almost full",
		"embeds": [{"title": "disk", "color": 15548997}, {"title": "cpu", "color": "#00ff00"}]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "disk almost full", doc.Content)
	assert.Equal(t, ColorValue("15548997"), doc.Embeds[0].Color)
	assert.Equal(t, ColorValue("#00ff00"), doc.Embeds[1].Color)

	color, ok := doc.Embeds[1].Color.Resolve()
	assert.True(t, ok)
	assert.Equal(t, 0x00FF00, color)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(dir)
	assert.ErrorContains(t, err, "path is a directory")

	txt := filepath.Join(dir, "message.txt")
	writeFile(t, txt, "content: hi")
	_, err = Load(txt)
	assert.True(t, errors.Is(err, errorwrapper.ErrUnsupportedInput))

	badYAML := filepath.Join(dir, "bad.yaml")
	writeFile(t, badYAML, "embeds:\n  - color: [1, 2]\n")
	_, err = Load(badYAML)
	assert.ErrorContains(t, err, "failed to unmarshal YAML")

	badJSON := filepath.Join(dir, "bad.json")
	writeFile(t, badJSON, `{"embeds": [{"color": true}]}`)
	_, err = Load(badJSON)
	assert.ErrorContains(t, err, "failed to unmarshal JSON")
}
