package discord

import (
	"testing"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestFileBuilder_AddFindRemove(t *testing.T) {
	fb := NewFileBuilder().
		Add("a.png", pngHeader).
		Add("b.txt", []byte("hello")).
		Add("a.png", []byte("second a"))

	assert.Equal(t, 3, fb.Len())

	file, ok := fb.Find("a.png")
	require.True(t, ok)
	assert.Equal(t, pngHeader, file.Data)

	_, ok = fb.Find("missing")
	assert.False(t, ok)

	fb.Remove("a.png")
	assert.Equal(t, 1, fb.Len())
	assert.Equal(t, "b.txt", fb.Files()[0].Name)

	fb.Remove("missing")
	assert.Equal(t, 1, fb.Len())
}

func TestFileBuilder_RemoveDoesNotTouchFilesSnapshot(t *testing.T) {
	fb := NewFileBuilder().Add("a", []byte("1")).Add("b", []byte("2"))
	snapshot := fb.Files()

	fb.Remove("a")
	require.Len(t, snapshot, 2)
	assert.Equal(t, "a", snapshot[0].Name)
}

func TestFileBuilder_CloneCopiesBuffers(t *testing.T) {
	original := NewFileBuilder().Add("a.txt", []byte("abc"))
	clone := original.Clone()

	clone.files[0].Data[0] = 'z'
	clone.Add("b.txt", []byte("def"))

	file, _ := original.Find("a.txt")
	assert.Equal(t, []byte("abc"), file.Data)
	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestFileBuilder_ToFormData_SingleFile(t *testing.T) {
	form, err := NewFileBuilder().Add("a.png", pngHeader).ToFormData()
	require.NoError(t, err)

	fields := form.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "file", fields[0].Name)
	assert.Equal(t, "a.png", fields[0].Filename)
	assert.Equal(t, "image/png", fields[0].ContentType)
}

func TestFileBuilder_ToFormData_SeveralFiles(t *testing.T) {
	form, err := NewFileBuilder().
		Add("a.png", pngHeader).
		Add("b.txt", []byte("hello")).
		Add("c.txt", []byte("world")).
		ToFormData()
	require.NoError(t, err)

	fields := form.Fields()
	require.Len(t, fields, 3)
	for i, name := range []string{"file0", "file1", "file2"} {
		assert.Equal(t, name, fields[i].Name)
	}
	assert.Equal(t, "b.txt", fields[1].Filename)
	assert.Equal(t, "text/plain; charset=utf-8", fields[1].ContentType)
}

func TestFileBuilder_ToFormData_Empty(t *testing.T) {
	form, err := NewFileBuilder().ToFormData()
	assert.Nil(t, form)
	assert.ErrorIs(t, err, errorwrapper.ErrEmptyFileSet)
}
