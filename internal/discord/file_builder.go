package discord

import (
	"fmt"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/gabriel-vasile/mimetype"
)

// File is a named attachment
type File struct {
	Name string
	Data []byte
}

// FileBuilder collects attachments for a message. Names are not required to be unique.
type FileBuilder struct {
	files []File
}

// NewFileBuilder creates a file builder holding the given files
func NewFileBuilder(files ...File) *FileBuilder {
	return &FileBuilder{files: append([]File(nil), files...)}
}

// Add appends a file
func (fb *FileBuilder) Add(name string, data []byte) *FileBuilder {
	fb.files = append(fb.files, File{Name: name, Data: data})
	return fb
}

// Remove drops every file with exactly this name
func (fb *FileBuilder) Remove(name string) *FileBuilder {
	kept := fb.files[:0:0]
	for _, file := range fb.files {
		if file.Name != name {
			kept = append(kept, file)
		}
	}
	fb.files = kept
	return fb
}

// Find returns the first file with this name
func (fb *FileBuilder) Find(name string) (File, bool) {
	for _, file := range fb.files {
		if file.Name == name {
			return file, true
		}
	}
	return File{}, false
}

// Files returns the files in insertion order
func (fb *FileBuilder) Files() []File {
	out := make([]File, len(fb.files))
	copy(out, fb.files)
	return out
}

// Len returns the number of files
func (fb *FileBuilder) Len() int {
	return len(fb.files)
}

// Clone returns a copy in which every buffer is copied as well
func (fb *FileBuilder) Clone() *FileBuilder {
	clone := &FileBuilder{files: make([]File, 0, len(fb.files))}
	for _, file := range fb.files {
		clone.files = append(clone.files, File{
			Name: file.Name,
			Data: append([]byte(nil), file.Data...),
		})
	}
	return clone
}

// ToFormData renders the files to a multipart form. A single file is sent as
// field "file", several files as "file0", "file1", ... in insertion order.
// An empty builder returns ErrEmptyFileSet.
func (fb *FileBuilder) ToFormData() (*FormData, error) {
	if len(fb.files) == 0 {
		return nil, errorwrapper.ErrEmptyFileSet
	}

	form := NewFormData()
	if len(fb.files) == 1 {
		file := fb.files[0]
		form.AppendFile("file", file.Name, detectContentType(file.Data), file.Data)
		return form, nil
	}

	for i, file := range fb.files {
		form.AppendFile(fmt.Sprintf("file%d", i), file.Name, detectContentType(file.Data), file.Data)
	}
	return form, nil
}

func detectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
