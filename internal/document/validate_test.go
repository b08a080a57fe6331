package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	doc, err := Parse([]byte(releaseYAML), ".yaml")
	require.NoError(t, err)
	assert.NoError(t, doc.Validate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	doc := &Document{
		Content:   strings.Repeat("c", 2001),
		AvatarURL: "not a url",
		Embeds: []EmbedSpec{
			{Color: "not-a-color", Fields: []FieldSpec{{Name: "", Value: "v"}}},
			{Title: strings.Repeat("t", 257)},
		},
		Files:      []FileSpec{{Name: "x.txt"}},
		Components: [][]map[string]any{{}},
	}

	err := doc.Validate()
	require.Error(t, err)

	var verr *errorwrapper.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
	assert.ElementsMatch(t, []string{
		"Content failed rule 'max' (expected: 2000)",
		"AvatarURL failed rule 'url'",
		"Embeds[0].Color failed rule 'color'",
		"Embeds[0].Fields[0].Name failed rule 'required'",
		"Files[0].Path failed rule 'required'",
		"Components[0] failed rule 'min' (expected: 1)",
		"Embeds[1]: Title must be at most 256",
	}, verr.Violations)
}

func TestValidate_TooManyEmbeds(t *testing.T) {
	doc := &Document{Embeds: make([]EmbedSpec, 11)}

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Embeds failed rule 'max' (expected: 10)")
}

func TestEmbedReports(t *testing.T) {
	doc := &Document{Embeds: []EmbedSpec{
		{Title: "short", Description: "ok"},
		{Title: "long", Fields: []FieldSpec{{Name: "n", Value: strings.Repeat("v", 1025)}}},
	}}

	reports := doc.EmbedReports()
	require.Len(t, reports, 2)

	assert.Equal(t, 0, reports[0].Index)
	assert.Equal(t, len("short")+len("ok"), reports[0].Length)
	assert.False(t, reports[0].Exceeds())

	assert.Equal(t, "long", reports[1].Title)
	assert.True(t, reports[1].Exceeds())
	assert.Equal(t, []string{"Fields[0].Value must be at most 1024"}, reports[1].Violations)
}
