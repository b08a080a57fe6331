package discord

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

// Discord embed limits, counted in characters.
const (
	MaxEmbedTitleLength       = 256
	MaxEmbedDescriptionLength = 4096
	MaxEmbedFields            = 25
	MaxEmbedFieldNameLength   = 256
	MaxEmbedFieldValueLength  = 1024
	MaxEmbedFooterTextLength  = 2048
	MaxEmbedAuthorNameLength  = 256
	MaxEmbedTotalLength       = 6000
)

var defaultEmbedValidator = NewEmbedValidator()

// Length returns the summed character count of title, description, fields,
// footer text and author name.
func (o EmbedObject) Length() int {
	total := utf8.RuneCountInString(o.Title) + utf8.RuneCountInString(o.Description)
	for _, field := range o.Fields {
		total += utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)
	}
	if o.Footer != nil {
		total += utf8.RuneCountInString(o.Footer.Text)
	}
	if o.Author != nil {
		total += utf8.RuneCountInString(o.Author.Name)
	}
	return total
}

// ExceedsLimits reports whether any of the embed limits is exceeded
func (o EmbedObject) ExceedsLimits() bool {
	exceeds := o.Length() > MaxEmbedTotalLength ||
		utf8.RuneCountInString(o.Title) > MaxEmbedTitleLength ||
		utf8.RuneCountInString(o.Description) > MaxEmbedDescriptionLength ||
		len(o.Fields) > MaxEmbedFields
	for _, field := range o.Fields {
		exceeds = exceeds ||
			utf8.RuneCountInString(field.Name) > MaxEmbedFieldNameLength ||
			utf8.RuneCountInString(field.Value) > MaxEmbedFieldValueLength
	}
	if o.Footer != nil {
		exceeds = exceeds || utf8.RuneCountInString(o.Footer.Text) > MaxEmbedFooterTextLength
	}
	if o.Author != nil {
		exceeds = exceeds || utf8.RuneCountInString(o.Author.Name) > MaxEmbedAuthorNameLength
	}
	return exceeds
}

// embedLimits is the view of an embed the validator checks. validator counts
// string lengths in runes, the same way Length does.
type embedLimits struct {
	Title       string        `validate:"max=256"`
	Description string        `validate:"max=4096"`
	Fields      []fieldLimits `validate:"max=25,dive"`
	FooterText  string        `validate:"max=2048"`
	AuthorName  string        `validate:"max=256"`
	Total       int           `validate:"max=6000"`
}

type fieldLimits struct {
	Name  string `validate:"max=256"`
	Value string `validate:"max=1024"`
}

// EmbedValidator validates Discord embed objects
type EmbedValidator struct {
	validate *validator.Validate
}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{validate: validator.New()}
}

// ValidateEmbed validates a Discord embed against every limit and reports all violations at once
func (ev *EmbedValidator) ValidateEmbed(embed EmbedObject) error {
	view := embedLimits{
		Title:       embed.Title,
		Description: embed.Description,
		Fields:      make([]fieldLimits, 0, len(embed.Fields)),
		Total:       embed.Length(),
	}
	for _, field := range embed.Fields {
		view.Fields = append(view.Fields, fieldLimits{Name: field.Name, Value: field.Value})
	}
	if embed.Footer != nil {
		view.FooterText = embed.Footer.Text
	}
	if embed.Author != nil {
		view.AuthorName = embed.Author.Name
	}

	err := ev.validate.Struct(view)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorwrapper.WrapError(err, "embed validation error")
	}
	violations := make([]string, 0, len(errs))
	for _, fe := range errs {
		name := strings.TrimPrefix(fe.StructNamespace(), "embedLimits.")
		violations = append(violations, fmt.Sprintf("%s must be at most %s", name, fe.Param()))
	}
	return errorwrapper.NewMultiValidationError("embed", "embed exceeds Discord limits", violations)
}
