package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/go-playground/validator/v10"
)

// EmbedReport summarizes one embed against the Discord limits
type EmbedReport struct {
	Index      int
	Title      string
	Length     int
	Violations []string
}

// Exceeds reports whether the embed breaks any limit
func (r EmbedReport) Exceeds() bool {
	return len(r.Violations) > 0
}

// Validate checks the document structure and every embed against the Discord limits.
// All problems are reported together in one *errorwrapper.ValidationError.
func (d *Document) Validate() error {
	var violations []string

	if err := newDocumentValidator().Struct(d); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return errorwrapper.WrapError(err, "document validation error")
		}
		for _, e := range errs {
			field := strings.TrimPrefix(e.StructNamespace(), "Document.")
			msg := fmt.Sprintf("%s failed rule '%s'", field, e.Tag())
			if e.Param() != "" {
				msg += fmt.Sprintf(" (expected: %s)", e.Param())
			}
			violations = append(violations, msg)
		}
	}

	for _, report := range d.EmbedReports() {
		for _, v := range report.Violations {
			violations = append(violations, fmt.Sprintf("Embeds[%d]: %s", report.Index, v))
		}
	}

	if len(violations) > 0 {
		return errorwrapper.NewMultiValidationError("document", "document is invalid", violations)
	}
	return nil
}

// EmbedReports builds each embed without defaults and measures it
func (d *Document) EmbedReports() []EmbedReport {
	embedValidator := discord.NewEmbedValidator()
	reports := make([]EmbedReport, 0, len(d.Embeds))
	for i, spec := range d.Embeds {
		embed := buildEmbed(spec, BuildOptions{})
		report := EmbedReport{Index: i, Title: spec.Title, Length: embed.Length()}

		var verr *errorwrapper.ValidationError
		if err := embedValidator.ValidateEmbed(embed.Render()); errors.As(err, &verr) {
			report.Violations = verr.Violations
		} else if err != nil {
			report.Violations = []string{err.Error()}
		}
		reports = append(reports, report)
	}
	return reports
}

func newDocumentValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		_, ok := discord.ResolveColor(fl.Field().String())
		return ok
	})
	return validate
}
