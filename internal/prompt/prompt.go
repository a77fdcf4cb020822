// Package prompt builds model prompts from intake data.
package prompt

import (
	"fmt"
	"strings"

	"github.com/trudesigns/studio/internal/domain"
	"github.com/trudesigns/studio/internal/feature"
)

// ValidationError reports required intake fields that are missing or empty.
// It is raised before any model call is attempted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required intake fields: " + strings.Join(e.Fields, ", ")
}

// Validate checks that the intake is complete enough to prompt with.
// Every feature requires a client name and at least one descriptive field
// (a pasted brief or any of the vibe/audience/goal fields).
func Validate(in *domain.Intake) error {
	var missing []string
	if strings.TrimSpace(in.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if !in.Descriptive() {
		missing = append(missing, "brief")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Build produces the system and user prompt for one feature from an intake.
// Every supplied intake value appears verbatim in the user prompt.
func Build(spec feature.Spec, in *domain.Intake) (system, user string, err error) {
	if err := Validate(in); err != nil {
		return "", "", err
	}
	return spec.SystemPrompt, fmt.Sprintf(spec.UserTemplate, in.ContextText()), nil
}

// Moodboard builds the image-generation prompt for logo moodboard images.
func Moodboard(in *domain.Intake) string {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		name = "the brand"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Logo moodboard for %s", name)
	if industry := strings.TrimSpace(in.Industry); industry != "" {
		fmt.Fprintf(&b, " in %s", industry)
	}
	fmt.Fprintf(&b, ". Brand vibe: %s. Colors: %s. Visual keywords: %s. ",
		strings.TrimSpace(in.BrandVibe), strings.TrimSpace(in.Colors), strings.TrimSpace(in.VisualKeywords))
	b.WriteString("Show 2D flat logo explorations, clean vector style, centered composition.")
	return b.String()
}
