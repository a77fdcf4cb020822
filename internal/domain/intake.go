// Package domain contains core domain types for the studio assistant.
package domain

import (
	"fmt"
	"strings"
)

// Intake holds the client intake fields collected by the frontend for one
// generation request. All fields are optional at the type level; required
// fields are enforced per feature by the prompt builder.
type Intake struct {
	RawBrief       string   `json:"raw_brief"`
	ClientName     string   `json:"client_name"`
	Industry       string   `json:"industry"`
	TargetAudience string   `json:"target_audience"`
	Goals          string   `json:"goals"`
	BrandVibe      string   `json:"brand_vibe"`
	VoiceTone      string   `json:"voice_tone"`
	Colors         string   `json:"colors"`
	VisualKeywords string   `json:"visual_keywords"`
	Platforms      string   `json:"platforms"`
	ReferenceLinks string   `json:"reference_links"`
	UploadedFiles  []string `json:"uploaded_files,omitempty"`
}

// HasBrief returns true if the user pasted a free-form brief.
func (in *Intake) HasBrief() bool {
	return strings.TrimSpace(in.RawBrief) != ""
}

// Descriptive returns true if at least one descriptive field beyond the
// client name was supplied. An intake with only a name is too thin to
// prompt with.
func (in *Intake) Descriptive() bool {
	if in.HasBrief() {
		return true
	}
	for _, v := range []string{
		in.Industry, in.TargetAudience, in.Goals, in.BrandVibe,
		in.VoiceTone, in.Colors, in.VisualKeywords, in.Platforms,
	} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Values returns every supplied field value, used to assert that built
// prompts carry the intake verbatim.
func (in *Intake) Values() []string {
	vals := []string{
		in.RawBrief, in.ClientName, in.Industry, in.TargetAudience,
		in.Goals, in.BrandVibe, in.VoiceTone, in.Colors,
		in.VisualKeywords, in.Platforms, in.ReferenceLinks,
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}

func orNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	return s
}

// ContextText turns the intake into the context block embedded in every
// prompt. A pasted brief leads; structured fields follow so the model can
// cross-reference both.
func (in *Intake) ContextText() string {
	if in.HasBrief() {
		return fmt.Sprintf(`RAW CLIENT BRIEF (user-typed):

%s

------------------------------
Structured intake fields (if any were filled):
Client / Brand: %s
Industry / niche: %s
Target audience: %s
Main goals: %s
Brand vibe: %s
Voice & tone: %s
Preferred colors: %s
Visual keywords / mood: %s
Main platforms: %s`,
			strings.TrimSpace(in.RawBrief),
			orNA(in.ClientName), orNA(in.Industry), orNA(in.TargetAudience),
			orNA(in.Goals), orNA(in.BrandVibe), orNA(in.VoiceTone),
			orNA(in.Colors), orNA(in.VisualKeywords), orNA(in.Platforms))
	}

	refs := strings.TrimSpace(in.ReferenceLinks)
	if refs == "" {
		refs = "None provided."
	}

	var files strings.Builder
	if len(in.UploadedFiles) > 0 {
		files.WriteString("Uploaded reference files (filenames only, designer will open locally):\n")
		for _, name := range in.UploadedFiles {
			files.WriteString("- " + name + "\n")
		}
	}

	return strings.TrimSpace(fmt.Sprintf(`Client / Brand:
- Name: %s
- Industry / niche: %s

Audience & Goals:
- Target audience: %s
- Main business / brand goals: %s

Brand Vibe & Personality:
- Current / desired vibe: %s
- Voice & tone notes: %s

Visual Direction:
- Preferred colors or themes: %s
- Visual keywords / mood: %s

Platforms:
- Main platforms: %s

References:
- Reference links (Insta, Pinterest, sites):
%s

%s`,
		orNA(in.ClientName), orNA(in.Industry),
		orNA(in.TargetAudience), orNA(in.Goals),
		orNA(in.BrandVibe), orNA(in.VoiceTone),
		orNA(in.Colors), orNA(in.VisualKeywords),
		orNA(in.Platforms), refs, files.String()))
}
