// Package present formats model responses for display.
//
// Rendering is total: malformed model output degrades to plain text and
// never produces an error.
package present

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/trudesigns/studio/internal/feature"
)

// Swatch is one color entry extracted from a hex-bearing table row.
type Swatch struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Hex  string `json:"hex"`
}

// CalendarEntry is one row of the 30-day content calendar.
type CalendarEntry struct {
	Day             int    `json:"day"`
	Platform        string `json:"platform"`
	PostType        string `json:"post_type"`
	Hook            string `json:"hook"`
	VisualDirection string `json:"visual_direction"`
	CTA             string `json:"cta"`
}

// Rendered is the display-ready form of one model response.
type Rendered struct {
	Markdown string          `json:"markdown"`
	Swatches []Swatch        `json:"swatches,omitempty"`
	Calendar []CalendarEntry `json:"calendar,omitempty"`
	// Fallback is set when structured output was expected but the response
	// didn't match, so Markdown holds the raw text instead.
	Fallback bool `json:"fallback,omitempty"`
}

// Matches markdown table rows whose third column is a hex color, e.g.
// | Blush | Primary | #E8B4A0 |
var swatchPattern = regexp.MustCompile(`\|\s*([^|\n]+?)\s*\|\s*([^|\n]+?)\s*\|\s*#?([0-9A-Fa-f]{6})\s*\|`)

// Render formats a model response according to the feature's shape.
func Render(spec feature.Spec, text string) Rendered {
	switch spec.Shape {
	case feature.ShapeSwatches:
		md := stripPaletteJSON(text)
		return Rendered{Markdown: md, Swatches: extractSwatches(md)}
	case feature.ShapeCalendar:
		if entries, ok := parseCalendar(text); ok {
			return Rendered{Markdown: text, Calendar: entries}
		}
		return Rendered{Markdown: text, Fallback: true}
	default:
		return Rendered{Markdown: text}
	}
}

func extractSwatches(md string) []Swatch {
	matches := swatchPattern.FindAllStringSubmatch(md, -1)
	swatches := make([]Swatch, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		role := strings.TrimSpace(m[2])
		// Skip the header row of a Name | Role | HEX table.
		if strings.EqualFold(name, "name") && strings.EqualFold(role, "role") {
			continue
		}
		swatches = append(swatches, Swatch{
			Name: name,
			Role: role,
			Hex:  "#" + strings.ToUpper(m[3]),
		})
	}
	return swatches
}

// stripPaletteJSON cuts trailing machine-readable sections some models
// append to palette output despite instructions, along with the horizontal
// rule the cut leaves behind. Body text ending in a dash or hex code is
// left alone.
func stripPaletteJSON(text string) string {
	if i := strings.Index(text, "Palette JSON"); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimRight(text, " \n\t")

	last := text
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		last = text[i+1:]
	}
	if trimmed := strings.TrimSpace(last); trimmed != "" && strings.Trim(trimmed, "-#") == "" {
		text = strings.TrimRight(text[:len(text)-len(last)], " \n\t")
	}
	return text
}

func parseCalendar(text string) ([]CalendarEntry, bool) {
	text = strings.TrimSpace(text)
	// Tolerate a fenced block around the JSON.
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
	}

	var entries []CalendarEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil || len(entries) == 0 {
		return nil, false
	}
	return entries, true
}
