package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trudesigns/studio/internal/domain"
)

const briefSystemPrompt = `You are a helpful assistant that turns a messy project brief into structured fields.

Return ONLY valid JSON with this exact structure:

{
  "client_name": "",
  "industry": "",
  "target_audience": "",
  "goals": "",
  "brand_vibe": "",
  "voice_tone": "",
  "colors": "",
  "visual_keywords": "",
  "platforms": "",
  "reference_links": ""
}

Use empty strings ("") if something is missing or unclear.
Do NOT add any extra keys or commentary.`

// BuildBrief produces the prompt pair that extracts structured intake fields
// from a free-form brief.
func BuildBrief(rawBrief string) (system, user string) {
	return briefSystemPrompt, fmt.Sprintf("Parse this brief into structured fields.\n\nBRIEF:\n%s", strings.TrimSpace(rawBrief))
}

// ParseBriefResponse decodes the model's field-extraction response into an
// intake. Malformed output degrades to an empty intake rather than an error;
// the user just fills the form by hand.
func ParseBriefResponse(text string) domain.Intake {
	text = strings.TrimSpace(text)
	// Models occasionally wrap JSON in a fenced block despite instructions.
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
	}

	var in domain.Intake
	if err := json.Unmarshal([]byte(text), &in); err != nil {
		return domain.Intake{}
	}
	return in
}
