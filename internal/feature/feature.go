// Package feature defines the deliverable kinds the studio can generate.
//
// Each kind pairs a fixed prompt template with a presenter shape, so the
// generation pipeline is written once and parameterized by kind.
package feature

// Kind identifies one deliverable type.
type Kind int

const (
	DiscoverySummary Kind = iota
	StyleGuide
	LogoDirections
	LogoSketchKit
	SiteOutline
	ProjectProposal
	ColorPalette
	BrandVoice
	InvoiceOutline
	DomainTaglines
	ContentCalendar
)

// Shape tells the presenter how to interpret the model output for a kind.
type Shape int

const (
	// ShapeMarkdown renders the response as-is.
	ShapeMarkdown Shape = iota
	// ShapeSwatches renders markdown plus color swatches extracted from
	// hex-bearing table rows.
	ShapeSwatches
	// ShapeCalendar parses the response as a JSON content calendar and
	// falls back to plain text when it doesn't parse.
	ShapeCalendar
)

// Spec describes one deliverable kind.
type Spec struct {
	Kind         Kind
	Slug         string
	Title        string
	Shape        Shape
	Images       bool // moodboard images accompany this deliverable
	SystemPrompt string
	UserTemplate string // fmt template with one %s verb for the intake context
}

var specs = []Spec{
	{
		Kind:         DiscoverySummary,
		Slug:         "discovery-summary",
		Title:        "Brand Discovery Summary",
		Shape:        ShapeMarkdown,
		SystemPrompt: discoverySystemPrompt,
		UserTemplate: "Based on the following intake notes, write a Brand Discovery Summary.\n\nFocus on:\n1) Who this brand is.\n2) Who they serve.\n3) Their goals.\n4) Brand personality.\n5) Visual direction.\n6) Top 5-7 opportunities or recommendations.\n\nINTAKE NOTES:\n%s",
	},
	{
		Kind:         StyleGuide,
		Slug:         "style-guide",
		Title:        "Brand Style Guide",
		Shape:        ShapeSwatches,
		SystemPrompt: styleGuideSystemPrompt,
		UserTemplate: "Using the following context, create a brand style guide document.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         LogoDirections,
		Slug:         "logo-directions",
		Title:        "Logo Direction Ideas",
		Shape:        ShapeMarkdown,
		SystemPrompt: logoDirectionsSystemPrompt,
		UserTemplate: "Using the following brand intake notes, create logo concept directions.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         LogoSketchKit,
		Slug:         "logo-sketch-kit",
		Title:        "AI Logo Sketch Kit",
		Shape:        ShapeMarkdown,
		Images:       true,
		SystemPrompt: logoSketchKitSystemPrompt,
		UserTemplate: "Using this brand context, create a Logo Sketch Kit.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         SiteOutline,
		Slug:         "site-outline",
		Title:        "Website / Landing Page Outline",
		Shape:        ShapeMarkdown,
		SystemPrompt: siteOutlineSystemPrompt,
		UserTemplate: "Based on this brand and project context, create a website / landing page outline.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         ProjectProposal,
		Slug:         "project-proposal",
		Title:        "Project Summary & Proposal",
		Shape:        ShapeMarkdown,
		SystemPrompt: proposalSystemPrompt,
		UserTemplate: "Using these notes, create a project summary and simple proposal outline.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         ColorPalette,
		Slug:         "color-palette",
		Title:        "Color Palette",
		Shape:        ShapeSwatches,
		SystemPrompt: colorPaletteSystemPrompt,
		UserTemplate: "Based on this brand context, create a color palette system.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         BrandVoice,
		Slug:         "brand-voice",
		Title:        "Brand Voice Guide",
		Shape:        ShapeMarkdown,
		SystemPrompt: brandVoiceSystemPrompt,
		UserTemplate: "Based on this brand intake, create a brand voice guide.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         InvoiceOutline,
		Slug:         "invoice-outline",
		Title:        "Proposal to Invoice Outline",
		Shape:        ShapeMarkdown,
		SystemPrompt: invoiceSystemPrompt,
		UserTemplate: "Using the project context below, create an invoice-style outline.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         DomainTaglines,
		Slug:         "domain-taglines",
		Title:        "Domain & Tagline Ideas",
		Shape:        ShapeMarkdown,
		SystemPrompt: domainTaglinesSystemPrompt,
		UserTemplate: "Based on this brand context, suggest domain names and taglines.\n\nCONTEXT:\n%s",
	},
	{
		Kind:         ContentCalendar,
		Slug:         "content-calendar",
		Title:        "30-Day Content Calendar",
		Shape:        ShapeCalendar,
		SystemPrompt: calendarSystemPrompt,
		UserTemplate: "Based on this brand context, generate a 30-day content calendar.\n\nCONTEXT:\n%s",
	},
}

var bySlug = func() map[string]Spec {
	m := make(map[string]Spec, len(specs))
	for _, s := range specs {
		m[s.Slug] = s
	}
	return m
}()

// All returns every feature spec in display order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// FromSlug looks up a feature spec by its URL slug.
func FromSlug(slug string) (Spec, bool) {
	s, ok := bySlug[slug]
	return s, ok
}
