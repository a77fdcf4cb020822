package domain

import (
	"regexp"
	"strings"
	"time"
)

// Document is a persisted generated deliverable. PDF may be empty when the
// export step failed for that attempt; the rendered body is still kept.
type Document struct {
	DocID     string    `json:"doc_id"`
	UserID    string    `json:"-"`
	Feature   string    `json:"feature"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	PDF       []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// FileName derives a download filename for the document's PDF.
func (d *Document) FileName() string {
	name := strings.ToLower(strings.TrimSpace(d.Title))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}

// HasPDF returns true if the export step produced bytes for this document.
func (d *Document) HasPDF() bool {
	return len(d.PDF) > 0
}
