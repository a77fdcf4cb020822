// Package export lays out presented content into downloadable artifacts.
package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ExportError reports an unrecoverable document generation failure.
type ExportError struct {
	Op  string
	Err error
}

func (e *ExportError) Error() string {
	return "export " + e.Op + " failed: " + e.Err.Error()
}

func (e *ExportError) Unwrap() error { return e.Err }

// The core PDF fonts are latin-1 only, so smart punctuation is mapped to
// ASCII and anything else outside latin-1 is dropped.
var punctuationReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"…", "...",
)

func sanitize(text string) string {
	text = punctuationReplacer.Replace(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 256 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PDF lays out a title and body into a paginated A4 document and returns the
// raw bytes. Long bodies wrap and paginate; the output is never truncated.
func PDF(title, body string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.MultiCell(0, 10, sanitize(title), "", "L", false)
	doc.Ln(4)

	doc.SetFont("Arial", "", 11)
	for _, line := range strings.Split(sanitize(body), "\n") {
		if strings.TrimSpace(line) == "" {
			line = " "
		}
		doc.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &ExportError{Op: "pdf", Err: err}
	}
	return buf.Bytes(), nil
}
