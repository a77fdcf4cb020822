package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/trudesigns/studio/internal/domain"
)

// ProjectZIP bundles every exported PDF for a user into one project folder
// archive. Documents whose export failed (no PDF bytes) are skipped.
func ProjectZIP(docs []*domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]int)
	for _, doc := range docs {
		if !doc.HasPDF() {
			continue
		}
		name := doc.FileName()
		// Regenerated deliverables share a title; number the duplicates.
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s_%d.pdf", name[:len(name)-len(".pdf")], n+1)
		}
		seen[doc.FileName()]++

		f, err := zw.Create(name)
		if err != nil {
			return nil, &ExportError{Op: "zip", Err: err}
		}
		if _, err := f.Write(doc.PDF); err != nil {
			return nil, &ExportError{Op: "zip", Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &ExportError{Op: "zip", Err: err}
	}
	return buf.Bytes(), nil
}
