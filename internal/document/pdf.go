// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF returns the plain text of every page, one page per line group.
// Pages that fail to decode are skipped.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
