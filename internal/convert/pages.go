package convert

import (
	"bytes"

	"github.com/ledongthuc/pdf"

	"msa-backend/internal/shared/telemetry"
)

// PageCount reports the number of pages in a PDF, or 0 when the document
// cannot be parsed. The parser panics on some malformed inputs.
func PageCount(data []byte) (pages int) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("convert.page_count_failed", map[string]any{"panic": r})
			pages = 0
		}
	}()
	if len(data) == 0 {
		return 0
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		telemetry.Debug("convert.page_count_failed", map[string]any{"error": err})
		return 0
	}
	return reader.NumPage()
}
