// Package pdf extracts plain text from stored resumes using go-fitz
// (MuPDF). Extraction is best-effort by contract: every failure becomes a
// tagged Extraction value so the scoring pipeline is never blocked by a
// corrupt or unreadable document.
package pdf

import (
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/rs/zerolog"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// Extractor reads documents out of the resume directory by storage name.
type Extractor struct {
	dir    string
	logger zerolog.Logger
}

func NewExtractor(dir string, logger zerolog.Logger) *Extractor {
	return &Extractor{dir: dir, logger: logger}
}

// Extract opens the stored document and concatenates its pages' text.
func (e *Extractor) Extract(storageName string) domain.Extraction {
	doc, err := fitz.New(filepath.Join(e.dir, storageName))
	if err != nil {
		return failed(err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return failed(err)
		}
		sb.WriteString(text)
	}

	e.logger.Debug().Str("filename", storageName).Int("chars", sb.Len()).Msg("text extracted")
	return domain.Extraction{Text: strings.TrimSpace(sb.String())}
}

func failed(err error) domain.Extraction {
	return domain.Extraction{Failed: true, Cause: err.Error()}
}
