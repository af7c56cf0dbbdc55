package ports

import "github.com/talentscreen/screening-api/internal/core/domain"

// TextExtractor converts a stored document into plain text for scoring
// input. Extraction is best-effort: failures are reported inside the
// Extraction value, never as an error, so they cannot block the pipeline.
type TextExtractor interface {
	Extract(storageName string) domain.Extraction
}
