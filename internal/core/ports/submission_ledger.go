package ports

import (
	"context"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// SubmissionLedger is the durable, append-only submission history.
type SubmissionLedger interface {
	// Append durably writes one record. No uniqueness constraint: an
	// applicant may submit any number of times.
	Append(ctx context.Context, rec *domain.SubmissionRecord) error
	// LoadAll returns every record in insertion order. A store that does
	// not exist yet yields an empty slice, not an error.
	LoadAll(ctx context.Context) ([]domain.SubmissionRecord, error)
}
