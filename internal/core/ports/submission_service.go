package ports

import (
	"context"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// SubmitInput carries one applicant submission through the intake pipeline.
type SubmitInput struct {
	Name     string
	Email    string
	Skills   string
	Filename string
	Data     []byte
}

// SubmitResult is returned after the pipeline has stored, scored and
// recorded a submission.
type SubmitResult struct {
	Filename string
	Score    int
	BestRole string
}

// SubmissionService defines the intake pipeline and the administrator
// ranking view.
type SubmissionService interface {
	// Submit runs validate → store file → extract → score → append. A
	// failed intake never reaches the ledger.
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)
	// Rank returns all records sorted by score descending; ties keep
	// insertion order.
	Rank(ctx context.Context) ([]domain.SubmissionRecord, error)
}
