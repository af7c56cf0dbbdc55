package ports

import (
	"context"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// ScoreInput carries both texts available to the scoring step: the skills
// the applicant typed into the form and whatever text extraction pulled out
// of the stored resume (empty when extraction failed).
type ScoreInput struct {
	Skills     string
	ResumeText string
}

// ScoringAdapter translates skills text into a score and role suggestion
// via the external model. It never returns an error: every failure path
// degrades into a well-formed ScoringResult.
type ScoringAdapter interface {
	Score(ctx context.Context, in ScoreInput) domain.ScoringResult
}
