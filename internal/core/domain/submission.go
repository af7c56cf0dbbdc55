package domain

// Fallback values the scoring adapter degrades to. They are policy-visible
// markers, distinguishable downstream:
//
//	RoleGeneralist — live JSON response that omitted best_role
//	RoleUnknown    — live response that was not a JSON object
//	RoleFailed     — the model could not be invoked at all
const (
	RoleGeneralist = "Generalist"
	RoleUnknown    = "Unknown"
	RoleFailed     = "AI Processing Failed"

	// DefaultScore is assumed when a live response carries no usable score.
	DefaultScore = 50
)

// ScoringResult is what the scoring adapter always returns, whatever the
// model did. RawResponse keeps the unparsed model output for auditing.
type ScoringResult struct {
	Score       int    `json:"score"`
	BestRole    string `json:"best_role"`
	RawResponse string `json:"raw_response"`
}

// SubmissionRecord is one row of the append-only submission ledger. It
// references its stored document by name (weak reference; the ledger does
// not own file lifecycle) and embeds the scoring result inline.
type SubmissionRecord struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	Filename    string `json:"filename"`
	Score       int    `json:"score"`
	BestRole    string `json:"best_role"`
	RawFeedback string `json:"raw_feedback"`
}
