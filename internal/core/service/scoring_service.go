package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/talentscreen/screening-api/internal/api/metrics"
	"github.com/talentscreen/screening-api/internal/core/domain"
	"github.com/talentscreen/screening-api/internal/core/ports"
)

const (
	defaultScoringTimeout = 30 * time.Second
	// resumeExcerptLimit caps how much extracted resume text is appended to
	// the prompt; beyond this the model gains little and latency grows.
	resumeExcerptLimit = 4000
)

// ScoringService asks the external model to rate the applicant's skills and
// suggest a best-fit role. Score never returns an error: invocation and
// parse failures degrade into policy-visible fallback results so the
// pipeline always produces a record.
type ScoringService struct {
	model   ports.ModelClient
	timeout time.Duration
	logger  zerolog.Logger
}

func NewScoringService(model ports.ModelClient, timeout time.Duration, logger zerolog.Logger) *ScoringService {
	if timeout <= 0 {
		timeout = defaultScoringTimeout
	}
	return &ScoringService{model: model, timeout: timeout, logger: logger}
}

func (s *ScoringService) Score(ctx context.Context, in ports.ScoreInput) domain.ScoringResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.model.GenerateText(ctx, buildPrompt(in))
	if err != nil {
		s.logger.Error().Err(err).Msg("model invocation failed")
		metrics.ScoringFallbacksTotal.WithLabelValues("invocation").Inc()
		return domain.ScoringResult{
			Score:       0,
			BestRole:    domain.RoleFailed,
			RawResponse: "AI Error: " + err.Error(),
		}
	}

	result := parseScoring(raw)
	if result.BestRole == domain.RoleUnknown {
		s.logger.Warn().Str("response", truncate(raw, 200)).Msg("model response was not a JSON object")
		metrics.ScoringFallbacksTotal.WithLabelValues("parse").Inc()
	}
	return result
}

// buildPrompt mirrors the recruiter prompt: rate the form-submitted skills
// 0-100, suggest a role, answer as a JSON object. When extraction produced
// resume text, an excerpt is appended as additional context.
func buildPrompt(in ports.ScoreInput) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following skills: ")
	sb.WriteString(in.Skills)
	sb.WriteString("\n- Give a score from 0 to 100 (higher = better fit for software engineering roles)\n")
	sb.WriteString("- Suggest the most suitable job role\n")
	sb.WriteString(`Respond in JSON: {"score": number, "best_role": "string"}`)

	if in.ResumeText != "" {
		sb.WriteString("\n\nResume text extracted from the uploaded document, for additional context:\n")
		sb.WriteString(truncate(in.ResumeText, resumeExcerptLimit))
	}
	return sb.String()
}

// parseScoring defensively pulls score and best_role out of the free-form
// model response. Anything that is not a JSON object is a parse failure:
// the raw text is still preserved for the ledger.
func parseScoring(raw string) domain.ScoringResult {
	body := gjson.Parse(raw)
	if !gjson.Valid(raw) || !body.IsObject() {
		return domain.ScoringResult{
			Score:       domain.DefaultScore,
			BestRole:    domain.RoleUnknown,
			RawResponse: raw,
		}
	}

	score := domain.DefaultScore
	if v := body.Get("score"); v.Exists() {
		score = int(v.Int())
	}

	role := domain.RoleGeneralist
	if v := body.Get("best_role"); v.Exists() {
		role = v.String()
	}

	return domain.ScoringResult{Score: score, BestRole: role, RawResponse: raw}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
