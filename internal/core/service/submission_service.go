package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentscreen/screening-api/internal/api/metrics"
	"github.com/talentscreen/screening-api/internal/core/domain"
	"github.com/talentscreen/screening-api/internal/core/ports"
)

// SubmissionService runs the intake-and-scoring pipeline and serves the
// administrator ranking view.
type SubmissionService struct {
	docs      ports.DocumentStore
	extractor ports.TextExtractor
	scorer    ports.ScoringAdapter
	ledger    ports.SubmissionLedger
	logger    zerolog.Logger
}

func NewSubmissionService(
	docs ports.DocumentStore,
	extractor ports.TextExtractor,
	scorer ports.ScoringAdapter,
	ledger ports.SubmissionLedger,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		docs:      docs,
		extractor: extractor,
		scorer:    scorer,
		ledger:    ledger,
		logger:    logger,
	}
}

// Submit runs validate → store file → extract → score → append. Intake
// failures abort before any ledger write; scoring failures never abort,
// they degrade into the record instead.
func (s *SubmissionService) Submit(ctx context.Context, in ports.SubmitInput) (*ports.SubmitResult, error) {
	storageName, err := s.docs.Store(in.Filename, in.Data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedType):
			metrics.UploadsRejectedTotal.WithLabelValues("unsupported_type").Inc()
		case errors.Is(err, domain.ErrStorageExhausted):
			metrics.UploadsRejectedTotal.WithLabelValues("storage_exhausted").Inc()
		}
		return nil, err
	}

	extraction := s.extractor.Extract(storageName)
	if extraction.Failed {
		s.logger.Warn().Str("filename", storageName).Str("cause", extraction.Cause).Msg("text extraction failed")
		metrics.ExtractionFailuresTotal.Inc()
	}

	started := time.Now()
	result := s.scorer.Score(ctx, ports.ScoreInput{
		Skills:     in.Skills,
		ResumeText: extraction.Text,
	})
	metrics.ScoringDuration.WithLabelValues(outcomeLabel(result)).Observe(time.Since(started).Seconds())

	rec := &domain.SubmissionRecord{
		Name:        in.Name,
		Email:       in.Email,
		Skills:      in.Skills,
		Filename:    storageName,
		Score:       result.Score,
		BestRole:    result.BestRole,
		RawFeedback: result.RawResponse,
	}
	if err := s.ledger.Append(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("filename", storageName).Msg("ledger append failed")
		return nil, err
	}

	metrics.SubmissionsProcessedTotal.WithLabelValues(outcomeLabel(result)).Inc()
	s.logger.Info().
		Str("filename", storageName).
		Int("score", result.Score).
		Str("best_role", result.BestRole).
		Msg("submission recorded")

	return &ports.SubmitResult{
		Filename: storageName,
		Score:    result.Score,
		BestRole: result.BestRole,
	}, nil
}

// Rank loads the ledger and sorts by score descending. The sort is stable:
// equal scores keep their insertion order.
func (s *SubmissionService) Rank(ctx context.Context) ([]domain.SubmissionRecord, error) {
	records, err := s.ledger.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	return records, nil
}

func outcomeLabel(r domain.ScoringResult) string {
	switch r.BestRole {
	case domain.RoleFailed:
		return "failed"
	case domain.RoleUnknown:
		return "degraded"
	default:
		return "scored"
	}
}
