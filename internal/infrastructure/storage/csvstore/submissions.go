package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

var submissionsHeader = []string{"Name", "Email", "Skills", "Filename", "AIScore", "BestRole", "AIFeedback"}

// SubmissionLedger is a CSV-backed ports.SubmissionLedger. Rows are only
// ever appended; LoadAll returns them in file (= insertion) order.
type SubmissionLedger struct {
	path string
	mu   sync.Mutex
}

func NewSubmissionLedger(path string) *SubmissionLedger {
	return &SubmissionLedger{path: path}
}

func (s *SubmissionLedger) Append(ctx context.Context, rec *domain.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, created, err := s.openAppendLocked()
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if created {
		if err := w.Write(submissionsHeader); err != nil {
			return err
		}
	}
	row := []string{
		rec.Name,
		rec.Email,
		rec.Skills,
		rec.Filename,
		strconv.Itoa(rec.Score),
		rec.BestRole,
		rec.RawFeedback,
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// LoadAll returns every record in storage order. A ledger that does not
// exist yet is an empty history, not an error.
func (s *SubmissionLedger) LoadAll(ctx context.Context) ([]domain.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.SubmissionRecord{}, nil
		}
		return nil, fmt.Errorf("open submission ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records := []domain.SubmissionRecord{}
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read submission ledger: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(row) < 7 {
			continue
		}

		// A missing or non-numeric score counts as 0.
		score, err := strconv.Atoi(row[4])
		if err != nil {
			score = 0
		}

		records = append(records, domain.SubmissionRecord{
			Name:        row[0],
			Email:       row[1],
			Skills:      row[2],
			Filename:    row[3],
			Score:       score,
			BestRole:    row[5],
			RawFeedback: row[6],
		})
	}
}

func (s *SubmissionLedger) openAppendLocked() (*os.File, bool, error) {
	_, err := os.Stat(s.path)
	created := os.IsNotExist(err)
	if err != nil && !created {
		return nil, false, fmt.Errorf("stat submission ledger: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, false, fmt.Errorf("open submission ledger: %w", err)
	}
	return f, created, nil
}
