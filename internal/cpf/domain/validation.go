package domain

import (
	"github.com/google/uuid"
)

// ValidationResult is the verdict for one candidate.
type ValidationResult struct {
	// Input is the candidate exactly as received.
	Input string
	// Normalized holds the bare digits of Input, empty when Input has a non-digit character.
	Normalized string
	Valid      bool
	// Err is the rejection reason, nil when Valid.
	Err error
}

// ValidationReport aggregates the verdicts of a batch, in input order.
type ValidationReport struct {
	ID           uuid.UUID
	Results      []*ValidationResult
	TotalChecked int64
	ValidCount   int64
	InvalidCount int64
}

// NewValidationReport builds a report over results and tallies the counts.
func NewValidationReport(id uuid.UUID, results []*ValidationResult) *ValidationReport {
	report := &ValidationReport{
		ID:           id,
		Results:      results,
		TotalChecked: int64(len(results)),
	}
	for _, r := range results {
		if r.Valid {
			report.ValidCount++
		} else {
			report.InvalidCount++
		}
	}
	return report
}
