package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	"github.com/allisson/cpfer/internal/cpf/domain"
	cpfUseCase "github.com/allisson/cpfer/internal/cpf/usecase"
	customValidation "github.com/allisson/cpfer/internal/validation"
)

// ValidateRequest holds the validate command input.
type ValidateRequest struct {
	Candidates []string
	Format     string
}

// Validate checks the validate command input. Candidates must not be blank; whether they are
// valid CPFs is decided by RunValidate.
func (r *ValidateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Candidates,
			validation.Required,
			validation.Each(customValidation.NotBlank),
		),
		validation.Field(&r.Format, validation.Required, validation.In("text", "json")),
	)
	return customValidation.WrapValidationError(err)
}

// RunValidate checks every candidate and prints a verdict per line followed by a summary.
// Returns an error when at least one candidate is invalid so the process exits non-zero.
func RunValidate(
	ctx context.Context,
	useCase cpfUseCase.CPFUseCase,
	logger *slog.Logger,
	writer io.Writer,
	candidates []string,
	format string,
) error {
	req := ValidateRequest{Candidates: candidates, Format: format}
	if err := req.Validate(); err != nil {
		return err
	}

	logger.Debug("validating cpfs", slog.Int("count", len(candidates)))

	report, err := useCase.ValidateBatch(ctx, candidates)
	if err != nil {
		return fmt.Errorf("failed to validate cpfs: %w", err)
	}

	if format == "json" {
		if err := outputValidateJSON(writer, report); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputValidateText(writer, report)
	}

	logger.Info("validation completed",
		slog.String("report_id", report.ID.String()),
		slog.Int64("total_checked", report.TotalChecked),
		slog.Int64("valid", report.ValidCount),
		slog.Int64("invalid", report.InvalidCount),
	)

	if report.InvalidCount > 0 {
		return fmt.Errorf("validation failed: %d invalid cpf(s)", report.InvalidCount)
	}

	return nil
}

// outputValidateText outputs the verdicts in human-readable text format.
func outputValidateText(writer io.Writer, report *domain.ValidationReport) {
	for _, result := range report.Results {
		if result.Valid {
			_, _ = fmt.Fprintf(writer, "VALID    %s\n", result.Input)
			continue
		}
		_, _ = fmt.Fprintf(writer, "INVALID  %s (%v)\n", result.Input, result.Err)
	}

	_, _ = fmt.Fprintf(writer, "\nTotal Checked:  %d\n", report.TotalChecked)
	_, _ = fmt.Fprintf(writer, "Valid:          %d\n", report.ValidCount)
	_, _ = fmt.Fprintf(writer, "Invalid:        %d\n", report.InvalidCount)
}

type validateResultJSON struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized,omitempty"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
}

// outputValidateJSON outputs the verdicts in JSON format for machine consumption.
func outputValidateJSON(writer io.Writer, report *domain.ValidationReport) error {
	results := make([]validateResultJSON, 0, len(report.Results))
	for _, r := range report.Results {
		item := validateResultJSON{
			Input:      r.Input,
			Normalized: r.Normalized,
			Valid:      r.Valid,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		results = append(results, item)
	}

	result := map[string]interface{}{
		"id":            report.ID.String(),
		"total_checked": report.TotalChecked,
		"valid_count":   report.ValidCount,
		"invalid_count": report.InvalidCount,
		"results":       results,
		"passed":        report.InvalidCount == 0,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
