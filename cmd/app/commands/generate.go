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

// GenerateRequest holds the generate command input.
type GenerateRequest struct {
	Body   string
	Count  int
	Format string
}

// Validate checks the generate command input.
func (r *GenerateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Body, customValidation.BodyMask),
		validation.Field(&r.Count, validation.Required, validation.Min(1)),
		validation.Field(&r.Format, validation.Required, validation.In("text", "json")),
	)
	return customValidation.WrapValidationError(err)
}

// RunGenerate generates count CPFs completing the body mask and prints them to writer.
// Absent slots in the mask ('_' or '?') are filled with random digits.
func RunGenerate(
	ctx context.Context,
	useCase cpfUseCase.CPFUseCase,
	logger *slog.Logger,
	writer io.Writer,
	bodyMask string,
	count int,
	unformatted bool,
	format string,
) error {
	req := GenerateRequest{Body: bodyMask, Count: count, Format: format}
	if err := req.Validate(); err != nil {
		return err
	}

	body, err := domain.ParseBody(bodyMask)
	if err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}

	logger.Debug("generating cpfs",
		slog.String("body", body.Mask()),
		slog.Int("count", count),
	)

	var cpfs []*domain.CPF
	if count == 1 {
		cpf, err := useCase.Generate(ctx, body)
		if err != nil {
			return fmt.Errorf("failed to generate cpf: %w", err)
		}
		cpfs = []*domain.CPF{cpf}
	} else {
		cpfs, err = useCase.GenerateBatch(ctx, body, count)
		if err != nil {
			return fmt.Errorf("failed to generate cpfs: %w", err)
		}
	}

	values := make([]string, 0, len(cpfs))
	for _, cpf := range cpfs {
		if unformatted {
			values = append(values, cpf.Digits())
		} else {
			values = append(values, cpf.String())
		}
	}

	if format == "json" {
		if err := outputGenerateJSON(writer, body, values); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputGenerateText(writer, values)
	}

	logger.Info("cpfs generated", slog.Int("count", len(values)))
	return nil
}

// outputGenerateText prints one CPF per line.
func outputGenerateText(writer io.Writer, values []string) {
	for _, value := range values {
		_, _ = fmt.Fprintln(writer, value)
	}
}

// outputGenerateJSON outputs the generated CPFs in JSON format for machine consumption.
func outputGenerateJSON(writer io.Writer, body domain.Body, values []string) error {
	result := map[string]interface{}{
		"body":  body.Mask(),
		"count": len(values),
		"cpfs":  values,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
