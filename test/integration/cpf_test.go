// Package integration provides end-to-end tests that drive the CLI commands through the
// fully assembled container.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cpfer/cmd/app/commands"
	"github.com/allisson/cpfer/internal/app"
	"github.com/allisson/cpfer/internal/config"
	"github.com/allisson/cpfer/internal/cpf/domain"
	"github.com/allisson/cpfer/internal/testutil"
)

// integrationTestContext holds the container and captured streams for one run.
type integrationTestContext struct {
	container *app.Container
	logs      *bytes.Buffer
}

// setupIntegrationTest assembles a container from cfg with logs captured in memory.
func setupIntegrationTest(t *testing.T, cfg *config.Config) *integrationTestContext {
	t.Helper()
	require.NoError(t, cfg.Validate())

	logs := &bytes.Buffer{}
	container := app.NewContainer(cfg)
	container.SetLogOutput(logs)

	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	return &integrationTestContext{container: container, logs: logs}
}

// generate runs the generate command and returns the printed lines.
func (ctx *integrationTestContext) generate(t *testing.T, body string, count int, unformatted bool) []string {
	t.Helper()

	useCase, err := ctx.container.CPFUseCase()
	require.NoError(t, err)

	var out bytes.Buffer
	err = commands.RunGenerate(
		context.Background(),
		useCase,
		ctx.container.Logger(),
		&out,
		body,
		count,
		unformatted,
		"text",
	)
	require.NoError(t, err)

	return strings.Fields(out.String())
}

func TestCPF_GenerateThenValidate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	sources := []string{"crypto", "seeded", "legacy"}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			ctx := setupIntegrationTest(t, testutil.NewConfig(func(cfg *config.Config) {
				cfg.DigitSource = source
				cfg.BatchWorkers = 8
			}))

			generated := ctx.generate(t, "", 500, false)
			require.Len(t, generated, 500)
			for _, value := range generated {
				assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, value)
			}

			useCase, err := ctx.container.CPFUseCase()
			require.NoError(t, err)

			var out bytes.Buffer
			err = commands.RunValidate(
				context.Background(),
				useCase,
				ctx.container.Logger(),
				&out,
				generated,
				"json",
			)
			require.NoError(t, err)

			var report map[string]interface{}
			require.NoError(t, json.Unmarshal(out.Bytes(), &report))
			assert.Equal(t, float64(500), report["valid_count"])
			assert.Equal(t, true, report["passed"])
		})
	}
}

func TestCPF_PartialBodyIsHonoured(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, testutil.NewConfig())

	generated := ctx.generate(t, "529.982.2__", 50, true)

	for _, value := range generated {
		assert.True(t, strings.HasPrefix(value, "5299822"), value)
		assert.True(t, domain.IsValid(value), value)
	}

	full := ctx.generate(t, "111.444.477", 1, false)
	assert.Equal(t, []string{"111.444.477-47"}, full)
}

func TestCPF_ValidateReportsInvalidCandidates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, testutil.NewConfig(func(cfg *config.Config) {
		cfg.MetricsEnabled = true
	}))

	useCase, err := ctx.container.CPFUseCase()
	require.NoError(t, err)

	candidates := []string{"529.982.247-25", "111.111.111-11", "529.982.247-24", "abc"}

	var out bytes.Buffer
	err = commands.RunValidate(context.Background(), useCase, ctx.container.Logger(), &out, candidates, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 invalid cpf(s)")
	assert.Contains(t, out.String(), "VALID    529.982.247-25")
	assert.Contains(t, out.String(), "INVALID  abc")

	var metricsOut bytes.Buffer
	require.NoError(t, ctx.container.WriteMetrics(&metricsOut))
	assert.Regexp(
		t,
		`cpfer_operations_total\{[^}]*operation="cpf_validate_batch"[^}]*status="success"[^}]*\} 1`,
		metricsOut.String(),
	)
	assert.Regexp(
		t,
		`cpfer_operations_total\{[^}]*operation="cpf_validate_item"[^}]*status="invalid"[^}]*\} 3`,
		metricsOut.String(),
	)
	assert.Regexp(
		t,
		`cpfer_operations_total\{[^}]*operation="cpf_validate_item"[^}]*status="valid"[^}]*\} 1`,
		metricsOut.String(),
	)
}
