package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcov19-server/internal/conformance"
)

type stubDiagnosisService struct{}

func (stubDiagnosisService) Diagnose(ctx context.Context, query *DiagnosisQuery) (*DiagnosisResult, error) {
	return nil, nil
}

type legacyDiagnosisService struct{}

func (legacyDiagnosisService) Diagnose(query *DiagnosisQuery) (*DiagnosisResult, error) {
	return nil, nil
}

func TestDiagnosisServiceContract_Signature(t *testing.T) {
	methods := DiagnosisServiceContract.OwnMethods()
	require.Len(t, methods, 1)

	m := methods[0]
	assert.Equal(t, "Diagnose", m.Name)
	require.Len(t, m.Params, 3)
	assert.Equal(t, "ctx", m.Params[0].Name)
	assert.Equal(t, "Context", m.Params[0].Type.Name())
	assert.Equal(t, "query", m.Params[1].Name)
	assert.Equal(t, "*DiagnosisQuery", m.Params[1].Type.Name())
	assert.Equal(t, conformance.ReturnSlot, m.Params[2].Name)
}

func TestDiagnosisServiceContract_Implementations(t *testing.T) {
	r := conformance.NewRegistry()

	_, err := r.Define("StubDiagnosisService",
		[]*conformance.Class{DiagnosisServiceContract, conformance.ProtocolCheck},
		conformance.MethodOf("Diagnose", stubDiagnosisService.Diagnose, "ctx", "query"),
	)
	assert.NoError(t, err)

	_, err = r.Define("LegacyDiagnosisService",
		[]*conformance.Class{DiagnosisServiceContract, conformance.ProtocolCheck},
		conformance.MethodOf("Diagnose", legacyDiagnosisService.Diagnose, "query"),
	)
	assert.ErrorIs(t, err, conformance.ErrArityMismatch)
}

func TestConfigManagerContract_Members(t *testing.T) {
	assert.Equal(t, []string{
		"GetConfig",
		"GetLoggingConfig",
		"IsDevelopment",
		"IsProduction",
		"Reload",
		"Validate",
	}, ConfigManagerContract.Members())
}
