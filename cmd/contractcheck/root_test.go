package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcov19-server/internal/conformance"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	for _, v := range []string{"XCOV19_ENVIRONMENT", "XCOV19_LOGGING_LEVEL", "XCOV19_LOGGING_FORMAT", "XCOV19_LOGGING_OUTPUT", "XCOV19_REPORT_FORMAT"} {
		t.Setenv(v, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_TextReport(t *testing.T) {
	out, err := runRoot(t)

	require.NoError(t, err)
	assert.Contains(t, out, "DiagnosisServiceImpl implements DiagnosisService: Diagnose\n")
	assert.Contains(t, out, "Manager implements ConfigManager: GetConfig, GetLoggingConfig, IsDevelopment, IsProduction, Reload, Validate\n")
}

func TestRootCmd_JSONReport(t *testing.T) {
	out, err := runRoot(t, "--output", "json")
	require.NoError(t, err)

	var reports []conformance.ContractReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))

	byClass := make(map[string]conformance.ContractReport)
	for _, r := range reports {
		byClass[r.Class] = r
	}
	require.Contains(t, byClass, "DiagnosisServiceImpl")
	assert.Equal(t, "DiagnosisService", byClass["DiagnosisServiceImpl"].Parent)
	assert.Equal(t, []string{"Diagnose"}, byClass["DiagnosisServiceImpl"].Methods)
}

func TestRootCmd_InvalidConfiguration(t *testing.T) {
	_, err := runRoot(t, "--output", "pdf")
	assert.ErrorContains(t, err, "invalid report format")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := runRoot(t, "extra")
	assert.Error(t, err)
}

func TestWriteReport_Empty(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	var out bytes.Buffer

	require.NoError(t, writeReport(&out, logger, nil, "text"))
	assert.Empty(t, out.String())

	require.NoError(t, writeReport(&out, logger, []conformance.ContractReport{}, "json"))
	assert.JSONEq(t, "[]", out.String())
}
