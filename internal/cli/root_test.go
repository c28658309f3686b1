package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/application/usecase"
	"github.com/bibbank/screening-service/internal/cli"
	"github.com/bibbank/screening-service/internal/domain/service"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRiskCommand(t *testing.T) {
	path := writeFile(t, "profile.yaml", `
subject_id: SUBJ-1
criminal_record:
  convictions: 3
  severity: high
watch_list: true
`)

	out, err := run(t, "", "risk", "-f", path)
	require.NoError(t, err)

	var resp dto.RiskScoreResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 70.0, resp.Overall)
	assert.Equal(t, "HIGH", resp.Level)
	assert.Equal(t, "SUBJ-1", resp.SubjectID)
}

func TestRiskCommand_Stdin(t *testing.T) {
	out, err := run(t, `{"watch_list": true}`, "risk", "-f", "-")
	require.NoError(t, err)

	var resp dto.RiskScoreResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 40.0, resp.Overall)
}

func TestRiskCommand_Batch(t *testing.T) {
	path := writeFile(t, "profiles.yaml", `
profiles:
  - subject_id: a
    watch_list: true
  - subject_id: b
    document_issues: 2
`)

	out, err := run(t, "", "risk", "--batch", "-f", path)
	require.NoError(t, err)

	var resp dto.ScoreRiskBatchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 40.0, resp.Results[0].Overall)
	assert.Equal(t, 14.0, resp.Results[1].Overall)
}

func TestRiskCommand_Errors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		path := writeFile(t, "profile.yaml", "watchlist: true\n")
		_, err := run(t, "", "risk", "-f", path)
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, "profile.yaml", "financial_flags: -3\n")
		_, err := run(t, "", "risk", "-f", path)
		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	})

	t.Run("missing file flag", func(t *testing.T) {
		_, err := run(t, "", "risk")
		assert.Error(t, err)
	})
}

func TestDuplicateCommand(t *testing.T) {
	record := `
name: John Doe
date_of_birth: "1990-01-01"
nationality: Liberian
`
	a := writeFile(t, "a.yaml", record)
	b := writeFile(t, "b.yaml", record)

	t.Run("default threshold", func(t *testing.T) {
		out, err := run(t, "", "duplicate", "-a", a, "-b", b)
		require.NoError(t, err)

		var resp dto.DuplicateVerdictResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.False(t, resp.IsDuplicate)
		assert.Equal(t, 70.0, resp.Confidence)
	})

	t.Run("lowered threshold", func(t *testing.T) {
		out, err := run(t, "", "duplicate", "-a", a, "-b", b, "--threshold", "65")
		require.NoError(t, err)

		var resp dto.DuplicateVerdictResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.True(t, resp.IsDuplicate)
		assert.Equal(t, 65.0, resp.Threshold)
	})

	for _, threshold := range []string{"NaN", "+Inf", "500", "-1"} {
		t.Run("rejects threshold "+threshold, func(t *testing.T) {
			out, err := run(t, "", "duplicate", "-a", a, "-b", b, "--threshold="+threshold)
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrInvalidThreshold)
			assert.Empty(t, out)
		})
	}
}

func TestQueryCommand(t *testing.T) {
	out, err := run(t, "", "query", "find", "the", "watchlist", "report")
	require.NoError(t, err)

	var resp dto.QueryAnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "search", resp.Intent.Intent)
	assert.Equal(t, 85.0, resp.Intent.Confidence)
}

func TestBiometricCommand(t *testing.T) {
	out, err := run(t, "", "biometric", "--subject", "SUBJ-001", "--face", "face-sample")
	require.NoError(t, err)

	var resp dto.MatchBiometricResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.FaceScore)
	assert.Equal(t, 81, *resp.FaceScore)
	assert.Nil(t, resp.FingerprintScore)

	_, err = run(t, "", "biometric", "--subject", "SUBJ-001")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}
