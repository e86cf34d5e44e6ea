package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var poolingBatch = filepath.Join("..", "request", "testdata", "pooling.yaml")

func runRenderCmd(t *testing.T, format string, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"--format", format, "render"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderText(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", poolingBatch, "--run-id", "run-1")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render_text", []byte(out))
}

func TestRenderJSON(t *testing.T) {
	out, _, err := runRenderCmd(t, "json", poolingBatch, "--run-id", "run-42")
	require.NoError(t, err)

	var resp struct {
		Status  string `json:"status"`
		TraceID string `json:"trace_id"`
		Data    struct {
			RunID   string `json:"run_id"`
			Batch   string `json:"batch"`
			Entries []struct {
				Name    string `json:"name"`
				Literal string `json:"literal"`
			} `json:"entries"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-42", resp.TraceID)
	assert.Equal(t, "run-42", resp.Data.RunID)
	assert.Equal(t, "max_pool_2d", resp.Data.Batch)
	require.Len(t, resp.Data.Entries, 7)
	assert.Equal(t, "auto_pad", resp.Data.Entries[3].Name)
	assert.Equal(t, "ngraph::op::PadType::SAME_UPPER", resp.Data.Entries[3].Literal)
}

func TestRenderCUE(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", filepath.Join("..", "request", "testdata", "pooling.cue"))
	require.NoError(t, err)
	assert.Contains(t, out, "rounding = ngraph::op::RoundingType::CEIL;\n")
}

func TestRenderOutputFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "result.json")

	out, _, err := runRenderCmd(t, "text", poolingBatch, "--run-id", "run-1", "-o", outputFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote result to "+outputFile)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	expected, err := os.ReadFile(filepath.Join("..", "render", "testdata", "golden", "max_pool_2d.json.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))
}

func TestRenderOutputFileUnwritable(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "missing", "result.json")

	out, _, err := runRenderCmd(t, "text", poolingBatch, "-o", outputFile)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E007]")
}

func TestRenderVerboseGoesToStderr(t *testing.T) {
	out, errOut, err := runRenderCmd(t, "json", poolingBatch, "-v", "--run-id", "run-1")
	require.NoError(t, err)
	assert.Contains(t, errOut, `Loaded batch "max_pool_2d" with 7 literal(s)`)
	assert.Contains(t, errOut, "Run run-1 rendered 7 of 7 literal(s)")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
}

func TestRenderTranslationFailures(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", filepath.Join("testdata", "batches", "bad_tokens.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 error(s)")

	assert.Contains(t, out, "✗ Rendering failed")
	assert.Contains(t, out, "E201: literals[0] exclude_pad")
	assert.Contains(t, out, "E203: literals[2] kernel")
}

func TestRenderFailFast(t *testing.T) {
	out, _, err := runRenderCmd(t, "json", filepath.Join("testdata", "batches", "bad_tokens.yaml"), "--fail-fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownToken, resp.Error.Code)
	assert.Len(t, resp.Data, 1)
}

func TestRenderInvalidBatch(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", filepath.Join("testdata", "batches", "invalid.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "✗ Invalid batch")
	assert.Contains(t, out, "[E214] literals[0].kind")
	assert.Contains(t, out, "[E213] literals[1].name")
}

func TestRenderInvalidBatchJSON(t *testing.T) {
	out, _, err := runRenderCmd(t, "json", filepath.Join("testdata", "batches", "invalid.yaml"))
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E214", resp.Error.Code)
	assert.Len(t, resp.Data, 2)
}

func TestRenderMissingFile(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", "/nonexistent/batch.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "not found")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	out, _, err := runRenderCmd(t, "text", path)
	require.Error(t, err)
	assert.Contains(t, out, "Error [E008]")
}

func TestRenderRejectsNullArgs(t *testing.T) {
	out, _, err := runRenderCmd(t, "text", filepath.Join("testdata", "batches", "null_arg.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
	assert.Contains(t, out, "line 5 column 18: argument must not be null")
	assert.NotContains(t, out, "net_precisions =")
}

func TestRenderRejectsFloatArgsAtLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: floats
literals:
  - name: kernel
    kind: ints
    args: [1.5]
`), 0644))

	out, _, err := runRenderCmd(t, "text", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
}
