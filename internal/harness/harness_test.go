package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestRun_PassingScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "inline",
		Description: "inline scenario",
		Input:       "3 4\nabc\n",
		Expect: ExpectClause{
			Stdout:  "7\ncba\n",
			TooLong: boolPtr(false),
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)

	require.Len(t, result.Trace, 2)
	assert.Equal(t, TraceEvent{Stream: StreamStdout, Data: "7\n", Seq: 1}, result.Trace[0])
	assert.Equal(t, TraceEvent{Stream: StreamStdout, Data: "cba\n", Seq: 2}, result.Trace[1])
}

func TestRun_TraceKeepsStreamOrder(t *testing.T) {
	scenario := &Scenario{
		Name:        "interleaved",
		Description: "sum then diagnostic",
		Input:       "1 2\nabcdefghij\n",
		Expect: ExpectClause{
			Stdout: "3\n",
			Stderr: "String is too long\n",
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)

	require.Len(t, result.Trace, 2)
	assert.Equal(t, StreamStdout, result.Trace[0].Stream)
	assert.Equal(t, StreamStderr, result.Trace[1].Stream)
	assert.Less(t, result.Trace[0].Seq, result.Trace[1].Seq)
}

func TestRun_ReportsMismatches(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong",
		Description: "expects the wrong output",
		Input:       "1 2\nabcdefghij\n",
		Expect: ExpectClause{
			Stdout:  "3\njihgfedcba\n",
			TooLong: boolPtr(false),
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "stdout")
	assert.Contains(t, result.Errors[1], "stderr")
	assert.Contains(t, result.Errors[2], "too_long")
}

func TestRun_ExpectedError(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_int",
		Description: "malformed integer",
		Input:       "a b\nc\n",
		Expect:      ExpectClause{Error: "malformed integer"},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Contains(t, result.Err, "first integer")
}

func TestRun_UnexpectedError(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_int",
		Description: "malformed integer without expectation",
		Input:       "a b\nc\n",
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected error")
}

func TestRun_MissingExpectedError(t *testing.T) {
	scenario := &Scenario{
		Name:        "no_error",
		Description: "expects an error that never happens",
		Input:       "1 1\nx\n",
		Expect: ExpectClause{
			Stdout: "2\nx\n",
			Error:  "missing token",
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "got none")
}

func TestRun_InvalidDetection(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Input: "1 1 x", Detect: "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid detection mode")
}

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	require.Error(t, err)
}

func TestScenarioFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".yaml")
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)
			assert.Equal(t, name, scenario.Name)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_Format(t *testing.T) {
	scenario := &Scenario{Name: "snap", Description: "d", Input: "1 2 ab"}
	result, err := Run(scenario)
	require.NoError(t, err)

	data, err := Snapshot(scenario, result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"detect":"eof","scenario_name":"snap","too_long":false,"trace":[{"data":"3\n","seq":1,"stream":"stdout"},{"data":"ba\n","seq":2,"stream":"stdout"}]}`,
		string(data))
}
