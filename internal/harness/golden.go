package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the deterministic golden form of a scenario run.
//
// The snapshot holds the scenario name, the detection mode, the ordered
// trace of writes, the error text (if any) and the too-long decision.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		trace[i] = map[string]any{
			"stream": event.Stream,
			"data":   event.Data,
			"seq":    event.Seq,
		}
	}

	detect, err := scenario.Detection()
	if err != nil {
		return nil, err
	}

	snapshot := map[string]any{
		"scenario_name": scenario.Name,
		"detect":        string(detect),
		"trace":         trace,
	}
	if result.Err != "" {
		snapshot["error"] = result.Err
	}
	if result.Outcome != nil {
		snapshot["too_long"] = result.Outcome.TooLong
	}

	return MarshalCanonical(snapshot)
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/scenarios/golden/{scenario.Name}.golden, the layout the check
// command expects.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := Snapshot(scenario, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/scenarios/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
