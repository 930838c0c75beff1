// Package harness runs conformance scenarios against the line processor.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	input: "3 4\nabc\n"
//	detect: eof          # optional: eof (default) or direct
//	expect:
//	  stdout: "7\ncba\n"
//	  stderr: ""
//	  error: ""          # optional: substring of the expected error
//	  too_long: false    # optional
//
// Unknown fields are rejected so that typos do not silently weaken a
// scenario.
//
// # Deterministic Output
//
// Every write to the captured streams is recorded as a TraceEvent with a
// sequence number from testutil.Sequencer. The trace keeps the interleaving
// of standard output and standard error, which a plain pair of buffers
// would lose.
//
// Snapshots of the trace are serialized with MarshalCanonical and compared
// against golden files:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/reverse_short.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
