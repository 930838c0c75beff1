package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/lineproc/internal/lineproc"
)

// Scenario defines a conformance test scenario: an input stream and the
// output the line processor must produce for it.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is fed to the processor as standard input.
	Input string `yaml:"input"`

	// Detect selects the too-long detection mode. Empty means eof.
	Detect string `yaml:"detect,omitempty"`

	// Expect specifies the expected output.
	Expect ExpectClause `yaml:"expect"`
}

// ExpectClause specifies expected processor behavior.
type ExpectClause struct {
	// Stdout and Stderr must match exactly. Omitted means empty.
	Stdout string `yaml:"stdout"`
	Stderr string `yaml:"stderr"`

	// Error is a substring the processor's error must contain.
	// If empty, the processor must succeed.
	Error string `yaml:"error,omitempty"`

	// TooLong, if set, must equal the processor's too-long decision.
	TooLong *bool `yaml:"too_long,omitempty"`
}

// Detection returns the scenario's detection mode.
func (s *Scenario) Detection() (lineproc.Detection, error) {
	if s.Detect == "" {
		return lineproc.DetectEOF, nil
	}
	return lineproc.ParseDetection(s.Detect)
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Input == "" {
		return fmt.Errorf("input is required")
	}

	if _, err := s.Detection(); err != nil {
		return err
	}

	return nil
}
