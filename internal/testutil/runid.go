package testutil

// DefaultRunID is returned by a FixedRunIDGenerator created with an empty ID.
const DefaultRunID = "test-run-default"

// FixedRunIDGenerator returns the same run ID every time, so JSON responses
// can be compared byte for byte.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator returning id, or DefaultRunID
// when id is empty.
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
