package assert

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualToFixture compares got with the content of a fixture file.
// If GEN_FIXTURE=true is set, it writes got to the fixture file and passes
// the test. Otherwise, it compares got with the fixture content.
// The fixture path is derived from the test name: fixtures/<a.T.Name()>_<fixtureName>.txt
func (a *Assert) EqualToFixture(fixtureName string, got string) {
	fixtureFileName := fmt.Sprintf("%s_%s.txt", a.T.Name(), fixtureName)
	fixturePath := filepath.Join("fixtures", fixtureFileName)

	// Create directory if it doesn't exist
	err := os.MkdirAll(filepath.Dir(fixturePath), 0755)
	a.NoError(err, "Failed to create fixture directory")

	// Check if we should generate the fixture
	if os.Getenv("GEN_FIXTURE") == "true" {
		err := os.WriteFile(fixturePath, []byte(got), 0644)
		a.NoError(err, "Failed to write fixture file")
		return // Skip comparison when generating fixtures
	}

	// Read the fixture file
	expected, err := os.ReadFile(fixturePath)
	a.NoError(err, "Failed to read fixture file")

	// Compare got with the fixture
	a.Equal(string(expected), got, "Result does not match fixture")
}
