//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	t.Run("trims and upper cases an identifier", func(t *testing.T) {
		// Execute
		id := NormalizeID("  cs101\r")

		// Check
		assert.Equal(t, "CS101", id, "canonical identifier")
	})

	t.Run("normalizes a list and drops empty entries", func(t *testing.T) {
		// Execute
		ids := NormalizeIDs([]string{"math201", " ", "", "Cs101 "})

		// Check
		assert.Equal(t, []string{"MATH201", "CS101"}, ids, "canonical identifiers without empties")
	})
}

func TestLeadingInt(t *testing.T) {
	t.Run("parses leading digits like atoi", func(t *testing.T) {
		// Prepare
		input := []string{"101", "10", "1A2", "A12", "", "007"}
		expected := []int64{101, 10, 1, 0, 0, 7}

		// Execute and Check
		for i := range input {
			assert.Equalf(t, expected[i], LeadingInt(input[i]), "parses %q", input[i])
		}
	})
}

func TestSubstring(t *testing.T) {
	t.Run("clamps to the bounds of the string", func(t *testing.T) {
		// Check
		assert.Equal(t, "101", Substring("CSCI101", 4, 3), "full window")
		assert.Equal(t, "10", Substring("CSCI10", 4, 3), "short window")
		assert.Equal(t, "", Substring("CSCI", 4, 3), "window past the end")
		assert.Equal(t, "", Substring("CS", 4, 3), "start past the end")
	})
}

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest power of 2", func(t *testing.T) {
		// Prepare
		r2u := []int64{4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 262144, 16777216, 1073741824}
		input := []int64{3, 5, 9, 30, 50, 100, 129, 512, 1020, 1500, 3000, 7123, 9000, 200000, 16000000, 536870913}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			r := RoundUp2(input[i])
			assert.Equal(t, r2u[i], r, "rounds upp correct")
		}
	})
}

func TestOption(t *testing.T) {
	t.Run("some holds a value", func(t *testing.T) {
		// Execute
		o := Some("CS101")

		// Check
		assert.True(t, o.HasValue(), "has value")
		assert.False(t, o.IsEmpty(), "is not empty")
		assert.Equal(t, "CS101", o.Unwrap(), "unwraps value")
	})

	t.Run("none is empty and panics on unwrap", func(t *testing.T) {
		// Execute
		o := None[string]()

		// Check
		assert.True(t, o.IsEmpty(), "is empty")
		assert.Panics(t, func() { o.Unwrap() }, "unwrap of empty option panics")

		var zero Option[int]
		assert.True(t, zero.IsEmpty(), "zero value is empty")
	})
}
