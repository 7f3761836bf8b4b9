//go:build unit

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparateChainingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size rounded up to power of 2", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(179)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(256), tableSize, "correct tableSize value")
	})
}

func TestSeparateChainingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid and stable bucket number", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)

		for _, id := range []string{"CSCI101", "CSCI280", "MATH201", "CS"} {
			// Execute
			bucketNo := h.HashFunc1(id)

			// Check
			assert.GreaterOrEqualf(t, bucketNo, int64(0), "bucket of %s not negative", id)
			assert.Lessf(t, bucketNo, int64(16), "bucket of %s within table size", id)
			assert.Equalf(t, bucketNo, h.HashFunc1(id), "bucket of %s is stable", id)
		}
	})
}

func TestSeparateChainingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)
		tableSize := h.GetTableSize()
		assert.Equal(t, int64(16), tableSize, "correct tableSize value")

		// Execute
		h.SetTableSize(16 + 7)

		// Check
		tableSize = h.GetTableSize()
		assert.Equal(t, int64(32), tableSize, "correct tableSize value")
	})
}
