package hash

import (
	"hash/crc32"

	"github.com/gostonefire/coursehashmap/internal/utils"
)

// SeparateChainingHashAlgorithm - Alternative bucket selection algorithm implemented using crc32.ChecksumIEEE to
// create a hash value over the identifier and then applying bucket = hash & (actualTableSize - 1) to get the bucket
// number, where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
// It spreads arbitrary identifiers better than CourseCodeHashAlgorithm at the cost of a rounded up table size.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given a course identifier it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HashFunc1(id string) int64 {
	h := int64(crc32.ChecksumIEEE([]byte(id)))
	return h & (S.tableSize - 1)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
