package hash

import (
	"github.com/gostonefire/coursehashmap/internal/conf"
	"github.com/gostonefire/coursehashmap/internal/utils"
)

// CourseCodeHashAlgorithm - The internally used bucket selection algorithm. Course identifiers are a department
// prefix followed by a course number (CSCI101, MATH201), so the algorithm sums the character codes of the first
// four characters, adds the number found in the following three characters and takes the sum modulo table size.
// The table size is used as given, no rounding is applied.
type CourseCodeHashAlgorithm struct {
	tableSize int64
}

// NewCourseCodeHashAlgorithm - Returns a pointer to a new CourseCodeHashAlgorithm instance
func NewCourseCodeHashAlgorithm(tableSize int64) *CourseCodeHashAlgorithm {
	ha := &CourseCodeHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, sizes below 1 are raised to 1
//   - tableSize is the number of buckets the table will address
func (C *CourseCodeHashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	C.tableSize = tableSize
}

// HashFunc1 - Given a course identifier it generates an index (bucket) between 0 and table size - 1.
// Identifiers shorter than the prefix contribute the characters they have, a number part that is missing or does
// not start with a digit counts as 0.
func (C *CourseCodeHashAlgorithm) HashFunc1(id string) int64 {
	var sum int64
	prefix := utils.Substring(id, 0, conf.IdPrefixLength)
	for i := 0; i < len(prefix); i++ {
		sum += int64(prefix[i])
	}

	sum += utils.LeadingInt(utils.Substring(id, conf.IdPrefixLength, conf.IdNumberLength))

	return sum % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CourseCodeHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
