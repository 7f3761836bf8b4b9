package model

import (
	"slices"

	"github.com/gostonefire/coursehashmap/hashfunc"
	"github.com/gostonefire/coursehashmap/internal/utils"
	"github.com/gostonefire/coursehashmap/policy"
)

// Course - Represents one course record
//   - ID is the canonical (trimmed, upper case) course identifier and the key in the table
//   - Name is the display name
//   - Prerequisites is the ordered list of canonical identifiers of prerequisite courses
type Course struct {
	ID            string
	Name          string
	Prerequisites []string
}

// NewCourse - Returns a Course with identifier and prerequisites in canonical form
func NewCourse(id, name string, prerequisites []string) Course {
	return Course{
		ID:            utils.NormalizeID(id),
		Name:          name,
		Prerequisites: utils.NormalizeIDs(prerequisites),
	}
}

// Clone - Returns a copy of the course that shares no memory with the original
func (C Course) Clone() Course {
	C.Prerequisites = slices.Clone(C.Prerequisites)
	return C
}

// Node - Represents one course in a bucket overflow chain
type Node struct {
	Course Course
	Next   *Node
}

// Bucket - Represents one slot in the table, the head course is stored by value and any further courses
// that hashed to the same slot are linked from Overflow.
// A bucket with an empty Head never has an Overflow chain.
type Bucket struct {
	Head     utils.Option[Course]
	Overflow *Node
}

// IsEmpty - Returns true if the bucket holds no course
func (B Bucket) IsEmpty() bool {
	return B.Head.IsEmpty()
}

// StorageParameters - Represents parameters specific for the table implementation
type StorageParameters struct {
	NumberOfBucketsNeeded    int64
	NumberOfBucketsAvailable int64
	DuplicatePolicy          policy.Duplicates
	InternalAlgorithm        bool
}

// TableConf - Is a struct to be passed in the call to NewSCTable and contains configuration that affects
// the table.
//   - NumberOfBucketsNeeded is the number of buckets requested
//   - DuplicatePolicy decides how an already stored identifier is handled
//   - HashAlgorithm is the hash function to use, nil selects the internal course code algorithm
type TableConf struct {
	NumberOfBucketsNeeded int64
	DuplicatePolicy       policy.Duplicates
	HashAlgorithm         hashfunc.HashAlgorithm
}
