package separatechaining

import (
	"fmt"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/hashfunc"
	"github.com/gostonefire/coursehashmap/internal/hash"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/overflow"
	"github.com/gostonefire/coursehashmap/internal/utils"
	"github.com/gostonefire/coursehashmap/policy"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It holds a fixed array of buckets where each bucket stores its first course by value and links any further
// courses hashing to the same bucket in a singly linked overflow chain owned by the bucket.
type SCTable struct {
	buckets                  []model.Bucket
	records                  int64
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	duplicatePolicy          policy.Duplicates
	hashAlgorithm            hashfunc.HashAlgorithm
	internalAlgorithm        bool
}

// NewSCTable - Returns a pointer to a new, empty instance of the Separate Chaining table implementation.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting the table
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(tableConf model.TableConf) (scTable *SCTable, err error) {
	if tableConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if !tableConf.DuplicatePolicy.Valid() {
		err = fmt.Errorf("invalid duplicate policy %s", tableConf.DuplicatePolicy)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewCourseCodeHashAlgorithm(tableConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBucketsNeeded)
	}

	numberOfBuckets := tableConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", numberOfBuckets)
		return
	}

	scTable = &SCTable{
		buckets:                  make([]model.Bucket, numberOfBuckets),
		numberOfBucketsNeeded:    tableConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		duplicatePolicy:          tableConf.DuplicatePolicy,
		hashAlgorithm:            tableConf.HashAlgorithm,
		internalAlgorithm:        internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBucketsNeeded:    S.numberOfBucketsNeeded,
		NumberOfBucketsAvailable: S.numberOfBucketsAvailable,
		DuplicatePolicy:          S.duplicatePolicy,
		InternalAlgorithm:        S.internalAlgorithm,
	}

	return
}

// Len - Returns the number of courses currently stored
func (S *SCTable) Len() int64 {
	return S.records
}

// GetBucketNo - Returns which bucket number the given identifier results in
//   - id is the identifier of a course, it is normalized before hashing
func (S *SCTable) GetBucketNo(id string) (bucketNo int64, err error) {
	return S.getBucketNo(utils.NormalizeID(id))
}

// GetBucket - Returns a bucket with its head course given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct holding a copy of the head course, its Overflow link is left nil
//   - overflowIterator is a Records struct that can be used to get any overflow courses belonging to the bucket.
//   - err is standard error
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, S.numberOfBucketsAvailable-1)
		return
	}

	stored := S.buckets[bucketNo]
	if stored.Head.HasValue() {
		bucket.Head = utils.Some(stored.Head.Unwrap().Clone())
	}
	overflowIterator = overflow.NewRecords(stored.Overflow)

	return
}

// Get - Gets the first course in chain order that corresponds to the given identifier.
//   - id is the identifier of a course, it is normalized before the lookup
//
// It returns:
//   - course is a copy of the matching course if found, if not found an error of type catalogerr.NoRecordFound is also returned.
//   - err is either of type catalogerr.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Get(id string) (course model.Course, err error) {
	id = utils.NormalizeID(id)

	bucketNo, err := S.getBucketNo(id)
	if err != nil {
		return
	}

	stored, err := S.find(&S.buckets[bucketNo], id)
	if err != nil {
		return
	}

	course = stored.Clone()

	return
}

// Set - Adds a course to the bucket its identifier hashes to. An empty bucket takes the course as its head,
// otherwise the course is appended at the tail of the bucket overflow chain. What happens when the identifier is
// already stored is decided by the duplicate policy given when creating the table.
//   - course is the course to store, its identifier is expected in canonical form
//
// It returns:
//   - err is of type catalogerr.DuplicateRecord when rejected by policy, or a standard error if something went wrong
func (S *SCTable) Set(course model.Course) (err error) {
	course = course.Clone()
	course.ID = utils.NormalizeID(course.ID)

	bucketNo, err := S.getBucketNo(course.ID)
	if err != nil {
		return
	}
	bucket := &S.buckets[bucketNo]

	// An empty bucket can take the course directly, no need to look for duplicates
	if bucket.Head.IsEmpty() {
		bucket.Head = utils.Some(course)
		bucket.Overflow = nil
		S.records++
		return
	}

	if S.duplicatePolicy != policy.Chain {
		if _, findErr := S.find(bucket, course.ID); findErr == nil {
			if S.duplicatePolicy == policy.Reject {
				err = catalogerr.NewDuplicateRecord(course.ID)
				return
			}
			S.replace(bucket, course)
			return
		}
	}

	S.appendOverflow(bucket, course)
	S.records++

	return
}

// Delete - Removes the first course in chain order that corresponds to the given identifier.
// If the head of the bucket is removed the first overflow course is promoted to head, a course in the overflow
// chain is spliced out by linking its predecessor to its successor.
//   - id is the identifier of a course, it is normalized before the lookup
//
// It returns:
//   - err is either of type catalogerr.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Delete(id string) (err error) {
	id = utils.NormalizeID(id)

	bucketNo, err := S.getBucketNo(id)
	if err != nil {
		return
	}
	bucket := &S.buckets[bucketNo]

	if bucket.Head.IsEmpty() {
		err = catalogerr.NewNoRecordFound(id)
		return
	}

	if bucket.Head.Unwrap().ID == id {
		S.removeHead(bucket)
		S.records--
		return
	}

	var previous *model.Node
	for node := bucket.Overflow; node != nil; node = node.Next {
		if node.Course.ID == id {
			S.unlink(bucket, previous, node)
			S.records--
			return
		}
		previous = node
	}

	err = catalogerr.NewNoRecordFound(id)

	return
}

// DeleteAt - Removes the course at a given position in a bucket, regardless of its identifier.
// Position 0 is the head and position n the n:th course of the overflow chain, the same order as GetBucket gives.
// Removing the head promotes the first overflow course like Delete does.
//   - bucketNo is the identifier of a bucket
//   - position is the place of the course in the bucket
//
// It returns:
//   - course is the removed course
//   - err is either of type catalogerr.NoRecordFound if the position holds no course, or a standard error
func (S *SCTable) DeleteAt(bucketNo int64, position int) (course model.Course, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, S.numberOfBucketsAvailable-1)
		return
	}
	bucket := &S.buckets[bucketNo]

	if bucket.Head.IsEmpty() || position < 0 {
		err = catalogerr.NoRecordFound{}
		return
	}

	if position == 0 {
		course = bucket.Head.Unwrap()
		S.removeHead(bucket)
		S.records--
		return
	}

	var previous *model.Node
	node := bucket.Overflow
	for i := 1; node != nil && i < position; i++ {
		previous = node
		node = node.Next
	}
	if node == nil {
		err = catalogerr.NoRecordFound{}
		return
	}

	course = node.Course
	S.unlink(bucket, previous, node)
	S.records--

	return
}
