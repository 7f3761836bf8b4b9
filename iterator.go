package coursehashmap

import (
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/overflow"
	"github.com/gostonefire/coursehashmap/internal/utils"
)

// CourseIterator - Is used to iterate over all courses in a catalog one by one, bucket by bucket and within a
// bucket from head through the overflow chain. It reads lazily and can be used once.
type CourseIterator struct {
	table           Table
	numberOfBuckets int64
	bucketNo        int64
	chain           *overflow.Records
	next            utils.Option[Course]
	err             error
}

// newCourseIterator - Returns a pointer to a new CourseIterator positioned before the first course
func newCourseIterator(table Table) *CourseIterator {
	iter := &CourseIterator{
		table:           table,
		numberOfBuckets: table.GetStorageParameters().NumberOfBucketsAvailable,
	}
	iter.advance()

	return iter
}

// HasNext - Returns true if there are more courses to be fetched from a call to Next.
func (I *CourseIterator) HasNext() bool {
	return I.next.HasValue() || I.err != nil
}

// Next - Returns the next course.
// It returns:
//   - course is a copy of the next course.
//   - err is either a standard error or if there are no more courses when calling this function an error of type catalogerr.NoRecordFound is returned.
func (I *CourseIterator) Next() (course Course, err error) {
	if I.err != nil {
		err = I.err
		I.err = nil
		I.bucketNo = I.numberOfBuckets
		I.chain = nil
		return
	}

	if I.next.IsEmpty() {
		err = catalogerr.NoRecordFound{}
		return
	}

	course = I.next.Unwrap()
	I.advance()

	return
}

// advance - Looks up the course to return from the following call to Next, first in the current overflow chain and
// then in the following non-empty bucket
func (I *CourseIterator) advance() {
	I.next = utils.None[Course]()

	if I.chain != nil && I.chain.HasNext() {
		course, err := I.chain.Next()
		if err != nil {
			I.err = err
			return
		}
		I.next = utils.Some(course)
		return
	}

	for I.bucketNo < I.numberOfBuckets {
		bucket, chain, err := I.table.GetBucket(I.bucketNo)
		I.bucketNo++
		if err != nil {
			I.err = err
			return
		}
		if bucket.IsEmpty() {
			continue
		}

		I.chain = chain
		I.next = utils.Some(bucket.Head.Unwrap())
		return
	}

	I.chain = nil
}
