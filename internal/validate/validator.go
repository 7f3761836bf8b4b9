package validate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/overflow"
	log "github.com/sirupsen/logrus"
)

// Table - The table operations needed to validate prerequisites
type Table interface {
	GetStorageParameters() (params model.StorageParameters)
	GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error)
	Get(id string) (course model.Course, err error)
	DeleteAt(bucketNo int64, position int) (course model.Course, err error)
}

// Run - Drops every course that has a prerequisite not present in the table.
// Each round first walks the whole table collecting the bucket positions of courses with a missing prerequisite and
// only then deletes them, so the walk never sees a chain that is being changed under it. Courses are deleted by
// position so that, when several courses share an identifier, only the one that failed is removed. Only direct
// existence of prerequisites is checked. Since dropping a course can leave other courses with a missing
// prerequisite, rounds are repeated until one drops nothing; a following call to Run will therefore not drop
// anything.
//   - table is the table to validate
//
// It returns:
//   - dropped is the identifiers of the dropped courses in the order they were dropped
//   - err is a standard error, if something went wrong
func Run(table Table) (dropped []string, err error) {
	var invalid []entry
	for round := 1; ; round++ {
		invalid, err = collectInvalid(table)
		if err != nil {
			return
		}
		if len(invalid) == 0 {
			return
		}

		// Later positions first so that earlier positions in the same bucket stay put
		removed := make([]string, 0, len(invalid))
		for i := len(invalid) - 1; i >= 0; i-- {
			e := invalid[i]
			_, err = table.DeleteAt(e.bucketNo, e.position)
			if errors.Is(err, catalogerr.NoRecordFound{}) {
				err = nil
				continue
			}
			if err != nil {
				err = fmt.Errorf("error while dropping course %s: %w", e.id, err)
				return
			}
			removed = append(removed, e.id)
		}

		slices.Reverse(removed)
		for _, id := range removed {
			log.Infof("course %s dropped, a prerequisite could not be found", id)
		}
		dropped = append(dropped, removed...)

		log.Debugf("validation round %d dropped %d course(s)", round, len(removed))
	}
}

// entry - Place of a course in the table
type entry struct {
	bucketNo int64
	position int
	id       string
}

// collectInvalid - Walks every bucket, head first then overflow chain, and returns the places of courses with
// at least one prerequisite that can not be found
func collectInvalid(table Table) (invalid []entry, err error) {
	var bucket model.Bucket
	var iter *overflow.Records
	var course model.Course
	var ok bool

	numberOfBuckets := table.GetStorageParameters().NumberOfBucketsAvailable
	for i := int64(0); i < numberOfBuckets; i++ {
		bucket, iter, err = table.GetBucket(i)
		if err != nil {
			return
		}
		if bucket.IsEmpty() {
			continue
		}

		course = bucket.Head.Unwrap()
		for position := 0; ; position++ {
			ok, err = hasPrerequisites(table, course)
			if err != nil {
				return
			}
			if !ok {
				invalid = append(invalid, entry{bucketNo: i, position: position, id: course.ID})
			}

			if !iter.HasNext() {
				break
			}
			course, err = iter.Next()
			if err != nil {
				return
			}
		}
	}

	return
}

// hasPrerequisites - Returns true if every prerequisite of course is present in the table
func hasPrerequisites(table Table, course model.Course) (ok bool, err error) {
	for _, id := range course.Prerequisites {
		_, err = table.Get(id)
		if errors.Is(err, catalogerr.NoRecordFound{}) {
			log.Debugf("course %s is missing prerequisite %s", course.ID, id)
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	ok = true
	return
}
