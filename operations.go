package coursehashmap

import (
	"errors"
	"fmt"
	"io"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/loader"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/overflow"
	"github.com/gostonefire/coursehashmap/internal/sorter"
	"github.com/gostonefire/coursehashmap/internal/validate"
	log "github.com/sirupsen/logrus"
)

// LoadResult - Outcome of loading a source into the catalog
//   - Parsed is the number of well-formed course lines in the source
//   - Skipped is the number of malformed lines that were skipped
//   - Rejected is the identifiers of courses refused by the duplicate policy
//   - Dropped is the identifiers of courses removed by validation since a prerequisite was missing
type LoadResult struct {
	Parsed   int
	Skipped  int
	Rejected []string
	Dropped  []string
}

// Insert - Adds a course to the catalog. The identifier and prerequisites are stored upper case.
//   - course is the course to add, ID must not be empty
//
// It returns:
//   - err is of type catalogerr.DuplicateRecord if rejected by the duplicate policy, or a standard error
func (C *Catalog) Insert(course Course) (err error) {
	C.mu.Lock()
	defer C.mu.Unlock()

	return C.insert(course)
}

// Search - Gets the course that corresponds to the given identifier, the identifier is matched case-insensitively.
//   - id is the identifier of a course
//
// It returns:
//   - course is a copy of the matching course if found, if not found an error of type catalogerr.NoRecordFound is also returned.
//   - err is either of type catalogerr.NoRecordFound or a standard error, if something went wrong
func (C *Catalog) Search(id string) (course Course, err error) {
	C.mu.RLock()
	defer C.mu.RUnlock()

	return C.table.Get(id)
}

// Remove - Removes the course that corresponds to the given identifier, the identifier is matched case-insensitively.
// Removing an identifier that is not stored is not an error.
//   - id is the identifier of a course
//
// It returns:
//   - removed is true if a course was removed
//   - err is a standard error, if something went wrong
func (C *Catalog) Remove(id string) (removed bool, err error) {
	C.mu.Lock()
	defer C.mu.Unlock()

	err = C.table.Delete(id)
	if errors.Is(err, catalogerr.NoRecordFound{}) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	removed = true
	return
}

// Validate - Removes every course with a prerequisite that is not in the catalog, see validate.Run for details.
// It returns the identifiers of the removed courses.
func (C *Catalog) Validate() (dropped []string, err error) {
	C.mu.Lock()
	defer C.mu.Unlock()

	return validate.Run(C.table)
}

// Load - Parses delimited course lines from r, inserts every well-formed course and finally validates the catalog.
// A source without any well-formed line fails with catalogerr.EmptySource and leaves the catalog untouched.
//   - r is the source to read
//   - source is a name for the source used in log entries and errors
func (C *Catalog) Load(r io.Reader, source string) (result LoadResult, err error) {
	courses, skipped, err := loader.Parse(r, source)
	if err != nil {
		return
	}

	return C.load(courses, skipped, source)
}

// LoadFile - Opens the file at path and loads it with Load.
// A file that can not be opened gives an error of type catalogerr.SourceNotFound.
func (C *Catalog) LoadFile(path string) (result LoadResult, err error) {
	courses, skipped, err := loader.ParseFile(path)
	if err != nil {
		return
	}

	return C.load(courses, skipped, path)
}

// Len - Returns the number of courses in the catalog
func (C *Catalog) Len() int64 {
	C.mu.RLock()
	defer C.mu.RUnlock()

	return C.table.Len()
}

// List - Returns a snapshot of every course in the catalog ordered ascending by identifier
func (C *Catalog) List() (courses []Course, err error) {
	C.mu.RLock()
	defer C.mu.RUnlock()

	courses = make([]Course, 0, C.table.Len())
	iter := newCourseIterator(C.table)
	var course Course
	for iter.HasNext() {
		course, err = iter.Next()
		if err != nil {
			return
		}
		courses = append(courses, course)
	}

	courses = sorter.Courses(courses)

	return
}

// Iterate - Returns an iterator over every course in the catalog in bucket order, head of each bucket first then
// its overflow chain. The iterator can be used once and the catalog must not be changed while it is in use.
func (C *Catalog) Iterate() *CourseIterator {
	return newCourseIterator(C.table)
}

// Stat - Walks through the entire set of buckets and produce a CatalogStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBucketsAvailable with number of courses per bucket, false will set CatalogStat.BucketDistribution to nil.
func (C *Catalog) Stat(includeDistribution bool) (catalogStat *CatalogStat, err error) {
	C.mu.RLock()
	defer C.mu.RUnlock()

	var bucket model.Bucket
	var iter *overflow.Records
	var cs CatalogStat

	numberOfBuckets := C.table.GetStorageParameters().NumberOfBucketsAvailable
	if includeDistribution {
		cs.BucketDistribution = make([]int64, numberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < numberOfBuckets; i++ {
		bucket, iter, err = C.table.GetBucket(i)
		if err != nil {
			return
		}
		if bucket.IsEmpty() {
			continue
		}

		chainLength := int64(1)
		cs.HeadRecords++
		for iter.HasNext() {
			if _, err = iter.Next(); err != nil {
				return
			}
			chainLength++
			cs.OverflowRecords++
		}

		cs.Records += chainLength
		cs.UsedBuckets++
		cs.LongestChain = max(cs.LongestChain, chainLength)
		if includeDistribution {
			cs.BucketDistribution[i] = chainLength
		}
	}

	catalogStat = &cs
	return
}

// GetBucketNo - Returns which bucket number that the given identifier results in
//   - id is the identifier of a course
func (C *Catalog) GetBucketNo(id string) (bucketNo int64, err error) {
	return C.table.GetBucketNo(id)
}

// insert - Normalizes and stores a course, the caller holds the write lock
func (C *Catalog) insert(course Course) (err error) {
	course = model.NewCourse(course.ID, course.Name, course.Prerequisites)
	if course.ID == "" {
		err = fmt.Errorf("course id can not be empty")
		return
	}

	return C.table.Set(course)
}

// load - Inserts parsed courses and validates the catalog under one write lock
func (C *Catalog) load(courses []model.Course, skipped int, source string) (result LoadResult, err error) {
	C.mu.Lock()
	defer C.mu.Unlock()

	result.Parsed = len(courses)
	result.Skipped = skipped

	for _, course := range courses {
		err = C.insert(course)
		if errors.Is(err, catalogerr.DuplicateRecord{}) {
			log.Warnf("course %s from %s rejected: %s", course.ID, source, err)
			result.Rejected = append(result.Rejected, course.ID)
			err = nil
			continue
		}
		if err != nil {
			err = fmt.Errorf("error while inserting course %s from %s: %w", course.ID, source, err)
			return
		}
	}

	result.Dropped, err = validate.Run(C.table)
	if err != nil {
		err = fmt.Errorf("error while validating courses from %s: %w", source, err)
		return
	}

	log.Infof("loaded %d course(s) from %s, %d line(s) skipped, %d course(s) dropped",
		result.Parsed-len(result.Rejected)-len(result.Dropped), source, result.Skipped, len(result.Dropped))

	return
}
