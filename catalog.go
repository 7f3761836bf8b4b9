package coursehashmap

import (
	"fmt"
	"sync"

	"github.com/gostonefire/coursehashmap/hashfunc"
	"github.com/gostonefire/coursehashmap/internal/conf"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/overflow"
	"github.com/gostonefire/coursehashmap/internal/storage/separatechaining"
	"github.com/gostonefire/coursehashmap/policy"
)

// Course - A course record, ID is the key in the catalog and Prerequisites the identifiers of courses that have to
// be present for the course to pass validation
type Course = model.Course

// Table - Interface for the table implementation backing a Catalog
type Table interface {
	GetStorageParameters() (params model.StorageParameters)
	GetBucketNo(id string) (bucketNo int64, err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error)
	Get(id string) (course model.Course, err error)
	Set(course model.Course) (err error)
	Delete(id string) (err error)
	DeleteAt(bucketNo int64, position int) (course model.Course, err error)
	Len() int64
}

// Conf - Configuration for a new Catalog
//   - TableSize is the number of buckets requested, zero selects the default of 179. The size is fixed for the life of the catalog.
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal course code algorithm.
//   - Duplicates decides what happens when a course is inserted with an identifier that is already stored.
type Conf struct {
	TableSize     int64
	HashAlgorithm hashfunc.HashAlgorithm
	Duplicates    policy.Duplicates
}

// CatalogInfo - Information structure containing some information about the catalog created
//   - NumberOfBucketsNeeded is the number of buckets requested
//   - NumberOfBucketsAvailable is the actual number of buckets, a custom hash algorithm may round the requested number
//   - DuplicatePolicy is the policy used on inserts of already stored identifiers
//   - InternalAlgorithm is true if the internal course code hash algorithm is used
type CatalogInfo struct {
	NumberOfBucketsNeeded    int64
	NumberOfBucketsAvailable int64
	DuplicatePolicy          policy.Duplicates
	InternalAlgorithm        bool
}

// CatalogStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of courses stored
//   - HeadRecords is the number of courses stored as bucket heads
//   - OverflowRecords is the number of courses stored in overflow chains
//   - UsedBuckets is the number of buckets holding at least one course
//   - LongestChain is the number of courses in the fullest bucket, it is the worst case number of comparisons in a lookup
//   - BucketDistribution is the number of courses stored in each available bucket
type CatalogStat struct {
	Records            int64
	HeadRecords        int64
	OverflowRecords    int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Catalog - The main implementation struct.
// All methods except Iterate hold a lock on the catalog while running. Iterate hands out an iterator that reads the
// table directly, and the catalog must not be changed while it is in use.
type Catalog struct {
	mu    sync.RWMutex
	table Table
}

// NewCatalog - Returns a new, empty course catalog.
//   - catalogConf is the catalog configuration, the zero value gives the default table size, hash algorithm and
//     duplicate policy.
//
// It returns:
//   - catalog is a pointer to a Catalog struct
//   - catalogInfo is a CatalogInfo struct containing some data regarding the catalog created.
//   - err is a normal go Error which should be nil if everything went ok
func NewCatalog(catalogConf Conf) (catalog *Catalog, catalogInfo CatalogInfo, err error) {
	tableSize := catalogConf.TableSize
	if tableSize == 0 {
		tableSize = conf.DefaultTableSize
	}

	// Check if the table size is valid
	if tableSize < 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the duplicate policy is valid
	if !catalogConf.Duplicates.Valid() {
		err = fmt.Errorf("unknown duplicate policy %s", catalogConf.Duplicates)
		return
	}

	table, err := separatechaining.NewSCTable(model.TableConf{
		NumberOfBucketsNeeded: tableSize,
		DuplicatePolicy:       catalogConf.Duplicates,
		HashAlgorithm:         catalogConf.HashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating table: %w", err)
		return
	}

	catalog = &Catalog{table: table}
	catalogInfo = catalog.Info()

	return
}

// Info - Returns information about the catalog configuration
func (C *Catalog) Info() CatalogInfo {
	sp := C.table.GetStorageParameters()

	return CatalogInfo{
		NumberOfBucketsNeeded:    sp.NumberOfBucketsNeeded,
		NumberOfBucketsAvailable: sp.NumberOfBucketsAvailable,
		DuplicatePolicy:          sp.DuplicatePolicy,
		InternalAlgorithm:        sp.InternalAlgorithm,
	}
}
