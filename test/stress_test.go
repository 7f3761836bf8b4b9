//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var departments = []string{"CSCI", "MATH", "PHYS", "CHEM", "BIOL", "ECON", "HIST", "PHIL"}

// createAndStoreTestdata - Writes amount courses with identifiers numbered from first. Prerequisites only refer to
// courses earlier in the same file so loading the file on its own drops nothing.
func createAndStoreTestdata(rnd *rand.Rand, first, amount int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	w := bufio.NewWriter(f)
	ids := make([]string, 0, amount)
	for i := 0; i < amount; i++ {
		n := first + i
		id := fmt.Sprintf("%s%03d-%d", departments[rnd.Intn(len(departments))], rnd.Intn(1000), n)

		fields := []string{id, fmt.Sprintf("Course number %d", n)}
		for p := rnd.Intn(4); p > 0 && len(ids) > 0; p-- {
			fields = append(fields, ids[rnd.Intn(len(ids))])
		}
		if len(fields) == 2 {
			fields = append(fields, "")
		}

		if _, err = fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return err
		}
		ids = append(ids, id)
	}

	return w.Flush()
}

// readIds - Returns the course identifiers of a test data file
func readIds(fileName string) (ids []string, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	fr := bufio.NewReader(f)
	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		ids = append(ids, strings.SplitN(line, ",", 2)[0])
	}
}

func removeTestdata(ids []string, catalog *coursehashmap.Catalog) error {
	for _, id := range ids {
		removed, err := catalog.Remove(id)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("course %s was not removed", id)
		}
	}

	return nil
}

func getTestdata(ids []string, catalog *coursehashmap.Catalog, shouldNotExist bool) error {
	for _, id := range ids {
		course, err := catalog.Search(id)
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("search should not find %s", id)
			} else if !errors.Is(err, catalogerr.NoRecordFound{}) {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if course.ID != id {
			return fmt.Errorf("search for %s found %s", id, course.ID)
		}
	}

	return nil
}

type TestCaseStressTest struct {
	algorithmName string
	conf          coursehashmap.Conf
	nTestdata     int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all hash algorithms", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{algorithmName: "CourseCode", conf: coursehashmap.Conf{}, nTestdata: 20000},
			{algorithmName: "CRC32", conf: coursehashmap.Conf{TableSize: 100000, HashAlgorithm: hash.NewSeparateChainingHashAlgorithm(1)}, nTestdata: 100000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of courses for %s", test.algorithmName), func(t *testing.T) {
				// Prepare test data
				rnd := rand.New(rand.NewSource(123))
				dir := t.TempDir()
				files := make([]string, 3)
				sets := make([][]string, 3)
				for i := range files {
					files[i] = filepath.Join(dir, fmt.Sprintf("testdata_%d.csv", i+1))
					err := createAndStoreTestdata(rnd, i*test.nTestdata, test.nTestdata, files[i])
					require.NoErrorf(t, err, "create testdata %d", i+1)
					sets[i], err = readIds(files[i])
					require.NoErrorf(t, err, "read testdata %d", i+1)
				}

				catalog, _, err := coursehashmap.NewCatalog(test.conf)
				require.NoError(t, err, "create catalog")

				// Load first two sets of test data
				result, err := catalog.LoadFile(files[0])
				assert.NoError(t, err, "load test set 1")
				assert.Empty(t, result.Dropped, "nothing dropped from test set 1")
				result, err = catalog.LoadFile(files[1])
				assert.NoError(t, err, "load test set 2")
				assert.Empty(t, result.Dropped, "nothing dropped from test set 2")

				// Remove first set
				err = removeTestdata(sets[0], catalog)
				assert.NoError(t, err, "remove test set 1")

				// Load third set of test data
				_, err = catalog.LoadFile(files[2])
				assert.NoError(t, err, "load test set 3")

				// Check all three test sets
				assert.NoError(t, getTestdata(sets[0], catalog, true), "search test set 1, should not exist")
				assert.NoError(t, getTestdata(sets[1], catalog, false), "search test set 2")
				assert.NoError(t, getTestdata(sets[2], catalog, false), "search test set 3")

				// Remove second set
				err = removeTestdata(sets[1], catalog)
				assert.NoError(t, err, "remove test set 2")

				// Check all three test sets
				assert.NoError(t, getTestdata(sets[0], catalog, true), "search test set 1, should not exist")
				assert.NoError(t, getTestdata(sets[1], catalog, true), "search test set 2, should not exist")
				assert.NoError(t, getTestdata(sets[2], catalog, false), "search test set 3")

				// Get stats
				stat, err := catalog.Stat(false)
				assert.NoError(t, err, "get stat")
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, stat.Records, stat.HeadRecords+stat.OverflowRecords, "head and overflow records add up")

				// Listing is sorted and complete
				courses, err := catalog.List()
				assert.NoError(t, err, "list courses")
				assert.Len(t, courses, test.nTestdata, "one entry per course")
				for i := 1; i < len(courses); i++ {
					if courses[i-1].ID > courses[i].ID {
						assert.Failf(t, "listing is not sorted", "%s before %s", courses[i-1].ID, courses[i].ID)
						break
					}
				}

				// Nothing left to validate
				dropped, err := catalog.Validate()
				assert.NoError(t, err, "validate")
				assert.Empty(t, dropped, "nothing dropped")
			})
		}
	})
}
