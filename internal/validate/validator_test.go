//go:build unit

package validate

import (
	"testing"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/storage/separatechaining"
	"github.com/gostonefire/coursehashmap/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, courses ...model.Course) *separatechaining.SCTable {
	scTable, err := separatechaining.NewSCTable(model.TableConf{NumberOfBucketsNeeded: 179, DuplicatePolicy: policy.Replace})
	require.NoError(t, err, "create new SCTable instance")
	for _, c := range courses {
		require.NoErrorf(t, scTable.Set(c), "sets course %s", c.ID)
	}
	return scTable
}

func TestRun(t *testing.T) {
	t.Run("drops a course with a missing prerequisite", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t,
			model.NewCourse("CS101", "Intro to CS", nil),
			model.NewCourse("CS201", "Data Structures", []string{"CS101"}),
			model.NewCourse("CS301", "Algorithms", []string{"CS999"}),
		)

		// Execute
		dropped, err := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.Equal(t, []string{"CS301"}, dropped, "dropped courses")
		_, err = scTable.Get("CS301")
		assert.ErrorIs(t, err, catalogerr.NoRecordFound{}, "CS301 is gone")
		for _, id := range []string{"CS101", "CS201"} {
			_, err = scTable.Get(id)
			assert.NoErrorf(t, err, "%s is kept", id)
		}
	})

	t.Run("drops invalid courses in a collision chain without losing valid ones", func(t *testing.T) {
		// Prepare
		// All three identifiers hash to the same bucket, head and tail are invalid
		scTable := newTestTable(t,
			model.NewCourse("CSCI101", "head", []string{"NONE000"}),
			model.NewCourse("CSCI280", "middle", nil),
			model.NewCourse("CSCI459", "tail", []string{"CSCI280", "NONE001"}),
		)

		// Execute
		dropped, err := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.ElementsMatch(t, []string{"CSCI101", "CSCI459"}, dropped, "dropped courses")
		course, err := scTable.Get("CSCI280")
		assert.NoError(t, err, "middle course kept")
		assert.Equal(t, "middle", course.Name, "middle course intact")
		assert.Equal(t, int64(1), scTable.Len(), "one course left")
	})

	t.Run("drops courses that lose their prerequisite during validation and is idempotent", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t,
			model.NewCourse("MATH101", "base", []string{"MATH000"}),
			model.NewCourse("MATH201", "second", []string{"MATH101"}),
			model.NewCourse("MATH301", "third", []string{"MATH201"}),
			model.NewCourse("PHYS101", "unrelated", nil),
		)

		// Execute
		dropped, err := Run(scTable)
		droppedAgain, errAgain := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.Equal(t, []string{"MATH101", "MATH201", "MATH301"}, dropped, "dropped in dependency order")
		assert.NoError(t, errAgain, "validates table again")
		assert.Empty(t, droppedAgain, "second run drops nothing")
		assert.Equal(t, int64(1), scTable.Len(), "unrelated course kept")
	})

	t.Run("keeps courses without or with self satisfied prerequisites", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t,
			model.NewCourse("CSCI100", "no prerequisites", nil),
			model.NewCourse("CSCI200", "duplicated prerequisite", []string{"CSCI100", "CSCI100"}),
			model.NewCourse("CSCI300", "self", []string{"CSCI300"}),
		)

		// Execute
		dropped, err := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.Empty(t, dropped, "nothing dropped")
		assert.Equal(t, int64(3), scTable.Len(), "all courses kept")
	})

	t.Run("drops only the failing entry among courses sharing an identifier", func(t *testing.T) {
		// Prepare
		scTable, err := separatechaining.NewSCTable(model.TableConf{NumberOfBucketsNeeded: 179, DuplicatePolicy: policy.Chain})
		require.NoError(t, err, "create new SCTable instance")
		require.NoError(t, scTable.Set(model.NewCourse("CS101", "Valid", nil)))
		require.NoError(t, scTable.Set(model.NewCourse("CS101", "Broken", []string{"CS999"})))
		require.NoError(t, scTable.Set(model.NewCourse("CS201", "Broken first", []string{"CS998"})))
		require.NoError(t, scTable.Set(model.NewCourse("CS201", "Valid second", nil)))

		// Execute
		dropped, err := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.Equal(t, []string{"CS101", "CS201"}, dropped, "each identifier dropped once")
		assert.Equal(t, int64(2), scTable.Len(), "valid entries kept")
		course, err := scTable.Get("CS101")
		assert.NoError(t, err, "CS101 still searchable")
		assert.Equal(t, "Valid", course.Name, "valid CS101 kept")
		course, err = scTable.Get("CS201")
		assert.NoError(t, err, "CS201 still searchable")
		assert.Equal(t, "Valid second", course.Name, "valid CS201 promoted to head")
	})

	t.Run("does nothing on an empty table", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t)

		// Execute
		dropped, err := Run(scTable)

		// Check
		assert.NoError(t, err, "validates table")
		assert.Empty(t, dropped, "nothing dropped")
	})
}
