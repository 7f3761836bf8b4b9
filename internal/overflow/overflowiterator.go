package overflow

import (
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/model"
)

// Records - Is used to iterate over the overflow chain of one bucket, course by course.
type Records struct {
	next *model.Node
}

// NewRecords - Returns a pointer to a new Records struct starting at the given chain node, a nil node gives an
// iterator with nothing to return
func NewRecords(first *model.Node) *Records {

	return &Records{
		next: first,
	}
}

// HasNext - Returns true if there are more courses to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.next != nil
}

// Next - Returns the next course in the chain.
// It returns:
//   - course is a copy of the next course in the chain.
//   - err is of type catalogerr.NoRecordFound if there are no more courses when calling this function.
func (O *Records) Next() (course model.Course, err error) {
	if O.next == nil {
		err = catalogerr.NoRecordFound{}
		return
	}

	course = O.next.Course.Clone()
	O.next = O.next.Next

	return
}
