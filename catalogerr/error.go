package catalogerr

import "fmt"

// NoRecordFound - Custom error to inform that no course was found for a given identifier
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no course was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes any NoRecordFound match regardless of message when used with errors.Is
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// NewNoRecordFound - Returns a NoRecordFound naming the identifier that was looked for
func NewNoRecordFound(id string) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf("no record found for course id %s", id)}
}

// DuplicateRecord - Custom error to inform that a course with the same identifier is already stored
// and the table is configured to reject duplicates
type DuplicateRecord struct {
	msg string
}

// Error - Used to notify that a duplicate was rejected
func (D DuplicateRecord) Error() string {
	if D.msg == "" {
		return "duplicate record"
	}
	return D.msg
}

// Is - Makes any DuplicateRecord match regardless of message when used with errors.Is
func (D DuplicateRecord) Is(target error) bool {
	_, ok := target.(DuplicateRecord)
	return ok
}

// NewDuplicateRecord - Returns a DuplicateRecord naming the rejected identifier
func NewDuplicateRecord(id string) DuplicateRecord {
	return DuplicateRecord{msg: fmt.Sprintf("course id %s is already stored", id)}
}

// EmptySource - Custom error to inform that a source did not contain any usable course line
type EmptySource struct {
	msg string
}

// Error - Used to notify that there was no data in the source
func (E EmptySource) Error() string {
	if E.msg == "" {
		return "no data in source"
	}
	return E.msg
}

// Is - Makes any EmptySource match regardless of message when used with errors.Is
func (E EmptySource) Is(target error) bool {
	_, ok := target.(EmptySource)
	return ok
}

// NewEmptySource - Returns an EmptySource naming the source
func NewEmptySource(source string) EmptySource {
	return EmptySource{msg: fmt.Sprintf("no data in source %s", source)}
}

// SourceNotFound - Custom error to inform that a source path could not be opened
type SourceNotFound struct {
	Path string
	Err  error
}

// Error - Used to notify that the source could not be opened
func (S SourceNotFound) Error() string {
	if S.Err == nil {
		return fmt.Sprintf("input file not found %s", S.Path)
	}
	return fmt.Sprintf("input file not found %s: %s", S.Path, S.Err)
}

// Unwrap - Returns the underlying error from the file system
func (S SourceNotFound) Unwrap() error {
	return S.Err
}

// Is - Makes any SourceNotFound match regardless of path when used with errors.Is
func (S SourceNotFound) Is(target error) bool {
	_, ok := target.(SourceNotFound)
	return ok
}
