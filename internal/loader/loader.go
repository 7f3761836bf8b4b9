package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/conf"
	"github.com/gostonefire/coursehashmap/internal/model"
	log "github.com/sirupsen/logrus"
)

// maxLineLength - Longest source line accepted
const maxLineLength = 1024 * 1024

// Parse - Reads delimited course lines from r. Each line holds an identifier, a name and zero or more
// prerequisite identifiers. Fields are trimmed, empty prerequisite fields are ignored, blank lines are ignored and
// lines with fewer than conf.MinFieldsPerLine fields or an empty identifier are skipped.
//   - r is the source to read
//   - source is a name for the source used in log entries and errors
//
// It returns:
//   - courses is the well-formed courses in source order
//   - skipped is the number of malformed lines that were skipped
//   - err is of type catalogerr.EmptySource if no well-formed line was found, or a standard error if reading failed
func Parse(r io.Reader, source string) (courses []model.Course, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		course, ok := parseLine(line)
		if !ok {
			skipped++
			log.WithFields(log.Fields{"source": source, "line": lineNo}).Debugf("skipping malformed line %q", line)
			continue
		}

		courses = append(courses, course)
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading %s: %w", source, err)
		return
	}

	if len(courses) == 0 {
		err = catalogerr.NewEmptySource(source)
		return
	}

	log.Debugf("parsed %d course(s) from %s, skipped %d line(s)", len(courses), source, skipped)

	return
}

// ParseFile - Opens the file at path and parses it with Parse.
// A file that can not be opened gives an error of type catalogerr.SourceNotFound.
func ParseFile(path string) (courses []model.Course, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = catalogerr.SourceNotFound{Path: path, Err: err}
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return Parse(f, path)
}

// parseLine - Splits one line into a course, ok is false if the line is malformed
func parseLine(line string) (course model.Course, ok bool) {
	fields := strings.Split(line, conf.FieldDelimiter)
	if len(fields) < conf.MinFieldsPerLine {
		return
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return
	}

	course = model.NewCourse(id, strings.TrimSpace(fields[1]), fields[2:])
	ok = true

	return
}
