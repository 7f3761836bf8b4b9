package cli

import (
	"bufio"
	"errors"
	"strings"

	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/render"
	"github.com/gostonefire/coursehashmap/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	choiceLoad   = "1"
	choiceList   = "2"
	choiceCourse = "3"
	choiceRemove = "4"
	choiceExit   = "9"
)

// planner - The interactive menu loop of the course planner
type planner struct {
	catalog   *coursehashmap.Catalog
	presenter *render.Presenter
	answers   *bufio.Scanner
	source    string
}

func newPlanner(catalog *coursehashmap.Catalog, presenter *render.Presenter, answers *bufio.Scanner, source string) *planner {
	return &planner{
		catalog:   catalog,
		presenter: presenter,
		answers:   answers,
		source:    source,
	}
}

// run - Shows the menu and carries out choices until exit is chosen or the answers run out
func (P *planner) run() (err error) {
	if err = P.presenter.Welcome(); err != nil {
		return
	}

	var choice string
	for choice != choiceExit {
		if err = P.presenter.Menu(); err != nil {
			return
		}

		choice, err = nextAnswer(P.answers)
		if err != nil {
			return
		}
		if choice == "" {
			log.Debug("no more answers, leaving the planner")
			break
		}

		switch choice {
		case choiceLoad:
			err = P.load()
		case choiceList:
			err = P.list()
		case choiceCourse:
			err = P.course()
		case choiceRemove:
			err = P.remove()
		case choiceExit:
		default:
			err = P.presenter.Message("%s is not a valid option.\n", choice)
		}
		if err != nil {
			return
		}
	}

	return P.presenter.Message("Thank you for using the course planner!")
}

func (P *planner) load() (err error) {
	result, err := P.catalog.LoadFile(P.source)
	if errors.Is(err, catalogerr.SourceNotFound{}) {
		return sourceNotFound(P.presenter, err)
	}
	if errors.Is(err, catalogerr.EmptySource{}) {
		return P.presenter.Notice("No courses could be read from %s.", P.source)
	}
	if err != nil {
		return
	}

	if len(result.Dropped) > 0 {
		if err = P.presenter.Notice("Dropped for missing prerequisites: %s", render.PrerequisitesString(result.Dropped)); err != nil {
			return
		}
	}

	return P.presenter.Message("Course List read from file and loaded.")
}

func (P *planner) list() (err error) {
	courses, err := P.catalog.List()
	if err != nil {
		return
	}

	return P.presenter.CourseList(courses)
}

func (P *planner) course() (err error) {
	if err = P.presenter.Prompt("What course do you want to know about? "); err != nil {
		return
	}
	id, err := nextAnswer(P.answers)
	if err != nil {
		return
	}

	course, err := P.catalog.Search(id)
	if errors.Is(err, catalogerr.NoRecordFound{}) {
		return P.presenter.NotFound(id)
	}
	if err != nil {
		return
	}

	return P.presenter.Course(course)
}

func (P *planner) remove() (err error) {
	if err = P.presenter.Prompt("What course do you want to remove? "); err != nil {
		return
	}
	id, err := nextAnswer(P.answers)
	if err != nil {
		return
	}

	removed, err := P.catalog.Remove(id)
	if err != nil {
		return
	}
	if !removed {
		return P.presenter.NotFound(id)
	}

	return P.presenter.Message("Course Id %s removed.", utils.NormalizeID(id))
}

// readAnswer - Returns the first word of the next answer line, ok is false when there are no more answers
func readAnswer(answers *bufio.Scanner) (answer string, ok bool, err error) {
	if !answers.Scan() {
		err = answers.Err()
		return
	}

	ok = true
	if fields := strings.Fields(answers.Text()); len(fields) > 0 {
		answer = fields[0]
	}

	return
}

// nextAnswer - Returns the first word of the next non-blank answer, an empty string when there are no more answers
func nextAnswer(answers *bufio.Scanner) (answer string, err error) {
	var ok bool
	for {
		answer, ok, err = readAnswer(answers)
		if err != nil || !ok || answer != "" {
			return
		}
	}
}
