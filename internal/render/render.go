package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/internal/conf"
)

// Presenter - Writes catalog query results to an output in the console layout of the course planner
type Presenter struct {
	out     io.Writer
	styled  bool
	heading lipgloss.Style
	notice  lipgloss.Style
	label   lipgloss.Style
}

// NewPresenter - Returns a pointer to a new Presenter writing to out
//   - out is where everything is written
//   - styled set to true renders headings and notices with terminal styling, use false when out is not a terminal
func NewPresenter(out io.Writer, styled bool) *Presenter {
	return &Presenter{
		out:     out,
		styled:  styled,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		label:   lipgloss.NewStyle().Faint(true),
	}
}

// PrerequisitesString - Returns the prerequisites joined by a comma and a space, an empty string if there are none
func PrerequisitesString(prerequisites []string) string {
	return strings.Join(prerequisites, conf.PrerequisiteSeparator)
}

// CourseLine - Returns a course on one line as "ID, Name" followed by ", " and its prerequisites if it has any
func CourseLine(course coursehashmap.Course) string {
	line := course.ID + ", " + course.Name
	if len(course.Prerequisites) > 0 {
		line += ", " + PrerequisitesString(course.Prerequisites)
	}

	return line
}

// CourseList - Writes a heading followed by one line per course in the given order
func (P *Presenter) CourseList(courses []coursehashmap.Course) (err error) {
	var sb strings.Builder
	sb.WriteString(P.style(P.heading, "Here is the Course List:"))
	sb.WriteString("\n\n")
	for _, course := range courses {
		sb.WriteString(CourseLine(course))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err = io.WriteString(P.out, sb.String())
	return
}

// Course - Writes a single course with its prerequisites on a separate line
func (P *Presenter) Course(course coursehashmap.Course) (err error) {
	_, err = fmt.Fprintf(P.out, "%s, %s\n%s %s\n\n",
		course.ID, course.Name, P.style(P.label, "Prerequisites:"), PrerequisitesString(course.Prerequisites))
	return
}

// NotFound - Writes the message given when no course matches id
func (P *Presenter) NotFound(id string) (err error) {
	_, err = fmt.Fprintln(P.out, P.style(P.notice, fmt.Sprintf("Course Id %s not found.", id)))
	return
}

// Message - Writes a line of plain text
func (P *Presenter) Message(format string, args ...any) (err error) {
	_, err = fmt.Fprintf(P.out, format+"\n", args...)
	return
}

// Notice - Writes a line of text styled as a notice
func (P *Presenter) Notice(format string, args ...any) (err error) {
	_, err = fmt.Fprintln(P.out, P.style(P.notice, fmt.Sprintf(format, args...)))
	return
}

// Prompt - Writes a question without ending the line
func (P *Presenter) Prompt(question string) (err error) {
	_, err = io.WriteString(P.out, question)
	return
}

// Welcome - Writes the greeting shown when the interactive planner starts
func (P *Presenter) Welcome() (err error) {
	_, err = fmt.Fprintf(P.out, "%s\n\n", P.style(P.heading, "Welcome to the course planner."))
	return
}

// Menu - Writes the interactive menu and the prompt for a choice
func (P *Presenter) Menu() (err error) {
	_, err = io.WriteString(P.out, "  1. Load Data Structure.\n"+
		"  2. Print Course List.\n"+
		"  3. Print Course.\n"+
		"  4. Remove Course.\n"+
		"  9. Exit\n"+
		"What would you like to do?: ")
	return
}

// Stat - Writes catalog information and bucket statistics
func (P *Presenter) Stat(info coursehashmap.CatalogInfo, stat *coursehashmap.CatalogStat) (err error) {
	var sb strings.Builder
	sb.WriteString(P.style(P.heading, "Catalog statistics:"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "  %-20s %d\n", "Buckets requested:", info.NumberOfBucketsNeeded)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Buckets available:", info.NumberOfBucketsAvailable)
	fmt.Fprintf(&sb, "  %-20s %s\n", "Duplicate policy:", info.DuplicatePolicy)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Courses:", stat.Records)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Head courses:", stat.HeadRecords)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Overflow courses:", stat.OverflowRecords)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Used buckets:", stat.UsedBuckets)
	fmt.Fprintf(&sb, "  %-20s %d\n", "Longest chain:", stat.LongestChain)
	if stat.UsedBuckets > 0 {
		fmt.Fprintf(&sb, "  %-20s %.2f\n", "Average chain:", float64(stat.Records)/float64(stat.UsedBuckets))
	}
	sb.WriteString("\n")

	_, err = io.WriteString(P.out, sb.String())
	return
}

// Distribution - Writes the number of courses in every used bucket
func (P *Presenter) Distribution(distribution []int64) (err error) {
	var sb strings.Builder
	sb.WriteString(P.style(P.heading, "Bucket distribution:"))
	sb.WriteString("\n\n")
	for bucketNo, courses := range distribution {
		if courses == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %6d %s\n", bucketNo, strings.Repeat("#", int(courses)))
	}
	sb.WriteString("\n")

	_, err = io.WriteString(P.out, sb.String())
	return
}

// style - Renders s with the given style if styling is enabled
func (P *Presenter) style(style lipgloss.Style, s string) string {
	if !P.styled {
		return s
	}
	return style.Render(s)
}
