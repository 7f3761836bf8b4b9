package policy

import (
	"fmt"
	"strings"
)

// Duplicates - Decides what happens when a course is inserted with an identifier that is already stored
type Duplicates int

const (
	// Replace - The stored course is overwritten in place
	Replace Duplicates = iota
	// Chain - The course is appended as a second entry, lookups return the first entry found so the later one is shadowed
	Chain
	// Reject - The insert fails with catalogerr.DuplicateRecord
	Reject
)

var names = map[Duplicates]string{
	Replace: "replace",
	Chain:   "chain",
	Reject:  "reject",
}

// String - Returns the lower case name of the policy
func (D Duplicates) String() string {
	if name, ok := names[D]; ok {
		return name
	}
	return fmt.Sprintf("duplicates(%d)", int(D))
}

// Valid - Returns true if D is one of the defined policies
func (D Duplicates) Valid() bool {
	_, ok := names[D]
	return ok
}

// ParseDuplicates - Returns the policy with the given name, case-insensitive
func ParseDuplicates(name string) (d Duplicates, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range names {
		if v == name {
			d = k
			return
		}
	}

	err = fmt.Errorf("unknown duplicate policy %q, use one of replace, chain or reject", name)
	return
}
