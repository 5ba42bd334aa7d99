// Package merge computes and applies semantically-aware change-sets
// between two versions of a record. The diff keeps manually curated data:
// a fresh scrape that omits a field never erases it, list merges only add,
// and name changes leave a trail in other_names. Applying the computed
// change-set is idempotent: a second pass over the merged result finds
// nothing left to do.
package merge

import (
	"fmt"
	"strconv"
	"strings"
)

// StepKind discriminates the two kinds of path step.
type StepKind int

// Step kinds.
const (
	FieldStep StepKind = iota // named struct field
	IndexStep                 // list element
)

// Step is one traversal step in a change path.
type Step struct {
	Kind  StepKind
	Name  string
	Index int
}

// Field creates a field-access step.
func Field(name string) Step {
	return Step{Kind: FieldStep, Name: name}
}

// Index creates a list-index step.
func Index(i int) Step {
	return Step{Kind: IndexStep, Index: i}
}

// Path addresses a field within a record as a sequence of typed steps,
// avoiding the stringly-typed traversal a dotted key invites.
type Path []Step

// NewPath builds a path of field steps.
func NewPath(names ...string) Path {
	p := make(Path, len(names))
	for i, name := range names {
		p[i] = Field(name)
	}
	return p
}

// String renders the path in dotted form for display.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, step := range p {
		if step.Kind == IndexStep {
			parts[i] = strconv.Itoa(step.Index)
			continue
		}
		parts[i] = step.Name
	}
	return strings.Join(parts, ".")
}

// Root returns the name of the leading field step, or "".
func (p Path) Root() string {
	if len(p) == 0 || p[0].Kind != FieldStep {
		return ""
	}
	return p[0].Name
}

// Op classifies a change.
type Op int

// Change operations.
const (
	OpReplace Op = iota // scalar differs, or old value is empty
	OpAppend            // add to a list without removing existing entries
)

// Change is one edit in a computed change-set.
type Change struct {
	Op   Op
	Path Path
	Old  any
	New  any
}

// Replace creates a replacement change.
func Replace(path Path, old, updated any) Change {
	return Change{Op: OpReplace, Path: path, Old: old, New: updated}
}

// Append creates a list-append change.
func Append(path Path, item any) Change {
	return Change{Op: OpAppend, Path: path, New: item}
}

// String renders the change for interactive review.
func (c Change) String() string {
	if c.Op == OpAppend {
		return fmt.Sprintf("%s: append %v", c.Path, c.New)
	}
	return fmt.Sprintf("%s: %v -> %v", c.Path, c.Old, c.New)
}
