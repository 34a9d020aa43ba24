package seed

import (
	"fmt"

	"github.com/samber/lo"
)

// State is where an identity is in the seeding workflow.
type State int

const (
	Pending State = iota
	Registering
	LoggingIn
	CreatingProfile
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Registering:
		return "registering"
	case LoggingIn:
		return "logging_in"
	case CreatingProfile:
		return "creating_profile"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// next lists the legal forward transitions. Failed is only reachable from
// LoggingIn; register and profile errors are absorbed as warnings.
var next = map[State][]State{
	Pending:         {Registering},
	Registering:     {LoggingIn},
	LoggingIn:       {CreatingProfile, Failed},
	CreatingProfile: {Done},
}

// CanTransition reports whether from → to is a legal step.
func CanTransition(from, to State) bool {
	return lo.Contains(next[from], to)
}

// Outcome records how one identity fared.
type Outcome struct {
	Index    int
	Email    string
	State    State
	Warnings []error
	Err      error // why the identity failed; nil unless State is Failed
}

// OK reports whether the identity finished the workflow.
func (o Outcome) OK() bool {
	return o.State == Done
}

func (o *Outcome) advance(to State) {
	if !CanTransition(o.State, to) {
		panic(fmt.Sprintf("seed: illegal transition %s -> %s", o.State, to))
	}
	o.State = to
}

func (o *Outcome) warn(err error) {
	o.Warnings = append(o.Warnings, err)
}

func (o *Outcome) fail(err error) {
	o.advance(Failed)
	o.Err = err
}

// Summary totals a run. Per-identity detail goes to the Reporter.
type Summary struct {
	Requested   int
	Attempted   int
	Succeeded   int
	Warned      int  // absorbed step errors across all identities
	Interrupted bool // the context ended before the run finished
}

func (s *Summary) record(o Outcome) {
	s.Attempted++
	if o.OK() {
		s.Succeeded++
	}
	s.Warned += len(o.Warnings)
}

// Failed is the number of identities that did not finish.
func (s Summary) Failed() int {
	return s.Attempted - s.Succeeded
}

// String renders "<succeeded>/<attempted>".
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Succeeded, s.Attempted)
}
