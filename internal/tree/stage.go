package tree

import "fmt"

// Stage is a step of the build pipeline. A BuildError records the stage
// whose failures halted the build.
type Stage int

const (
	Prechecking Stage = iota
	Assembling
	Ordering
	CycleChecking
	Done
)

func (s Stage) String() string {
	switch s {
	case Prechecking:
		return "prechecking"
	case Assembling:
		return "assembling"
	case Ordering:
		return "ordering"
	case CycleChecking:
		return "cycle checking"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
