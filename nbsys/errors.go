package nbsys

import "fmt"

// InvariantError reports a broken structural invariant of a View. Per this
// module's error-handling design, such violations are unrecoverable: the
// caller is expected to let the panic propagate (see ccsplit and evolve,
// which raise these via panic rather than returning them as errors).
type InvariantError struct {
	Level     int    // recursion level at which the violation was observed
	Invariant string // short name of the violated invariant
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nbsys: invariant %q violated at level %d: %s", e.Invariant, e.Level, e.Detail)
}

// Fatalf panics with an *InvariantError built from name/format/args.
func Fatalf(level int, name, format string, args ...interface{}) {
	panic(&InvariantError{Level: level, Invariant: name, Detail: fmt.Sprintf(format, args...)})
}
