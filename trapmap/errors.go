package trapmap

import "github.com/pkg/errors"

// Threading an error return through every recursive step of follow() and the
// incremental updater would bury the two-case surgery in plumbing, so this
// package signals structural corruption -- a null neighbor where one was
// required, a circular neighbor link, a follow() walk that exceeds its safety
// bound -- by panicking with a structuralError. The root trapnav package is
// the only place that recovers; see withRecover in trapnav.go.
type structuralError struct{ error }

// fatalf panics with a structuralError built by github.com/pkg/errors, which
// captures a stack trace useful in debug builds.
func fatalf(format string, args ...interface{}) {
	panic(structuralError{errors.Errorf(format, args...)})
}

// AsStructuralError reports whether r (the value recovered from a panic) is a
// structuralError produced by this package, returning it as a plain error.
func AsStructuralError(r interface{}) (error, bool) {
	if r == nil {
		return nil, false
	}
	if se, ok := r.(structuralError); ok {
		return se.error, true
	}
	return nil, false
}
