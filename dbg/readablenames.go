// Package dbg turns arbitrary pointers into stable, readable per-process
// names, for use in debug traces and invariant-failure messages where a raw
// pointer string (or, worse, two different pointers that print the same
// address after one is freed) is useless.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. Trapezoids and DAG nodes live and
// die constantly during incremental construction; giving every one of them a
// name up front would be wasteful, so names are assigned on first request.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Generated on demand, so make them nondeterministic to remind the user
	// that the same name doesn't refer to the same trapezoid between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable name for obj, memoized for the lifetime of the
// process. A nil pointer always renders as "Ø".
func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
