// Package assert implements the contract-violation facility the ntree
// library depends on: a single fail-fast check with file/line context,
// standing in for the external "assertion facility" collaborator the
// specification requires every precondition to be routed through.
package assert

import (
	"fmt"
	"runtime"
)

// Violation is the value panic carries when a precondition fails. It is
// the only error type the library ever produces; there is no recovery
// path, matching the "one error class: contract violation" model.
type Violation struct {
	Rule string
	File string
	Line int
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s:%d: contract violation: %s", v.File, v.Line, v.Rule)
}

// Require panics with a *Violation if cond is false. It records the
// file/line two stack frames above itself (past Require and the ntree
// package's require wrapper), so library call sites report their own
// file/line rather than assert.go's.
func Require(cond bool, rule string) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	panic(&Violation{Rule: rule, File: file, Line: line})
}
