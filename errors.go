package ntree

import "github.com/cagrimmett/ntree/internal/assert"

// ContractViolation is the panic value raised when a caller breaks one of
// the preconditions documented on a topology operation, query, or
// iterator. It is the library's only error class: there is no recovery
// path and no operation returns an error code (spec section 7).
type ContractViolation = assert.Violation

// require is a thin pass-through so every precondition check in this
// package reads the same way; assert.Require itself walks back to this
// function's caller for file/line context.
func require(cond bool, rule string) {
	if !cond {
		assert.Require(cond, rule)
	}
}
