/*
File    : go-giulio/objects/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// The control-flow values. Each of these exists only to propagate out of
// nested blocks: the enclosing block or expression intercepts it, and no
// user-visible slot ever holds one after a completed top-level eval.

// ReturnValue wraps a value returned from a function. The function call
// machinery strips exactly one layer before handing the value to the caller.
type ReturnValue struct {
	Value GiulioObject
}

// GetType returns ReturnValueType
func (r *ReturnValue) GetType() GiulioType {
	return ReturnValueType
}

// ToString returns the string representation of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns the object representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToObject())
}

// ThrownValue wraps a user-thrown value travelling toward the nearest
// catch. A catch clause that names a binder intercepts it, as it does an
// Error.
type ThrownValue struct {
	Value GiulioObject
}

// GetType returns ThrownValueType
func (t *ThrownValue) GetType() GiulioType {
	return ThrownValueType
}

// ToString returns "Thrown: <value>"
func (t *ThrownValue) ToString() string {
	return "Thrown: " + t.Value.ToString()
}

// ToObject returns a detailed representation of the thrown value
func (t *ThrownValue) ToObject() string {
	return fmt.Sprintf("<thrown(%s)>", t.Value.ToObject())
}

// Error wraps an evaluator-level runtime error. Every evaluator operation
// that encounters an Error in a subexpression short-circuits and returns
// the same Error. It models evaluator failure; a catch clause that names a
// binder intercepts it.
type Error struct {
	Err *giuerrors.RuntimeError
}

// GetType returns ErrorType
func (e *Error) GetType() GiulioType {
	return ErrorType
}

// ToString returns the runtime error's message
func (e *Error) ToString() string {
	return e.Err.Error()
}

// ToObject returns a detailed representation of the error
func (e *Error) ToObject() string {
	return fmt.Sprintf("<error(%s)>", e.Err.Error())
}

// NewError wraps a runtime error in its control-flow object form.
func NewError(err *giuerrors.RuntimeError) *Error {
	return &Error{Err: err}
}

// Break represents a break statement signal.
type Break struct{}

// GetType returns BreakType
func (b *Break) GetType() GiulioType { return BreakType }

// ToString returns "break"
func (b *Break) ToString() string { return "break" }

// ToObject returns "<break>"
func (b *Break) ToObject() string { return "<break>" }

// Continue represents a continue statement signal.
type Continue struct{}

// GetType returns ContinueType
func (c *Continue) GetType() GiulioType { return ContinueType }

// ToString returns "continue"
func (c *Continue) ToString() string { return "continue" }

// ToObject returns "<continue>"
func (c *Continue) ToObject() string { return "<continue>" }

// BREAK and CONTINUE are the canonical signal instances.
var (
	BREAK    = &Break{}
	CONTINUE = &Continue{}
)
