package crashcourse

import (
	"errors"
	"fmt"
)

var ErrNotInitialized = errors.New("not initialized")

// MissingActionError is returned when a matched rule points at an action the
// target does not provide at invocation time.
type MissingActionError struct {
	Role   string
	Action string
}

func (e *MissingActionError) Error() string {
	return fmt.Sprintf("target %q has no action %q", e.Role, e.Action)
}

// InvalidLabelError rejects rules that require an empty label. Bodies with an
// empty label are not an error, they simply never match.
type InvalidLabelError struct {
	RuleId string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("rule %q requires an empty label", e.RuleId)
}

// UnknownHandlerError is returned when RegisterObjectCollision is called with a
// selector that names no known sub handler.
type UnknownHandlerError struct {
	Selector HandlerSelector
}

func (e *UnknownHandlerError) Error() string {
	return fmt.Sprintf("unknown collision handler %q", string(e.Selector))
}

// NotInitializedError reports access to state that has not been built yet.
type NotInitializedError struct {
	What string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s: %s", e.What, ErrNotInitialized)
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside of %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}
