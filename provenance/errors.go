package provenance

import (
	"errors"
	"fmt"
)

// ErrGraphTooLarge is the sentinel behind GraphTooLargeError - match it with
// errors.Is.
var ErrGraphTooLarge = errors.New("provenance: graph exceeds configured size limit")

// GraphTooLargeError is returned by ToTraceJSON/Closure when a
// Config.MaxGraphSize > 0 is exceeded while walking a root's closure.
type GraphTooLargeError struct {
	Root  NodeID
	Limit int
}

func (e *GraphTooLargeError) Error() string {
	return fmt.Sprintf("provenance: closure of %s exceeds graph size limit %d", e.Root, e.Limit)
}

func (e *GraphTooLargeError) Unwrap() error { return ErrGraphTooLarge }
