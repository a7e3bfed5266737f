// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an internal fault, usually a failed storage call.
// Callers may retry the whole operation; no partial state is left behind.
var ErrInternal = errors.New("internal")
