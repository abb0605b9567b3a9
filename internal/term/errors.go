package term

import "errors"

// ErrInvalidAttribute is wrapped by SetAttribute when called with an
// unrecognized SGR variant (spec.md §7's "invalid-attribute").
var ErrInvalidAttribute = errors.New("term: invalid attribute")

// ErrUnimplementedMode is wrapped by EraseDisplay, EraseLine, and
// TabClear when called with a recognized-but-unsupported mode value
// (spec.md §7's "unimplemented-mode"). Per §7's recommendation, every
// caller of an operation that can return this error has already logged
// and no-op'd by the time it returns — the error is informational, not
// a signal that state was left inconsistent.
var ErrUnimplementedMode = errors.New("term: unimplemented mode")
