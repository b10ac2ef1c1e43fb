// Package ticket issues the monotonically increasing integers behind
// public name identifiers.
//
// Every new name record consumes exactly one ticket at first save; the
// formatted token (nm0000042) is immutable for the life of the record.
package ticket

import "context"

// Prefix precedes the zero-padded ticket number in a public name_id.
const Prefix = "nm"

// Allocator hands out strictly increasing, never-reused ticket numbers.
//
// Implementations must be safe under concurrent callers. Storage
// failures propagate unchanged; there is no retry built in.
type Allocator interface {
	Allocate(ctx context.Context) (int64, error)
}
