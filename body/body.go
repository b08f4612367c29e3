// Package body defines the stream capability a message payload is
// accessed through, together with in-memory reference implementations.
//
// A message holds a Body by reference and never copies the underlying
// octets; the handle's lifetime belongs to whoever created it. A body
// shared between messages should be treated as single-reader unless
// the implementation documents otherwise.
package body

import "io"

// Body is an opaque handle to message payload octets.
type Body interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Readable reports whether Read can currently succeed.
	Readable() bool
	// Writable reports whether Write can currently succeed.
	Writable() bool
	// Seekable reports whether Seek can currently succeed.
	Seekable() bool
}
