package message

import (
	"httpmsg/body"

	"github.com/pkg/errors"
)


// Message is the part an HTTP request and response have in common: a
// protocol version token, a header bag, and a handle to the payload
// stream. Concrete request and response types are expected to embed
// or wrap it.
//
// A Message is immutable. With methods derive a sibling and never
// touch the receiver, so one instance can serve concurrent readers
// without locking. The body handle is shared by reference across
// derived messages; the stream behind it stays single-reader unless
// its implementation says otherwise.
type Message struct {
	version string
	headers Headers
	body    body.Body
}

// New builds a message from an initial version token, header bag, and
// body handle.
func New(version string, headers Headers, b body.Body) Message {
	return Message{version: version, headers: headers, body: b}
}

// ProtocolVersion returns the version token, e.g. "1.1".
func (m Message) ProtocolVersion() string { return m.version }

// WithProtocolVersion returns a message with the given version token.
// The token is stored as-is, not parsed.
func (m Message) WithProtocolVersion(version string) Message {
	m.version = version
	return m
}

// Headers returns a snapshot of every header entry, keyed by
// display-case name, as in [Headers.All].
func (m Message) Headers() map[string][]string { return m.headers.All() }

// HasHeader reports whether an entry matching name exists.
func (m Message) HasHeader(name string) bool { return m.headers.Has(name) }

// HeaderValues returns the ordered values for name, or nil if absent.
func (m Message) HeaderValues(name string) []string { return m.headers.Values(name) }

// HeaderLine returns the values for name joined with ", ", or "" if
// absent.
func (m Message) HeaderLine(name string) string { return m.headers.Line(name) }

// WithHeader returns a message where name maps to exactly the given
// values, as in [Headers.WithSet].
func (m Message) WithHeader(name string, values ...string) (Message, error) {
	h, err := m.headers.WithSet(name, values...)
	if err != nil {
		return Message{}, err
	}

	m.headers = h
	return m, nil
}

// WithAddedHeader returns a message with values appended to the entry
// for name, as in [Headers.WithAdded].
func (m Message) WithAddedHeader(name string, values ...string) (Message, error) {
	h, err := m.headers.WithAdded(name, values...)
	if err != nil {
		return Message{}, err
	}

	m.headers = h
	return m, nil
}

// WithoutHeader returns a message with the entry matching name
// removed.
func (m Message) WithoutHeader(name string) Message {
	m.headers = m.headers.Without(name)
	return m
}

// Body returns the current body handle.
func (m Message) Body() body.Body { return m.body }

// WithBody returns a message referencing b. The handle must be
// usable: nil or no-longer-readable bodies are rejected.
func (m Message) WithBody(b body.Body) (Message, error) {
	if b == nil {
		return Message{}, errors.Wrap(ErrInvalidBody, "nil handle")
	}
	if !b.Readable() {
		return Message{}, errors.Wrap(ErrInvalidBody, "handle is not readable")
	}

	m.body = b
	return m, nil
}
