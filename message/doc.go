// Package message implements the value model shared by HTTP requests
// and responses: a protocol version, a case-insensitive multi-valued
// header bag, and a reference to a body stream.
//
// Values are immutable. Every With method returns a derived value and
// leaves its receiver untouched, so a shared Message or Headers needs
// no locking for concurrent readers.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package message
