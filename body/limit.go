package body

import (
	"io"

	"github.com/pkg/errors"
)

// Limited is a read-only view of an underlying body, bounded to n
// octets. It is the [Body] counterpart of [io.LimitedReader] for
// consumers that trust a declared content length.
type Limited struct {
	b Body
	n uint
}

var _ Body = (*Limited)(nil)

// Limit wraps b so that at most n octets can be read through it.
func Limit(b Body, n uint) *Limited { return &Limited{b: b, n: n} }

func (l *Limited) Read(p []byte) (int, error) {
	if l.n == 0 {
		return 0, io.EOF
	}
	if uint(len(p)) > l.n {
		p = p[:l.n]
	}

	n, err := l.b.Read(p)
	l.n -= uint(n)
	return n, err
}

func (l *Limited) Write([]byte) (int, error) {
	return 0, errors.New("write on read-limited body")
}

func (l *Limited) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek on read-limited body")
}

func (l *Limited) Close() error { return l.b.Close() }

func (l *Limited) Readable() bool { return l.n > 0 && l.b.Readable() }
func (l *Limited) Writable() bool { return false }
func (l *Limited) Seekable() bool { return false }
