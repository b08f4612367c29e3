package body

import (
	"io"

	"github.com/pkg/errors"
)

// Buffer is a seekable in-memory [Body]. Reads and writes share one
// position, like a file. The zero value is an empty open buffer.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf    []byte
	pos    int64
	closed bool
}

var _ Body = (*Buffer)(nil)

// NewBuffer returns a buffer holding a copy of initial, positioned at
// the start.
func NewBuffer(initial []byte) *Buffer {
	buf := make([]byte, len(initial))
	copy(buf, initial)
	return &Buffer{buf: buf}
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.closed {
		return 0, errors.New("read from closed buffer")
	}
	if b.pos >= int64(len(b.buf)) {
		return 0, io.EOF
	}

	n := copy(p, b.buf[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if b.closed {
		return 0, errors.New("write to closed buffer")
	}

	end := b.pos + int64(len(p))
	if end > int64(len(b.buf)) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}

	n := copy(b.buf[b.pos:end], p)
	b.pos = end
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, errors.New("seek on closed buffer")
	}

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.buf)) + offset
	default:
		return 0, errors.Errorf("unknown whence: %d", whence)
	}

	if pos < 0 {
		return 0, errors.Errorf("negative position: %d", pos)
	}

	b.pos = pos
	return pos, nil
}

// Close marks the buffer unusable. Closing twice is a no-op.
func (b *Buffer) Close() error {
	b.closed = true
	return nil
}

func (b *Buffer) Readable() bool { return !b.closed }
func (b *Buffer) Writable() bool { return !b.closed }
func (b *Buffer) Seekable() bool { return !b.closed }

// Len returns the number of octets currently stored.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns a copy of the stored octets, independent of position.
func (b *Buffer) Bytes() []byte {
	clone := make([]byte, len(b.buf))
	copy(clone, b.buf)
	return clone
}
