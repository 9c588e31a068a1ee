package byte_ring_go

import (
	"io"

	"github.com/sushydev/byte_ring_go/internal/assert"
)

// Readers returning nothing this many times in a row are treated as broken.
const maxConsecutiveEmptyReads = 100

// Write appends as much of p as fits and returns ErrFull if some of it did
// not. A closed buffer returns ErrClosed.
func (buffer *RingBuffer) Write(p []byte) (n int, err error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	n = min(len(p), buffer.Free())
	buffer.WriteBytes(p[:n])

	if n < len(p) {
		return n, ErrFull
	}

	return n, nil
}

// Read consumes up to len(p) bytes. An empty buffer returns io.EOF and a
// closed one ErrClosed.
func (buffer *RingBuffer) Read(p []byte) (n int, err error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	if len(p) == 0 {
		return 0, nil
	}

	n = min(len(p), buffer.Len())
	if n == 0 {
		return 0, io.EOF
	}

	buffer.ReadBytes(p[:n])

	return n, nil
}

// ReadFrom reads from r straight into free storage until r returns io.EOF or
// the buffer fills up. Once full it issues one zero-length Read: a reader
// reporting io.EOF there ends the copy cleanly, anything else returns ErrFull.
func (buffer *RingBuffer) ReadFrom(r io.Reader) (int64, error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	var total int64
	empty := 0

	for {
		chunk := buffer.WriteChunk(buffer.Free())
		if chunk.Len() == 0 {
			return total, buffer.fullOrEOF(r)
		}

		n, err := r.Read(chunk.Bytes())
		assert.That(n >= 0 && n <= chunk.Len(), "read from", "reader returned invalid count %d", n)

		buffer.Trim(chunk.Len() - n)
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}

		if err != nil {
			return total, err
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty >= maxConsecutiveEmptyReads {
			return total, io.ErrNoProgress
		}
	}
}

func (buffer *RingBuffer) fullOrEOF(r io.Reader) error {
	switch _, err := r.Read([]byte{}); err {
	case io.EOF:
		return nil
	case nil:
		return ErrFull
	default:
		return err
	}
}

// WriteTo drains the buffer into w. Bytes w did not accept stay buffered.
func (buffer *RingBuffer) WriteTo(w io.Writer) (int64, error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	var total int64

	for !buffer.IsEmpty() {
		chunk := buffer.ReadChunk(buffer.Len())

		n, err := w.Write(chunk.Bytes())
		assert.That(n >= 0 && n <= chunk.Len(), "write to", "writer returned invalid count %d", n)

		buffer.UndoRead(chunk.Len() - n)
		total += int64(n)

		if err != nil {
			return total, err
		}

		if n < chunk.Len() {
			return total, io.ErrShortWrite
		}
	}

	return total, nil
}
