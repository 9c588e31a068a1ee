package byte_ring_go

import (
	"errors"
	"io"

	"github.com/sushydev/byte_ring_go/internal/assert"
)

// RingBufferInterface defines the public API for the ring buffer.
//
// The buffer allocates capacity+1 bytes and keeps one slot permanently
// unused, so equal read and write cursors always mean empty. Cursors are
// physical offsets into the backing storage and every advance is taken
// modulo its length.
//
// Notes on semantics:
//   - WriteBytes and ReadBytes move exactly len(p) bytes. Asking for more than
//     Free or Filled is a contract violation and panics with a
//     *ContractError; nothing is partially copied.
//   - WriteChunk and ReadChunk hand out a view into the storage itself. The
//     view never wraps: a run crossing the physical end of storage is cut at
//     the end and the cursor lands on 0. A chunk is invalidated by the next
//     mutating call on the buffer.
//   - Trim and UndoRead move a cursor backwards. UndoRead can only restore
//     bytes that no write has overwritten since they were read.
//   - Write, Read, ReadFrom and WriteTo adapt the buffer to the io package
//     and report short transfers as errors instead of panicking.
//
// No method is safe for concurrent use.
type RingBufferInterface interface {
	GetCapacity() int
	Len() int
	Filled() (count int, wrapped bool)
	Free() int
	IsEmpty() bool
	IsFull() bool

	WriteBytes(src []byte)
	ReadBytes(dst []byte)
	WriteChunk(length int) Chunk
	ReadChunk(length int) Chunk

	Trim(length int)
	Clear()
	UndoRead(length int)

	Peek(dst []byte) int
	Discard(length int) int

	io.ReadWriteCloser
	io.ReaderFrom
	io.WriterTo
}

var _ RingBufferInterface = &RingBuffer{}

// ContractError is the panic value raised when a caller breaks a
// precondition, such as reading more than Filled.
type ContractError = assert.ContractError

var (
	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = errors.New("ringbuffer: invalid capacity")

	// ErrAllocation wraps any failure to obtain backing storage.
	ErrAllocation = errors.New("ringbuffer: cannot allocate storage")

	// ErrClosed is returned when Close is called on a released buffer.
	ErrClosed = errors.New("ringbuffer: buffer is closed")

	// ErrFull reports a short write because the buffer ran out of room.
	ErrFull = errors.New("ringbuffer: buffer is full")
)
