package byte_ring_go

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sushydev/byte_ring_go/internal/assert"
)

type RingBuffer struct {
	data []byte

	readPosition  int // Physical offset of the next byte to read
	writePosition int // Physical offset of the next byte to write

	// Bumped by every mutating call; chunks remember the value they were
	// handed out under.
	generation uint64
	closed     bool

	logger    *zap.Logger
	allocator Allocator
}

// New creates a buffer that can hold capacity bytes. The backing storage is
// one byte larger so that a full buffer never looks empty.
func New(capacity int, opts ...Option) (*RingBuffer, error) {
	if capacity < 0 || capacity == math.MaxInt {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}

	o := newOptions(opts)
	size := capacity + 1

	data, err := o.allocator.Alloc(size)
	if err != nil {
		return nil, errors.Wrapf(ErrAllocation, "%d bytes: %v", size, err)
	}

	if len(data) != size {
		if err := o.allocator.Free(data); err != nil {
			return nil, errors.Wrapf(ErrAllocation, "allocator returned %d of %d bytes, release: %v", len(data), size, err)
		}
		return nil, errors.Wrapf(ErrAllocation, "allocator returned %d of %d bytes", len(data), size)
	}

	logger := o.logger.Named("ringbuffer")
	logger.Debug("allocated storage", zap.Int("capacity", capacity), zap.Int("size", size))

	return &RingBuffer{
		data:      data,
		logger:    logger,
		allocator: o.allocator,
	}, nil
}

func (buffer *RingBuffer) size() int {
	return len(buffer.data)
}

func (buffer *RingBuffer) checkOpen(op string) {
	assert.That(!buffer.closed, op, "buffer is closed")
}

func (buffer *RingBuffer) mutated() {
	buffer.generation++
}

func (buffer *RingBuffer) trace(msg string) {
	if ce := buffer.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zap.Int("read", buffer.readPosition), zap.Int("write", buffer.writePosition))
	}
}

// GetCapacity returns the number of bytes the buffer can hold at once.
func (buffer *RingBuffer) GetCapacity() int {
	buffer.checkOpen("capacity")

	return buffer.size() - 1
}

// Filled returns the number of buffered bytes. wrapped reports that the write
// cursor sits physically behind the read cursor.
func (buffer *RingBuffer) Filled() (count int, wrapped bool) {
	buffer.checkOpen("filled")

	count = buffer.writePosition - buffer.readPosition
	if count < 0 {
		count += buffer.size()
		wrapped = true

		buffer.trace("buffer rolled over")
	}

	return count, wrapped
}

// Len returns the number of buffered bytes.
func (buffer *RingBuffer) Len() int {
	count, _ := buffer.Filled()

	return count
}

// Free returns the number of bytes that can be written without overwriting
// unread data.
func (buffer *RingBuffer) Free() int {
	buffer.checkOpen("free")

	free := buffer.readPosition - buffer.writePosition - 1
	if free < 0 {
		free += buffer.size()
	}

	return free
}

func (buffer *RingBuffer) IsEmpty() bool {
	return buffer.Len() == 0
}

func (buffer *RingBuffer) IsFull() bool {
	return buffer.Free() == 0
}

// WriteBytes appends all of src. Writing more than Free panics.
func (buffer *RingBuffer) WriteBytes(src []byte) {
	buffer.checkOpen("write")
	assert.AtMost(len(src), buffer.Free(), "write", "write")

	buffer.writePosition = buffer.put(buffer.writePosition, src)
	buffer.mutated()

	buffer.trace("write")
}

// ReadBytes consumes exactly len(dst) bytes into dst. Reading more than
// Filled panics.
func (buffer *RingBuffer) ReadBytes(dst []byte) {
	buffer.checkOpen("read")
	assert.AtMost(len(dst), buffer.Len(), "read", "read")

	buffer.readPosition = buffer.get(buffer.readPosition, dst)
	buffer.mutated()

	buffer.trace("read")
}

// put copies src into storage at position and returns the position after it.
func (buffer *RingBuffer) put(position int, src []byte) int {
	bufferCap := buffer.size()
	requestedSize := len(src)

	if position+requestedSize <= bufferCap {
		copy(buffer.data[position:], src)
	} else {
		firstPart := bufferCap - position
		copy(buffer.data[position:], src[:firstPart])
		copy(buffer.data, src[firstPart:])
	}

	return (position + requestedSize) % bufferCap
}

// get fills dst from storage at position and returns the position after it.
func (buffer *RingBuffer) get(position int, dst []byte) int {
	bufferCap := buffer.size()
	requestedSize := len(dst)

	if position+requestedSize <= bufferCap {
		copy(dst, buffer.data[position:position+requestedSize])
	} else {
		firstPart := bufferCap - position
		copy(dst, buffer.data[position:])
		copy(dst[firstPart:], buffer.data[:requestedSize-firstPart])
	}

	return (position + requestedSize) % bufferCap
}

// Close releases the backing storage. The buffer must not be used afterwards.
func (buffer *RingBuffer) Close() error {
	if buffer.closed {
		return ErrClosed
	}

	data := buffer.data

	buffer.closed = true
	buffer.data = nil
	buffer.readPosition = 0
	buffer.writePosition = 0
	buffer.mutated()

	buffer.logger.Debug("released storage", zap.Int("size", len(data)))

	return errors.Wrap(buffer.allocator.Free(data), "release storage")
}
