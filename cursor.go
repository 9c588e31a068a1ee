package byte_ring_go

import (
	"github.com/sushydev/byte_ring_go/internal/assert"
)

// Trim drops the last length written bytes, for instance the unfilled tail of
// a WriteChunk reservation.
func (buffer *RingBuffer) Trim(length int) {
	buffer.checkOpen("trim")
	assert.AtMost(length, buffer.Len(), "trim", "trim")

	buffer.writePosition = buffer.back(buffer.writePosition, length)
	buffer.mutated()

	buffer.trace("trim")
}

// Clear drops everything buffered.
func (buffer *RingBuffer) Clear() {
	buffer.Trim(buffer.Len())
}

// UndoRead hands the last length consumed bytes back to the buffer. The
// bytes must not have been overwritten since they were read; the buffer only
// checks that the read cursor does not pass the write cursor.
func (buffer *RingBuffer) UndoRead(length int) {
	buffer.checkOpen("undo read")
	assert.AtMost(length, buffer.Free(), "undo read", "undo")

	buffer.readPosition = buffer.back(buffer.readPosition, length)
	buffer.mutated()

	buffer.trace("undo read")
}

func (buffer *RingBuffer) back(position, length int) int {
	bufferCap := buffer.size()

	return (position + bufferCap - length) % bufferCap
}

// Peek copies up to len(dst) buffered bytes into dst without consuming them.
// Outstanding chunks stay valid.
func (buffer *RingBuffer) Peek(dst []byte) int {
	n := min(len(dst), buffer.Len())

	buffer.get(buffer.readPosition, dst[:n])

	return n
}

// Discard consumes up to length bytes without copying them and returns how
// many were dropped.
func (buffer *RingBuffer) Discard(length int) int {
	buffer.checkOpen("discard")
	assert.That(length >= 0, "discard", "negative length %d", length)

	length = min(length, buffer.Len())

	buffer.readPosition = (buffer.readPosition + length) % buffer.size()
	buffer.mutated()

	return length
}

// Transfer moves length bytes from the read side of source to the write side
// of destination without an intermediate copy. length must not exceed
// destination's Free or source's Filled.
func Transfer(destination, source *RingBuffer, length int) {
	destination.checkOpen("transfer")
	source.checkOpen("transfer")
	assert.That(destination != source, "transfer", "source and destination are the same buffer")
	assert.AtMost(length, min(destination.Free(), source.Len()), "transfer", "transfer")

	bufferCap := source.size()
	readStart := source.readPosition

	if readStart+length <= bufferCap {
		destination.WriteBytes(source.data[readStart : readStart+length])
	} else {
		firstPart := bufferCap - readStart
		destination.WriteBytes(source.data[readStart:])
		destination.WriteBytes(source.data[:length-firstPart])
	}

	source.readPosition = (readStart + length) % bufferCap
	source.mutated()

	source.trace("transfer")
}
