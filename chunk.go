package byte_ring_go

import (
	"github.com/sushydev/byte_ring_go/internal/assert"
)

// Chunk is a borrowed view into the storage of a RingBuffer. It stays valid
// until the next mutating call on the buffer that produced it; Bytes panics
// with a *ContractError if it is used after that.
//
// A write chunk counts as written the moment it is handed out. The caller
// must fill all of it, or Trim the part it could not fill, before touching
// the buffer again.
type Chunk struct {
	buffer     *RingBuffer
	generation uint64
	data       []byte
}

// Bytes returns the viewed region.
func (chunk Chunk) Bytes() []byte {
	if chunk.buffer != nil {
		assert.That(!chunk.buffer.closed && chunk.buffer.generation == chunk.generation,
			"chunk", "view used after the buffer was modified")
	}

	return chunk.data
}

func (chunk Chunk) Len() int {
	return len(chunk.data)
}

// WriteChunk reserves up to length bytes at the write cursor and returns them
// for the caller to fill. The reservation is clamped to Free and cut at the
// physical end of storage, so it may be shorter than requested even when more
// room is free; calling again continues from the start of storage. Once the
// buffer is full the returned chunk is empty.
func (buffer *RingBuffer) WriteChunk(length int) Chunk {
	buffer.checkOpen("write chunk")
	assert.That(length >= 0, "write chunk", "negative length %d", length)

	start := buffer.writePosition
	length, buffer.writePosition = buffer.run(start, min(length, buffer.Free()))
	buffer.mutated()

	buffer.trace("write chunk")

	return buffer.chunk(start, length)
}

// ReadChunk consumes up to length bytes at the read cursor without copying
// them. The run is clamped to Filled and cut at the physical end of storage.
func (buffer *RingBuffer) ReadChunk(length int) Chunk {
	buffer.checkOpen("read chunk")
	assert.That(length >= 0, "read chunk", "negative length %d", length)

	start := buffer.readPosition
	length, buffer.readPosition = buffer.run(start, min(length, buffer.Len()))
	buffer.mutated()

	buffer.trace("read chunk")

	return buffer.chunk(start, length)
}

// run returns the contiguous part of [start, start+length) and the cursor
// position following it. A run reaching the physical end of storage, exactly
// or beyond, stops there and continues at 0.
func (buffer *RingBuffer) run(start, length int) (int, int) {
	bufferCap := buffer.size()

	if start+length < bufferCap {
		return length, start + length
	}

	return bufferCap - start, 0
}

func (buffer *RingBuffer) chunk(start, length int) Chunk {
	end := start + length

	return Chunk{
		buffer:     buffer,
		generation: buffer.generation,
		data:       buffer.data[start:end:end],
	}
}
