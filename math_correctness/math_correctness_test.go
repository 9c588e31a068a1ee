package byte_ring_go_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rb "github.com/sushydev/byte_ring_go"
)

// This suite focuses on cursor math, off-by-one, and wrap boundaries.

// newAt returns an empty buffer whose cursors both sit at offset.
func newAt(t *testing.T, capacity, offset int) *rb.RingBuffer {
	t.Helper()

	buf, err := rb.New(capacity)
	require.NoError(t, err)

	buf.WriteBytes(make([]byte, offset))
	buf.ReadBytes(make([]byte, offset))
	require.True(t, buf.IsEmpty())

	return buf
}

func pattern(n int, seed byte) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = seed + byte(i)
	}
	return p
}

func requireInvariant(t *testing.T, buf *rb.RingBuffer) {
	t.Helper()

	filled, _ := buf.Filled()
	require.Equal(t, buf.GetCapacity(), filled+buf.Free(), "filled + free must equal capacity")
}

func TestPointerMath_SingleByteCapacity(t *testing.T) {
	t.Parallel()
	buf := newAt(t, 1, 0) // allocates 2

	for i := 0; i < 6; i++ {
		buf.WriteBytes([]byte{byte(i)})
		assert.True(t, buf.IsFull())
		requireInvariant(t, buf)

		b := make([]byte, 1)
		buf.ReadBytes(b)
		assert.Equal(t, []byte{byte(i)}, b)
		assert.True(t, buf.IsEmpty())
		requireInvariant(t, buf)
	}
}

func TestWrappedFlag(t *testing.T) {
	t.Parallel()
	buf := newAt(t, 4, 3) // allocates 5, cursors at 3

	buf.WriteBytes([]byte("ab")) // write cursor at exactly the physical end -> 0
	filled, wrapped := buf.Filled()
	assert.Equal(t, 2, filled)
	assert.True(t, wrapped)

	buf.ReadBytes(make([]byte, 2))
	filled, wrapped = buf.Filled()
	assert.Equal(t, 0, filled)
	assert.False(t, wrapped)
}

func TestRoundTripAtEveryOffset(t *testing.T) {
	t.Parallel()
	const capacity = 10

	for offset := 0; offset <= capacity; offset++ {
		for n := 0; n <= capacity; n++ {
			buf := newAt(t, capacity, offset)
			src := pattern(n, byte(offset))

			buf.WriteBytes(src)
			filled, _ := buf.Filled()
			require.Equal(t, n, filled, "offset %d length %d", offset, n)
			require.Equal(t, capacity-n, buf.Free(), "offset %d length %d", offset, n)

			dst := make([]byte, n)
			buf.ReadBytes(dst)
			require.Equal(t, src, dst, "offset %d length %d", offset, n)
			requireInvariant(t, buf)
		}
	}
}

func TestChunkLengthsAtEveryOffset(t *testing.T) {
	t.Parallel()
	const capacity = 10
	const allocated = capacity + 1

	for offset := 0; offset <= capacity; offset++ {
		for requested := 0; requested <= capacity+2; requested++ {
			buf := newAt(t, capacity, offset)

			want := min(requested, capacity)
			if offset+want >= allocated {
				want = allocated - offset
			}

			chunk := buf.WriteChunk(requested)
			require.Equal(t, want, chunk.Len(), "offset %d requested %d", offset, requested)
			require.Equal(t, capacity-want, buf.Free())
			copy(chunk.Bytes(), pattern(chunk.Len(), 1))

			readChunk := buf.ReadChunk(requested)
			require.Equal(t, min(requested, want), readChunk.Len())
			assert.Equal(t, pattern(readChunk.Len(), 1), readChunk.Bytes())
			requireInvariant(t, buf)
		}
	}
}

func TestChunkExhaustsFreeSpace(t *testing.T) {
	t.Parallel()
	buf := newAt(t, 10, 7)

	total := 0
	for i := 0; i < 4; i++ {
		total += buf.WriteChunk(100).Len()
	}

	assert.Equal(t, 10, total)
	assert.True(t, buf.IsFull())
	assert.Equal(t, 0, buf.WriteChunk(1).Len())
}

func TestUndoReadRestoresState(t *testing.T) {
	t.Parallel()

	for offset := 0; offset <= 6; offset++ {
		buf := newAt(t, 6, offset)
		buf.WriteBytes([]byte("abcdef"))

		first := make([]byte, 4)
		buf.ReadBytes(first)
		buf.UndoRead(4)
		assert.Equal(t, 6, buf.Len())

		again := make([]byte, 4)
		buf.ReadBytes(again)
		assert.Equal(t, first, again)
		assert.Equal(t, "abcd", string(again))
	}
}

func TestTransferEquivalence(t *testing.T) {
	t.Parallel()
	const capacity = 8

	for srcOffset := 0; srcOffset <= capacity; srcOffset++ {
		for dstOffset := 0; dstOffset <= capacity; dstOffset++ {
			for k := 0; k <= capacity; k++ {
				src := newAt(t, capacity, srcOffset)
				dst := newAt(t, capacity, dstOffset)
				data := pattern(k, byte(srcOffset*16+dstOffset))
				src.WriteBytes(data)

				rb.Transfer(dst, src, k)

				require.True(t, src.IsEmpty())
				out := make([]byte, dst.Len())
				dst.ReadBytes(out)
				require.Equal(t, data, out, "src %d dst %d k %d", srcOffset, dstOffset, k)
				requireInvariant(t, src)
				requireInvariant(t, dst)
			}
		}
	}
}

// Random sequences of valid operations checked against a plain slice model.
func TestRandomOperationsAgainstModel(t *testing.T) {
	t.Parallel()
	const capacity = 13

	rng := rand.New(rand.NewSource(42))
	buf := newAt(t, capacity, 0)
	model := []byte{}
	next := byte(0)

	produce := func(n int) []byte {
		p := make([]byte, n)
		for i := range p {
			p[i] = next
			next++
		}
		return p
	}

	for step := 0; step < 5000; step++ {
		switch rng.Intn(6) {
		case 0:
			p := produce(rng.Intn(buf.Free() + 1))
			buf.WriteBytes(p)
			model = append(model, p...)
		case 1:
			p := make([]byte, rng.Intn(buf.Len()+1))
			buf.ReadBytes(p)
			require.Equal(t, model[:len(p)], p, "step %d", step)
			model = model[len(p):]
		case 2:
			chunk := buf.WriteChunk(rng.Intn(capacity + 2))
			p := produce(chunk.Len())
			copy(chunk.Bytes(), p)
			model = append(model, p...)
		case 3:
			chunk := buf.ReadChunk(rng.Intn(capacity + 2))
			require.Equal(t, model[:chunk.Len()], chunk.Bytes(), "step %d", step)
			if rng.Intn(2) == 0 {
				buf.UndoRead(chunk.Len())
			} else {
				model = model[chunk.Len():]
			}
		case 4:
			n := rng.Intn(buf.Len() + 1)
			buf.Trim(n)
			model = model[:len(model)-n]
		case 5:
			if rng.Intn(20) == 0 {
				buf.Clear()
				model = model[:0]
			}
		}

		requireInvariant(t, buf)
		require.Equal(t, len(model), buf.Len(), "step %d", step)

		peek := make([]byte, capacity)
		n := buf.Peek(peek)
		require.Equal(t, model, peek[:n], "step %d", step)
	}
}
