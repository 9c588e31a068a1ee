package byte_ring_go

// Allocator obtains and releases the backing storage of a buffer. Free
// receives exactly the slice Alloc returned.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(data []byte) error
}

// HeapAllocator backs buffers with ordinary Go memory.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free leaves the slice to the garbage collector.
func (HeapAllocator) Free([]byte) error {
	return nil
}

var _ Allocator = HeapAllocator{}
