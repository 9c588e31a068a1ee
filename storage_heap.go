//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package byte_ring_go

// No anonymous mappings here; WithMmap keeps the heap.
func mmapAllocator() Allocator {
	return HeapAllocator{}
}
