//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package byte_ring_go

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MmapAllocator backs buffers with an anonymous private mapping, keeping
// large staging areas off the Go heap. Close returns the pages to the OS.
type MmapAllocator struct{}

func (MmapAllocator) Alloc(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}

	return data, nil
}

func (MmapAllocator) Free(data []byte) error {
	return errors.Wrap(unix.Munmap(data), "munmap")
}

var _ Allocator = MmapAllocator{}

func mmapAllocator() Allocator {
	return MmapAllocator{}
}
