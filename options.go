package byte_ring_go

import "go.uber.org/zap"

type options struct {
	logger    *zap.Logger
	allocator Allocator
}

// Option customizes buffer construction.
type Option func(*options)

// WithLogger routes debug traces of cursor movement and storage lifetime to
// logger. Without it the buffer logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAllocator overrides where the backing storage comes from.
func WithAllocator(allocator Allocator) Option {
	return func(o *options) {
		if allocator != nil {
			o.allocator = allocator
		}
	}
}

// WithMmap backs the buffer with an anonymous memory mapping where the
// platform supports it, and with the heap elsewhere.
func WithMmap() Option {
	return WithAllocator(mmapAllocator())
}

func newOptions(opts []Option) options {
	o := options{
		logger:    zap.NewNop(),
		allocator: HeapAllocator{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
