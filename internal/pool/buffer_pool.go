package pool

import (
	"sync"

	"golang.org/x/text/transform"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	// Oversized buffers (a pasted novel) are dropped instead of pinned in the pool.
	if cap(*buffer) > bp.size*16 {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// TransformerPool hands out x/text transformer chains.
// Chains carry state between calls, so each goroutine needs its own.
type TransformerPool struct {
	pool sync.Pool
}

// NewTransformerPool creates a pool whose chains are built by factory.
func NewTransformerPool(factory func() transform.Transformer) *TransformerPool {
	return &TransformerPool{
		pool: sync.Pool{
			New: func() interface{} {
				return factory()
			},
		},
	}
}

// String runs s through a pooled chain and returns the result.
// Malformed input is returned unchanged.
func (tp *TransformerPool) String(s string) string {
	if s == "" {
		return s
	}
	t := tp.pool.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	t.Reset()
	tp.pool.Put(t)
	if err != nil {
		return s
	}
	return out
}
