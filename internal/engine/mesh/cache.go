package mesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/logger"
)

// Buffer is an uploaded mesh that can be released.
type Buffer interface {
	Release()
}

// UploadFunc turns generated geometry into a GPU buffer.
type UploadFunc[B Buffer] func(key Key, data *Data) (B, error)

// Cache uploads each distinct Key at most once and releases every buffer
// exactly once on Close. It is owned by the render loop and is not safe for
// concurrent use.
type Cache[B Buffer] struct {
	upload  UploadFunc[B]
	buffers map[Key]B
	order   []Key

	allocations int
	closed      bool
}

// NewCache creates an empty cache that uploads with fn.
func NewCache[B Buffer](fn UploadFunc[B]) *Cache[B] {
	return &Cache[B]{
		upload:  fn,
		buffers: make(map[Key]B),
	}
}

// Get returns the buffer for key, generating and uploading it on first use.
func (c *Cache[B]) Get(key Key) (B, error) {
	if b, ok := c.buffers[key]; ok {
		return b, nil
	}

	var zero B
	if c.closed {
		return zero, fmt.Errorf("mesh cache closed, cannot create %s", key)
	}

	data, err := Generate(key)
	if err != nil {
		return zero, err
	}

	b, err := c.upload(key, data)
	if err != nil {
		return zero, fmt.Errorf("uploading %s: %w", key, err)
	}

	c.buffers[key] = b
	c.order = append(c.order, key)
	c.allocations++

	logger.Debug("mesh created",
		zap.Stringer("key", key),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int("indices", len(data.Indices)),
	)
	return b, nil
}

// Acquire makes sure key is uploaded without returning the buffer.
func (c *Cache[B]) Acquire(key Key) error {
	_, err := c.Get(key)
	return err
}

// Has reports whether key has already been uploaded.
func (c *Cache[B]) Has(key Key) bool {
	_, ok := c.buffers[key]
	return ok
}

// Allocations returns how many buffers have been created so far.
func (c *Cache[B]) Allocations() int {
	return c.allocations
}

// Len returns the number of live buffers.
func (c *Cache[B]) Len() int {
	return len(c.buffers)
}

// Close releases every buffer in creation order. Later calls are no-ops.
func (c *Cache[B]) Close() {
	if c.closed {
		return
	}
	c.closed = true

	for _, key := range c.order {
		c.buffers[key].Release()
		delete(c.buffers, key)
	}
	c.order = nil

	logger.Debug("mesh cache released", zap.Int("allocations", c.allocations))
}
