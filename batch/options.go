package batch

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/valgebra/internal/conv"
)

// Metrics receives batch timings.
type Metrics interface {
	RecordBatch(n int, d time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) RecordBatch(int, time.Duration) {}

type options struct {
	selection   *roaring.Bitmap
	concurrency int
	chunk       int
	metrics     Metrics
}

// DefaultChunk is the number of elements a single worker processes at once.
const DefaultChunk = 4096

// Option configures a batch call.
type Option func(*options)

// WithSelection restricts the call to the elements whose index is in sel.
// Elements outside the selection are left untouched.
func WithSelection(sel *roaring.Bitmap) Option {
	return func(o *options) { o.selection = sel }
}

// WithConcurrency processes disjoint chunks on up to n goroutines.
// Values below 2 run on the calling goroutine.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithChunk sets the number of elements per parallel chunk.
func WithChunk(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunk = n
		}
	}
}

// WithMetrics reports the element count and duration of every call.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		concurrency: 1,
		chunk:       DefaultChunk,
		metrics:     noopMetrics{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// checkSelection rejects selections over buffers a bitmap cannot address.
func (o *options) checkSelection(n int) error {
	if o.selection == nil {
		return nil
	}
	if _, err := conv.IntToUint32(n); err != nil {
		return fmt.Errorf("batch: selection over %d values: %w", n, err)
	}
	return nil
}
