package sortedarray

import "log/slog"

// Option configures a Sequence at construction time.
type Option func(*options)

type options struct {
	capacity int          // Initial capacity of the backing slice
	logger   *slog.Logger // Sink for diagnostics; discarded when nil
}

// WithCapacity pre-sizes the backing storage for n elements. The capacity is never
// smaller than the number of initial elements; negative values are ignored.
//
// Example:
//
//	seq := sortedarray.New[int](nil, sortedarray.WithCapacity(1024))
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger a Sequence reports diagnostics to, such as MapInPlace
// leaving the elements out of order. By default diagnostics are discarded.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
