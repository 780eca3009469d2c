package sparsego

type options struct {
	initialCapacity int
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures matrix construction.
//
// Options apply to the matrix being created and are inherited by matrices
// derived from it (Clone, Transpose, Mul, MergeStructure results).
type Option func(*options)

// WithInitialCapacity sets the initial allocated length of the backing
// arrays. The value is clamped to the valid range for the matrix shape:
// at least the row-header region plus one entry, at most one slot per
// representable off-diagonal nonzero plus the sentinel.
//
// Sizing this to the expected nonzero count avoids growth-factor resizes
// during bulk insertion.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = capacity
	}
}

// WithLogger configures structured logging. If nil is passed, logging
// stays disabled (the default).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// storage operations. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  noopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
