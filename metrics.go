package sparsego

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after a Set that added a new off-diagonal
	// entry (including placeholder inserts performed by MergeStructure).
	RecordInsert()

	// RecordReplace is called after a Set that overwrote an existing
	// entry or a diagonal slot.
	RecordReplace()

	// RecordResize is called after the backing arrays have grown.
	// oldCapacity and newCapacity are allocated lengths in elements.
	RecordResize(oldCapacity, newCapacity int)

	// RecordCopy is called after a structure-preserving copy
	// (Clone, Cast, Transpose and Mul results).
	RecordCopy()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert()         {}
func (NoopMetricsCollector) RecordReplace()        {}
func (NoopMetricsCollector) RecordResize(int, int) {}
func (NoopMetricsCollector) RecordCopy()           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	InsertCount  atomic.Int64
	ReplaceCount atomic.Int64
	ResizeCount  atomic.Int64
	CopyCount    atomic.Int64
}

func (b *BasicMetricsCollector) RecordInsert()  { b.InsertCount.Add(1) }
func (b *BasicMetricsCollector) RecordReplace() { b.ReplaceCount.Add(1) }
func (b *BasicMetricsCollector) RecordResize(oldCapacity, newCapacity int) {
	b.ResizeCount.Add(1)
}
func (b *BasicMetricsCollector) RecordCopy() { b.CopyCount.Add(1) }
