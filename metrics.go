package connectome

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordMaskBuild is called after each mask-construction pass.
	// processes is the process-group size, ranges the total number of
	// ranges across both populations, duration the time taken.
	RecordMaskBuild(processes, ranges int, duration time.Duration)

	// RecordConnect is called after each connect call. created is the
	// number of connections created, failed the number of per-triple
	// failures, err is non-nil when the call aborted.
	RecordConnect(created, failed int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMaskBuild(int, int, time.Duration)      {}
func (NoopMetricsCollector) RecordConnect(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MaskBuildCount      atomic.Int64
	MaskBuildTotalNanos atomic.Int64
	ConnectCount        atomic.Int64
	ConnectErrors       atomic.Int64
	ConnectionsCreated  atomic.Int64
	ConnectionsFailed   atomic.Int64
	ConnectTotalNanos   atomic.Int64
}

// RecordMaskBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMaskBuild(processes, ranges int, duration time.Duration) {
	b.MaskBuildCount.Add(1)
	b.MaskBuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordConnect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConnect(created, failed int, duration time.Duration, err error) {
	b.ConnectCount.Add(1)
	b.ConnectionsCreated.Add(int64(created))
	b.ConnectionsFailed.Add(int64(failed))
	b.ConnectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConnectErrors.Add(1)
	}
}
