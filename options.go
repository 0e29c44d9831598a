package connectome

import (
	"github.com/hupe1980/connectome/blobstore"
	"github.com/hupe1980/connectome/snapshot"
)

// ParamPositions maps the two logical per-edge parameters, weight and
// delay, to positions in the generator's parameter array. Required when
// the generator's arity is 2; the two positions must be distinct and
// drawn from {0, 1}.
type ParamPositions struct {
	Weight int
	Delay  int
}

func (p ParamPositions) validate() error {
	if p.Weight == p.Delay {
		return &ErrBadParamPositions{Positions: &p, Reason: "weight and delay must map to distinct positions"}
	}
	if p.Weight < 0 || p.Weight > 1 || p.Delay < 0 || p.Delay > 1 {
		return &ErrBadParamPositions{Positions: &p, Reason: "positions must be 0 or 1"}
	}
	return nil
}

type options struct {
	logger          *Logger
	metrics         MetricsCollector
	params          *ParamPositions
	continueOnError bool
	snapshotStore   blobstore.Store
	snapshotRun     string
	snapshotOptFns  []func(*snapshot.Options)
}

// Option configures Connector behavior.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// connect calls. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithParamPositions configures which positions of the generator's
// parameter array hold the connection weight and delay. Required for
// arity-2 generators; ignored for arity-0 generators.
func WithParamPositions(weight, delay int) Option {
	return func(o *options) {
		o.params = &ParamPositions{Weight: weight, Delay: delay}
	}
}

// WithContinueOnError makes Connect keep iterating after a per-triple
// connection failure instead of aborting. Failures are counted and
// logged either way; already-created connections are never rolled back.
func WithContinueOnError() Option {
	return func(o *options) {
		o.continueOnError = true
	}
}

// WithSnapshot makes every connect call dump its mask derivation to the
// given store under run (see snapshot.Name). Used to diagnose divergent
// replicated computation across ranks.
//
// Example:
//
//	connectome.WithSnapshot(store, "run-2026-08-26", func(o *snapshot.Options) {
//	    o.Compression = snapshot.LZ4{}
//	})
func WithSnapshot(store blobstore.Store, run string, optFns ...func(*snapshot.Options)) Option {
	return func(o *options) {
		o.snapshotStore = store
		o.snapshotRun = run
		o.snapshotOptFns = optFns
	}
}
