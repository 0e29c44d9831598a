package connectome

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/connectome/generator"
	"github.com/hupe1980/connectome/mask"
	"github.com/hupe1980/connectome/model"
	"github.com/hupe1980/connectome/rangeset"
	"github.com/hupe1980/connectome/snapshot"
)

// Connector drives generator-based connectivity building for one process
// of a cooperating group.
//
// All heavy computation is replicated: every process derives the same
// RangeSets and the same full per-process mask slice from the same
// populations and process count, then installs only its own rank's mask
// into the generator. No messages are exchanged during a connect call;
// correctness rests on determinism and on every process receiving
// identical inputs.
//
// A Connector holds no mutable state across calls and is not meant to be
// used concurrently with itself on the same populations.
type Connector struct {
	directory model.Directory
	registry  model.SynapseRegistry
	processes int
	rank      int
	opts      options
}

// Result reports what one connect call did on the calling process.
type Result struct {
	// Created is the number of connections created.
	Created int

	// Failed is the number of per-triple creation failures. Non-zero
	// only with WithContinueOnError; otherwise the first failure aborts
	// the call.
	Failed int
}

// New creates a Connector for the given collaborators and process-group
// facts. processes and rank are inputs from the process-group bootstrap,
// not computed here.
func New(directory model.Directory, registry model.SynapseRegistry, processes, rank int, optFns ...Option) (*Connector, error) {
	if processes < 1 {
		return nil, mask.ErrInvalidProcessCount
	}
	if rank < 0 || rank >= processes {
		return nil, fmt.Errorf("%w: rank %d with %d processes", ErrRankOutOfRange, rank, processes)
	}

	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Connector{
		directory: directory,
		registry:  registry,
		processes: processes,
		rank:      rank,
		opts:      opts,
	}, nil
}

// Rank returns the calling process's rank.
func (c *Connector) Rank() int { return c.rank }

// Processes returns the process-group size.
func (c *Connector) Processes() int { return c.processes }

// BuildMasks computes the RangeSets and the full per-process mask slice
// for the given populations without driving a generator. Connect uses it
// internally; it is exposed for the verify and snapshot diagnostics.
func (c *Connector) BuildMasks(sources, targets model.Population) ([]mask.Mask, rangeset.RangeSet, rangeset.RangeSet, error) {
	if err := sources.Validate(); err != nil {
		return nil, nil, nil, &ErrInvalidPopulation{Side: "source", cause: err}
	}
	if err := targets.Validate(); err != nil {
		return nil, nil, nil, &ErrInvalidPopulation{Side: "target", cause: err}
	}

	srcSet, err := rangeset.Extract(sources)
	if err != nil {
		return nil, nil, nil, translateError(err)
	}
	tgtSet, err := rangeset.Extract(targets)
	if err != nil {
		return nil, nil, nil, translateError(err)
	}

	masks, err := mask.Build(srcSet, tgtSet, c.processes)
	if err != nil {
		return nil, nil, nil, err
	}

	return masks, srcSet, tgtSet, nil
}

// Connect builds this process's share of the connectivity between sources
// and targets as emitted by gen, creating synapses of the named model
// through the node directory.
//
// Configuration errors (unsupported arity, missing or ambiguous
// weight/delay positions, unknown synapse model, malformed populations)
// are detected before the first triple is requested; no connections are
// created in that case. Per-triple creation failures abort the call
// unless WithContinueOnError is set; connections created by earlier
// triples are never rolled back.
func (c *Connector) Connect(ctx context.Context, sources, targets model.Population, gen generator.Generator, synapseModel string) (Result, error) {
	logger := c.opts.logger.WithRank(c.rank).WithSynapseModel(synapseModel)

	// Fail fast on configuration before touching any state.
	arity := gen.Arity()
	if arity != 0 && arity != 2 {
		return Result{}, &ErrUnsupportedArity{Arity: arity}
	}

	var positions ParamPositions
	if arity == 2 {
		if c.opts.params == nil {
			return Result{}, &ErrBadParamPositions{Reason: "weight/delay positions not configured for an arity-2 generator"}
		}
		positions = *c.opts.params
		if err := positions.validate(); err != nil {
			return Result{}, err
		}
	}

	synapseType, err := c.registry.Lookup(synapseModel)
	if err != nil {
		return Result{}, err
	}

	buildStart := time.Now()
	masks, srcSet, tgtSet, err := c.BuildMasks(sources, targets)
	if err != nil {
		return Result{}, err
	}
	c.opts.metrics.RecordMaskBuild(c.processes, len(srcSet)+len(tgtSet), time.Since(buildStart))
	logger.LogMaskBuild(ctx, c.processes, len(srcSet), len(tgtSet))

	if c.opts.snapshotStore != nil {
		snap := &snapshot.Snapshot{
			Rank:      c.rank,
			Processes: c.processes,
			Sources:   srcSet,
			Targets:   tgtSet,
			Masks:     masks,
		}
		name := snapshot.Name(c.opts.snapshotRun, c.rank)
		if err := snapshot.Save(ctx, c.opts.snapshotStore, name, snap, c.opts.snapshotOptFns...); err != nil {
			return Result{}, fmt.Errorf("save mask snapshot %q: %w", name, err)
		}
	}

	gen.SetMask(masks, c.rank)
	if err := gen.Start(); err != nil {
		return Result{}, fmt.Errorf("start generator: %w", err)
	}

	// The installed target mask already restricts the generator to
	// locally owned targets; no per-triple locality check is needed.
	var res Result
	iterStart := time.Now()

	for {
		tr, ok := gen.Next()
		if !ok {
			break
		}

		source, err := c.directory.Resolve(sources, tr.Source)
		if err != nil {
			err = fmt.Errorf("resolve source index %d: %w", tr.Source, err)
			c.finish(ctx, logger, res, iterStart, err)
			return res, err
		}
		target, err := c.directory.Resolve(targets, tr.Target)
		if err != nil {
			err = fmt.Errorf("resolve target index %d: %w", tr.Target, err)
			c.finish(ctx, logger, res, iterStart, err)
			return res, err
		}

		conn := model.Connection{
			Source:      source,
			Target:      target,
			SynapseType: synapseType,
		}
		if arity == 2 {
			if len(tr.Params) != 2 {
				err := fmt.Errorf("generator emitted %d parameters, want 2", len(tr.Params))
				c.finish(ctx, logger, res, iterStart, err)
				return res, err
			}
			weight, delay := tr.Params[positions.Weight], tr.Params[positions.Delay]
			conn.Weight, conn.Delay = &weight, &delay
		}

		if err := c.directory.Connect(ctx, conn); err != nil {
			res.Failed++
			if !c.opts.continueOnError {
				err = fmt.Errorf("create connection %d -> %d: %w", source, target, err)
				c.finish(ctx, logger, res, iterStart, err)
				return res, err
			}
			logger.WarnContext(ctx, "connection creation failed",
				"source", uint64(source),
				"target", uint64(target),
				"error", err,
			)
			continue
		}
		res.Created++
	}

	c.finish(ctx, logger, res, iterStart, nil)
	return res, nil
}

func (c *Connector) finish(ctx context.Context, logger *Logger, res Result, start time.Time, err error) {
	c.opts.metrics.RecordConnect(res.Created, res.Failed, time.Since(start), err)
	logger.LogConnect(ctx, res.Created, res.Failed, err)
}
