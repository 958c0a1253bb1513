// Package generate enumerates functional digraphs up to isomorphism.
//
// # Overview
//
// A functional digraph is a multiset of connected components. [Digraphs]
// yields the [code.Digraph] of every functional digraph on n vertices exactly
// once, built directly from component codes with no isomorphism test. In
// connected mode it yields the [code.Component] of every connected one
// instead.
//
// # Strategies
//
//   - [StrategySuccessor] walks the integer partitions of n in ascending
//     order and, for each, runs an odometer over components of the part sizes
//     using [component.Next], keeping equal-sized parts nondecreasing. This
//     needs no pools and is the order printed by the command line tool.
//   - [StrategyPooled] picks a nondecreasing sequence of components from
//     size-indexed pools built by [component.Necklaces], depth first.
//
// Both yield codes whose components are sorted in the fixed order of package
// code, and both yield the same set.
//
// # Laziness
//
// Sequences are lazy and single-threaded: nothing is computed until the
// consumer ranges over them, and a consumer may stop at any time. Counting
// requires exhausting the sequence ([Count]).
package generate

import (
	"context"
	"iter"
	"time"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/component"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/observability"
)

// Strategy selects the construction used to enumerate digraphs.
type Strategy string

const (
	// StrategySuccessor uses the merge/unmerge successor of components and
	// partitions of n. It is the default.
	StrategySuccessor Strategy = "successor"

	// StrategyPooled uses necklaces over tree pools and nondecreasing
	// selection over component pools.
	StrategyPooled Strategy = "pooled"
)

// Strategies lists the valid strategies, default first.
var Strategies = []Strategy{StrategySuccessor, StrategyPooled}

// ParseStrategy validates s. The empty string selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategySuccessor, nil
	case StrategySuccessor, StrategyPooled:
		return Strategy(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (valid: successor, pooled)", s)
}

// Options configures an enumeration.
type Options struct {
	// Connected restricts the output to connected digraphs, yielded as
	// component codes.
	Connected bool

	// Strategy selects the construction; empty means StrategySuccessor.
	Strategy Strategy
}

// Mode returns "connected" or "full".
func (o Options) Mode() string {
	if o.Connected {
		return "connected"
	}
	return "full"
}

// Digraphs returns the lazy sequence of codes of size n described by opts.
// It fails only for a negative n or an unknown strategy.
//
// In full mode every element is a [code.Digraph]; n = 0 yields the empty
// digraph once. In connected mode every element is a [code.Component]; n = 0
// yields nothing.
func Digraphs(ctx context.Context, n int, opts Options) (iter.Seq[code.Code], error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size must be a nonnegative integer, got %d", n)
	}
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, err
	}
	opts.Strategy = strategy

	var seq iter.Seq[code.Code]
	switch {
	case opts.Connected && strategy == StrategyPooled:
		seq = components(component.NewNecklaces(nil).Components(n))
	case opts.Connected:
		seq = components(component.Successors(n))
	case strategy == StrategyPooled:
		seq = digraphs(pooled(n))
	default:
		seq = digraphs(successor(n))
	}
	return observe(ctx, n, opts, seq), nil
}

// checkEvery is the number of codes counted between checks for
// cancellation.
const checkEvery = 4096

// Count exhausts the sequence described by opts and returns its length.
// It returns ctx.Err() if ctx is done before or while counting.
func Count(ctx context.Context, n int, opts Options) (uint64, error) {
	seq, err := Digraphs(ctx, n, opts)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count uint64
	for range seq {
		count++
		if count%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func components(seq iter.Seq[code.Component]) iter.Seq[code.Code] {
	return func(yield func(code.Code) bool) {
		for c := range seq {
			if !yield(c) {
				return
			}
		}
	}
}

func digraphs(seq iter.Seq[code.Digraph]) iter.Seq[code.Code] {
	return func(yield func(code.Code) bool) {
		for d := range seq {
			if !yield(d) {
				return
			}
		}
	}
}

// observe reports the start and end of each pass over seq to the
// generation hooks.
func observe(ctx context.Context, n int, opts Options, seq iter.Seq[code.Code]) iter.Seq[code.Code] {
	return func(yield func(code.Code) bool) {
		hooks := observability.Generation()
		mode, strategy := opts.Mode(), string(opts.Strategy)
		hooks.OnStart(ctx, n, mode, strategy)
		start := time.Now()
		var count uint64
		defer func() {
			hooks.OnComplete(ctx, n, mode, strategy, count, time.Since(start))
		}()
		for c := range seq {
			count++
			if !yield(c) {
				return
			}
		}
	}
}
