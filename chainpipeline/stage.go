// Package chainpipeline implements PipelineStage (§4.5): a bounded
// concurrent filter stage feeding an ordered trigger stage, so that
// trigger invocations for a tick are strictly ordered by ascending block
// number even though the blocks themselves are filtered out of order.
package chainpipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainfilter"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chaintracker"
	"github.com/chainwatch/chainwatch/util"
	"github.com/goware/channel"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// maxConcurrentFilters bounds the parallel filter stage's fan-out (§4.5).
const maxConcurrentFilters = 32

// matchStreamInitCap and matchStreamWarnCap size the subscriber-facing
// match stream the same way ethmonitor sizes its block-event channel: a
// small initial capacity with a much larger threshold before the channel
// logs that it's falling behind its consumer.
const (
	matchStreamInitCap = 2
	matchStreamWarnCap = 2000
)

// TriggerHandler is invoked once per in-order, non-empty ProcessedBlock.
// Run drains them through a single ordered consumer goroutine, so calls
// to handler for one tick never interleave with each other.
type TriggerHandler func(ctx context.Context, block chainmodel.ProcessedBlock)

// Options configures the optional side channels a Stage reports through.
type Options struct {
	Alerter util.Alerter
}

var DefaultOptions = Options{
	Alerter: util.NoopAlerter(),
}

// Stage runs the two-stage pipeline for a single tick: it filters every
// supplied block concurrently, then replays the results through handler in
// ascending block-number order.
type Stage struct {
	filter  chainfilter.Filter
	tracker *chaintracker.Tracker
	handler TriggerHandler
	log     *slog.Logger
	opts    Options
}

func NewStage(filter chainfilter.Filter, tracker *chaintracker.Tracker, handler TriggerHandler, log *slog.Logger, opts ...Options) *Stage {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Stage{filter: filter, tracker: tracker, handler: handler, log: log, opts: o}
}

// Run filters blocks concurrently (bounded by maxConcurrentFilters) and
// dispatches handler for each in ascending block-number order. A filter
// failure on one block is logged and that block is dropped from the
// trigger stage; it does not cancel sibling filter tasks or fail the tick
// as a whole (§4.5's "errors fail only that block").
func (s *Stage) Run(ctx context.Context, client chainclient.Client, network chainmodel.Network, blocks []chainmodel.Block, monitors []chainmodel.Monitor, contractSpecs map[string][]byte) error {
	if len(blocks) == 0 {
		return nil
	}

	buf := newReorderBuffer(blocks)

	stream := channel.NewUnboundedChan[chainmodel.ProcessedBlock](matchStreamInitCap, matchStreamWarnCap, channel.Options{
		Logger:  s.log,
		Alerter: s.opts.Alerter,
		Label:   "chainpipeline",
	})

	var consumer sync.WaitGroup
	consumer.Add(1)
	go func() {
		defer consumer.Done()
		for b := range stream.ReadChannel() {
			s.handler(ctx, b)
		}
	}()

	sem := semaphore.NewWeighted(maxConcurrentFilters)
	g, gctx := errgroup.WithContext(ctx)

	for _, block := range blocks {
		block := block
		if err := sem.Acquire(ctx, 1); err != nil {
			stream.Close()
			consumer.Wait()
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)

			matches, err := s.filter.FilterBlock(gctx, client, network, block, monitors, contractSpecs)
			num := block.Number()

			if s.tracker != nil {
				check := s.tracker.CheckProcessedBlock(network.Slug, num)
				if check.Status != chaintracker.StatusOk {
					s.log.Warn(fmt.Sprintf("chainpipeline: block %d on %s classified as %s", num, network.Slug, check.Status))
				}
			}

			if err != nil {
				s.log.Warn(fmt.Sprintf("chainpipeline: filter_block failed for %s block %d: %v", network.Slug, num, err))
				buf.put(num, chainmodel.ProcessedBlock{BlockNumber: num, NetworkSlug: network.Slug})
			} else {
				buf.put(num, chainmodel.ProcessedBlock{BlockNumber: num, NetworkSlug: network.Slug, Matches: matches})
			}

			for _, ready := range buf.drain() {
				if len(ready.Matches) == 0 {
					continue
				}
				stream.Send(ready)
			}

			return nil
		})
	}

	err := g.Wait()

	for _, ready := range buf.drainAll() {
		if len(ready.Matches) == 0 {
			continue
		}
		stream.Send(ready)
	}

	stream.Close()
	consumer.Wait()

	return err
}

// reorderBuffer sequences ProcessedBlocks by ascending block number,
// starting from the lowest number in the batch: a mutex-guarded map plus
// cursor, generalised from reorg-event reconciliation to plain ascending
// drain. Entries only ever move forward past the cursor, never retracted.
type reorderBuffer struct {
	mu      sync.Mutex
	pending map[uint64]chainmodel.ProcessedBlock
	cursor  uint64
}

func newReorderBuffer(blocks []chainmodel.Block) *reorderBuffer {
	start := blocks[0].Number()
	for _, b := range blocks {
		if b.Number() < start {
			start = b.Number()
		}
	}
	return &reorderBuffer{
		pending: make(map[uint64]chainmodel.ProcessedBlock, len(blocks)),
		cursor:  start,
	}
}

func (r *reorderBuffer) put(n uint64, block chainmodel.ProcessedBlock) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[n] = block
}

// drain returns the contiguous prefix of ready blocks starting at cursor,
// advancing cursor past each one returned.
func (r *reorderBuffer) drain() []chainmodel.ProcessedBlock {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []chainmodel.ProcessedBlock
	for {
		block, ok := r.pending[r.cursor]
		if !ok {
			break
		}
		out = append(out, block)
		delete(r.pending, r.cursor)
		r.cursor++
	}
	return out
}

// drainAll is called once the filter stage has finished: any blocks still
// pending at that point (a gap the batch itself never filled, e.g. a
// number the caller skipped) are flushed in ascending order rather than
// withheld forever.
func (r *reorderBuffer) drainAll() []chainmodel.ProcessedBlock {
	r.mu.Lock()
	defer r.mu.Unlock()

	nums := make([]uint64, 0, len(r.pending))
	for n := range r.pending {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	out := make([]chainmodel.ProcessedBlock, 0, len(nums))
	for _, n := range nums {
		out = append(out, r.pending[n])
		delete(r.pending, n)
	}
	return out
}
