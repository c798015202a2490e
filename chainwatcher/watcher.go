// Package chainwatcher implements NetworkWatcher and WatcherSupervisor
// (§4.6, §4.7): one cron-scheduled tick loop per network, running the
// chainpipeline over newly-confirmed blocks and advancing the network's
// checkpoint only on full-tick success.
package chainwatcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainfilter"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chainpipeline"
	"github.com/chainwatch/chainwatch/chainstore"
	"github.com/chainwatch/chainwatch/chaintracker"
	"github.com/chainwatch/chainwatch/util"
	"github.com/goware/calc"
	"github.com/goware/superr"
)

// ErrBlockWatcher wraps any failure of a tick's storage/client/pipeline
// calls; the underlying error is always attached via superr.Wrap.
var ErrBlockWatcher = errors.New("chainwatcher: block watcher tick failed")

// Options configures the optional side channels a Supervisor reports
// through, the Options/Alerter half of the convention ethreceipts.Options
// uses alongside its direct logger parameter.
type Options struct {
	// Alerter receives a message whenever a Supervisor-driven tick fails;
	// ProcessTick itself only ever returns the error to its caller.
	Alerter util.Alerter
}

var DefaultOptions = Options{
	Alerter: util.NoopAlerter(),
}

// NetworkWatcher owns one network's chain client clone, block storage
// handle, block tracker, and pipeline, and runs exactly one process_tick
// per cron firing (§4.6).
type NetworkWatcher struct {
	Network chainmodel.Network

	client        chainclient.Client
	store         chainstore.Store
	tracker       *chaintracker.Tracker
	filter        chainfilter.Filter
	monitors      []chainmodel.Monitor
	contractSpecs map[string][]byte
	handler       chainpipeline.TriggerHandler
	log           *slog.Logger
}

func NewNetworkWatcher(network chainmodel.Network, client chainclient.Client, store chainstore.Store, tracker *chaintracker.Tracker, filter chainfilter.Filter, monitors []chainmodel.Monitor, contractSpecs map[string][]byte, handler chainpipeline.TriggerHandler, log *slog.Logger) *NetworkWatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &NetworkWatcher{
		Network:       network,
		client:        client,
		store:         store,
		tracker:       tracker,
		filter:        filter,
		monitors:      monitors,
		contractSpecs: contractSpecs,
		handler:       handler,
		log:           log,
	}
}

// ProcessTick implements §4.6's algorithm literally. The checkpoint
// (last_processed) advances only once every step below succeeds; any
// failure aborts the tick without partial persistence, so the next firing
// re-reads last_processed and re-runs the whole range.
func (w *NetworkWatcher) ProcessTick(ctx context.Context) error {
	slug := w.Network.Slug

	last, ok, err := w.store.GetLastProcessed(ctx, slug)
	if err != nil {
		return superr.Wrap(ErrBlockWatcher, fmt.Errorf("get_last_processed: %w", err))
	}
	if !ok {
		last = 0
	}

	latest, err := w.client.LatestBlockNumber(ctx)
	if err != nil {
		return superr.Wrap(ErrBlockWatcher, fmt.Errorf("latest_block_number: %w", err))
	}

	var latestConfirmed uint64
	if latest > w.Network.ConfirmationBlocks {
		latestConfirmed = latest - w.Network.ConfirmationBlocks
	}

	maxPastBlocks := w.recommendedPastBlocks()

	var blocks []chainmodel.Block
	var resetTo uint64

	switch {
	case last == 0:
		resetTo = latestConfirmed
		fetched, err := w.client.GetBlocks(ctx, latestConfirmed, nil)
		if err != nil {
			return superr.Wrap(ErrBlockWatcher, fmt.Errorf("get_blocks: %w", err))
		}
		blocks = fetched

	case last < latestConfirmed:
		start := calc.Max(last+1, latestConfirmed-(maxPastBlocks-1))
		resetTo = start
		to := latestConfirmed
		fetched, err := w.client.GetBlocks(ctx, start, &to)
		if err != nil {
			return superr.Wrap(ErrBlockWatcher, fmt.Errorf("get_blocks: %w", err))
		}
		blocks = fetched

	default:
		resetTo = latestConfirmed
	}

	w.tracker.ResetExpectedNext(slug, resetTo)

	numbers := make([]uint64, len(blocks))
	for i, b := range blocks {
		numbers[i] = b.Number()
	}
	missing := w.tracker.DetectMissingBlocks(slug, numbers)
	if len(missing) > 0 && w.Network.StoreBlocks {
		if err := w.store.SaveMissedBlocks(ctx, slug, missing); err != nil {
			return superr.Wrap(ErrBlockWatcher, fmt.Errorf("save_missed_blocks: %w", err))
		}
	}

	stage := chainpipeline.NewStage(w.filter, w.tracker, w.handler, w.log)
	if err := stage.Run(ctx, w.client, w.Network, blocks, w.monitors, w.contractSpecs); err != nil {
		return superr.Wrap(ErrBlockWatcher, fmt.Errorf("pipeline: %w", err))
	}

	if w.Network.StoreBlocks {
		if err := w.store.DeleteBlocks(ctx, slug); err != nil {
			return superr.Wrap(ErrBlockWatcher, fmt.Errorf("delete_blocks: %w", err))
		}
		if len(blocks) > 0 {
			if err := w.store.SaveBlocks(ctx, slug, blocks); err != nil {
				return superr.Wrap(ErrBlockWatcher, fmt.Errorf("save_blocks: %w", err))
			}
		}
	}

	if err := w.store.SaveLastProcessed(ctx, slug, latestConfirmed); err != nil {
		return superr.Wrap(ErrBlockWatcher, fmt.Errorf("save_last_processed: %w", err))
	}

	return nil
}

// recommendedPastBlocks returns network.MaxPastBlocks if set, else derives
// it from the cron schedule's own firing interval; falling back to the
// network's block time if the schedule can't be parsed (it will have
// already failed supervisor.Start in that case, so this path only matters
// for a watcher constructed and ticked directly in tests).
func (w *NetworkWatcher) recommendedPastBlocks() uint64 {
	if w.Network.MaxPastBlocks != nil {
		return *w.Network.MaxPastBlocks
	}
	intervalMs, err := cronIntervalMs(w.Network.CronSchedule)
	if err != nil {
		intervalMs = w.Network.BlockTimeMs
	}
	return w.Network.RecommendedPastBlocks(intervalMs)
}
