// Package chainstore implements BlockStorage: a durable key/value store,
// keyed by network slug, holding each network's checkpoint and optional
// block/missed-block archives.
package chainstore

import (
	"context"

	"github.com/chainwatch/chainwatch/chainmodel"
)

// Store is the BlockStorage contract (§4.1). Implementations must be
// internally thread-safe: BlockStorage is shared by reference across
// watchers, though per-slug writes are already serialised by each watcher's
// own tick seriality.
type Store interface {
	// GetLastProcessed returns the highest block number whose matches have
	// been dispatched or explicitly skipped, or ok=false if the slug has
	// never been checkpointed.
	GetLastProcessed(ctx context.Context, slug string) (n uint64, ok bool, err error)

	SaveLastProcessed(ctx context.Context, slug string, n uint64) error

	// SaveBlocks archives a non-empty batch of blocks for slug. Only called
	// when the network's StoreBlocks flag is true, and only immediately
	// after a successful DeleteBlocks for the same slug.
	SaveBlocks(ctx context.Context, slug string, blocks []chainmodel.Block) error

	// DeleteBlocks removes any previously archived batches for slug. Idempotent.
	DeleteBlocks(ctx context.Context, slug string) error

	// SaveMissedBlocks appends numbers to slug's missed-block record.
	SaveMissedBlocks(ctx context.Context, slug string, numbers []uint64) error
}
