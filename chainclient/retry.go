package chainclient

import (
	"context"
	"time"

	"github.com/goware/breaker"
	"github.com/goware/superr"
)

// Retry wraps fn with the chain-client-wide backoff policy (§4.3): initial
// 1s delay, factor 2, max 3 attempts — the same breaker.Do call shape the
// teacher uses for its own chain-ID bootstrap (ethmonitor.getChainID,
// ethreceipts.getChainID).
func Retry(ctx context.Context, fn func() error) error {
	err := breaker.Do(ctx, fn, nil, 1*time.Second, 2, 3)
	if err != nil {
		return superr.New(ErrMaxAttempts, err)
	}
	return nil
}
