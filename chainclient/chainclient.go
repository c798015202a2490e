// Package chainclient defines the polymorphic ChainClient facade (§4.3) and
// its optional capability interfaces. Concrete variants live in
// chainclient/evm and chainclient/stellar.
package chainclient

import (
	"context"
	"errors"

	"github.com/chainwatch/chainwatch/chainmodel"
)

var (
	// ErrInvalidRange is returned when from > to is passed to GetBlocks.
	ErrInvalidRange = errors.New("chainclient: invalid range, from must be <= to")

	// ErrMaxAttempts is the sentinel wrapped by superr when the retry
	// budget (initial 1s, cap 8s, max 3 attempts) is exhausted.
	ErrMaxAttempts = errors.New("chainclient: rpc call failed after max attempts")
)

// Client is the operation set common to every chain kind.
type Client interface {
	ChainKind() chainmodel.ChainKind

	// LatestBlockNumber returns the chain head's block/ledger number.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// GetBlocks returns blocks in the inclusive range [from, to]. If to is
	// nil, a single block at from is fetched. The returned slice may be
	// non-contiguous or out of order; callers must tolerate both.
	GetBlocks(ctx context.Context, from uint64, to *uint64) ([]chainmodel.Block, error)

	// Clone returns a cheap copy sharing the underlying transport/HTTP
	// client; it must not duplicate connection pools.
	Clone() Client
}

// LogsCapable is implemented by chain clients that can fetch logs for a
// block range (the EVM variant). Decoding a log's topics/data into typed
// parameters requires the monitored contract's ABI, which chainclient does
// not have; that decoding is chainfilter's job, so EVMLog carries the raw
// topic/data bytes rather than a decoded parameter bag.
type LogsCapable interface {
	GetLogsForBlocks(ctx context.Context, from, to uint64) ([]EVMLog, error)
}

// EVMLog is a chain-agnostic projection of a go-ethereum types.Log, kept
// free of the go-ethereum dependency so chainfilter can depend on
// chainclient alone.
type EVMLog struct {
	BlockNumber uint64
	TxHash      string
	Address     string
	Topics      []string
	Data        []byte
	Removed     bool
}

// ReceiptsCapable is implemented by chain clients that can fetch a
// transaction's receipt independently of its block (the EVM variant).
type ReceiptsCapable interface {
	GetTransactionReceiptStatus(ctx context.Context, txHash string) (found bool, success bool, gasUsed string, err error)
}

// TransactionsCapable is implemented by chain clients that expose a
// transaction-range fetch distinct from GetBlocks (the Stellar variant).
type TransactionsCapable interface {
	GetTransactions(ctx context.Context, from, to uint64) ([]StellarTransaction, error)
}

// EventsCapable is implemented by chain clients that expose an
// events/log range fetch distinct from GetBlocks (the Stellar variant).
type EventsCapable interface {
	GetEvents(ctx context.Context, from, to uint64) ([]StellarEvent, error)
}

// StellarTransaction and StellarEvent are declared here (rather than in
// chainclient/stellar) so chainfilter can depend on chainclient alone
// without importing the concrete Stellar transport.
type StellarTransaction struct {
	Hash          string
	Ledger        uint64
	Successful    bool
	SourceAccount string
	// EnvelopeXDR is the base64-encoded TransactionEnvelope XDR as
	// returned by getTransactions; chainfilter decodes it to recover
	// per-operation detail (Payment sender/receiver/amount,
	// InvokeHostFunction contract/function/args) that the RPC's own
	// transaction summary does not carry.
	EnvelopeXDR string
	Operations  []StellarOperation
}

type StellarOperation struct {
	Type           string
	From           string
	To             string
	FunctionName   string
	FunctionParams []chainmodel.Param
}

type StellarEvent struct {
	Ledger          uint64
	TransactionHash string
	ContractID      string
	Topics          []chainmodel.Param
	Value           chainmodel.Param
}
