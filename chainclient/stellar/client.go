// Package stellar implements chainclient.Client for Stellar networks.
//
// Chain-head discovery goes through Horizon (root/latest-ledger, same as
// the original's HorizonTransportClient), while ledger/transaction/event
// enumeration goes through the Soroban RPC JSON-RPC methods the original
// calls directly (getLedgers, getTransactions, getEvents) since no typed
// Go client for them exists in this module's dependency set — see
// rpc_transport.go and DESIGN.md.
package stellar

import (
	"context"
	"fmt"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/goware/logger"
	"github.com/stellar/go/protocols/horizon"
)

// pageLimit is the RPC endpoint's maximum page size (§4.3).
const pageLimit = 200

// HorizonRoot is the subset of horizonclient.Client this package uses for
// chain-head discovery.
type HorizonRoot interface {
	Root() (horizon.Root, error)
}

type Client struct {
	slug    string
	horizon HorizonRoot
	rpc     RPCTransport
	log     *logger.Logger
}

func New(slug string, horizonRoot HorizonRoot, rpc RPCTransport, log *logger.Logger) *Client {
	return &Client{slug: slug, horizon: horizonRoot, rpc: rpc, log: log}
}

var _ chainclient.Client = (*Client)(nil)
var _ chainclient.TransactionsCapable = (*Client)(nil)
var _ chainclient.EventsCapable = (*Client)(nil)

func (c *Client) ChainKind() chainmodel.ChainKind { return chainmodel.Stellar }

func (c *Client) Clone() chainclient.Client {
	return &Client{slug: c.slug, horizon: c.horizon, rpc: c.rpc, log: c.log}
}

func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var seq uint64
	err := chainclient.Retry(ctx, func() error {
		root, err := c.horizon.Root()
		if err != nil {
			return err
		}
		seq = uint64(root.HorizonSequence)
		return nil
	})
	return seq, err
}

type ledgersResult struct {
	Ledgers []rpcLedger `json:"ledgers"`
	Cursor  string      `json:"cursor"`
}

type rpcLedger struct {
	Hash            string `json:"hash"`
	Sequence        uint32 `json:"sequence"`
	LedgerCloseTime int64  `json:"ledgerCloseTime,string"`
}

// GetBlocks walks getLedgers cursor-by-cursor, stopping once a returned
// ledger exceeds the requested range — the same loop shape as the
// original's get_blocks (original_source: clients/stellar.rs).
func (c *Client) GetBlocks(ctx context.Context, from uint64, to *uint64) ([]chainmodel.Block, error) {
	target := from
	if to != nil {
		target = *to
	}
	if from > target {
		return nil, chainclient.ErrInvalidRange
	}

	var blocks []chainmodel.Block
	cursor := ""

	for {
		start := from
		if cursor != "" {
			start = 0 // cursor supersedes startLedger once set, per the RPC's own pagination contract
		}

		var page ledgersResult
		err := chainclient.Retry(ctx, func() error {
			return c.rpc.Call(ctx, "getLedgers", rpcPaginationParams(start, cursor), &page)
		})
		if err != nil {
			return nil, fmt.Errorf("chainclient/stellar: getLedgers: %w", err)
		}
		if len(page.Ledgers) == 0 {
			break
		}

		done := false
		for _, l := range page.Ledgers {
			seq := uint64(l.Sequence)
			if seq > target {
				done = true
				break
			}
			blocks = append(blocks, chainmodel.StellarLedger{
				NetworkSlug: c.slug,
				Sequence:    l.Sequence,
				LedgerHash:  l.Hash,
				ClosedAt:    l.LedgerCloseTime,
			})
		}
		if done || page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	return blocks, nil
}

type transactionsResult struct {
	Transactions []rpcTransaction `json:"transactions"`
	Cursor       string           `json:"cursor"`
}

type rpcTransaction struct {
	Status      string `json:"status"`
	Ledger      uint32 `json:"ledger"`
	TxHash      string `json:"txHash"`
	SourceAccnt string `json:"sourceAccount"`
	EnvelopeXDR string `json:"envelopeXdr"`
}

// GetTransactions walks getTransactions the same way GetBlocks walks
// getLedgers (original_source: clients/stellar.rs get_transactions).
func (c *Client) GetTransactions(ctx context.Context, from, to uint64) ([]chainclient.StellarTransaction, error) {
	if from > to {
		return nil, chainclient.ErrInvalidRange
	}

	var out []chainclient.StellarTransaction
	cursor := ""

	for {
		start := from
		if cursor != "" {
			start = 0
		}

		var page transactionsResult
		err := chainclient.Retry(ctx, func() error {
			return c.rpc.Call(ctx, "getTransactions", rpcPaginationParams(start, cursor), &page)
		})
		if err != nil {
			return nil, fmt.Errorf("chainclient/stellar: getTransactions: %w", err)
		}
		if len(page.Transactions) == 0 {
			break
		}

		done := false
		for _, tx := range page.Transactions {
			if uint64(tx.Ledger) > to {
				done = true
				break
			}
			out = append(out, chainclient.StellarTransaction{
				Hash:          tx.TxHash,
				Ledger:        uint64(tx.Ledger),
				Successful:    tx.Status == "SUCCESS",
				SourceAccount: tx.SourceAccnt,
				EnvelopeXDR:   tx.EnvelopeXDR,
			})
		}
		if done || page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	return out, nil
}

type eventsResult struct {
	Events []rpcEvent `json:"events"`
	Cursor string     `json:"cursor"`
}

type rpcEvent struct {
	Ledger          uint32   `json:"ledger"`
	TransactionHash string   `json:"txHash"`
	ContractID      string   `json:"contractId"`
	Topic           []string `json:"topic"` // base64 XDR ScVal, one per entry
	Value           string   `json:"value"` // base64 XDR ScVal
}

// GetEvents walks getEvents, restricted to contract events per the
// original's filter (original_source: clients/stellar.rs get_events). Topic
// and value XDR decoding into typed parameters is left to chainfilter,
// which holds the monitored contract's event signature to decode against.
func (c *Client) GetEvents(ctx context.Context, from, to uint64) ([]chainclient.StellarEvent, error) {
	if from > to {
		return nil, chainclient.ErrInvalidRange
	}

	var out []chainclient.StellarEvent
	cursor := ""

	for {
		start := from
		if cursor != "" {
			start = 0
		}

		var page eventsResult
		err := chainclient.Retry(ctx, func() error {
			params := rpcPaginationParams(start, cursor)
			params["filters"] = []map[string]string{{"type": "contract"}}
			return c.rpc.Call(ctx, "getEvents", params, &page)
		})
		if err != nil {
			return nil, fmt.Errorf("chainclient/stellar: getEvents: %w", err)
		}
		if len(page.Events) == 0 {
			break
		}

		done := false
		for _, e := range page.Events {
			if uint64(e.Ledger) > to {
				done = true
				break
			}
			topics := make([]chainmodel.Param, 0, len(e.Topic))
			for _, t := range e.Topic {
				topics = append(topics, chainmodel.Param{Kind: chainmodel.ParamKindSymbol, Value: t})
			}
			out = append(out, chainclient.StellarEvent{
				Ledger:          uint64(e.Ledger),
				TransactionHash: e.TransactionHash,
				ContractID:      e.ContractID,
				Topics:          topics,
				Value:           chainmodel.Param{Kind: chainmodel.ParamKindSymbol, Value: e.Value},
			})
		}
		if done || page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	return out, nil
}

func rpcPaginationParams(startLedger uint64, cursor string) map[string]any {
	pagination := map[string]any{"limit": pageLimit}
	if cursor != "" {
		pagination["cursor"] = cursor
	}
	params := map[string]any{"pagination": pagination}
	if cursor == "" {
		params["startLedger"] = startLedger
	}
	return params
}
