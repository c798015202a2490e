// Package chainfilter implements BlockFilter (§4.4): it decodes a block's
// transactions, logs/events, and function calls against a set of monitors
// and reports which monitors matched.
package chainfilter

import (
	"context"
	"errors"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainmodel"
)

// ErrBlockTypeMismatch is returned when a block's chain kind does not match
// the filter's own chain kind.
var ErrBlockTypeMismatch = errors.New("chainfilter: block type mismatch")

// Filter is the polymorphic BlockFilter contract, implemented once per
// chain kind (EVMFilter, StellarFilter).
type Filter interface {
	ChainKind() chainmodel.ChainKind

	// FilterBlock evaluates block against monitors, returning one
	// MonitorMatch per (monitor, transaction) pair whose conditions are
	// satisfied.
	// contractSpecs supplements any AddressWithSpec.ABI already carried by
	// a monitor's address list, keyed by normalised address; a monitor's
	// own spec always takes precedence when both are present.
	FilterBlock(ctx context.Context, client chainclient.Client, network chainmodel.Network, block chainmodel.Block, monitors []chainmodel.Monitor, contractSpecs map[string][]byte) ([]chainmodel.MonitorMatch, error)
}

// decisionMatrix implements §4.4.1.vi literally: whether a transaction/
// operation matches a monitor given which condition kinds are configured
// (empty) and which actually fired (match).
func decisionMatrix(eventsEmpty, functionsEmpty, transactionsEmpty bool, eventMatch, functionMatch, transactionMatch bool) bool {
	switch {
	case eventsEmpty && functionsEmpty && transactionsEmpty:
		return true
	case eventsEmpty && functionsEmpty && !transactionsEmpty:
		return transactionMatch
	case transactionsEmpty:
		return eventMatch || functionMatch
	default:
		return (eventMatch || functionMatch) && transactionMatch
	}
}

// monitoredAddresses normalises a monitor's address list for set
// membership checks (§4.4.1.a).
func monitoredAddresses(monitor chainmodel.Monitor) map[string]chainmodel.AddressWithSpec {
	out := make(map[string]chainmodel.AddressWithSpec, len(monitor.Addresses))
	for _, a := range monitor.Addresses {
		out[a.NormalizedAddress()] = a
	}
	return out
}

func involves(monitored map[string]chainmodel.AddressWithSpec, involvedAddresses []string) bool {
	for _, addr := range involvedAddresses {
		if _, ok := monitored[chainmodel.NormalizeAddress(addr)]; ok {
			return true
		}
	}
	return false
}

func dedupeAddresses(addrs []string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		n := chainmodel.NormalizeAddress(a)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
