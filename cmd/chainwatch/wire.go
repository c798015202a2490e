package main

import (
	"fmt"
	"net/http"

	"github.com/chainwatch/chainwatch/chainclient"
	evmclient "github.com/chainwatch/chainwatch/chainclient/evm"
	stellarclient "github.com/chainwatch/chainwatch/chainclient/stellar"
	"github.com/chainwatch/chainwatch/chainfilter"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/ethrpc"
	"github.com/goware/logger"
	"github.com/stellar/go/clients/horizonclient"
)

// primaryRPCURL picks the highest-weight endpoint (ties broken by
// declaration order), matching the weighted-selection contract §3
// describes for the out-of-scope transport layer; chainwatch itself only
// needs one endpoint per network to construct a client.
func primaryRPCURL(network chainmodel.Network) (string, error) {
	var best chainmodel.RPCEndpoint
	for _, e := range network.RPCEndpoints {
		if e.Weight > best.Weight {
			best = e
		}
	}
	if best.URL == "" {
		return "", fmt.Errorf("network %q has no weighted rpc endpoint", network.Slug)
	}
	return best.URL, nil
}

// buildClient constructs the concrete chainclient.Client for network's
// chain kind.
func buildClient(network chainmodel.Network, log *logger.Logger) (chainclient.Client, error) {
	url, err := primaryRPCURL(network)
	if err != nil {
		return nil, err
	}

	switch network.ChainKind {
	case chainmodel.EVM:
		provider, err := ethrpc.NewProvider(url)
		if err != nil {
			return nil, fmt.Errorf("network %q: dial: %w", network.Slug, err)
		}
		return evmclient.New(network.Slug, provider, log)

	case chainmodel.Stellar:
		horizon := &horizonclient.Client{HorizonURL: url, HTTP: http.DefaultClient}
		rpc := stellarclient.NewHTTPRPCTransport(url, http.DefaultClient)
		return stellarclient.New(network.Slug, horizon, rpc, log), nil

	default:
		return nil, fmt.Errorf("network %q: unsupported chain kind %q", network.Slug, network.ChainKind)
	}
}

// buildFilter constructs the concrete chainfilter.Filter for kind.
func buildFilter(kind chainmodel.ChainKind, log *logger.Logger) (chainfilter.Filter, error) {
	switch kind {
	case chainmodel.EVM:
		return chainfilter.NewEVMFilter(log), nil
	case chainmodel.Stellar:
		return chainfilter.NewStellarFilter(log), nil
	default:
		return nil, fmt.Errorf("unsupported chain kind %q", kind)
	}
}
