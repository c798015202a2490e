package chainfilter

import (
	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// toTypesLog reconstructs a go-ethereum types.Log from the chain-agnostic
// projection chainclient hands back, so ethcoder's ABI-aware decoders can be
// called directly. BlockHash/TxIndex/Index are not carried by EVMLog (they
// are never consulted by the decode path), so they are left zero.
func toTypesLog(l chainclient.EVMLog) types.Log {
	topics := make([]common.Hash, len(l.Topics))
	for i, t := range l.Topics {
		topics[i] = common.HexToHash(t)
	}
	return types.Log{
		Address:     common.HexToAddress(l.Address),
		Topics:      topics,
		Data:        l.Data,
		BlockNumber: l.BlockNumber,
		TxHash:      common.HexToHash(l.TxHash),
		Removed:     l.Removed,
	}
}
