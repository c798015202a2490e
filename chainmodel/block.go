package chainmodel

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// Block is the chain-tagged container ChainClient.GetBlocks returns. The
// concrete payload is chain-specific; BlockFilter implementations type-assert
// to their own variant and reject mismatches as BlockTypeMismatch.
type Block interface {
	ChainKind() ChainKind
	Number() uint64
	Hash() string
}

// EVMBlock wraps a go-ethereum block with its network slug.
type EVMBlock struct {
	NetworkSlug string
	Block       *types.Block
}

func (b EVMBlock) ChainKind() ChainKind { return EVM }
func (b EVMBlock) Number() uint64       { return b.Block.NumberU64() }
func (b EVMBlock) Hash() string         { return b.Block.Hash().Hex() }

// StellarLedger is the Stellar analogue of a Block: one ledger and its
// sequence number.
type StellarLedger struct {
	NetworkSlug string
	Sequence    uint32
	LedgerHash  string
	ClosedAt    int64
}

func (l StellarLedger) ChainKind() ChainKind { return Stellar }
func (l StellarLedger) Number() uint64       { return uint64(l.Sequence) }
func (l StellarLedger) Hash() string         { return l.LedgerHash }
