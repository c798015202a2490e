package chainmodel_test

import (
	"testing"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chainmodel/chainmodeltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkValidate(t *testing.T) {
	ok := chainmodeltest.NewNetwork("ethereum_mainnet").Build()
	require.NoError(t, ok.Validate())

	badSlug := ok
	badSlug.Slug = "Ethereum Mainnet"
	assert.ErrorIs(t, badSlug.Validate(), chainmodel.ErrInvalidSlug)

	noWeight := ok
	noWeight.RPCEndpoints = []chainmodel.RPCEndpoint{{URL: "https://x", Weight: 0}}
	assert.ErrorIs(t, noWeight.Validate(), chainmodel.ErrNoWeightedEndpoint)

	badKind := ok
	badKind.ChainKind = "solana"
	assert.ErrorIs(t, badKind.Validate(), chainmodel.ErrInvalidChainKind)

	slowBlock := ok
	slowBlock.BlockTimeMs = 10
	assert.ErrorIs(t, slowBlock.Validate(), chainmodel.ErrBlockTimeTooLow)

	noConfirm := ok
	noConfirm.ConfirmationBlocks = 0
	assert.ErrorIs(t, noConfirm.Validate(), chainmodel.ErrNoConfirmations)
}

func TestRecommendedPastBlocks(t *testing.T) {
	n := chainmodeltest.NewNetwork("poly").BlockTimeMs(2000).ConfirmationBlocks(5).Build()
	// 10s cron interval / 2s block time = 5 ticks, +5 confirmations +1
	assert.Equal(t, uint64(11), n.RecommendedPastBlocks(10_000))
}

func TestMaxPastBlocksOrRecommended(t *testing.T) {
	n := chainmodeltest.NewNetwork("poly").MaxPastBlocks(50).Build()
	assert.Equal(t, uint64(50), n.MaxPastBlocksOrRecommended(10_000))

	n2 := chainmodeltest.NewNetwork("poly").Build()
	assert.NotZero(t, n2.MaxPastBlocksOrRecommended(10_000))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "0xabc123", chainmodel.NormalizeAddress("  0xABC 123 "))
}
