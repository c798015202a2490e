package chaintracker_test

import (
	"testing"

	"github.com/chainwatch/chainwatch/chaintracker"
	"github.com/stretchr/testify/assert"
)

func TestCheckProcessedBlockOk(t *testing.T) {
	tr := chaintracker.New()
	tr.ResetExpectedNext("ethereum_mainnet", 101)

	r := tr.CheckProcessedBlock("ethereum_mainnet", 101)
	assert.Equal(t, chaintracker.StatusOk, r.Status)

	r = tr.CheckProcessedBlock("ethereum_mainnet", 102)
	assert.Equal(t, chaintracker.StatusOk, r.Status)
}

func TestCheckProcessedBlockDuplicate(t *testing.T) {
	tr := chaintracker.New()
	tr.ResetExpectedNext("ethereum_mainnet", 101)
	tr.CheckProcessedBlock("ethereum_mainnet", 101)

	r := tr.CheckProcessedBlock("ethereum_mainnet", 101)
	assert.Equal(t, chaintracker.StatusDuplicate, r.Status)
}

func TestCheckProcessedBlockOutOfOrder(t *testing.T) {
	tr := chaintracker.New()
	tr.ResetExpectedNext("ethereum_mainnet", 101)

	r := tr.CheckProcessedBlock("ethereum_mainnet", 104)
	assert.Equal(t, chaintracker.StatusOutOfOrder, r.Status)
	assert.Equal(t, uint64(101), r.Expected)
	assert.Equal(t, uint64(104), r.Received)

	// expected_next must not have advanced
	r2 := tr.CheckProcessedBlock("ethereum_mainnet", 101)
	assert.Equal(t, chaintracker.StatusOk, r2.Status)
}

func TestResetClearsHistory(t *testing.T) {
	tr := chaintracker.New()
	tr.ResetExpectedNext("ethereum_mainnet", 101)
	tr.CheckProcessedBlock("ethereum_mainnet", 101)

	tr.ResetExpectedNext("ethereum_mainnet", 101)
	r := tr.CheckProcessedBlock("ethereum_mainnet", 101)
	assert.Equal(t, chaintracker.StatusOk, r.Status, "reset should forget prior history")
}

func TestDetectMissingBlocks(t *testing.T) {
	tr := chaintracker.New()

	missing := tr.DetectMissingBlocks("ethereum_mainnet", []uint64{101, 102, 104, 106, 107})
	assert.Equal(t, []uint64{103, 105}, missing)

	assert.Empty(t, tr.DetectMissingBlocks("ethereum_mainnet", []uint64{1, 2, 3}))
	assert.Empty(t, tr.DetectMissingBlocks("ethereum_mainnet", nil))

	// non-contiguous, unsorted input is still handled purely arithmetically
	missing = tr.DetectMissingBlocks("ethereum_mainnet", []uint64{107, 101, 104})
	assert.ElementsMatch(t, []uint64{102, 103, 105, 106}, missing)
}

func TestRecentWindowCapacity(t *testing.T) {
	tr := chaintracker.New(chaintracker.WithRecentWindow(2))
	tr.ResetExpectedNext("n", 1)
	tr.CheckProcessedBlock("n", 1)
	tr.CheckProcessedBlock("n", 2)
	tr.CheckProcessedBlock("n", 3)

	// block 1 has fallen out of the window, so it now reads as out-of-order
	// rather than duplicate, since expected_next has moved to 4.
	r := tr.CheckProcessedBlock("n", 1)
	assert.Equal(t, chaintracker.StatusOutOfOrder, r.Status)
}
