package evm_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/chainwatch/chainwatch/chainclient/evm"
	"github.com/chainwatch/chainwatch/chainmodel"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goware/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	blocks   map[uint64]*types.Block
	logs     []types.Log
	receipts map[string]*types.Receipt
	headers  map[uint64]*types.Header
	headNum  uint64
}

func (f *fakeProvider) ChainID(ctx context.Context) (*big.Int, error) { return big.NewInt(1), nil }

func (f *fakeProvider) BlockByNumber(ctx context.Context, n *big.Int) (*types.Block, error) {
	b, ok := f.blocks[n.Uint64()]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (f *fakeProvider) BlockNumber(ctx context.Context) (uint64, error) { return f.headNum, nil }

func (f *fakeProvider) HeaderByNumber(ctx context.Context, n *big.Int) (*types.Header, error) {
	h, ok := f.headers[n.Uint64()]
	if !ok {
		return types.NewBlockWithHeader(&types.Header{Number: n}).Header(), nil
	}
	return h, nil
}

func (f *fakeProvider) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return f.logs, nil
}

func (f *fakeProvider) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	r, ok := f.receipts[hash.Hex()]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func testLogger() *logger.Logger {
	return logger.NewLogger(logger.LogLevel_WARN)
}

func TestGetBlocksRange(t *testing.T) {
	fp := &fakeProvider{blocks: map[uint64]*types.Block{
		100: types.NewBlockWithHeader(&types.Header{Number: big.NewInt(100)}),
		101: types.NewBlockWithHeader(&types.Header{Number: big.NewInt(101)}),
	}}
	c, err := evm.New("ethereum_mainnet", fp, testLogger())
	require.NoError(t, err)

	to := uint64(101)
	blocks, err := c.GetBlocks(context.Background(), 100, &to)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, chainmodel.EVM, blocks[0].ChainKind())
	assert.Equal(t, uint64(100), blocks[0].Number())
	assert.Equal(t, uint64(101), blocks[1].Number())
}

func TestGetBlocksInvalidRange(t *testing.T) {
	fp := &fakeProvider{}
	c, err := evm.New("ethereum_mainnet", fp, testLogger())
	require.NoError(t, err)

	to := uint64(5)
	_, err = c.GetBlocks(context.Background(), 10, &to)
	assert.Error(t, err)
}

func TestGetLogsForBlocksProjectsEVMLog(t *testing.T) {
	fp := &fakeProvider{
		logs: []types.Log{
			{
				BlockNumber: 100,
				TxHash:      common.HexToHash("0xabc"),
				Address:     common.HexToAddress("0x1"),
				Topics:      []common.Hash{common.HexToHash("0xdead")},
				Data:        []byte{1, 2, 3},
			},
		},
	}
	c, err := evm.New("ethereum_mainnet", fp, testLogger())
	require.NoError(t, err)

	logs, err := c.GetLogsForBlocks(context.Background(), 100, 100)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, uint64(100), logs[0].BlockNumber)
	assert.Len(t, logs[0].Topics, 1)
}

func TestGetTransactionReceiptStatusCaches(t *testing.T) {
	fp := &fakeProvider{
		receipts: map[string]*types.Receipt{
			common.HexToHash("0xabc").Hex(): {Status: types.ReceiptStatusSuccessful, GasUsed: 21000},
		},
	}
	c, err := evm.New("ethereum_mainnet", fp, testLogger())
	require.NoError(t, err)

	found, ok, gasUsed, err := c.GetTransactionReceiptStatus(context.Background(), common.HexToHash("0xabc").Hex())
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, ok)
	assert.Equal(t, "21000", gasUsed)

	// second call should hit the cache; remove the backing receipt to prove it
	delete(fp.receipts, common.HexToHash("0xabc").Hex())
	found, ok, _, err = c.GetTransactionReceiptStatus(context.Background(), common.HexToHash("0xabc").Hex())
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, ok)
}

func TestGetTransactionReceiptStatusNotFound(t *testing.T) {
	fp := &fakeProvider{receipts: map[string]*types.Receipt{}}
	c, err := evm.New("ethereum_mainnet", fp, testLogger())
	require.NoError(t, err)

	found, _, _, err := c.GetTransactionReceiptStatus(context.Background(), common.HexToHash("0xmissing").Hex())
	require.NoError(t, err)
	assert.False(t, found)
}
