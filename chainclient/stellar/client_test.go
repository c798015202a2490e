package stellar_test

import (
	"context"
	"testing"

	chainstellar "github.com/chainwatch/chainwatch/chainclient/stellar"
	"github.com/goware/logger"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHorizonRoot struct{ seq int32 }

func (f *fakeHorizonRoot) Root() (horizon.Root, error) {
	return horizon.Root{HorizonSequence: f.seq}, nil
}

func testLogger() *logger.Logger {
	return logger.NewLogger(logger.LogLevel_WARN)
}

func TestLatestBlockNumber(t *testing.T) {
	c := chainstellar.New("stellar_mainnet", &fakeHorizonRoot{seq: 500}, nil, testLogger())
	n, err := c.LatestBlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(500), n)
}

// GetBlocks/GetTransactions/GetEvents validate from <= to before ever
// touching the RPC transport, so a nil transport is safe here.

func TestGetBlocksInvalidRange(t *testing.T) {
	c := chainstellar.New("stellar_mainnet", &fakeHorizonRoot{}, nil, testLogger())
	to := uint64(5)
	_, err := c.GetBlocks(context.Background(), 10, &to)
	assert.Error(t, err)
}

func TestGetTransactionsInvalidRange(t *testing.T) {
	c := chainstellar.New("stellar_mainnet", &fakeHorizonRoot{}, nil, testLogger())
	_, err := c.GetTransactions(context.Background(), 10, 5)
	assert.Error(t, err)
}

func TestGetEventsInvalidRange(t *testing.T) {
	c := chainstellar.New("stellar_mainnet", &fakeHorizonRoot{}, nil, testLogger())
	_, err := c.GetEvents(context.Background(), 10, 5)
	assert.Error(t, err)
}
