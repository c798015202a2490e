package chainfilter

import (
	"testing"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/stretchr/testify/require"
)

func TestDecisionMatrix(t *testing.T) {
	cases := []struct {
		name                                          string
		eventsEmpty, functionsEmpty, transactionsEmpty bool
		eventMatch, functionMatch, transactionMatch   bool
		want                                           bool
	}{
		{"no conditions matches everything", true, true, true, false, false, false, true},
		{"only transactions defined, matched", true, true, false, false, false, true, true},
		{"only transactions defined, unmatched", true, true, false, false, false, false, false},
		{"events defined, transactions empty, event matched", false, true, true, true, false, false, true},
		{"events+functions defined, neither matched", false, false, true, false, false, false, false},
		{"all defined, transaction and event matched", false, false, false, true, false, true, true},
		{"all defined, transaction matched but nothing else", false, false, false, false, false, true, false},
		{"all defined, event matched but transaction not", false, false, false, true, false, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decisionMatrix(c.eventsEmpty, c.functionsEmpty, c.transactionsEmpty, c.eventMatch, c.functionMatch, c.transactionMatch)
			require.Equal(t, c.want, got)
		})
	}
}

func TestDedupeAddresses(t *testing.T) {
	in := []string{"0xAAA", " 0xaaa", "0xBBB", "", "0xbbb"}
	got := dedupeAddresses(in)
	require.Equal(t, []string{"0xaaa", "0xbbb"}, got)
}

func TestInvolves(t *testing.T) {
	monitor := chainmodel.Monitor{
		Addresses: []chainmodel.AddressWithSpec{{Address: "0xAAA"}},
	}
	monitored := monitoredAddresses(monitor)

	require.True(t, involves(monitored, []string{"0xbbb", "0xAAA"}))
	require.False(t, involves(monitored, []string{"0xbbb", "0xccc"}))
}

func TestEVMNeedsReceipt(t *testing.T) {
	anyStatus := chainmodel.TransactionStatusAny
	successStatus := chainmodel.TransactionStatusSuccess
	gasExpr := "gas_used > 100"

	require.False(t, evmNeedsReceipt(chainmodel.Monitor{
		MatchConditions: chainmodel.MatchConditions{
			Transactions: []chainmodel.TransactionCondition{{Status: anyStatus}},
		},
	}, nil))

	require.True(t, evmNeedsReceipt(chainmodel.Monitor{
		MatchConditions: chainmodel.MatchConditions{
			Transactions: []chainmodel.TransactionCondition{{Status: successStatus}},
		},
	}, nil))

	require.False(t, evmNeedsReceipt(chainmodel.Monitor{
		MatchConditions: chainmodel.MatchConditions{
			Transactions: []chainmodel.TransactionCondition{{Status: successStatus}},
		},
	}, []chainclient.EVMLog{{TxHash: "0x1"}}))

	require.True(t, evmNeedsReceipt(chainmodel.Monitor{
		MatchConditions: chainmodel.MatchConditions{
			Transactions: []chainmodel.TransactionCondition{{Status: anyStatus, Expression: &gasExpr}},
		},
	}, []chainclient.EVMLog{{TxHash: "0x1"}}))
}
