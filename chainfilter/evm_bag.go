package chainfilter

import (
	"strconv"
	"strings"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainfilter/matchexpr"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/ethrpc"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goware/logger"
)

// evmNeedsReceipt mirrors the original's needs_receipt: a receipt fetch is
// only worth its round trip when a transaction condition actually depends
// on execution status absent any logs, or reads gas_used.
func evmNeedsReceipt(monitor chainmodel.Monitor, blockLogs []chainclient.EVMLog) bool {
	for _, c := range monitor.MatchConditions.Transactions {
		statusNeedsReceipt := c.Status != chainmodel.TransactionStatusAny && len(blockLogs) == 0
		gasUsedInExpr := c.Expression != nil && strings.Contains(*c.Expression, "gas_used")
		if statusNeedsReceipt || gasUsedInExpr {
			return true
		}
	}
	return false
}

// evmSender recovers a transaction's sender from the sender cache ethrpc
// populated while unmarshalling the parent block; it returns "" rather than
// erroring when the cache can't be hit, since from is advisory for the
// parameter bag and address-involvement check, not a hard requirement.
func evmSender(tx *types.Transaction, blockHash [32]byte) string {
	addr, err := ethrpc.CachedSender(tx, blockHash)
	if err != nil {
		return ""
	}
	return addr.Hex()
}

// buildTransactionParamBag builds the §4.4.1.d parameter bag for a
// transaction-condition expression.
func buildTransactionParamBag(tx *types.Transaction, from, gasUsed string) matchexpr.Bag {
	to := ""
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	gasPrice := "0"
	if tx.GasPrice() != nil {
		gasPrice = tx.GasPrice().String()
	}
	maxFeePerGas := "0"
	if tx.GasFeeCap() != nil {
		maxFeePerGas = tx.GasFeeCap().String()
	}
	maxPriorityFeePerGas := "0"
	if tx.GasTipCap() != nil {
		maxPriorityFeePerGas = tx.GasTipCap().String()
	}
	value := "0"
	if tx.Value() != nil {
		value = tx.Value().String()
	}
	if gasUsed == "" {
		gasUsed = "0"
	}

	return matchexpr.Bag{
		"value":                    {Name: "value", Kind: chainmodel.ParamKindUint256, Value: value},
		"from":                     {Name: "from", Kind: chainmodel.ParamKindAddress, Value: from},
		"to":                       {Name: "to", Kind: chainmodel.ParamKindAddress, Value: to},
		"hash":                     {Name: "hash", Kind: chainmodel.ParamKindString, Value: tx.Hash().Hex()},
		"gas_price":                {Name: "gas_price", Kind: chainmodel.ParamKindUint256, Value: gasPrice},
		"max_fee_per_gas":          {Name: "max_fee_per_gas", Kind: chainmodel.ParamKindUint256, Value: maxFeePerGas},
		"max_priority_fee_per_gas": {Name: "max_priority_fee_per_gas", Kind: chainmodel.ParamKindUint256, Value: maxPriorityFeePerGas},
		"gas_limit":                {Name: "gas_limit", Kind: chainmodel.ParamKindUint256, Value: strconv.FormatUint(tx.Gas(), 10)},
		"nonce":                    {Name: "nonce", Kind: chainmodel.ParamKindUint256, Value: strconv.FormatUint(tx.Nonce(), 10)},
		"input":                    {Name: "input", Kind: chainmodel.ParamKindString, Value: "0x" + commonBytesToHex(tx.Data())},
		"gas_used":                 {Name: "gas_used", Kind: chainmodel.ParamKindUint256, Value: gasUsed},
		"transaction_index":        {Name: "transaction_index", Kind: chainmodel.ParamKindUint, Value: "0"},
	}
}

func commonBytesToHex(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0x0f]
	}
	return string(out)
}

// evalTransactionConditions evaluates §4.4.1's TransactionCondition list
// against the built parameter bag, recording at most the first satisfied
// condition (§4.4.1.c.ii).
func evalTransactionConditions(monitor chainmodel.Monitor, status chainmodel.TransactionStatus, bag matchexpr.Bag, log *logger.Logger) []chainmodel.MatchedCondition {
	var out []chainmodel.MatchedCondition
	for _, cond := range monitor.MatchConditions.Transactions {
		if cond.Status != chainmodel.TransactionStatusAny && cond.Status != status {
			continue
		}
		if cond.Expression != nil {
			if !matchexpr.Eval(*cond.Expression, bag, log) {
				continue
			}
		}
		out = append(out, chainmodel.MatchedCondition{
			Kind:   "transaction",
			Status: string(status),
			Params: bagToParams(bag),
		})
		break
	}
	return out
}

func bagToParams(bag matchexpr.Bag) []chainmodel.Param {
	out := make([]chainmodel.Param, 0, len(bag))
	for _, p := range bag {
		out = append(out, p)
	}
	return out
}
