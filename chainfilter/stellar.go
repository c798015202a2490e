package chainfilter

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainfilter/matchexpr"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/goware/logger"
)

// StellarFilter implements Filter for Stellar-kind networks: it decodes a
// ledger's transactions and contract events against a monitor's conditions.
type StellarFilter struct {
	log *logger.Logger
}

func NewStellarFilter(log *logger.Logger) *StellarFilter {
	return &StellarFilter{log: log}
}

func (f *StellarFilter) ChainKind() chainmodel.ChainKind { return chainmodel.Stellar }

// decodedStellarEvent is one contract event already reduced to a signature
// and flattened argument list (indexed topic args followed by value args),
// the Go analogue of the original's EventMap.
type decodedStellarEvent struct {
	txHash    string
	signature string
	params    []chainmodel.Param
}

func (f *StellarFilter) FilterBlock(ctx context.Context, client chainclient.Client, network chainmodel.Network, block chainmodel.Block, monitors []chainmodel.Monitor, contractSpecs map[string][]byte) ([]chainmodel.MonitorMatch, error) {
	ledger, ok := block.(chainmodel.StellarLedger)
	if !ok {
		return nil, ErrBlockTypeMismatch
	}
	seq := uint64(ledger.Sequence)

	txClient, ok := client.(chainclient.TransactionsCapable)
	if !ok {
		return nil, nil
	}
	transactions, err := txClient.GetTransactions(ctx, seq, seq)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	var events []chainclient.StellarEvent
	if eventsClient, ok := client.(chainclient.EventsCapable); ok {
		events, err = eventsClient.GetEvents(ctx, seq, seq)
		if err != nil {
			return nil, err
		}
	}

	var matches []chainmodel.MonitorMatch

	for _, monitor := range monitors {
		if monitor.Paused {
			continue
		}
		monitored := monitoredAddresses(monitor)
		if len(monitored) == 0 {
			continue
		}

		decodedEvents := f.decodeEvents(events, monitored)

		for _, tx := range transactions {
			ops, err := decodeEnvelopeOperations(tx.EnvelopeXDR)
			if err != nil {
				f.log.Warn("chainfilter: decode transaction envelope failed: " + err.Error())
				ops = nil
			}

			status := stellarTransactionStatus(tx.Successful)

			matchedTransactions := f.evalStellarTransactionConditions(monitor, tx, status, ops)
			matchedFunctions, _ := f.evalStellarFunctionConditions(monitor, monitored, ops)
			matchedEvents := f.evalStellarEventConditions(monitor, decodedEvents, tx.Hash)

			// unlike the EVM filter, transaction matching here is not
			// gated on monitored-address involvement: find_matching_transaction
			// in the original never consults the monitor's address list, only
			// its own status/expression conditions. Event and function
			// matching already filter to monitored addresses internally
			// (decodeEvents, evalStellarFunctionConditions).
			conds := monitor.MatchConditions
			hasEventMatch := len(conds.Events) > 0 && len(matchedEvents) > 0
			hasFunctionMatch := len(conds.Functions) > 0 && len(matchedFunctions) > 0
			hasTransactionMatch := len(conds.Transactions) > 0 && len(matchedTransactions) > 0

			if !decisionMatrix(len(conds.Events) == 0, len(conds.Functions) == 0, len(conds.Transactions) == 0,
				hasEventMatch, hasFunctionMatch, hasTransactionMatch) {
				continue
			}

			var all []chainmodel.MatchedCondition
			if hasEventMatch {
				all = append(all, matchedEvents...)
			}
			if hasFunctionMatch {
				all = append(all, matchedFunctions...)
			}
			if hasTransactionMatch {
				all = append(all, matchedTransactions...)
			}
			if len(all) == 0 && len(conds.Events) == 0 && len(conds.Functions) == 0 && len(conds.Transactions) == 0 {
				all = append(all, chainmodel.MatchedCondition{Kind: "transaction", Status: string(status)})
			}

			matches = append(matches, chainmodel.MonitorMatch{
				MonitorName:       monitor.Name,
				NetworkSlug:       network.Slug,
				TransactionHash:   tx.Hash,
				BlockNumber:       seq,
				MatchedConditions: all,
			})
		}
	}

	return matches, nil
}

func stellarTransactionStatus(successful bool) chainmodel.TransactionStatus {
	if successful {
		return chainmodel.TransactionStatusSuccess
	}
	return chainmodel.TransactionStatusFailure
}

// evalStellarTransactionConditions mirrors find_matching_transaction: when
// no conditions are configured, every transaction matches trivially; when
// conditions exist, each one first filters on status, then (if it carries
// an expression) evaluates it against the transaction's base params, or —
// if the transaction has payment/invoke operations — against each
// operation's own param bag in turn, matching on the first operation that
// satisfies the expression.
func (f *StellarFilter) evalStellarTransactionConditions(monitor chainmodel.Monitor, tx chainclient.StellarTransaction, status chainmodel.TransactionStatus, ops []stellarOperation) []chainmodel.MatchedCondition {
	if len(monitor.MatchConditions.Transactions) == 0 {
		return []chainmodel.MatchedCondition{{Kind: "transaction", Status: string(status)}}
	}

	var out []chainmodel.MatchedCondition
	for _, cond := range monitor.MatchConditions.Transactions {
		if cond.Status != chainmodel.TransactionStatusAny && cond.Status != status {
			continue
		}
		if cond.Expression == nil {
			out = append(out, chainmodel.MatchedCondition{Kind: "transaction", Status: string(status)})
			break
		}

		base := matchexpr.Bag{
			"hash":   {Name: "hash", Kind: chainmodel.ParamKindString, Value: tx.Hash},
			"ledger": {Name: "ledger", Kind: chainmodel.ParamKindUint, Value: strconv.FormatUint(tx.Ledger, 10)},
			"value":  {Name: "value", Kind: chainmodel.ParamKindInt256, Value: "0"},
		}

		if len(ops) == 0 {
			if matchexpr.Eval(*cond.Expression, base, f.log) {
				out = append(out, chainmodel.MatchedCondition{Kind: "transaction", Status: string(status), Params: bagToParams(base)})
			}
			continue
		}

		for _, op := range ops {
			bag := matchexpr.Bag{
				"hash":   base["hash"],
				"ledger": base["ledger"],
				"value":  {Name: "value", Kind: chainmodel.ParamKindInt256, Value: opValueOrZero(op)},
				"from":   {Name: "from", Kind: chainmodel.ParamKindAddress, Value: op.from},
				"to":     {Name: "to", Kind: chainmodel.ParamKindAddress, Value: op.to},
			}
			if matchexpr.Eval(*cond.Expression, bag, f.log) {
				out = append(out, chainmodel.MatchedCondition{Kind: "transaction", Status: string(status), Params: bagToParams(bag)})
				break
			}
		}
	}
	return out
}

func opValueOrZero(op stellarOperation) string {
	if op.value == "" {
		return "0"
	}
	return op.value
}

// evalStellarFunctionConditions mirrors find_matching_functions_for_transaction:
// only invoke_host_function operations against a monitored contract address
// are considered.
func (f *StellarFilter) evalStellarFunctionConditions(monitor chainmodel.Monitor, monitored map[string]chainmodel.AddressWithSpec, ops []stellarOperation) ([]chainmodel.MatchedCondition, []string) {
	var matched []chainmodel.MatchedCondition
	var involved []string

	for _, op := range ops {
		if op.kind != "invoke_host_function" {
			continue
		}
		norm := chainmodel.NormalizeAddress(op.to)
		if _, ok := monitored[norm]; !ok {
			continue
		}
		involved = append(involved, op.to)

		if len(monitor.MatchConditions.Functions) == 0 {
			matched = append(matched, chainmodel.MatchedCondition{Kind: "function", Signature: op.funcSig, Params: op.args})
			continue
		}
		bag := paramsToBag(op.args)
		for _, cond := range monitor.MatchConditions.Functions {
			if !strings.EqualFold(normalizeSignature(cond.Signature), normalizeSignature(op.funcSig)) {
				continue
			}
			if cond.Expression != nil && !matchexpr.Eval(*cond.Expression, bag, f.log) {
				continue
			}
			matched = append(matched, chainmodel.MatchedCondition{Kind: "function", Signature: op.funcSig, Params: op.args})
			break
		}
	}
	return matched, involved
}

func normalizeSignature(sig string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(sig), " ", ""))
}

// decodeEvents mirrors decode_events: filters to monitored contract
// addresses, decodes the first topic as the event name (Symbol), the
// remaining topics as indexed args, and the value field as a single
// non-indexed arg.
func (f *StellarFilter) decodeEvents(events []chainclient.StellarEvent, monitored map[string]chainmodel.AddressWithSpec) []decodedStellarEvent {
	var out []decodedStellarEvent

	for _, e := range events {
		norm := chainmodel.NormalizeAddress(e.ContractID)
		if _, ok := monitored[norm]; !ok {
			continue
		}
		if len(e.Topics) == 0 {
			continue
		}

		nameVal, err := decodeScValBase64(e.Topics[0].Value)
		if err != nil {
			f.log.Warn("chainfilter: decode event name topic failed: " + err.Error())
			continue
		}
		name, ok := nameVal.GetSym()
		if !ok {
			continue
		}
		eventName := strings.Trim(string(name), "\x00")

		var indexedArgs []chainmodel.Param
		var indexedTypes []string
		for i, topic := range e.Topics[1:] {
			val, err := decodeScValBase64(topic.Value)
			if err != nil {
				continue
			}
			p := scValToParam(strconv.Itoa(i), val)
			p.Indexed = true
			indexedArgs = append(indexedArgs, p)
			indexedTypes = append(indexedTypes, scValTypeName(val))
		}

		var valueArgs []chainmodel.Param
		var valueTypes []string
		if b64 := e.Value.Value; b64 != "" {
			if decoded, err := base64.StdEncoding.DecodeString(b64); err == nil && len(decoded) > 0 {
				val, err := decodeScValBase64(b64)
				if err == nil {
					p := scValToParam(strconv.Itoa(len(indexedArgs)), val)
					valueArgs = append(valueArgs, p)
					valueTypes = append(valueTypes, scValTypeName(val))
				}
			}
		}

		allTypes := append(append([]string{}, indexedTypes...), valueTypes...)
		allArgs := append(append([]chainmodel.Param{}, indexedArgs...), valueArgs...)
		for i := range allArgs {
			allArgs[i].Name = strconv.Itoa(i)
		}

		out = append(out, decodedStellarEvent{
			txHash:    e.TransactionHash,
			signature: buildSignature(eventName, allTypes),
			params:    allArgs,
		})
	}

	return out
}

// evalStellarEventConditions mirrors find_matching_events_for_transaction.
func (f *StellarFilter) evalStellarEventConditions(monitor chainmodel.Monitor, decoded []decodedStellarEvent, txHash string) []chainmodel.MatchedCondition {
	var matched []chainmodel.MatchedCondition

	for _, ev := range decoded {
		if ev.txHash != txHash {
			continue
		}
		if len(monitor.MatchConditions.Events) == 0 {
			matched = append(matched, chainmodel.MatchedCondition{Kind: "event", Signature: ev.signature, Params: ev.params})
			continue
		}
		bag := paramsToBag(ev.params)
		for _, cond := range monitor.MatchConditions.Events {
			if !strings.EqualFold(normalizeSignature(cond.Signature), normalizeSignature(ev.signature)) {
				continue
			}
			if cond.Expression != nil && !matchexpr.Eval(*cond.Expression, bag, f.log) {
				continue
			}
			matched = append(matched, chainmodel.MatchedCondition{Kind: "event", Signature: ev.signature, Params: ev.params})
		}
	}
	return matched
}
