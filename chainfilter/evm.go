package chainfilter

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainwatch/chainwatch/chainclient"
	"github.com/chainwatch/chainwatch/chainfilter/matchexpr"
	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/ethartifact"
	"github.com/chainwatch/chainwatch/ethcoder"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goware/logger"
)

// decodeTransactionLog wraps ethcoder's ABI-driven log decoder so this file
// doesn't need to know its internal registration steps.
func decodeTransactionLog(l types.Log, contractABIJSON string) (ethcoder.ABISignature, []interface{}, bool, error) {
	return ethcoder.DecodeTransactionLogByContractABIJSON(l, contractABIJSON)
}

// EVMFilter implements Filter for EVM-kind networks (§4.4.1): it decodes a
// block's transactions, logs, and calldata against a monitor's conditions.
// Parsed ABIs are cached in a ContractRegistry keyed by normalized address,
// so a contract's ABI is parsed once per filter lifetime rather than once
// per transaction that touches it.
type EVMFilter struct {
	log      *logger.Logger
	registry *ethartifact.ContractRegistry
}

func NewEVMFilter(log *logger.Logger) *EVMFilter {
	return &EVMFilter{log: log, registry: ethartifact.NewContractRegistry()}
}

// artifactFor returns the cached ABI artifact for address, registering it
// from abiJSON on first use.
func (f *EVMFilter) artifactFor(address, abiJSON string) (ethartifact.Artifact, bool) {
	norm := chainmodel.NormalizeAddress(address)
	if a, ok := f.registry.Get(norm); ok {
		return a, true
	}
	if abiJSON == "" {
		return ethartifact.Artifact{}, false
	}
	a, err := f.registry.RegisterJSON(norm, abiJSON, nil)
	if err != nil {
		f.log.Warn(fmt.Sprintf("chainfilter: parse ABI for %s failed: %v", address, err))
		return ethartifact.Artifact{}, false
	}
	return a, true
}

func (f *EVMFilter) ChainKind() chainmodel.ChainKind { return chainmodel.EVM }

func (f *EVMFilter) FilterBlock(ctx context.Context, client chainclient.Client, network chainmodel.Network, block chainmodel.Block, monitors []chainmodel.Monitor, contractSpecs map[string][]byte) ([]chainmodel.MonitorMatch, error) {
	evmBlock, ok := block.(chainmodel.EVMBlock)
	if !ok {
		return nil, ErrBlockTypeMismatch
	}
	blockNumber := evmBlock.Number()

	var blockLogs []chainclient.EVMLog
	if logsClient, ok := client.(chainclient.LogsCapable); ok {
		logs, err := logsClient.GetLogsForBlocks(ctx, blockNumber, blockNumber)
		if err != nil {
			return nil, fmt.Errorf("chainfilter: fetch logs for block %d: %w", blockNumber, err)
		}
		blockLogs = logs
	}

	logsByTx := make(map[string][]chainclient.EVMLog, len(blockLogs))
	for _, l := range blockLogs {
		key := strings.ToLower(l.TxHash)
		logsByTx[key] = append(logsByTx[key], l)
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
		needsReceipt := evmNeedsReceipt(monitor, blockLogs)

		for _, tx := range evmBlock.Block.Transactions() {
			txHash := tx.Hash().Hex()
			txLogs := logsByTx[strings.ToLower(txHash)]

			status := chainmodel.TransactionStatusSuccess
			gasUsed := ""
			if needsReceipt {
				if receiptsClient, ok := client.(chainclient.ReceiptsCapable); ok {
					found, success, gu, err := receiptsClient.GetTransactionReceiptStatus(ctx, txHash)
					if err != nil {
						f.log.Warn(fmt.Sprintf("chainfilter: receipt fetch failed for tx %s: %v", txHash, err))
					} else if found {
						if success {
							status = chainmodel.TransactionStatusSuccess
						} else {
							status = chainmodel.TransactionStatusFailure
						}
						gasUsed = gu
					}
				}
			}

			from := evmSender(tx, evmBlock.Block.Hash())
			bag := buildTransactionParamBag(tx, from, gasUsed)

			var involvedAddresses []string
			if from != "" {
				involvedAddresses = append(involvedAddresses, from)
			}
			if tx.To() != nil {
				involvedAddresses = append(involvedAddresses, tx.To().Hex())
			}

			matchedTransactions := evalTransactionConditions(monitor, status, bag, f.log)

			matchedEvents, eventAddrs := f.evalEventConditions(monitor, monitored, txLogs, contractSpecs)
			involvedAddresses = append(involvedAddresses, eventAddrs...)

			matchedFunctions := f.evalFunctionConditions(monitor, monitored, tx, contractSpecs)

			involvedAddresses = dedupeAddresses(involvedAddresses)
			if !involves(monitored, involvedAddresses) {
				continue
			}

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
				// no conditions configured at all: match trivially, report
				// the transaction's own param bag.
				all = append(all, chainmodel.MatchedCondition{Kind: "transaction", Status: string(status), Params: bagToParams(bag)})
			}

			matches = append(matches, chainmodel.MonitorMatch{
				MonitorName:       monitor.Name,
				NetworkSlug:       network.Slug,
				TransactionHash:   txHash,
				BlockNumber:       blockNumber,
				MatchedConditions: all,
			})
		}
	}

	return matches, nil
}

// resolveABI looks up a monitored address's contract spec: the monitor's
// own AddressWithSpec.ABI takes precedence over network-wide contractSpecs.
func resolveABI(monitored map[string]chainmodel.AddressWithSpec, contractSpecs map[string][]byte, address string) (string, bool) {
	norm := chainmodel.NormalizeAddress(address)
	if a, ok := monitored[norm]; ok && len(a.ABI) > 0 {
		return string(a.ABI), true
	}
	if spec, ok := contractSpecs[norm]; ok && len(spec) > 0 {
		return string(spec), true
	}
	return "", false
}

// evalEventConditions decodes each log against its contract's ABI (when
// known) and evaluates it against the monitor's EventCondition list. Every
// log from a monitored address contributes its address to the returned
// involvement list, regardless of whether any event condition is
// configured — mirroring how the original always tracks log-address
// involvement separately from event-condition matching.
func (f *EVMFilter) evalEventConditions(monitor chainmodel.Monitor, monitored map[string]chainmodel.AddressWithSpec, txLogs []chainclient.EVMLog, contractSpecs map[string][]byte) ([]chainmodel.MatchedCondition, []string) {
	var matched []chainmodel.MatchedCondition
	var addrs []string

	for _, l := range txLogs {
		norm := chainmodel.NormalizeAddress(l.Address)
		if _, ok := monitored[norm]; !ok {
			continue
		}
		addrs = append(addrs, l.Address)

		if len(monitor.MatchConditions.Events) == 0 {
			continue
		}
		abiJSON, ok := resolveABI(monitored, contractSpecs, l.Address)
		if !ok {
			continue
		}

		typesLog := toTypesLog(l)
		sig, values, found, err := decodeTransactionLog(typesLog, abiJSON)
		if err != nil || !found {
			continue
		}

		for _, cond := range monitor.MatchConditions.Events {
			if !strings.EqualFold(cond.Signature, sig.Signature) {
				continue
			}
			params := eventArgsToParams(sig.ArgNames, sig.ArgTypes, sig.ArgIndexed, values)
			bag := paramsToBag(params)
			if cond.Expression != nil && !matchexpr.Eval(*cond.Expression, bag, f.log) {
				continue
			}
			matched = append(matched, chainmodel.MatchedCondition{
				Kind:      "event",
				Signature: sig.Signature,
				Params:    params,
			})
			break
		}
	}

	return matched, addrs
}

// evalFunctionConditions decodes tx.Data()'s selector against the
// recipient contract's ABI and evaluates it against the monitor's
// FunctionCondition list.
func (f *EVMFilter) evalFunctionConditions(monitor chainmodel.Monitor, monitored map[string]chainmodel.AddressWithSpec, tx *types.Transaction, contractSpecs map[string][]byte) []chainmodel.MatchedCondition {
	if len(monitor.MatchConditions.Functions) == 0 || tx.To() == nil {
		return nil
	}
	data := tx.Data()
	if len(data) < 4 {
		return nil
	}
	abiJSON, ok := resolveABI(monitored, contractSpecs, tx.To().Hex())
	if !ok {
		return nil
	}
	artifact, ok := f.artifactFor(tx.To().Hex(), abiJSON)
	if !ok {
		return nil
	}
	method, err := artifact.ABI.MethodById(data[:4])
	if err != nil {
		return nil
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil
	}

	var matched []chainmodel.MatchedCondition
	for _, cond := range monitor.MatchConditions.Functions {
		if !strings.EqualFold(cond.Signature, method.Sig) {
			continue
		}
		argNames := make([]string, len(method.Inputs))
		argTypes := make([]string, len(method.Inputs))
		for i, in := range method.Inputs {
			argNames[i] = in.Name
			argTypes[i] = in.Type.String()
		}
		params := eventArgsToParams(argNames, argTypes, nil, args)
		bag := paramsToBag(params)
		if cond.Expression != nil && !matchexpr.Eval(*cond.Expression, bag, f.log) {
			continue
		}
		matched = append(matched, chainmodel.MatchedCondition{
			Kind:      "function",
			Signature: method.Sig,
			Params:    params,
		})
		break
	}
	return matched
}

func paramsToBag(params []chainmodel.Param) matchexpr.Bag {
	bag := make(matchexpr.Bag, len(params))
	for _, p := range params {
		bag[p.Name] = p
	}
	return bag
}
