package chaintrigger

import (
	"strconv"

	"github.com/chainwatch/chainwatch/chainmodel"
)

// BuildVariables derives the template variable bag payload_builder.rs
// builds from a match: the monitor/network identity, the transaction hash,
// for each condition kind the signature of the first matched condition of
// that kind ("<kind>_signature"), and every decoded argument of every
// matched condition, each addressable both by its bare name (the first
// occurrence of a name wins) and by a "params.<name>" key (the last
// occurrence wins), so a template can write either "${value}" or
// "${params.value}" without the monitor needing to know which condition
// kind fired.
func BuildVariables(monitor chainmodel.Monitor, match chainmodel.MonitorMatch) map[string]string {
	vars := map[string]string{
		"monitor_name":     monitor.Name,
		"network_slug":     match.NetworkSlug,
		"transaction_hash": match.TransactionHash,
		"block_number":     strconv.FormatUint(match.BlockNumber, 10),
	}

	for _, cond := range match.MatchedConditions {
		if cond.Signature != "" {
			key := cond.Kind + "_signature"
			if _, ok := vars[key]; !ok {
				vars[key] = cond.Signature
			}
		}
		if cond.Status != "" {
			if _, ok := vars["status"]; !ok {
				vars["status"] = cond.Status
			}
		}
		for _, p := range cond.Params {
			if p.Name == "" {
				continue
			}
			if _, ok := vars[p.Name]; !ok {
				vars[p.Name] = p.Value
			}
			vars["params."+p.Name] = p.Value
		}
	}

	return vars
}
