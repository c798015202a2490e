package chainmodel

// ParamKind tags the shape of a decoded argument value so the expression
// evaluator can dispatch comparisons without leaking ABI/XDR types into its
// public surface (Design Note §9 "dynamic JSON values in expressions").
type ParamKind string

const (
	ParamKindUint    ParamKind = "uint"
	ParamKindInt     ParamKind = "int"
	ParamKindUint256 ParamKind = "uint256"
	ParamKindInt256  ParamKind = "int256"
	ParamKindBool    ParamKind = "bool"
	ParamKindAddress ParamKind = "address"
	ParamKindString  ParamKind = "string"
	ParamKindBytes   ParamKind = "bytes"
	ParamKindSymbol  ParamKind = "symbol"
	ParamKindVec     ParamKind = "vec"
	ParamKindMap     ParamKind = "map"
)

// Param is one named, typed, string-valued argument in a decoded event,
// function call, or transaction parameter bag.
type Param struct {
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Value   string    `json:"value"`
	Indexed bool      `json:"indexed,omitempty"`
}

// MatchedCondition records which monitor condition fired and on what decoded
// arguments.
type MatchedCondition struct {
	Kind      string  `json:"kind"` // "function" | "event" | "transaction"
	Signature string  `json:"signature,omitempty"`
	Status    string  `json:"status,omitempty"`
	Params    []Param `json:"params"`
}

// MonitorMatch is produced by BlockFilter when a Monitor's conditions are
// satisfied by a transaction.
type MonitorMatch struct {
	MonitorName      string             `json:"monitor_name"`
	NetworkSlug      string             `json:"network_slug"`
	TransactionHash  string             `json:"transaction_hash"`
	BlockNumber      uint64             `json:"block_number"`
	MatchedConditions []MatchedCondition `json:"matched_conditions"`
}

// ProcessedBlock is the unit passed from the parallel filter stage to the
// ordered trigger stage.
type ProcessedBlock struct {
	BlockNumber uint64         `json:"block_number"`
	NetworkSlug string         `json:"network_slug"`
	Matches     []MonitorMatch `json:"processing_results"`
}
