package chainfilter

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// abiTypeKind maps a go-ethereum abi.Type to the ParamKind matchexpr
// dispatches comparisons on.
func abiTypeKind(t abi.Type) chainmodel.ParamKind {
	switch t.T {
	case abi.BoolTy:
		return chainmodel.ParamKindBool
	case abi.AddressTy:
		return chainmodel.ParamKindAddress
	case abi.StringTy:
		return chainmodel.ParamKindString
	case abi.BytesTy, abi.FixedBytesTy:
		return chainmodel.ParamKindBytes
	case abi.IntTy:
		if t.Size > 64 {
			return chainmodel.ParamKindInt256
		}
		return chainmodel.ParamKindInt
	case abi.UintTy:
		if t.Size > 64 {
			return chainmodel.ParamKindUint256
		}
		return chainmodel.ParamKindUint
	default:
		// arrays, slices, tuples: render as their Go %v form and compare
		// as opaque strings.
		return chainmodel.ParamKindString
	}
}

// formatABIValue renders a decoded ABI argument the way the expression
// parser expects its operand string: decimal for integers, 0x-hex for
// addresses, dynamic bytes and bytes32, and %v for everything else
// (including other fixed-size byte arrays).
func formatABIValue(v interface{}) string {
	switch val := v.(type) {
	case *big.Int:
		return val.String()
	case common.Address:
		return val.Hex()
	case [32]byte:
		return "0x" + common.Bytes2Hex(val[:])
	case []byte:
		return "0x" + common.Bytes2Hex(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// eventArgsToParams zips an ABISignature's arg names/types/indexed flags
// with DecodeTransactionLogByContractABIJSON's decoded values into a
// Param list usable both as a matchexpr.Bag and as a MatchedCondition's
// reported params.
func eventArgsToParams(argNames, argTypes []string, argIndexed []bool, values []interface{}) []chainmodel.Param {
	out := make([]chainmodel.Param, 0, len(values))
	for i, v := range values {
		name := ""
		if i < len(argNames) {
			name = argNames[i]
		}
		kind := chainmodel.ParamKindString
		if i < len(argTypes) {
			kind = solidityKind(argTypes[i])
		}
		indexed := i < len(argIndexed) && argIndexed[i]
		out = append(out, chainmodel.Param{
			Name:    name,
			Kind:    kind,
			Value:   formatABIValue(v),
			Indexed: indexed,
		})
	}
	return out
}

// solidityKind maps a solidity type string (as found in ABISignature.ArgTypes
// or a method's textual signature) to ParamKind without needing a parsed
// abi.Type.
func solidityKind(solType string) chainmodel.ParamKind {
	switch {
	case solType == "bool":
		return chainmodel.ParamKindBool
	case solType == "address":
		return chainmodel.ParamKindAddress
	case solType == "string":
		return chainmodel.ParamKindString
	case solType == "bytes" || isFixedBytes(solType):
		return chainmodel.ParamKindBytes
	case isIntType(solType):
		if isWideIntType(solType) {
			return chainmodel.ParamKindInt256
		}
		return chainmodel.ParamKindInt
	case isUintType(solType):
		if isWideIntType(solType) {
			return chainmodel.ParamKindUint256
		}
		return chainmodel.ParamKindUint
	default:
		return chainmodel.ParamKindString
	}
}

func isFixedBytes(t string) bool {
	return len(t) > 5 && t[:5] == "bytes" && t != "bytes"
}

func isIntType(t string) bool {
	return len(t) >= 3 && t[:3] == "int"
}

func isUintType(t string) bool {
	return len(t) >= 4 && t[:4] == "uint"
}

func isWideIntType(t string) bool {
	// anything wider than 64 bits (uint72.. uint256, int72..int256) needs
	// big.Int-backed comparisons; bare "int"/"uint" default to 256 in
	// solidity so they're wide too.
	bits, err := strconv.Atoi(strings.TrimPrefix(strings.TrimPrefix(t, "u"), "int"))
	if err != nil {
		return true
	}
	return bits > 64
}
