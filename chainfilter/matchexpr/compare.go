package matchexpr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/chainwatch/chainwatch/chainmodel"
)

// comparator evaluates op(param.Value, value); ok is false when op is not
// supported for the parameter's kind or an operand fails to parse.
type comparator func(param chainmodel.Param, op, value string) (matched bool, ok bool)

func comparatorFor(kind chainmodel.ParamKind) (comparator, bool) {
	switch kind {
	case chainmodel.ParamKindUint:
		return compareUint, true
	case chainmodel.ParamKindInt:
		return compareInt, true
	case chainmodel.ParamKindUint256, chainmodel.ParamKindInt256:
		return compareBigEquality, true
	case chainmodel.ParamKindAddress:
		return compareAddress, true
	case chainmodel.ParamKindString, chainmodel.ParamKindBytes, chainmodel.ParamKindSymbol:
		return compareText, true
	case chainmodel.ParamKindBool:
		return compareBool, true
	case chainmodel.ParamKindVec:
		return compareVec, true
	case chainmodel.ParamKindMap:
		return compareMap, true
	default:
		return nil, false
	}
}

// compareUint supports all six comparators over uint64-range values.
func compareUint(param chainmodel.Param, op, value string) (bool, bool) {
	a, err := strconv.ParseUint(param.Value, 10, 64)
	if err != nil {
		return false, false
	}
	b, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return false, false
	}
	return orderedCompare(op, cmpUint64(a, b))
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareInt supports all six comparators over int64-range values.
func compareInt(param chainmodel.Param, op, value string) (bool, bool) {
	a, err := strconv.ParseInt(param.Value, 10, 64)
	if err != nil {
		return false, false
	}
	b, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false, false
	}
	switch {
	case a < b:
		return orderedCompare(op, -1)
	case a > b:
		return orderedCompare(op, 1)
	default:
		return orderedCompare(op, 0)
	}
}

// compareBigEquality handles u256/i256: only == and != are defined, but the
// comparison itself still needs big.Int precision.
func compareBigEquality(param chainmodel.Param, op, value string) (bool, bool) {
	if op != "==" && op != "!=" {
		return false, false
	}
	a, ok := new(big.Int).SetString(param.Value, 10)
	if !ok {
		return false, false
	}
	b, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return false, false
	}
	eq := a.Cmp(b) == 0
	if op == "!=" {
		eq = !eq
	}
	return eq, true
}

func compareAddress(param chainmodel.Param, op, value string) (bool, bool) {
	if op != "==" && op != "!=" {
		return false, false
	}
	eq := chainmodel.NormalizeAddress(param.Value) == chainmodel.NormalizeAddress(value)
	if op == "!=" {
		eq = !eq
	}
	return eq, true
}

// compareText handles String/Bytes/Symbol: the three text operators plus
// ==/!=, all case-insensitive.
func compareText(param chainmodel.Param, op, value string) (bool, bool) {
	a := strings.ToLower(param.Value)
	b := strings.ToLower(value)
	switch op {
	case "==":
		return a == b, true
	case "!=":
		return a != b, true
	case "starts_with":
		return strings.HasPrefix(a, b), true
	case "ends_with":
		return strings.HasSuffix(a, b), true
	case "contains":
		return strings.Contains(a, b), true
	default:
		return false, false
	}
}

func compareBool(param chainmodel.Param, op, value string) (bool, bool) {
	if op != "==" && op != "!=" {
		return false, false
	}
	a, err := strconv.ParseBool(param.Value)
	if err != nil {
		return false, false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	eq := a == b
	if op == "!=" {
		eq = !eq
	}
	return eq, true
}

// compareVec handles contains/==/!=, splitting on comma.
func compareVec(param chainmodel.Param, op, value string) (bool, bool) {
	elems := splitVec(param.Value)
	switch op {
	case "contains":
		for _, e := range elems {
			if strings.EqualFold(e, value) {
				return true, true
			}
		}
		return false, true
	case "==", "!=":
		eq := strings.EqualFold(strings.Join(elems, ","), value)
		if op == "!=" {
			eq = !eq
		}
		return eq, true
	default:
		return false, false
	}
}

// compareMap delegates to JSON-number comparison when both sides parse as
// JSON, otherwise falls back to normalised string equality, per §4.4.3.
func compareMap(param chainmodel.Param, op, value string) (bool, bool) {
	af, aIsNum := parseJSONNumber(param.Value)
	bf, bIsNum := parseJSONNumber(value)
	if aIsNum && bIsNum {
		switch {
		case af < bf:
			return orderedCompare(op, -1)
		case af > bf:
			return orderedCompare(op, 1)
		default:
			return orderedCompare(op, 0)
		}
	}

	switch op {
	case "==":
		return strings.EqualFold(param.Value, value), true
	case "!=":
		return !strings.EqualFold(param.Value, value), true
	default:
		return false, false
	}
}

func parseJSONNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// orderedCompare maps a three-way comparison result to one of the six
// relational operators.
func orderedCompare(op string, cmp int) (bool, bool) {
	switch op {
	case "==":
		return cmp == 0, true
	case "!=":
		return cmp != 0, true
	case ">":
		return cmp > 0, true
	case ">=":
		return cmp >= 0, true
	case "<":
		return cmp < 0, true
	case "<=":
		return cmp <= 0, true
	default:
		return false, false
	}
}
