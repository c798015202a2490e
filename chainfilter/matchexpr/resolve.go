package matchexpr

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/chainwatch/chainwatch/chainmodel"
)

// resolveIdent resolves an IDENT token — a bare parameter name, a Vec
// element access (param[i] or param[i][j]), or a Map key access
// (param.key) — against bag. Any failure (unknown name, out-of-range
// index, missing key) reports ok=false; the caller treats that as "unknown
// parameter" per §4.4.3.
func resolveIdent(bag Bag, ident string) (chainmodel.Param, bool) {
	base, rest := splitIdent(ident)
	param, ok := bag[base]
	if !ok {
		return chainmodel.Param{}, false
	}
	if rest == "" {
		return param, true
	}

	switch {
	case strings.HasPrefix(rest, "["):
		return resolveVecIndex(param, rest)
	case strings.HasPrefix(rest, "."):
		return resolveMapKey(param, rest[1:])
	default:
		return chainmodel.Param{}, false
	}
}

// splitIdent splits ident at the first '[' or '.' into (base, remainder),
// remainder including its leading delimiter.
func splitIdent(ident string) (string, string) {
	for i, r := range ident {
		if r == '[' || r == '.' {
			return ident[:i], ident[i:]
		}
	}
	return ident, ""
}

// resolveVecIndex walks one or two bracketed indices into a comma-split Vec
// value. A second bracket splits the selected element by comma again; since
// the first split already breaks the value at every comma, the selected
// element holds no comma, so only a second index of 0 resolves.
func resolveVecIndex(param chainmodel.Param, rest string) (chainmodel.Param, bool) {
	if param.Kind != chainmodel.ParamKindVec {
		return chainmodel.Param{}, false
	}

	indices, ok := parseBracketIndices(rest)
	if !ok || len(indices) == 0 {
		return chainmodel.Param{}, false
	}

	elems := splitVec(param.Value)
	if indices[0] < 0 || indices[0] >= len(elems) {
		return chainmodel.Param{}, false
	}
	value := elems[indices[0]]

	if len(indices) == 2 {
		inner := splitVec(value)
		if indices[1] < 0 || indices[1] >= len(inner) {
			return chainmodel.Param{}, false
		}
		value = inner[indices[1]]
	}

	return chainmodel.Param{Name: param.Name, Kind: chainmodel.ParamKindString, Value: value}, true
}

func splitVec(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func parseBracketIndices(rest string) ([]int, bool) {
	var indices []int
	for strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return nil, false
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return nil, false
		}
		indices = append(indices, n)
		rest = rest[end+1:]
	}
	if rest != "" {
		return nil, false // trailing garbage after the bracket group
	}
	return indices, true
}

// resolveMapKey does JSON-aware dot traversal into a Map-kind parameter's
// raw JSON value, per §4.4.3's "Map: JSON-aware; '.' traversal".
func resolveMapKey(param chainmodel.Param, keyPath string) (chainmodel.Param, bool) {
	if param.Kind != chainmodel.ParamKindMap {
		return chainmodel.Param{}, false
	}

	var doc any
	if err := json.Unmarshal([]byte(param.Value), &doc); err != nil {
		return chainmodel.Param{}, false
	}

	cur := doc
	for _, key := range strings.Split(keyPath, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return chainmodel.Param{}, false
		}
		cur, ok = m[key]
		if !ok {
			return chainmodel.Param{}, false
		}
	}

	return jsonLeafToParam(param.Name, cur)
}

func jsonLeafToParam(name string, v any) (chainmodel.Param, bool) {
	switch t := v.(type) {
	case string:
		return chainmodel.Param{Name: name, Kind: chainmodel.ParamKindString, Value: t}, true
	case float64:
		return chainmodel.Param{Name: name, Kind: chainmodel.ParamKindInt, Value: strconv.FormatFloat(t, 'f', -1, 64)}, true
	case bool:
		return chainmodel.Param{Name: name, Kind: chainmodel.ParamKindBool, Value: strconv.FormatBool(t)}, true
	case map[string]any, []any:
		raw, err := json.Marshal(t)
		if err != nil {
			return chainmodel.Param{}, false
		}
		return chainmodel.Param{Name: name, Kind: chainmodel.ParamKindMap, Value: string(raw)}, true
	default:
		return chainmodel.Param{}, false
	}
}
