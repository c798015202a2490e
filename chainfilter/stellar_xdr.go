package chainfilter

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// combineU128/I128/U256/I256 recombine the limb representation Soroban uses
// for wide integers into a decimal string, the same arithmetic as the
// original's combine_u128/combine_i128/combine_u256/combine_i256.
func combineU128(n xdr.UInt128Parts) string {
	v := new(big.Int).SetUint64(uint64(n.Hi))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.Lo)))
	return v.String()
}

func combineI128(n xdr.Int128Parts) string {
	hi := big.NewInt(int64(n.Hi))
	v := new(big.Int).Lsh(hi, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.Lo)))
	return v.String()
}

func combineU256(n xdr.UInt256Parts) string {
	v := new(big.Int).SetUint64(uint64(n.HiHi))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.HiLo)))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.LoHi)))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.LoLo)))
	return v.String()
}

func combineI256(n xdr.Int256Parts) string {
	hiHi := big.NewInt(int64(n.HiHi))
	negative := hiHi.Sign() < 0

	// build the magnitude as if all limbs were unsigned, correcting the
	// top limb's sign bit afterwards.
	top := new(big.Int).SetUint64(uint64(n.HiHi))
	if negative {
		// n.HiHi as uint64 already carries the two's complement bit
		// pattern; combine unsigned then subtract 2^256 to restore sign.
		v := new(big.Int).Lsh(top, 64)
		v.Or(v, new(big.Int).SetUint64(uint64(n.HiLo)))
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(uint64(n.LoHi)))
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(uint64(n.LoLo)))
		mod := new(big.Int).Lsh(big.NewInt(1), 256)
		v.Sub(v, mod)
		return v.String()
	}

	v := new(big.Int).Lsh(top, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.HiLo)))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.LoHi)))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(n.LoLo)))
	return v.String()
}

// scAddressString renders an ScAddress as its strkey form: "C..." for a
// contract, "G..." for an account, matching the original's Contract(hash)/
// StrkeyPublicKey(key) rendering.
func scAddressString(addr xdr.ScAddress) string {
	switch addr.Type {
	case xdr.ScAddressTypeScAddressTypeContract:
		if addr.ContractId != nil {
			s, err := strkey.Encode(strkey.VersionByteContract, addr.ContractId[:])
			if err == nil {
				return s
			}
		}
	case xdr.ScAddressTypeScAddressTypeAccount:
		if addr.AccountId != nil {
			if kp, ok := addr.AccountId.GetEd25519(); ok {
				s, err := strkey.Encode(strkey.VersionByteAccountID, kp[:])
				if err == nil {
					return s
				}
			}
		}
	}
	return ""
}

// scValKind maps an ScVal's type tag to the ParamKind matchexpr dispatches
// comparisons on.
func scValKind(val xdr.ScVal) chainmodel.ParamKind {
	switch val.Type {
	case xdr.ScValTypeScvBool:
		return chainmodel.ParamKindBool
	case xdr.ScValTypeScvU32, xdr.ScValTypeScvU64, xdr.ScValTypeScvTimepoint, xdr.ScValTypeScvDuration:
		return chainmodel.ParamKindUint
	case xdr.ScValTypeScvI32, xdr.ScValTypeScvI64:
		return chainmodel.ParamKindInt
	case xdr.ScValTypeScvU128, xdr.ScValTypeScvU256:
		return chainmodel.ParamKindUint256
	case xdr.ScValTypeScvI128, xdr.ScValTypeScvI256:
		return chainmodel.ParamKindInt256
	case xdr.ScValTypeScvBytes:
		return chainmodel.ParamKindBytes
	case xdr.ScValTypeScvString:
		return chainmodel.ParamKindString
	case xdr.ScValTypeScvSymbol:
		return chainmodel.ParamKindSymbol
	case xdr.ScValTypeScvVec:
		return chainmodel.ParamKindVec
	case xdr.ScValTypeScvMap:
		return chainmodel.ParamKindMap
	case xdr.ScValTypeScvAddress:
		return chainmodel.ParamKindAddress
	default:
		return chainmodel.ParamKindString
	}
}

// scValString renders an ScVal's value the same way the original's
// process_sc_val does, less the JSON wrapper: wide integers as plain
// decimal, bytes as hex, vec/map as a bracketed rendering of their
// elements ("[a,b]", "{k:v}"). scValToParam uses this rendering as the
// Param value that expressions compare against, brackets included; the
// map form is not JSON.
func scValString(val xdr.ScVal) string {
	switch val.Type {
	case xdr.ScValTypeScvBool:
		b, _ := val.GetB()
		if b {
			return "true"
		}
		return "false"
	case xdr.ScValTypeScvVoid:
		return ""
	case xdr.ScValTypeScvU32:
		n, _ := val.GetU32()
		return fmt.Sprintf("%d", uint32(n))
	case xdr.ScValTypeScvI32:
		n, _ := val.GetI32()
		return fmt.Sprintf("%d", int32(n))
	case xdr.ScValTypeScvU64:
		n, _ := val.GetU64()
		return fmt.Sprintf("%d", uint64(n))
	case xdr.ScValTypeScvI64:
		n, _ := val.GetI64()
		return fmt.Sprintf("%d", int64(n))
	case xdr.ScValTypeScvTimepoint:
		t, _ := val.GetTimepoint()
		return fmt.Sprintf("%d", uint64(t))
	case xdr.ScValTypeScvDuration:
		d, _ := val.GetDuration()
		return fmt.Sprintf("%d", uint64(d))
	case xdr.ScValTypeScvU128:
		n, _ := val.GetU128()
		return combineU128(n)
	case xdr.ScValTypeScvI128:
		n, _ := val.GetI128()
		return combineI128(n)
	case xdr.ScValTypeScvU256:
		n, _ := val.GetU256()
		return combineU256(n)
	case xdr.ScValTypeScvI256:
		n, _ := val.GetI256()
		return combineI256(n)
	case xdr.ScValTypeScvBytes:
		b, _ := val.GetBytes()
		return hex.EncodeToString(b)
	case xdr.ScValTypeScvString:
		s, _ := val.GetStr()
		return string(s)
	case xdr.ScValTypeScvSymbol:
		s, _ := val.GetSym()
		return string(s)
	case xdr.ScValTypeScvAddress:
		addr, _ := val.GetAddress()
		return scAddressString(addr)
	case xdr.ScValTypeScvVec:
		vec, ok := val.GetVec()
		if !ok || vec == nil {
			return "[]"
		}
		out := "["
		for i, v := range *vec {
			if i > 0 {
				out += ","
			}
			out += scValString(v)
		}
		return out + "]"
	case xdr.ScValTypeScvMap:
		m, ok := val.GetMap()
		if !ok || m == nil {
			return "{}"
		}
		out := "{"
		for i, entry := range *m {
			if i > 0 {
				out += ","
			}
			out += scValString(entry.Key) + ":" + scValString(entry.Val)
		}
		return out + "}"
	default:
		return "unsupported_type"
	}
}

// scValToParam decodes a single ScVal into a named Param usable both as a
// matchexpr.Bag entry and as a MatchedCondition's reported argument.
func scValToParam(name string, val xdr.ScVal) chainmodel.Param {
	return chainmodel.Param{
		Name:  name,
		Kind:  scValKind(val),
		Value: scValString(val),
	}
}

// decodeScValBase64 parses a base64-encoded ScVal XDR blob, as returned by
// getEvents' topic/value fields.
func decodeScValBase64(b64 string) (xdr.ScVal, error) {
	var val xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(b64, &val); err != nil {
		return xdr.ScVal{}, fmt.Errorf("chainfilter: decode ScVal: %w", err)
	}
	return val, nil
}

// scValTypeName gives the signature-building type token for an ScVal, used
// the same way EVM ABI arg types build a FunctionCondition/EventCondition
// signature to compare against.
func scValTypeName(val xdr.ScVal) string {
	switch val.Type {
	case xdr.ScValTypeScvBool:
		return "bool"
	case xdr.ScValTypeScvU32:
		return "u32"
	case xdr.ScValTypeScvI32:
		return "i32"
	case xdr.ScValTypeScvU64:
		return "u64"
	case xdr.ScValTypeScvI64:
		return "i64"
	case xdr.ScValTypeScvTimepoint:
		return "timepoint"
	case xdr.ScValTypeScvDuration:
		return "duration"
	case xdr.ScValTypeScvU128:
		return "u128"
	case xdr.ScValTypeScvI128:
		return "i128"
	case xdr.ScValTypeScvU256:
		return "u256"
	case xdr.ScValTypeScvI256:
		return "i256"
	case xdr.ScValTypeScvBytes:
		return "bytes"
	case xdr.ScValTypeScvString:
		return "string"
	case xdr.ScValTypeScvSymbol:
		return "symbol"
	case xdr.ScValTypeScvVec:
		return "vec"
	case xdr.ScValTypeScvMap:
		return "map"
	case xdr.ScValTypeScvAddress:
		return "address"
	default:
		return "unknown"
	}
}
