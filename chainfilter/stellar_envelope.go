package chainfilter

import (
	"strconv"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/stellar/go/xdr"
)

// stellarOperation is the §4.4.1 operation shape the Stellar filter reasons
// about: a normalised view over Payment and InvokeHostFunction operations,
// the two kinds the original inspects.
type stellarOperation struct {
	kind     string // "payment" | "invoke_host_function"
	from     string
	to       string
	value    string // payment amount, decimal stroops; empty for invoke_host_function
	funcName string
	funcSig  string
	args     []chainmodel.Param
}

// decodeEnvelopeOperations parses a transaction's base64 TransactionEnvelope
// XDR and extracts its Payment/InvokeHostFunction operations, following
// TransactionEnvelope.Operations() to stay agnostic of the V0/V1/fee-bump
// envelope variants.
func decodeEnvelopeOperations(envelopeXDR string) ([]stellarOperation, error) {
	if envelopeXDR == "" {
		return nil, nil
	}
	var envelope xdr.TransactionEnvelope
	if err := xdr.SafeUnmarshalBase64(envelopeXDR, &envelope); err != nil {
		return nil, err
	}

	sourceAccount := envelopeSourceAccount(envelope)
	ops := envelope.Operations()

	out := make([]stellarOperation, 0, len(ops))
	for _, op := range ops {
		from := sourceAccount
		if op.SourceAccount != nil {
			from = muxedAccountAddress(*op.SourceAccount)
		}

		switch op.Body.Type {
		case xdr.OperationTypePayment:
			payment, ok := op.Body.GetPaymentOp()
			if !ok {
				continue
			}
			out = append(out, stellarOperation{
				kind:  "payment",
				from:  from,
				to:    muxedAccountAddress(payment.Destination),
				value: fmtInt64(int64(payment.Amount)),
			})
		case xdr.OperationTypeInvokeHostFunction:
			invoke, ok := op.Body.GetInvokeHostFunctionOp()
			if !ok {
				continue
			}
			out = append(out, invokeHostFunctionOperation(from, invoke))
		}
	}
	return out, nil
}

func invokeHostFunctionOperation(from string, invoke xdr.InvokeHostFunctionOp) stellarOperation {
	if invoke.HostFunction.Type != xdr.HostFunctionTypeHostFunctionTypeInvokeContract {
		return stellarOperation{kind: "invoke_host_function", from: from}
	}
	args, ok := invoke.HostFunction.GetInvokeContract()
	if !ok {
		return stellarOperation{kind: "invoke_host_function", from: from}
	}

	funcName := string(args.FunctionName)
	argTypes := make([]string, len(args.Args))
	params := make([]chainmodel.Param, len(args.Args))
	for i, a := range args.Args {
		argTypes[i] = scValTypeName(a)
		params[i] = scValToParam(fmtInt64(int64(i)), a)
	}

	return stellarOperation{
		kind:     "invoke_host_function",
		from:     from,
		to:       scAddressString(args.ContractAddress),
		funcName: funcName,
		funcSig:  buildSignature(funcName, argTypes),
		args:     params,
	}
}

func buildSignature(name string, argTypes []string) string {
	sig := name + "("
	for i, t := range argTypes {
		if i > 0 {
			sig += ","
		}
		sig += t
	}
	return sig + ")"
}

func envelopeSourceAccount(envelope xdr.TransactionEnvelope) string {
	switch envelope.Type {
	case xdr.EnvelopeTypeEnvelopeTypeTx:
		if envelope.V1 != nil {
			return muxedAccountAddress(envelope.V1.Tx.SourceAccount)
		}
	case xdr.EnvelopeTypeEnvelopeTypeTxV0:
		if envelope.V0 != nil {
			return accountAddressFromEd25519(envelope.V0.Tx.SourceAccountEd25519)
		}
	case xdr.EnvelopeTypeEnvelopeTypeTxFeeBump:
		if envelope.FeeBump != nil {
			return muxedAccountAddress(envelope.FeeBump.Tx.FeeSource)
		}
	}
	return ""
}

func muxedAccountAddress(m xdr.MuxedAccount) string {
	accountID, err := m.ToAccountId()
	if err != nil {
		return ""
	}
	return accountID.Address()
}

func accountAddressFromEd25519(key xdr.Uint256) string {
	accountID := xdr.AccountId{
		Type:    xdr.PublicKeyTypePublicKeyTypeEd25519,
		Ed25519: &key,
	}
	return accountID.Address()
}

func fmtInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}
