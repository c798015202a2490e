package stellar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chainwatch/chainwatch/sonic"
)

// RPCTransport issues a Soroban RPC JSON-RPC call and decodes its "result"
// field into result. No typed Go client for these methods ships in this
// module's dependencies (see DESIGN.md), so the wire format is handled
// directly the way the original's send_raw_request does.
type RPCTransport interface {
	Call(ctx context.Context, method string, params any, result any) error
}

type httpRPCTransport struct {
	url        string
	httpClient *http.Client
}

func NewHTTPRPCTransport(url string, httpClient *http.Client) RPCTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpRPCTransport{url: url, httpClient: httpClient}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (t *httpRPCTransport) Call(ctx context.Context, method string, params any, result any) error {
	body, err := sonic.Config.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("chainclient/stellar: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chainclient/stellar: rpc request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("chainclient/stellar: read response: %w", err)
	}

	var rpcResp rpcResponse
	if err := sonic.Config.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("chainclient/stellar: decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("chainclient/stellar: rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return sonic.Config.Unmarshal(rpcResp.Result, result)
}
