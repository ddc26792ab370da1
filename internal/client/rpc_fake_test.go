package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// rpcFake is a minimal JSON-RPC endpoint answering with canned results per method
type rpcFake struct {
	mu       sync.Mutex
	handlers map[string]func(params json.RawMessage) (any, *rpcError)
	calls    map[string]int
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newRPCFake(t *testing.T) (*rpcFake, *httptest.Server) {
	t.Helper()
	fake := &rpcFake{
		handlers: map[string]func(json.RawMessage) (any, *rpcError){},
		calls:    map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(srv.Close)
	return fake, srv
}

func (f *rpcFake) handle(method string, h func(params json.RawMessage) (any, *rpcError)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = h
}

func (f *rpcFake) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *rpcFake) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls[req.Method]++
	h, ok := f.handlers[req.Method]
	f.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if !ok {
		resp["error"] = rpcError{Code: -32601, Message: "method not found: " + req.Method}
	} else if result, rpcErr := h(req.Params); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func withContext(value any) map[string]any {
	return map[string]any{"context": map[string]any{"slot": 1}, "value": value}
}
