package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/threadchain/threadchain/internal/feed"
	"github.com/threadchain/threadchain/internal/repository"
)

type connectedWallet struct{}

func (connectedWallet) Connected() bool { return true }
func (connectedWallet) Address() string { return "7xKq...3fKe" }

func newTestServer(t *testing.T, wallet feed.Wallet) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := feed.NewEngine(context.Background(), feed.Options{Wallet: wallet})
	router := gin.New()
	NewRouter(engine).SetupRoutes(router)
	return router
}

func call(t *testing.T, router *gin.Engine, method string, params interface{}) JSONRPCResponse {
	t.Helper()

	body := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
	}
	if params != nil {
		body["params"] = params
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp JSONRPCResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestJSONRPCGetVisiblePosts(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	resp := call(t, router, "feed.get_visible_posts", nil)
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	posts, ok := resp.Result.([]interface{})
	if !ok || len(posts) == 0 {
		t.Fatalf("result = %T %v", resp.Result, resp.Result)
	}
}

func TestJSONRPCVoteLifecycle(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	resp := call(t, router, "feed.vote", map[string]interface{}{
		"post_id":   "1",
		"direction": "up",
	})
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	post, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result = %T", resp.Result)
	}
	if post["userVote"] != "up" {
		t.Errorf("userVote = %v", post["userVote"])
	}
	if post["upvotes"].(float64) != 143 {
		t.Errorf("upvotes = %v, want 143", post["upvotes"])
	}
}

func TestJSONRPCWalletRequired(t *testing.T) {
	router := newTestServer(t, nil)

	resp := call(t, router, "feed.tip", map[string]interface{}{
		"post_id": "1",
		"amount":  1.5,
	})
	if resp.Error == nil {
		t.Fatal("expected error")
	}
	if resp.Error.Code != ErrWalletRequired {
		t.Errorf("code = %d, want %d", resp.Error.Code, ErrWalletRequired)
	}
}

func TestJSONRPCErrorCodes(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	tests := []struct {
		name     string
		method   string
		params   interface{}
		wantCode int
	}{
		{
			name:     "unknown method",
			method:   "feed.fly_to_the_moon",
			params:   nil,
			wantCode: ErrMethodNotFound,
		},
		{
			name:     "unknown post",
			method:   "feed.vote",
			params:   map[string]interface{}{"post_id": "9999", "direction": "up"},
			wantCode: ErrNotFound,
		},
		{
			name:     "invalid tip amount",
			method:   "feed.tip",
			params:   map[string]interface{}{"post_id": "1", "amount": -5},
			wantCode: ErrInvalidParams,
		},
		{
			name:     "invalid tab",
			method:   "feed.set_active_tab",
			params:   map[string]interface{}{"tab": "bogus"},
			wantCode: ErrServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, router, tt.method, tt.params)
			if resp.Error == nil {
				t.Fatal("expected error")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestJSONRPCTrendingHashtags(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	resp := call(t, router, "feed.trending_hashtags", map[string]interface{}{"limit": 3})
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	tags, ok := resp.Result.([]interface{})
	if !ok {
		t.Fatalf("result = %T", resp.Result)
	}
	if len(tags) != 3 {
		t.Errorf("len = %d, want 3", len(tags))
	}
}

func TestJSONRPCGetState(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	resp := call(t, router, "feed.get_state", nil)
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	state, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result = %T", resp.Result)
	}
	if state["dataSource"] != "seed" {
		t.Errorf("dataSource = %v, want seed", state["dataSource"])
	}
	if state["activeTab"] != "trending" {
		t.Errorf("activeTab = %v, want trending", state["activeTab"])
	}
}

func TestJSONRPCInvalidVersion(t *testing.T) {
	router := newTestServer(t, connectedWallet{})

	raw := []byte(`{"jsonrpc":"1.0","id":1,"method":"feed.get_state"}`)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp JSONRPCResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrInvalidRequest {
		t.Errorf("error = %+v, want invalid request", resp.Error)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &feed.NotFoundError{Kind: "post", ID: "9"}, ErrNotFound},
		{"invalid amount", &feed.InvalidAmountError{Amount: -1}, ErrInvalidParams},
		{"wallet required", feed.ErrWalletRequired, ErrWalletRequired},
		{"repository failure", &repository.Error{Op: "list_posts", Err: errors.New("boom")}, ErrInternalError},
		{"anything else", errors.New("boom"), ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := classifyError(tt.err)
			if code != tt.want {
				t.Errorf("classifyError() = %d, want %d", code, tt.want)
			}
		})
	}
}
