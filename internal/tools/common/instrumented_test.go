package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mailfold/gmail-mcp/internal/server"
)

func TestInstrumentedToolHandlerPassthrough(t *testing.T) {
	sc := &server.ServerContext{}

	want := mcp.NewToolResultText("ok")
	called := false
	handler := InstrumentedToolHandler("test_tool", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return want, nil
	})

	got, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !called {
		t.Error("wrapped handler was not invoked")
	}
	if got != want {
		t.Error("result was not passed through")
	}
}

func TestInstrumentedToolHandlerPropagatesError(t *testing.T) {
	sc := &server.ServerContext{}

	wantErr := errors.New("boom")
	handler := InstrumentedToolHandlerWithOperation("test_tool", "get", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	})

	_, err := handler(context.Background(), mcp.CallToolRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("handler error = %v, want %v", err, wantErr)
	}
}
