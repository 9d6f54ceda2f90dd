package instrumentation

import (
	"context"
	"testing"
	"time"
)

func TestNewProviderDisabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if p.Enabled() {
		t.Error("provider should report disabled")
	}
	if p.Metrics() == nil {
		t.Fatal("disabled provider must still return a metrics recorder")
	}

	// No-op recorder must be safe to use
	p.Metrics().RecordToolInvocation(context.Background(), "search_emails", StatusSuccess, time.Millisecond)
	p.Metrics().RecordGmailOperation(context.Background(), "get", StatusError, time.Millisecond)

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewProviderEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServiceVersion = "test"

	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Shutdown(context.Background())

	if !p.Enabled() {
		t.Error("provider should report enabled")
	}

	m := p.Metrics()
	if m == nil {
		t.Fatal("Metrics() returned nil")
	}

	m.RecordToolInvocation(context.Background(), "get_emails", StatusSuccess, 5*time.Millisecond)
	m.RecordToolInvocationWithAccount(context.Background(), "get_emails", StatusSuccess, "me", 5*time.Millisecond)
	m.RecordGmailOperation(context.Background(), "list", StatusSuccess, 5*time.Millisecond)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("INSTRUMENTATION_ENABLED", "")

	cfg := DefaultConfig()
	if cfg.ServiceName != "gmail-mcp" {
		t.Errorf("ServiceName = %q, want gmail-mcp", cfg.ServiceName)
	}
	if !cfg.Enabled {
		t.Error("instrumentation should default to enabled")
	}
	if cfg.DetailedLabels {
		t.Error("detailed labels should default to disabled")
	}

	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("METRICS_DETAILED_LABELS", "true")
	cfg = DefaultConfig()
	if cfg.Enabled {
		t.Error("INSTRUMENTATION_ENABLED=false should disable")
	}
	if !cfg.DetailedLabels {
		t.Error("METRICS_DETAILED_LABELS=true should enable detailed labels")
	}
}
