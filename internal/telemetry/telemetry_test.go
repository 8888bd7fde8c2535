package telemetry

import (
	"context"
	"testing"
)

func TestNewProviderDisabledIsNoop(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Enabled {
		t.Fatal("provider should be disabled")
	}

	// Every method must be callable unconditionally.
	p.RecordScan("url", "heuristic", "Low", 1.5)
	p.RecordProviderCall("virustotal", 12.0, true)
	if p.Tracer() == nil {
		t.Fatal("Tracer() returned nil")
	}
	p.Shutdown(context.Background())
}

func TestNewProviderRejectsUnknownProtocol(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:  true,
		Endpoint: "localhost:4317",
		Protocol: "udp",
	})
	if err == nil {
		t.Fatal("expected error for unknown protocol")
	}
}

func TestNilProviderMethodsSafe(t *testing.T) {
	var p *Provider
	p.RecordScan("email", "heuristic", "Low", 0)
	p.RecordProviderCall("openrouter", 0, false)
	if p.Tracer() == nil {
		t.Fatal("Tracer() on nil provider returned nil")
	}
	p.Shutdown(context.Background())
}
