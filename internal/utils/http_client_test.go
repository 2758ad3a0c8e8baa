package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)
	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}

	other := NewHTTPClient(0)
	if client.Client == other.Client {
		t.Fatal("expected independent resty clients")
	}
}
