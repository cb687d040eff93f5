package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("", 0)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_AppliesBaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 5*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", got)
	}
}

func TestNewHTTPClient_ZeroTimeoutKeepsTransportDefault(t *testing.T) {
	client := NewHTTPClient("", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no overall timeout, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("", 0)
	client2 := NewHTTPClient("", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
