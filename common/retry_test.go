package common

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultRetryConfigDoesNotRetry(t *testing.T) {
	if DefaultRetryConfig().RetryMax != 0 {
		t.Errorf("Expected no retries by default, got %d", DefaultRetryConfig().RetryMax)
	}
}

func TestWithRetryMaxClampsNegative(t *testing.T) {
	if got := DefaultRetryConfig().WithRetryMax(-3).RetryMax; got != 0 {
		t.Errorf("Expected negative retry max to clamp to 0, got %d", got)
	}
	if got := DefaultRetryConfig().WithRetryMax(2).RetryMax; got != 2 {
		t.Errorf("Expected retry max 2, got %d", got)
	}
}

func TestRetryableClientSendsOnceByDefault(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewRetryableClient(DefaultRetryConfig()).StandardClient()
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Expected the failing response to be passed through, got error %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected exactly 1 call, got %d", got)
	}
}

func TestRetryableClientRetriesWhenConfigured(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config := DefaultRetryConfig().WithRetryMax(2)
	config.RetryWaitMin = time.Millisecond
	config.RetryWaitMax = 5 * time.Millisecond

	resp, err := NewRetryableClient(config).StandardClient().Get(server.URL)
	if err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 calls, got %d", got)
	}
}
