package subscription

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func flowServer(t *testing.T, rates ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode graphql request: %v", err)
		}
		if _, ok := req.Variables["sender"]; !ok {
			t.Error("missing sender variable")
		}
		outflows := make([]map[string]string, 0, len(rates))
		for _, rate := range rates {
			outflows = append(outflows, map[string]string{"flowRate": rate})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"account": map[string]any{"outflows": outflows}},
		})
	}))
}

func newService(url string) *Service {
	return New(map[int64]string{1: url}, big.NewInt(1000), time.Second)
}

func TestIsSubscribedMeetsThreshold(t *testing.T) {
	ts := flowServer(t, "600", "500")
	defer ts.Close()

	if !newService(ts.URL).IsSubscribed(context.Background(), "0xAbC", 1) {
		t.Fatal("1100 >= 1000 should be subscribed")
	}
}

func TestIsSubscribedBelowThreshold(t *testing.T) {
	ts := flowServer(t, "999")
	defer ts.Close()

	if newService(ts.URL).IsSubscribed(context.Background(), "0xabc", 1) {
		t.Fatal("999 < 1000 should not be subscribed")
	}
}

func TestIsSubscribedNoAccount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"account":null}}`))
	}))
	defer ts.Close()

	if newService(ts.URL).IsSubscribed(context.Background(), "0xabc", 1) {
		t.Fatal("missing account should not be subscribed")
	}
}

func TestIsSubscribedUnknownChain(t *testing.T) {
	if newService("http://unused.invalid").IsSubscribed(context.Background(), "0xabc", 999) {
		t.Fatal("unknown chain should not be subscribed")
	}
}

func TestIsSubscribedLookupFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	if newService(ts.URL).IsSubscribed(context.Background(), "0xabc", 1) {
		t.Fatal("lookup failure should not be subscribed")
	}
}

func TestTestSubscriptionShortCircuitsLookup(t *testing.T) {
	// No server behind the URL; the test set must answer first.
	s := newService("http://unreachable.invalid")
	s.AddTestSubscription("0xDeF", 1)

	if !s.IsSubscribed(context.Background(), "0xdef", 1) {
		t.Fatal("test subscription should be honored case-insensitively")
	}
	if s.IsSubscribed(context.Background(), "0xdef", 56) {
		t.Fatal("test subscription is per-chain")
	}
}

func TestMinFlowRate(t *testing.T) {
	if _, err := MinFlowRate("385802469135802"); err != nil {
		t.Fatalf("valid rate rejected: %v", err)
	}
	if _, err := MinFlowRate("lots"); err == nil {
		t.Fatal("expected an error for a non-numeric rate")
	}
}
