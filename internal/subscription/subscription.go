// Package subscription checks wallet payment streams against the
// Superfluid protocol subgraphs. This is entitlement plumbing for the API
// layer; the scanning core does not depend on it.
package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Rayxworld/Vegil/internal/redact"
)

const flowQuery = `query GetFlows($sender: ID!) { account(id: $sender) { outflows { flowRate } } }`

// Service resolves whether a wallet holds an active payment stream. A
// process-lifetime test set lets integration flows simulate a
// subscription without an on-chain transaction; it is the only mutable
// state in this package and is mutex-guarded.
type Service struct {
	urls        map[int64]string
	minFlowRate *big.Int
	client      *http.Client

	mu   sync.Mutex
	test map[int64]map[string]struct{}
}

// New creates a Service. minFlowRate is the wei-per-second stream sum
// that counts as subscribed.
func New(urls map[int64]string, minFlowRate *big.Int, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		urls:        urls,
		minFlowRate: minFlowRate,
		client:      &http.Client{Timeout: timeout},
		test:        make(map[int64]map[string]struct{}),
	}
}

// AddTestSubscription marks a wallet as subscribed for the lifetime of
// this process.
func (s *Service) AddTestSubscription(wallet string, chainID int64) {
	wallet = strings.ToLower(wallet)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.test[chainID] == nil {
		s.test[chainID] = make(map[string]struct{})
	}
	s.test[chainID][wallet] = struct{}{}
}

func (s *Service) hasTestSubscription(wallet string, chainID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.test[chainID][wallet]
	return ok
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type flowsResponse struct {
	Data struct {
		Account *struct {
			Outflows []struct {
				FlowRate string `json:"flowRate"`
			} `json:"outflows"`
		} `json:"account"`
	} `json:"data"`
}

// IsSubscribed reports whether the wallet's outflow sum on the chain
// meets the minimum rate. Any lookup failure means not subscribed; the
// caller gets a boolean, never an error.
func (s *Service) IsSubscribed(ctx context.Context, wallet string, chainID int64) bool {
	wallet = strings.ToLower(strings.TrimSpace(wallet))
	if wallet == "" {
		return false
	}
	if s.hasTestSubscription(wallet, chainID) {
		return true
	}

	endpoint, ok := s.urls[chainID]
	if !ok {
		return false
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     flowQuery,
		Variables: map[string]any{"sender": wallet},
	})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		redact.Logf("subscription lookup failed for chain %d: %v", chainID, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		redact.Logf("subscription lookup status %d for chain %d", resp.StatusCode, chainID)
		return false
	}

	var fr flowsResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return false
	}
	if fr.Data.Account == nil {
		return false
	}

	total := new(big.Int)
	for _, f := range fr.Data.Account.Outflows {
		rate, ok := new(big.Int).SetString(f.FlowRate, 10)
		if !ok {
			return false
		}
		total.Add(total, rate)
	}
	return total.Cmp(s.minFlowRate) >= 0
}

// MinFlowRate parses a decimal flow rate string.
func MinFlowRate(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid flow rate %q", s)
	}
	return n, nil
}
