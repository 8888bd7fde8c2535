// Package server exposes the scan and subscription operations over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Rayxworld/Vegil/internal/config"
	"github.com/Rayxworld/Vegil/internal/heuristics"
	"github.com/Rayxworld/Vegil/internal/scanner"
	"github.com/Rayxworld/Vegil/internal/subscription"
	"github.com/Rayxworld/Vegil/internal/telemetry"
)

const (
	maxJSONBody = 1 << 20 // scan request payloads
	maxEMLBody  = 5 << 20 // raw RFC 822 uploads
)

// Options carries the wired dependencies for a Server. Telemetry may be
// nil; Subs may be nil when no subscription gating is configured.
type Options struct {
	Config    *config.Config
	Scanner   *scanner.Scanner
	Subs      *subscription.Service
	Telemetry *telemetry.Provider
	Lists     heuristics.Lists
}

// Server wraps the HTTP components for Vegil.
type Server struct {
	mux     *http.ServeMux
	cfg     *config.Config
	scanner *scanner.Scanner
	subs    *subscription.Service
	tel     *telemetry.Provider
	lists   heuristics.Lists
}

// New creates a Vegil server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		cfg:     opts.Config,
		scanner: opts.Scanner,
		subs:    opts.Subs,
		tel:     opts.Telemetry,
		lists:   opts.Lists,
	}

	// Routes
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/api/scans/status", s.handleStatus)
	s.mux.HandleFunc("/api/scans/link", s.handleScanLink)
	s.mux.HandleFunc("/api/scans/email", s.handleScanEmail)
	s.mux.HandleFunc("/api/scans/x-risk", s.handleScanHandle)
	s.mux.HandleFunc("/api/scans/eml", s.handleScanEML)
	s.mux.HandleFunc("/api/subscriptions/check", s.handleSubscriptionCheck)
	s.mux.HandleFunc("/api/subscriptions/test-subscribe", s.handleTestSubscribe)

	return s
}

// Handler returns the full handler chain, CORS included. Browser
// extensions and dashboard frontends call the API cross-origin.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.mux)
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	log.Printf("Vegil Guard running on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- Handlers ---

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "Vegil AI Guard",
		"status":  "operational",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

type statusResponse struct {
	Service    string `json:"service"`
	Mode       string `json:"mode"`
	Reputation string `json:"reputation,omitempty"`
	Judgment   string `json:"judgment,omitempty"`
	Model      string `json:"model,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rep, judge := s.scanner.ProviderNames()
	mode := "heuristic"
	if judge != "" {
		mode = "ai"
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Service:    "vegil",
		Mode:       mode,
		Reputation: rep,
		Judgment:   judge,
		Model:      s.scanner.JudgmentModel(),
	})
}

type linkRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleScanLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if !decodeJSONPost(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	ctx, span := s.tel.Tracer().Start(r.Context(), "scan.link")
	defer span.End()
	start := time.Now()
	v := s.scanner.AssessURL(ctx, req.URL)
	s.recordScan("url", v.Source, string(v.Level), start)
	writeJSON(w, http.StatusOK, v)
}

type emailRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleScanEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeJSONPost(w, r, &req) {
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing content")
		return
	}

	ctx, span := s.tel.Tracer().Start(r.Context(), "scan.email")
	defer span.End()
	start := time.Now()
	v := s.scanner.AssessEmail(ctx, req.Content)
	s.recordScan("email", v.Source, string(v.Level), start)
	writeJSON(w, http.StatusOK, v)
}

type handleRequest struct {
	Handle string `json:"handle"`
}

func (s *Server) handleScanHandle(w http.ResponseWriter, r *http.Request) {
	var req handleRequest
	if !decodeJSONPost(w, r, &req) {
		return
	}
	if req.Handle == "" {
		writeError(w, http.StatusBadRequest, "missing handle")
		return
	}

	ctx, span := s.tel.Tracer().Start(r.Context(), "scan.handle")
	defer span.End()
	start := time.Now()
	v := s.scanner.AssessHandle(ctx, req.Handle)
	s.recordScan("handle", v.Source, string(v.Level), start)
	writeJSON(w, http.StatusOK, v)
}

type subscriptionRequest struct {
	Wallet  string `json:"wallet"`
	ChainID int64  `json:"chain_id"`
}

type subscriptionResponse struct {
	Wallet     string `json:"wallet"`
	ChainID    int64  `json:"chain_id"`
	Subscribed bool   `json:"subscribed"`
}

func (s *Server) handleSubscriptionCheck(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeJSONPost(w, r, &req) {
		return
	}
	if req.Wallet == "" {
		writeError(w, http.StatusBadRequest, "missing wallet")
		return
	}
	if s.subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription checks not configured")
		return
	}

	writeJSON(w, http.StatusOK, subscriptionResponse{
		Wallet:     req.Wallet,
		ChainID:    req.ChainID,
		Subscribed: s.subs.IsSubscribed(r.Context(), req.Wallet, req.ChainID),
	})
}

func (s *Server) handleTestSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeJSONPost(w, r, &req) {
		return
	}
	if req.Wallet == "" {
		writeError(w, http.StatusBadRequest, "missing wallet")
		return
	}
	if s.subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription checks not configured")
		return
	}

	s.subs.AddTestSubscription(req.Wallet, req.ChainID)
	writeJSON(w, http.StatusOK, subscriptionResponse{
		Wallet:     req.Wallet,
		ChainID:    req.ChainID,
		Subscribed: true,
	})
}

// --- helpers ---

func decodeJSONPost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

func (s *Server) recordScan(subject, source, level string, start time.Time) {
	if s.tel == nil {
		return
	}
	s.tel.RecordScan(subject, source, level, float64(time.Since(start).Milliseconds()))
}
