package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/Rayxworld/Vegil/internal/mailinput"
	"github.com/Rayxworld/Vegil/internal/verdict"
)

type emlResponse struct {
	Subject      string          `json:"subject"`
	From         string          `json:"from"`
	SenderDomain string          `json:"sender_domain,omitempty"`
	LookalikeOf  string          `json:"lookalike_of,omitempty"`
	Verdict      verdict.Verdict `json:"verdict"`
}

// handleScanEML accepts a raw RFC 822 message as the request body. The
// decoded subject and text run through the email assessment; the sender
// domain is additionally checked for brand look-alikes, reported beside
// the verdict rather than folded into its score.
func (s *Server) handleScanEML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxEMLBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "empty message")
		return
	}

	msg, err := mailinput.Read(bytes.NewReader(raw))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "could not parse email message")
		return
	}

	content := msg.Subject
	if msg.Text != "" {
		content += "\n\n" + msg.Text
	}

	ctx, span := s.tel.Tracer().Start(r.Context(), "scan.eml")
	defer span.End()
	start := time.Now()
	v := s.scanner.AssessEmail(ctx, content)
	s.recordScan("email", v.Source, string(v.Level), start)

	resp := emlResponse{
		Subject:      msg.Subject,
		From:         msg.From,
		SenderDomain: msg.SenderDomain,
		Verdict:      v,
	}
	if brand, hit := mailinput.Lookalike(msg.SenderDomain, s.lists.Brands); hit {
		resp.LookalikeOf = brand
	}
	writeJSON(w, http.StatusOK, resp)
}
