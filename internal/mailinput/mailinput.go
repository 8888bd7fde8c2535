// Package mailinput decomposes raw RFC 822 email into analyzable content
// and checks sender domains for brand look-alikes. The look-alike result
// is reported alongside the content verdict, never folded into its score.
package mailinput

import (
	"fmt"
	"io"
	"math"
	"net/mail"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/jhillyerd/enmime"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/net/idna"
)

// Message is the analyzable content of one email.
type Message struct {
	Subject      string
	From         string
	SenderDomain string // lower-cased, IDN normalized to ASCII
	Text         string
}

// Read parses a raw email. When the message carries no plain-text part,
// the HTML part is flattened so keyword scoring still has text to see. A
// malformed From header leaves SenderDomain empty rather than failing the
// whole read.
func Read(r io.Reader) (*Message, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return nil, fmt.Errorf("parse email envelope: %w", err)
	}

	text := env.Text
	if strings.TrimSpace(text) == "" && env.HTML != "" {
		if flat, herr := html2text.FromString(env.HTML, html2text.Options{TextOnly: true}); herr == nil {
			text = flat
		}
	}

	m := &Message{
		Subject: env.GetHeader("Subject"),
		From:    env.GetHeader("From"),
		Text:    text,
	}
	if addr, aerr := mail.ParseAddress(m.From); aerr == nil {
		if _, domain, ok := strings.Cut(strings.ToLower(addr.Address), "@"); ok {
			m.SenderDomain = normalizeDomain(domain)
		}
	}
	return m, nil
}

// normalizeDomain lower-cases and converts IDN labels to their ASCII
// form; on conversion failure the lower-cased input stands.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		return ascii
	}
	return domain
}

// lookalikeThreshold scales the tolerated edit distance with domain
// length: short names must match near-exactly, long ones get ~15% slack.
func lookalikeThreshold(length int) int {
	switch {
	case length <= 11:
		return 1
	case length <= 15:
		return 2
	default:
		return int(math.Ceil(float64(length) * 0.15))
	}
}

// Lookalike reports whether domain is an edit-distance near miss of a
// brand's canonical domain. An exact match is legitimate mail, not a
// look-alike.
func Lookalike(domain string, brands []string) (string, bool) {
	domain = normalizeDomain(domain)
	if domain == "" {
		return "", false
	}
	thresh := lookalikeThreshold(len(domain))
	for _, brand := range brands {
		canonical := brand + ".com"
		if domain == canonical {
			return "", false
		}
		if fuzzy.LevenshteinDistance(domain, canonical) <= thresh {
			return brand, true
		}
	}
	return "", false
}
