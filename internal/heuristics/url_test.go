package heuristics

import (
	"strings"
	"testing"
)

func newTestURLScorer() *URLScorer {
	return NewURLScorer(DefaultLists())
}

func TestURLScorerCleanBrandDomain(t *testing.T) {
	res := newTestURLScorer().Score("http://paypal.com")
	if res.Score != 0 {
		t.Fatalf("score = %d, want 0 (canonical brand domain is legitimate); flags: %v", res.Score, res.Flags)
	}
	if len(res.Flags) != 0 {
		t.Fatalf("expected no flags, got %v", res.Flags)
	}
}

func TestURLScorerIPAndKeyword(t *testing.T) {
	res := newTestURLScorer().Score("http://192.168.1.1/login")
	// IP rule (50) plus one keyword hit (15).
	if res.Score != 65 {
		t.Fatalf("score = %d, want 65; flags: %v", res.Score, res.Flags)
	}
	if len(res.Flags) != 2 {
		t.Fatalf("expected 2 flags, got %v", res.Flags)
	}
	if res.Flags[0] != "host is a literal IP address" {
		t.Fatalf("IP flag must come first (table order), got %v", res.Flags)
	}
}

func TestURLScorerTyposquat(t *testing.T) {
	res := newTestURLScorer().Score("http://paypa1.com")
	if res.Score < 80 {
		t.Fatalf("score = %d, want at least the typosquat weight; flags: %v", res.Score, res.Flags)
	}
	if !strings.Contains(res.Flags[0], "paypal") {
		t.Fatalf("typosquat flag should name the brand, got %v", res.Flags)
	}
}

func TestURLScorerKeywordsCompound(t *testing.T) {
	// Three distinct keywords; each contributes its own 15 points.
	res := newTestURLScorer().Score("http://example.org/verify-login-update")
	if res.Score != 45 {
		t.Fatalf("score = %d, want 45; flags: %v", res.Score, res.Flags)
	}
}

func TestURLScorerShortener(t *testing.T) {
	res := newTestURLScorer().Score("https://bit.ly/3xyzabc")
	found := false
	for _, fl := range res.Flags {
		if fl == "known URL shortener" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected shortener flag, got %v", res.Flags)
	}
}

func TestURLScorerSuspiciousTLDAndHyphens(t *testing.T) {
	res := newTestURLScorer().Score("http://cheap-deals-for-you.xyz")
	// TLD (30) + hyphens (15).
	if res.Score != 45 {
		t.Fatalf("score = %d, want 45; flags: %v", res.Score, res.Flags)
	}
}

func TestURLScorerExcessiveSubdomains(t *testing.T) {
	res := newTestURLScorer().Score("http://a.b.c.d.example.org")
	found := false
	for _, fl := range res.Flags {
		if strings.Contains(fl, "subdomain") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected subdomain flag for 5-dot host, got %v", res.Flags)
	}
}

func TestURLScorerLongHost(t *testing.T) {
	host := strings.Repeat("a", 41) + ".org"
	res := newTestURLScorer().Score("http://" + host)
	found := false
	for _, fl := range res.Flags {
		if strings.Contains(fl, "long host") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected long host flag, got %v", res.Flags)
	}
}

func TestURLScorerClampsAt100(t *testing.T) {
	// Typosquat + IP is impossible, but TLD + shortener-ish stacking plus
	// many keywords overflows the clamp via a crafted URL.
	raw := "http://paypal-secure-login-update.xyz/verify/account/password/free/claim/bonus"
	res := newTestURLScorer().Score(raw)
	if res.Score != 100 {
		t.Fatalf("score = %d, want clamped 100; flags: %v", res.Score, res.Flags)
	}
}

func TestURLScorerNeverFails(t *testing.T) {
	for _, raw := range []string{"", "::::", strings.Repeat("x", 1<<16), "\x00\x01"} {
		res := newTestURLScorer().Score(raw)
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("score out of range for %q: %d", raw, res.Score)
		}
	}
}

func TestURLScorerDetailBands(t *testing.T) {
	low := newTestURLScorer().Score("http://example.org")
	if !strings.Contains(low.Detail, "No strong risk indicators") {
		t.Fatalf("low-band detail = %q", low.Detail)
	}
	mid := newTestURLScorer().Score("http://192.168.1.1/")
	if !strings.Contains(mid.Detail, "Verify the destination") {
		t.Fatalf("mid-band detail = %q", mid.Detail)
	}
	high := newTestURLScorer().Score("http://paypa1.com")
	if !strings.Contains(high.Detail, "Do not enter credentials") {
		t.Fatalf("high-band detail = %q", high.Detail)
	}
}
