package bot

import (
	"strings"
	"testing"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

func TestFormatVerdict(t *testing.T) {
	v := verdict.Verdict{
		Score:  65,
		Level:  verdict.LevelHigh,
		Flags:  []string{"URL uses a raw IP address instead of a domain", `contains suspicious keyword "login"`},
		Detail: "Some suspicious traits detected. Verify the destination before proceeding.",
		Source: verdict.SourceHeuristic,
		URL:    "http://192.168.1.1/login",
	}

	out := FormatVerdict(v)
	for _, want := range []string{
		"🟠",
		"*Risk Score:* 65/100 (High)",
		"http://192.168.1.1/login",
		"• URL uses a raw IP address instead of a domain",
		"Verify the destination",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatVerdictHandleEcho(t *testing.T) {
	v := verdict.Verdict{
		Score:  40,
		Level:  verdict.LevelMedium,
		Flags:  []string{"heuristic analysis based on handle string"},
		Handle: "crypto_king_2024",
	}
	out := FormatVerdict(v)
	if !strings.Contains(out, "@crypto_king_2024") {
		t.Fatalf("output missing handle:\n%s", out)
	}
	if !strings.Contains(out, "🟡") {
		t.Fatalf("output missing medium emoji:\n%s", out)
	}
}

func TestRouteText(t *testing.T) {
	long := strings.Repeat("please verify your account ", 3)

	tests := []struct {
		text string
		kind routeKind
	}{
		{"https://example.com/login", routeLink},
		{"http://bit.ly/x", routeLink},
		{"@some_handle", routeHandle},
		{long, routeEmail},
		{"hello", routeNone},
		{"   ", routeNone},
	}
	for _, tt := range tests {
		kind, _ := routeText(tt.text)
		if kind != tt.kind {
			t.Fatalf("routeText(%q) = %v, want %v", tt.text, kind, tt.kind)
		}
	}
}
