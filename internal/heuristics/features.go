package heuristics

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var ipv4Re = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// URLFeatures are the structural facts the URL scorer works from.
type URLFeatures struct {
	Raw       string
	Host      string // lower-cased, leading www. stripped
	ASCIIHost string // punycode form of Host, for logs and flag text
	TLD       string // includes the leading dot, e.g. ".com"
	PathQuery string
	HostDots  int
	IsIPv4    bool
	NonASCII  bool
	Hyphens   int
	HostLen   int
}

// ExtractURLFeatures derives features from a raw URL string. It is
// deliberately permissive and never fails: input that cannot be parsed at
// all degrades to treating the whole string as a host with no derived
// counts, so the scorer still gets something to chew on.
func ExtractURLFeatures(raw string) URLFeatures {
	f := URLFeatures{Raw: raw}

	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err == nil && u.Host == "" && !strings.Contains(trimmed, "://") {
		// Scheme-less input like "paypal.com/login" parses as a path.
		u, err = url.Parse("http://" + trimmed)
	}
	if err != nil || u.Host == "" {
		f.Host = strings.ToLower(trimmed)
		f.ASCIIHost = f.Host
		return f
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	f.Host = host
	f.ASCIIHost = host
	if ascii, aerr := idna.Lookup.ToASCII(host); aerr == nil {
		f.ASCIIHost = ascii
	}

	if i := strings.LastIndexByte(host, '.'); i >= 0 {
		f.TLD = host[i:]
	}
	f.PathQuery = u.Path
	if u.RawQuery != "" {
		f.PathQuery += "?" + u.RawQuery
	}

	f.HostDots = strings.Count(host, ".")
	f.IsIPv4 = ipv4Re.MatchString(host)
	f.NonASCII = hasNonASCII(host)
	f.Hyphens = strings.Count(host, "-")
	f.HostLen = len(host)
	return f
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}
