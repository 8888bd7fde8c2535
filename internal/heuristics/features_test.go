package heuristics

import "testing"

func TestExtractURLFeaturesBasic(t *testing.T) {
	f := ExtractURLFeatures("http://www.Example.COM/path?q=1")
	if f.Host != "example.com" {
		t.Fatalf("host = %q, want example.com", f.Host)
	}
	if f.TLD != ".com" {
		t.Fatalf("tld = %q, want .com", f.TLD)
	}
	if f.PathQuery != "/path?q=1" {
		t.Fatalf("pathquery = %q, want /path?q=1", f.PathQuery)
	}
	if f.IsIPv4 || f.NonASCII {
		t.Fatalf("unexpected boolean features: %+v", f)
	}
	if f.HostDots != 1 || f.HostLen != len("example.com") {
		t.Fatalf("unexpected counts: %+v", f)
	}
}

func TestExtractURLFeaturesSchemeless(t *testing.T) {
	f := ExtractURLFeatures("paypal.com/login")
	if f.Host != "paypal.com" {
		t.Fatalf("host = %q, want paypal.com", f.Host)
	}
	if f.PathQuery != "/login" {
		t.Fatalf("pathquery = %q, want /login", f.PathQuery)
	}
}

func TestExtractURLFeaturesIPHost(t *testing.T) {
	f := ExtractURLFeatures("http://192.168.1.1/login")
	if !f.IsIPv4 {
		t.Fatalf("expected IPv4 host, got %+v", f)
	}
	if f.Host != "192.168.1.1" {
		t.Fatalf("host = %q", f.Host)
	}
}

func TestExtractURLFeaturesNonASCII(t *testing.T) {
	f := ExtractURLFeatures("http://pаypal.com") // Cyrillic а
	if !f.NonASCII {
		t.Fatal("expected non-ASCII host to be detected")
	}
	if f.ASCIIHost == "" {
		t.Fatal("expected a punycode form for the host")
	}
}

func TestExtractURLFeaturesDegradesOnGarbage(t *testing.T) {
	raw := "::: not a url at all :::"
	f := ExtractURLFeatures(raw)
	if f.Host == "" {
		t.Fatal("degraded extraction must still carry the raw string as host")
	}
	if f.IsIPv4 || f.NonASCII || f.HostDots != 0 || f.Hyphens != 0 || f.HostLen != 0 {
		t.Fatalf("degraded extraction must zero all derived features, got %+v", f)
	}
}

func TestExtractURLFeaturesEmpty(t *testing.T) {
	f := ExtractURLFeatures("")
	if f.IsIPv4 || f.NonASCII || f.HostLen != 0 {
		t.Fatalf("empty input must produce empty features, got %+v", f)
	}
}
