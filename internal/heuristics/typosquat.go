package heuristics

import "strings"

// leetPairs is the character substitution table for look-alike labels.
// Each pair applies in both directions.
var leetPairs = [][2]string{
	{"o", "0"},
	{"i", "1"},
	{"l", "1"},
	{"a", "@"},
	{"e", "3"},
	{"s", "5"},
	{"g", "9"},
	{"b", "8"},
}

// isTyposquat reports whether host (lower-cased, www-stripped) looks like
// an impersonation of brand. It compares the host's leftmost label against
// the brand with three independent tests, any of which suffices:
//
//  1. a single substitution from leetPairs applied to the brand reproduces
//     the label exactly ("paypa1" for "paypal");
//  2. label and brand have equal length and differ in at most two
//     positions (Hamming, not full edit distance; insertions and
//     deletions are intentionally not caught here);
//  3. the brand occurs inside a longer label ("paypal-secure").
//
// The brand's canonical domain itself is never a match. Pure string work,
// no network.
func isTyposquat(host, brand string) bool {
	if host == brand+".com" {
		return false
	}

	label := host
	if i := strings.IndexByte(host, '.'); i >= 0 {
		label = host[:i]
	}

	for _, p := range leetPairs {
		if strings.ReplaceAll(brand, p[0], p[1]) == label {
			return true
		}
		if strings.ReplaceAll(brand, p[1], p[0]) == label {
			return true
		}
	}

	if len(label) == len(brand) && hammingAtMost(label, brand, 2) {
		return true
	}

	if label != brand && strings.Contains(label, brand) {
		return true
	}

	return false
}

// hammingAtMost reports whether two equal-length strings differ in at most
// max byte positions.
func hammingAtMost(a, b string, max int) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > max {
				return false
			}
		}
	}
	return true
}
