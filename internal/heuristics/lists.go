package heuristics

// Lists is the rule data the scorers are built from. It is assembled once
// at construction and never mutated; tests substitute smaller fixtures.
type Lists struct {
	// Brands are known names compared against host labels for typosquat
	// detection. This is not an allowlist: matching a brand plus a
	// distortion signal raises risk, it never lowers it.
	Brands []string

	// URLKeywords are scanned over the whole lower-cased URL. Every hit
	// contributes independently.
	URLKeywords []string

	// EmailKeywords are phishing markers scanned over email text.
	EmailKeywords []string

	// SuspiciousTLDs are host suffixes with a high abuse rate.
	SuspiciousTLDs []string

	// Shorteners are hosts of known URL shortening services.
	Shorteners []string
}

// DefaultLists returns the production rule data.
func DefaultLists() Lists {
	return Lists{
		Brands: []string{
			"paypal", "amazon", "apple", "google", "microsoft",
			"netflix", "facebook", "instagram", "whatsapp",
			"binance", "coinbase", "metamask",
			"chase", "wellsfargo", "ebay",
		},
		URLKeywords: []string{
			"login", "signin", "verify", "secure", "account",
			"update", "confirm", "banking", "wallet",
			"free", "claim", "bonus", "gift", "prize", "password",
		},
		EmailKeywords: []string{
			"urgent", "verify", "suspend", "bank", "password",
			"login", "winner", "click here", "act now",
			"confirm your", "unusual activity",
		},
		SuspiciousTLDs: []string{
			".xyz", ".top", ".tk", ".ml", ".ga", ".cf", ".gq",
			".icu", ".rest", ".work", ".loan", ".click",
		},
		Shorteners: []string{
			"bit.ly", "tinyurl.com", "goo.gl", "t.co", "is.gd",
			"ow.ly", "buff.ly", "cutt.ly", "rb.gy",
		},
	}
}
