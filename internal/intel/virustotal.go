package intel

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

// pointsPerVendor converts the count of vendors that flagged a URL into a
// score contribution.
const pointsPerVendor = 20

// VirusTotal implements ReputationLookup over the VirusTotal v3 URL API.
type VirusTotal struct {
	baseURL          string
	apiKey           string
	client           *http.Client
	maxResponseBytes int64
}

// NewVirusTotal creates a VirusTotal lookup client. baseURL is overridable
// for tests; empty means the public API.
func NewVirusTotal(baseURL, apiKey string, timeout time.Duration) *VirusTotal {
	if baseURL == "" {
		baseURL = "https://www.virustotal.com/api/v3"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VirusTotal{
		baseURL:          baseURL,
		apiKey:           apiKey,
		maxResponseBytes: 1 << 20,
		client:           &http.Client{Timeout: timeout},
	}
}

func (v *VirusTotal) Name() string { return "virustotal" }

type vtURLResponse struct {
	Data struct {
		Attributes struct {
			Title             string `json:"title"`
			LastAnalysisStats struct {
				Malicious int `json:"malicious"`
			} `json:"last_analysis_stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// LookupURL fetches the existing analysis report for rawURL. A URL that
// VirusTotal has never seen comes back 404 and is treated as unavailable
// rather than submitted for a fresh scan; bounded latency wins.
func (v *VirusTotal) LookupURL(ctx context.Context, rawURL string) (*Report, error) {
	id := base64.RawURLEncoding.EncodeToString([]byte(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/urls/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("create virustotal request: %w", err)
	}
	req.Header.Set("x-apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call virustotal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("virustotal status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, v.maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read virustotal response: %w", err)
	}

	var vt vtURLResponse
	if err := json.Unmarshal(body, &vt); err != nil {
		return nil, fmt.Errorf("decode virustotal response: %w", err)
	}

	malicious := vt.Data.Attributes.LastAnalysisStats.Malicious
	rep := &Report{Score: verdict.Clamp(malicious * pointsPerVendor)}
	if malicious > 0 {
		rep.Flags = []string{fmt.Sprintf("%d vendors flagged as malicious", malicious)}
		rep.Detail = vt.Data.Attributes.Title
		if rep.Detail == "" {
			rep.Detail = "Flagged by URL reputation vendors."
		}
	}
	return rep, nil
}
