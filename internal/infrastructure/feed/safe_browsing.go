package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

// Compile-time interface check.
var _ port.ReputationFeed = (*SafeBrowsingClient)(nil)

// DefaultSafeBrowsingURL is the Safe Browsing v4 lookup endpoint.
const DefaultSafeBrowsingURL = "https://safebrowsing.googleapis.com/v4/threatMatches:find"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

var defaultThreatTypes = []string{
	"MALWARE",
	"SOCIAL_ENGINEERING",
	"UNWANTED_SOFTWARE",
	"POTENTIALLY_HARMFUL_APPLICATION",
}

// SafeBrowsingClient implements port.ReputationFeed using the Google Safe
// Browsing Lookup API.
type SafeBrowsingClient struct {
	client        *http.Client
	apiKey        string
	endpoint      string
	clientID      string
	clientVersion string
}

// NewSafeBrowsingClient creates a client. An empty endpoint uses DefaultSafeBrowsingURL.
func NewSafeBrowsingClient(apiKey, endpoint, clientVersion string) *SafeBrowsingClient {
	if endpoint == "" {
		endpoint = DefaultSafeBrowsingURL
	}
	return &SafeBrowsingClient{
		apiKey:        apiKey,
		endpoint:      endpoint,
		clientID:      "phishguard",
		clientVersion: clientVersion,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type threatEntry struct {
	URL string `json:"url"`
}

type findRequest struct {
	Client struct {
		ClientID      string `json:"clientId"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
	ThreatInfo struct {
		ThreatTypes      []string      `json:"threatTypes"`
		PlatformTypes    []string      `json:"platformTypes"`
		ThreatEntryTypes []string      `json:"threatEntryTypes"`
		ThreatEntries    []threatEntry `json:"threatEntries"`
	} `json:"threatInfo"`
}

type findResponse struct {
	Matches []struct {
		ThreatType   string      `json:"threatType"`
		PlatformType string      `json:"platformType"`
		Threat       threatEntry `json:"threat"`
	} `json:"matches"`
}

// Lookup returns the threat type of the first match for rawURL, or "" when
// the URL is not listed.
func (c *SafeBrowsingClient) Lookup(ctx context.Context, rawURL string) (string, error) {
	var body findRequest
	body.Client.ClientID = c.clientID
	body.Client.ClientVersion = c.clientVersion
	body.ThreatInfo.ThreatTypes = defaultThreatTypes
	body.ThreatInfo.PlatformTypes = []string{"ANY_PLATFORM"}
	body.ThreatInfo.ThreatEntryTypes = []string{"URL"}
	body.ThreatInfo.ThreatEntries = []threatEntry{{URL: rawURL}}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("safe browsing request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("safe browsing API error (status %d): %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	var result findResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Matches) == 0 {
		return "", nil
	}
	return result.Matches[0].ThreatType, nil
}
