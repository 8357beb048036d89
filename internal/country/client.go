// Package country implements the REST Countries lookup client.
package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// DefaultBaseURL is the public REST Countries endpoint.
	DefaultBaseURL = "https://restcountries.com/v3.1"

	// DefaultTimeout bounds a single lookup so a stalled upstream cannot
	// block the interaction indefinitely.
	DefaultTimeout = 10 * time.Second

	// lookupFields restricts the response to the fields the summary renders.
	lookupFields = "name,capital,population,region,subregion,area,languages"
)

// Client fetches country records by name and formats them as a human-readable
// summary. It holds no state beyond the HTTP client; repeated queries for the
// same country re-fetch every time.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a lookup client. Empty baseURL and zero timeout select
// the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// record mirrors the subset of the REST Countries payload the summary uses.
type record struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string          `json:"capital"`
	Population int64             `json:"population"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion"`
	Area       float64           `json:"area"`
	Languages  map[string]string `json:"languages"`
}

// FetchCountrySummary issues a single GET for the named country and renders
// the first matching record as a multi-line summary. Callers must pre-normalize
// the name; no case or accent normalization happens here. Any failure
// (transport, non-2xx status, empty result, malformed JSON) collapses into a
// single error carrying the underlying cause. No retries, no caching.
func (c *Client) FetchCountrySummary(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fields=%s", c.baseURL, url.PathEscape(name), lookupFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build country request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch country %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch country %q: unexpected status %d", name, resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return "", fmt.Errorf("decode country response for %q: %w", name, err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("fetch country %q: empty result", name)
	}

	return formatSummary(&records[0]), nil
}

// formatSummary substitutes each field into the fixed summary template,
// defaulting missing values to "N/A" / 0.
func formatSummary(r *record) string {
	capital := "N/A"
	if len(r.Capital) > 0 && r.Capital[0] != "" {
		capital = r.Capital[0]
	}

	region := r.Region
	if region == "" {
		region = "N/A"
	}
	subregion := r.Subregion
	if subregion == "" {
		subregion = "N/A"
	}

	languages := "N/A"
	if len(r.Languages) > 0 {
		// Map iteration order is random; sort by key so the summary is stable.
		keys := make([]string, 0, len(r.Languages))
		for k := range r.Languages {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, r.Languages[k])
		}
		languages = strings.Join(names, ", ")
	}

	return fmt.Sprintf(`📍 **%s**
🏛️ **Capital:** %s
👥 **População:** %s habitantes
🌍 **Região:** %s (%s)
📏 **Área:** %s km²
🗣️ **Idiomas:** %s`,
		r.Name.Common,
		capital,
		humanize.Comma(r.Population),
		region, subregion,
		humanize.Commaf(r.Area),
		languages,
	)
}
