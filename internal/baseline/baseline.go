// Package baseline fetches Zscaler's pre-selected destinations list and
// exposes it as a set of apex domains for reconciliation.
package baseline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/p4th0r/pacbuild/internal/allowlist"
)

// DefaultURL is the published location of the pre-selected destinations
// list (drdb.txt).
const DefaultURL = "https://dll7xpq8c5ev0.cloudfront.net/drdb.txt"

// Set holds the apex domains covered by the baseline policy. A wildcard
// entry *.example.com covers its apex, so it is stored as example.com.
type Set struct {
	domains map[string]struct{}
}

// Contains reports whether the normalized domain is covered by the
// baseline. A nil Set (baseline unavailable) contains nothing.
func (s *Set) Contains(domain string) bool {
	if s == nil {
		return false
	}
	_, ok := s.domains[domain]
	return ok
}

// Len returns the number of apex domains in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.domains)
}

// FetchConfig controls the single baseline retrieval attempt.
type FetchConfig struct {
	URL       string        // defaults to DefaultURL
	Timeout   time.Duration // bound on the whole request; 0 means no bound beyond ctx
	UserAgent string        // optional User-Agent header
}

// Fetch retrieves and parses the baseline list. One attempt, no retries,
// no caching. Any failure (network, non-2xx status, read error) returns
// an error; callers treat that as "baseline unavailable" and carry on.
func Fetch(ctx context.Context, cfg FetchConfig) (*Set, error) {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building baseline request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching baseline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching baseline: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading baseline response: %w", err)
	}

	return ParseSet(string(body)), nil
}

// ParseSet parses baseline text: one entry per line, blank lines and
// "#" comments skipped, "*.apex" reduced to "apex". Lines that are not
// valid domains are ignored; the baseline is not this tool's input to
// lint.
func ParseSet(text string) *Set {
	s := &Set{domains: make(map[string]struct{})}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(strings.ToLower(line), "*.")
		domain := allowlist.NormalizeDomain(line)
		if allowlist.ValidateDomain(domain) != nil {
			continue
		}
		s.domains[domain] = struct{}{}
	}
	return s
}
