// Package allowlist provides parsing and validation of the domain
// allow-list that drives PAC generation.
package allowlist

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

const (
	maxDomainLen = 253
	maxLabelLen  = 63
)

// NormalizeDomain lowercases a domain and strips a trailing dot.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}

// ValidateDomain checks that a normalized domain is a plausible apex
// hostname: dotted, lowercase alphanumerics and hyphens only, labels
// within DNS length bounds, alphabetic TLD. The input is expected to
// have passed through NormalizeDomain first.
func ValidateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("empty domain")
	}
	if strings.Contains(domain, "://") {
		return fmt.Errorf("contains a URL scheme")
	}
	if strings.ContainsAny(domain, " \t") {
		return fmt.Errorf("contains whitespace")
	}
	if len(domain) > maxDomainLen {
		return fmt.Errorf("domain too long (%d chars, max %d)", len(domain), maxDomainLen)
	}
	if _, ok := dns.IsDomainName(domain); !ok {
		return fmt.Errorf("not a valid DNS name")
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return fmt.Errorf("missing a dot (apex domains only)")
	}
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("empty label")
		}
		if len(label) > maxLabelLen {
			return fmt.Errorf("label %q too long (%d chars, max %d)", label, len(label), maxLabelLen)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("label %q starts or ends with a hyphen", label)
		}
		for _, c := range label {
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
				return fmt.Errorf("invalid character %q in label %q", c, label)
			}
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return fmt.Errorf("top-level domain %q too short", tld)
	}
	for _, c := range tld {
		if c < 'a' || c > 'z' {
			return fmt.Errorf("top-level domain %q must be alphabetic", tld)
		}
	}

	return nil
}
