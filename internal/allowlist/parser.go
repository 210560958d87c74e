package allowlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// RejectedLine records an allow-list line that failed domain validation.
type RejectedLine struct {
	Line   int    // 1-based line number in the source
	Text   string // literal line text as read
	Reason string // why validation rejected it
}

// List is the parsed allow-list: a sorted, deduplicated set of
// normalized apex domains plus diagnostics for rejected lines.
type List struct {
	Domains  []string // sorted lexicographically, unique
	Rejected []RejectedLine
}

// Loaded returns the number of valid domains in the list.
func (l *List) Loaded() int {
	return len(l.Domains)
}

// ParseFile reads an allow-list file and parses it. An unopenable path
// is an error; a readable file with no valid domains yields an empty
// (but usable) List.
func ParseFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening allow-list %q: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading allow-list %q: %w", path, err)
	}
	return list, nil
}

// Parse reads line-oriented allow-list text. Blank lines and lines
// starting with "#" are skipped; lines failing domain validation are
// recorded in Rejected, never aborting the parse. Accepted domains are
// lowercased, deduplicated, and sorted.
func Parse(r io.Reader) (*List, error) {
	list := &List{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		domain := NormalizeDomain(line)
		if err := ValidateDomain(domain); err != nil {
			list.Rejected = append(list.Rejected, RejectedLine{
				Line:   lineNum,
				Text:   raw,
				Reason: err.Error(),
			})
			continue
		}

		if _, dup := seen[domain]; dup {
			continue
		}
		seen[domain] = struct{}{}
		list.Domains = append(list.Domains, domain)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(list.Domains)
	return list, nil
}
