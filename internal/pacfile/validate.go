package pacfile

import (
	"strings"

	"github.com/dop251/goja/parser"
)

// CheckStatus is the tri-state outcome of a validation check. A skipped
// check is never reported as passed.
type CheckStatus int

const (
	CheckSkipped CheckStatus = iota
	CheckPassed
	CheckFailed
)

// String returns a human-readable status name.
func (s CheckStatus) String() string {
	switch s {
	case CheckPassed:
		return "passed"
	case CheckFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Report is the outcome of validating a rendered PAC document.
type Report struct {
	Structural CheckStatus
	Missing    []string // structural markers not found in the document
	Syntax     CheckStatus
	SyntaxErr  string // parser message when Syntax == CheckFailed
}

// OK reports whether the document can be trusted: structural checks
// passed and the syntax check did not fail (skipped is acceptable,
// merely reduced confidence).
func (r Report) OK() bool {
	return r.Structural == CheckPassed && r.Syntax != CheckFailed
}

// SyntaxChecker parses a PAC document as JavaScript and returns any
// syntax error.
type SyntaxChecker interface {
	Check(content string) error
}

// GojaChecker validates syntax with the embedded goja ECMAScript parser.
type GojaChecker struct{}

// Check parses the document without executing it.
func (GojaChecker) Check(content string) error {
	_, err := parser.ParseFile(nil, "proxy.pac", content, 0)
	return err
}

// Structural markers every trustworthy PAC document must carry. Each
// entry lists acceptable alternatives (double or single quoting).
var structuralChecks = []struct {
	name   string
	tokens []string
}{
	{"FindProxyForURL function", []string{"function FindProxyForURL"}},
	{"DIRECT return", []string{`"DIRECT"`, `'DIRECT'`}},
	{"loopback PROXY return", []string{`"PROXY 127.0.0.1`, `'PROXY 127.0.0.1`}},
}

// Validate runs the structural checks and, when checker is non-nil, the
// JavaScript syntax check. A nil checker records the syntax check as
// skipped. Validate never mutates the document or touches the
// filesystem.
func Validate(content string, checker SyntaxChecker) Report {
	rep := Report{Structural: CheckPassed, Syntax: CheckSkipped}

	for _, check := range structuralChecks {
		found := false
		for _, tok := range check.tokens {
			if strings.Contains(content, tok) {
				found = true
				break
			}
		}
		if !found {
			rep.Structural = CheckFailed
			rep.Missing = append(rep.Missing, check.name)
		}
	}

	if checker == nil {
		return rep
	}
	if err := checker.Check(content); err != nil {
		rep.Syntax = CheckFailed
		rep.SyntaxErr = err.Error()
	} else {
		rep.Syntax = CheckPassed
	}
	return rep
}
