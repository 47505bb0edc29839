// Package selector resolves bulk-operation patterns against artifact names.
package selector

import (
	"fmt"
	"regexp"
)

// Wildcard matches every name. It is a literal token, not glob syntax.
const Wildcard = "*"

// PatternError indicates a pattern that is not a valid regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// Compile parses a pattern. Anything but Wildcard is a regular expression
// that must match the whole name, so a literal name selects only itself.
func Compile(pattern string) (*Matcher, error) {
	if pattern == Wildcard {
		return &Matcher{pattern: pattern}, nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string { return m.pattern }

// Match reports whether name is selected.
func (m *Matcher) Match(name string) bool {
	return m.re == nil || m.re.MatchString(name)
}

// Filter returns the selected names, preserving input order.
func (m *Matcher) Filter(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Resolve returns the names selected by pattern. An empty name set always
// resolves to an empty result.
func Resolve(pattern string, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return m.Filter(names), nil
}
