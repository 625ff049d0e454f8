package blocks

import (
	"fmt"
	"regexp"
)

// ResolutionKind classifies the outcome of resolving a user-supplied name
// against the inventory.
type ResolutionKind int

const (
	// ResolutionEmpty means no candidate was supplied.
	ResolutionEmpty ResolutionKind = iota

	// ResolutionExact means the candidate equals one existing identifier.
	ResolutionExact

	// ResolutionPattern means the candidate was interpreted as a regular
	// expression and filtered the inventory.
	ResolutionPattern
)

// Resolution is the outcome of Resolve. For ResolutionExact, Matches holds
// the single identifier; for ResolutionPattern it holds the (possibly empty)
// matching subset of the inventory.
type Resolution struct {
	Kind    ResolutionKind
	Matches []string
}

// Block returns the single resolved identifier for an exact resolution and
// "" otherwise.
func (r Resolution) Block() string {
	if r.Kind == ResolutionExact {
		return r.Matches[0]
	}
	return ""
}

// Resolve decides whether candidate denotes exactly one existing block or a
// set of blocks. An exact identifier match always wins, even when the
// candidate would also match other identifiers as a regular expression.
// Otherwise the candidate is treated as an unanchored regular expression
// (a typed fragment acts as a filter) over the inventory.
func Resolve(candidate string, inventory []string) (Resolution, error) {
	if candidate == "" {
		return Resolution{Kind: ResolutionEmpty}, nil
	}

	for _, id := range inventory {
		if id == candidate {
			return Resolution{Kind: ResolutionExact, Matches: []string{id}}, nil
		}
	}

	matches, err := Match(candidate, inventory)
	if err != nil {
		return Resolution{}, fmt.Errorf("%q is neither a known block nor a valid pattern: %w", candidate, err)
	}
	return Resolution{Kind: ResolutionPattern, Matches: matches}, nil
}

// Match filters the inventory by pattern, interpreted as an unanchored
// regular expression. Unlike Resolve it never short-circuits on an exact
// identifier, so an identifier that prefixes another still shows both.
func Match(pattern string, inventory []string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, id := range inventory {
		if re.MatchString(id) {
			matches = append(matches, id)
		}
	}
	return matches, nil
}
