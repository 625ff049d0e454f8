package blocks

import (
	"fmt"
	"regexp"
	"strings"
)

// Verdict grades a candidate block name.
type Verdict int

const (
	// VerdictValid accepts the name as-is.
	VerdictValid Verdict = iota

	// VerdictWarning accepts the name but flags it to the user.
	VerdictWarning

	// VerdictError rejects the name.
	VerdictError
)

// Validation is the outcome of ValidateNewBlockName.
type Validation struct {
	Verdict Verdict
	Message string
}

// blockNameRe is the charset enforced for new block names. Existing blocks
// are inventoried with whatever names occur on disk; only creation and
// rename go through this predicate.
var blockNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// minNameLen is the length below which a name draws a non-blocking warning.
const minNameLen = 3

// ValidateNewBlockName grades a candidate name for a new block against the
// current inventory. Pure and idempotent; safe to call on every keystroke of
// a name prompt.
func ValidateNewBlockName(candidate string, existing []string) Validation {
	name := strings.TrimSpace(candidate)

	if name == "" {
		return Validation{Verdict: VerdictError, Message: "Name cannot be empty"}
	}
	if !blockNameRe.MatchString(name) {
		return Validation{
			Verdict: VerdictError,
			Message: "Name may only contain letters, digits, and underscores",
		}
	}
	for _, id := range existing {
		if id == name {
			return Validation{
				Verdict: VerdictError,
				Message: fmt.Sprintf("Block %q is already present in the module", name),
			}
		}
	}
	if len(name) < minNameLen {
		return Validation{
			Verdict: VerdictWarning,
			Message: fmt.Sprintf("Name %q is very short", name),
		}
	}
	return Validation{Verdict: VerdictValid}
}
