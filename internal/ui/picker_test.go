package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Typing a query that equals one identifier must not hide identifiers the
// same query matches as a pattern.
func TestPickerRefilter_ExactQueryKeepsSiblings(t *testing.T) {
	m := newPickerModel("Pick a block", []string{"agc", "agc_cc", "square_ff"})

	m.input.SetValue("agc")
	m.refilter()
	assert.Equal(t, []string{"agc", "agc_cc"}, m.filtered)
}

func TestPickerRefilter_EmptyQueryShowsAll(t *testing.T) {
	all := []string{"agc", "square_ff"}
	m := newPickerModel("Pick a block", all)

	m.input.SetValue("")
	m.refilter()
	assert.Equal(t, all, m.filtered)
}

func TestPickerRefilter_InvalidPatternFallsBackToSubstring(t *testing.T) {
	m := newPickerModel("Pick a block", []string{"square_ff", "agc"})

	// An unclosed group is not a valid pattern; the picker degrades to a
	// literal substring filter instead of erroring out mid-keystroke.
	m.input.SetValue("square_ff(")
	m.refilter()
	assert.Empty(t, m.filtered)

	m.input.SetValue("square")
	m.refilter()
	assert.Equal(t, []string{"square_ff"}, m.filtered)
}

func TestPickerRefilter_CursorClampedToFilteredSet(t *testing.T) {
	m := newPickerModel("Pick a block", []string{"agc", "square_ff", "square2_ff"})
	m.cursor = 2

	m.input.SetValue("agc")
	m.refilter()
	assert.Equal(t, 0, m.cursor)
}
