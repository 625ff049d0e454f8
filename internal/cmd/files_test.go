package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grmod/cli/internal/testutil"
)

func TestFiles_TreeOutput(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_foo.block.yml",
		"lib/foo_impl.cc",
		"lib/qa_foo.cc",
	)

	out, err := execute(t, "files", "--dir", root, "foo")
	require.NoError(t, err)

	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "mymod_foo.block.yml")
	assert.Contains(t, out, "foo_impl.cc")
	assert.Contains(t, out, "qa_foo.cc")
	assert.Contains(t, out, "Implementation source")
	assert.Contains(t, out, "C++ Tests")
}

func TestFiles_PatternSelectsSeveral(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_square_ff.block.yml",
		"grc/mymod_square2_ff.block.yml",
		"grc/mymod_agc.block.yml",
	)

	out, err := execute(t, "files", "--dir", root, "square")
	require.NoError(t, err)
	assert.Contains(t, out, "mymod_square_ff.block.yml")
	assert.Contains(t, out, "mymod_square2_ff.block.yml")
	assert.NotContains(t, out, "mymod_agc.block.yml")
}

func TestFiles_UnknownBlock(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root, "grc/mymod_foo.block.yml")

	_, err := execute(t, "files", "--dir", root, "nonexistent")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestFiles_NoArgumentOffTTY(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root, "grc/mymod_foo.block.yml")

	// Without a terminal the picker cannot open.
	_, err := execute(t, "files", "--dir", root)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
