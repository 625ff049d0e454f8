package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/project"
	"github.com/grmod/cli/internal/testutil"
)

func testProject(t *testing.T) *project.Project {
	t.Helper()
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_foo.block.yml",
		"grc/mymod_bar.block.yml",
	)
	return &project.Project{Root: root, ModuleName: "mymod"}
}

func TestResolveTarget_Exact(t *testing.T) {
	proj := testProject(t)

	res, err := resolveTarget(proj, "foo", "Pick a block")
	require.NoError(t, err)
	assert.Equal(t, blocks.ResolutionExact, res.Kind)
	assert.Equal(t, "foo", res.Block())
}

func TestResolveTarget_PatternNoMatch(t *testing.T) {
	proj := testProject(t)

	_, err := resolveTarget(proj, "nosuch.*", "Pick a block")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrNotFound))
}

func TestResolveTarget_EmptyArgOffTTY(t *testing.T) {
	proj := testProject(t)

	// Test runs are never attached to a terminal, so an empty argument
	// cannot fall back to the picker.
	_, err := resolveTarget(proj, "", "Pick a block")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrValidation))
}

func TestResolveTarget_EmptyInventory(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	proj := &project.Project{Root: root, ModuleName: "mymod"}

	_, err := resolveTarget(proj, "foo", "Pick a block")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "contains no blocks")
}

func TestResolveTarget_InvalidPattern(t *testing.T) {
	proj := testProject(t)

	_, err := resolveTarget(proj, "fo[o", "Pick a block")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrValidation))
}

func TestTargetArgument(t *testing.T) {
	exact := blocks.Resolution{Kind: blocks.ResolutionExact, Matches: []string{"foo"}}
	assert.Equal(t, "foo", targetArgument(exact))

	pattern := blocks.Resolution{Kind: blocks.ResolutionPattern, Matches: []string{"foo", "bar"}}
	assert.Equal(t, "^(foo|bar)$", targetArgument(pattern))
}
