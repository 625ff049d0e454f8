package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/testutil"
)

func TestDiscover_AtRoot(t *testing.T) {
	root := testutil.NewModule(t, "howto")

	proj, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, root, proj.Root)
	assert.Equal(t, "howto", proj.ModuleName)
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	root := testutil.NewModule(t, "howto")
	sub := filepath.Join(root, "lib")

	proj, err := Discover(sub)
	require.NoError(t, err)
	assert.Equal(t, root, proj.Root)
	assert.Equal(t, "howto", proj.ModuleName)
}

func TestDiscover_NoModule(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrNoProject))
}

func TestModuleNameFromDir(t *testing.T) {
	name, ok := ModuleNameFromDir("/home/dev/gr-satellites")
	assert.True(t, ok)
	assert.Equal(t, "satellites", name)

	name, ok = ModuleNameFromDir("/home/dev/my-checkout")
	assert.False(t, ok)
	assert.Equal(t, "my-checkout", name)
}

func TestIsModuleRoot(t *testing.T) {
	root := testutil.NewModule(t, "howto")
	assert.True(t, IsModuleRoot(root))
	assert.False(t, IsModuleRoot(t.TempDir()))
}
