package blocks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grmod/cli/internal/testutil"
)

func TestListAllBlocks_UnionAcrossFacets(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_foo.block.yml",
		"grc/mymod_bar.xml",
		"include/gnuradio/mymod/baz.h",
		"python/mymod/qux.py",
		"lib/quux_impl.cc",
	)

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz", "foo", "quux", "qux"}, all)
}

func TestListAllBlocks_DefinitionScenario(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_foo.block.yml",
		"grc/mymod_bar.xml",
	)

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	assert.Contains(t, all, "foo")
	assert.Contains(t, all, "bar")

	legacy, err := ListBlocksWithLegacyDefinition(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"bar"}, legacy)
}

func TestListBlocksWithHeader_ExcludesUmbrellaHeaders(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"include/gnuradio/mymod/foo.h",
		"include/gnuradio/mymod/api.h",
		"include/gnuradio/mymod/mymod.h",
	)

	headers, err := ListBlocksWithHeader(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, headers)
}

func TestListBlocksWithImplementation_ExcludesTests(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"lib/foo_impl.cc",
		"lib/qa_foo.cc",
		"lib/test_runner.cc",
	)

	impl, err := ListBlocksWithImplementation(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, impl)
}

func TestListAllBlocks_ExcludesPythonInitAndTests(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"python/mymod/__init__.py",
		"python/mymod/foo.py",
		"python/mymod/qa_foo.py",
	)

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, all)
}

func TestListAllBlocks_MissingSubdirsAreEmpty(t *testing.T) {
	// Root with no facet directories at all.
	root := t.TempDir()

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListAllBlocks_MissingRootIsAnError(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := ListAllBlocks(root, "mymod")
	assert.Error(t, err)
}

func TestListAllBlocks_IgnoresForeignModulePrefix(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/othermod_foo.block.yml",
		"grc/mymod_bar.block.yml",
	)

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	assert.Equal(t, []string{"bar"}, all)
}

// Every inventoried block must correlate to at least one file; the
// inventory and the correlator share one pattern table.
func TestInventoryCorrelatorConsistency(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.Touch(t, root,
		"grc/mymod_foo.block.yml",
		"grc/mymod_bar.xml",
		"include/gnuradio/mymod/foo.h",
		"lib/foo_impl.cc",
		"lib/foo_impl.h",
		"lib/qa_foo.cc",
		"python/mymod/baz.py",
		"python/mymod/bindings/foo_python.cc",
	)

	all, err := ListAllBlocks(root, "mymod")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, id := range all {
		files, err := CorrelateFiles(root, "mymod", id)
		require.NoError(t, err)
		assert.NotEmptyf(t, files, "block %q is inventoried but correlates to no files", id)
	}
}
