package blocks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBlockIdentifier(t *testing.T) {
	root := filepath.Join("/", "home", "dev", "gr-mymod")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"yaml definition", "grc/mymod_foo.block.yml", "foo"},
		{"legacy definition", "grc/mymod_bar.xml", "bar"},
		{"public header", "include/gnuradio/mymod/foo.h", "foo"},
		{"api header excluded", "include/gnuradio/mymod/api.h", ""},
		{"umbrella header excluded", "include/gnuradio/mymod/mymod.h", ""},
		{"python impl", "python/mymod/foo.py", "foo"},
		{"python init excluded", "python/mymod/__init__.py", ""},
		{"impl source", "lib/foo_impl.cc", "foo"},
		{"plain impl source", "lib/foo.cc", "foo"},
		{"impl header", "lib/foo_impl.h", "foo"},
		{"cpp qa", "lib/qa_foo.cc", "foo"},
		{"cpp suffix test", "lib/foo_test.cc", "foo"},
		{"python qa", "python/mymod/qa_foo.py", "foo"},
		{"python prefix test", "python/mymod/test_foo.py", "foo"},
		{"python suffix test", "python/mymod/foo_test.py", "foo"},
		{"binding", "python/mymod/bindings/foo_python.cc", "foo"},
		{"unrecognized directory", "docs/foo.h", ""},
		{"unrecognized name", "grc/README.md", ""},
		{"foreign module prefix", "grc/other_foo.block.yml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBlockIdentifier(filepath.Join(root, filepath.FromSlash(tt.path)), root, "mymod")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBlockIdentifier_OutsideRoot(t *testing.T) {
	got := ResolveBlockIdentifier("/elsewhere/lib/foo_impl.cc", "/home/dev/gr-mymod", "mymod")
	assert.Equal(t, "", got)
}

func TestIsDefinitionName(t *testing.T) {
	assert.True(t, IsDefinitionName("mymod_foo.block.yml"))
	assert.True(t, IsDefinitionName("unprefixed.block.yml"))
	assert.False(t, IsDefinitionName("mymod_foo.xml"))
	assert.False(t, IsDefinitionName("foo.yml"))
}

func TestFacetRoleLabels(t *testing.T) {
	assert.Equal(t, "Block definition", FacetDefinition.String())
	assert.Equal(t, "C++ Tests", FacetCppTest.String())
	assert.Equal(t, "Python Tests", FacetPythonTest.String())
}
