package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/testutil"
)

const squareDefinition = `id: mymod_square_ff
label: Square ff
category: '[mymod]'
templates:
  imports: from gnuradio import mymod
  make: mymod.square_ff(${scale})
parameters:
- id: scale
  label: Scale
  dtype: float
  default: '1.0'
inputs:
- label: in
  domain: stream
  dtype: float
outputs:
- label: out
  domain: stream
  dtype: float
file_format: 1
`

func TestLoadDefinition(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.WriteFile(t, root, "grc/mymod_square_ff.block.yml", squareDefinition)

	def, err := LoadDefinition(root, "mymod", "square_ff")
	require.NoError(t, err)

	assert.Equal(t, "mymod_square_ff", def.ID)
	assert.Equal(t, "Square ff", def.Label)
	assert.Equal(t, "[mymod]", def.Category)
	assert.Equal(t, "mymod.square_ff(${scale})", def.Templates.Make)
	require.Len(t, def.Parameters, 1)
	assert.Equal(t, "scale", def.Parameters[0].ID)
	assert.Equal(t, "float", def.Parameters[0].Dtype)
	assert.Len(t, def.Inputs, 1)
	assert.Len(t, def.Outputs, 1)
	assert.Equal(t, 1, def.FileFormat)
}

func TestLoadDefinition_Missing(t *testing.T) {
	root := testutil.NewModule(t, "mymod")

	_, err := LoadDefinition(root, "mymod", "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerrors.ErrNotFound))
}

func TestLoadDefinition_Malformed(t *testing.T) {
	root := testutil.NewModule(t, "mymod")
	testutil.WriteFile(t, root, "grc/mymod_bad.block.yml", "id: [unclosed\n")

	_, err := LoadDefinition(root, "mymod", "bad")
	assert.Error(t, err)
}
