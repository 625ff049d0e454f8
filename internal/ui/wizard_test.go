package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_CppFlow(t *testing.T) {
	w := NewWizard([]string{"square_ff"})

	require.NoError(t, w.Apply("multiply_const"))
	assert.Equal(t, StepType, w.Step)

	require.NoError(t, w.Apply("sync"))
	require.NoError(t, w.Apply("cpp"))
	require.NoError(t, w.Apply("float scale, int vlen"))
	assert.Equal(t, StepCppQA, w.Step)

	require.NoError(t, w.Apply("yes"))
	require.NoError(t, w.Apply("no"))

	assert.True(t, w.Done())
	assert.Equal(t, "multiply_const", w.Form.Name)
	assert.Equal(t, "sync", w.Form.BlockType)
	assert.Equal(t, "cpp", w.Form.Language)
	assert.Equal(t, []string{"float scale", "int vlen"}, w.Form.Arguments)
	assert.True(t, w.Form.CppQA)
	assert.False(t, w.Form.PythonQA)
}

// Python blocks have no C++ side to test, so the wizard skips the C++ QA
// step.
func TestWizard_PythonFlowSkipsCppQA(t *testing.T) {
	w := NewWizard(nil)

	require.NoError(t, w.Apply("chunker"))
	require.NoError(t, w.Apply("general"))
	require.NoError(t, w.Apply("python"))
	require.NoError(t, w.Apply(""))
	assert.Equal(t, StepPythonQA, w.Step)

	require.NoError(t, w.Apply("y"))
	assert.True(t, w.Done())
	assert.False(t, w.Form.CppQA)
	assert.True(t, w.Form.PythonQA)
}

func TestWizard_RejectsBadInputInPlace(t *testing.T) {
	w := NewWizard([]string{"square_ff"})

	assert.Error(t, w.Apply(""))
	assert.Error(t, w.Apply("square_ff"))
	assert.Error(t, w.Apply("bad name"))
	assert.Equal(t, StepName, w.Step)

	require.NoError(t, w.Apply("good_name"))
	assert.Error(t, w.Apply("not_a_type"))
	assert.Equal(t, StepType, w.Step)
}

func TestWizard_EmptyArgumentsAllowed(t *testing.T) {
	w := NewWizard(nil)
	require.NoError(t, w.Apply("blk"))
	require.NoError(t, w.Apply("sink"))
	require.NoError(t, w.Apply("cpp"))
	require.NoError(t, w.Apply("  "))
	assert.Empty(t, w.Form.Arguments)
}

func TestWizard_CompleteWizardRejectsInput(t *testing.T) {
	w := NewWizard(nil)
	require.NoError(t, w.Apply("blk"))
	require.NoError(t, w.Apply("sink"))
	require.NoError(t, w.Apply("python"))
	require.NoError(t, w.Apply(""))
	require.NoError(t, w.Apply("no"))

	assert.True(t, w.Done())
	assert.Error(t, w.Apply("anything"))
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "name", StepName.String())
	assert.Equal(t, "done", StepDone.String())
}
