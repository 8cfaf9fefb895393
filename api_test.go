package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileHaltsAtFirstFailingStage(t *testing.T) {
	t.Run("lexer errors suppress parser and codegen", func(t *testing.T) {
		result := Compile([]byte("var x = `\n"))
		require.NotEmpty(t, result.Errors)
		assert.Empty(t, result.Output)
	})

	t.Run("parser errors suppress codegen", func(t *testing.T) {
		result := Compile([]byte("struct\n"))
		require.NotEmpty(t, result.Errors)
		assert.Empty(t, result.Output)
	})

	t.Run("clean program produces output and no errors", func(t *testing.T) {
		result := Compile([]byte("func main(): int\nreturn 0\nend\n"))
		require.Empty(t, result.Errors)
		assert.Contains(t, result.Output, "int main() {")
	})
}

func TestResultDiagnosticsUsesStoredSource(t *testing.T) {
	result := Compile([]byte("func f(): Mystery\nreturn 0\nend\n"))
	require.Len(t, result.Errors, 1)
	diags := result.Diagnostics("f.sl")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "[f.sl:1:")
	assert.Contains(t, diags[0], "TypeError")
}
