package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileOK(t *testing.T, source string) string {
	t.Helper()
	result := Compile([]byte(source))
	require.Empty(t, result.Errors)
	return result.Output
}

func TestCodegenPrimitiveFunction(t *testing.T) {
	out := compileOK(t, "func add(a: int, b: int): int\nreturn a + b\nend\n")
	assert.Contains(t, out, "int add(int a, int b) {")
	assert.Contains(t, out, "return a + b;")
}

func TestCodegenStructCompoundLiteralConstruction(t *testing.T) {
	out := compileOK(t, "struct Point\nx: int\ny: int\nend\nfunc make(): Point\nreturn Point(1, 2)\nend\n")
	assert.Contains(t, out, "struct Point {")
	assert.Contains(t, out, "return &(struct Point){1, 2};")
}

func TestCodegenEnumValueTable(t *testing.T) {
	out := compileOK(t, "enum Color: int\nRed = 0\nGreen = 1\nend\n")
	assert.Contains(t, out, "enum Color {")
	assert.Contains(t, out, "Red,\nGreen,\n")
	assert.Contains(t, out, "static int const __Color_values[] = {")
	assert.Contains(t, out, "[Red] = 0,")
	assert.Contains(t, out, "[Green] = 1,")
}

func TestCodegenGenericFunctionDefineUndef(t *testing.T) {
	out := compileOK(t, "func identity[T](x: T): T\nreturn x\nend\nfunc caller(): int\nreturn identity[int](5)\nend\n")
	assert.Contains(t, out, "#define T\n")
	assert.Contains(t, out, "#undef T\n")
	// The function definition's own #undef comes right after its body,
	// and the call site's #define/#undef pair wraps the call.
	assert.Contains(t, out, "#define T int\n")
	assert.Contains(t, out, "identity(5)")
}

func TestCodegenAnnotationOnStruct(t *testing.T) {
	out := compileOK(t, "annotation packed\nend\n@packed\nstruct Header\nsize: int\nend\n")
	assert.Contains(t, out, "#define packed() __attribute__((annotate(\"packed\")))")
	assert.Contains(t, out, "struct Header {")
	// The closing brace must survive the splice: only the trailing
	// ";\n" is stripped before the annotation call is appended.
	assert.Contains(t, out, "} packed();")
}

func TestCodegenImportMapping(t *testing.T) {
	out := compileOK(t, "import \"std/stdio.h\"\nimport \"myheader.h\"\n")
	assert.Contains(t, out, "#include <stdio.h>\n")
	assert.Contains(t, out, "#include \"myheader.h\"\n")
}

func TestCodegenUnknownTypeIsTypeError(t *testing.T) {
	result := Compile([]byte("func f(): Mystery\nreturn 0\nend\n"))
	require.Len(t, result.Errors, 1)
	var typeErr TypeError
	require.ErrorAs(t, result.Errors[0], &typeErr)
}

func TestCodegenStructConstructorAndForwardDeclsAreEmitted(t *testing.T) {
	source := "struct Counter\nconstructor: func(int): Counter*\nincrement: func(Counter*): void\nend\n" +
		"func Counter.increment(self: Counter*): void\nreturn 0\nend\n" +
		"func make(): Counter*\nreturn new Counter(0)\nend\n"
	out := compileOK(t, source)
	assert.Contains(t, out, "__Counter_constructor(")
	assert.Contains(t, out, "__Counter_increment(")
}

func TestCodegenNewExpressionCallsConstructor(t *testing.T) {
	source := "struct Counter\nconstructor: func(int): Counter*\nend\n" +
		"func make(): Counter*\nreturn new Counter(0)\nend\n"
	out := compileOK(t, source)
	assert.Contains(t, out, "return __Counter_constructor(0);")
}

func TestCodegenToUndefDrainsAfterEachTopLevelStatement(t *testing.T) {
	codegen := NewCodegen()
	stmts := parseOK(t, "func identity[T](x: T): T\nreturn x\nend\nfunc caller(): int\nreturn identity[int](5)\nend\n")
	codegen.Generate(stmts)
	assert.Empty(t, codegen.toUndef)
}
