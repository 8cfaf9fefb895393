package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, source string) []Stmt {
	t.Helper()
	lexer := NewLexer([]byte(source))
	tokens := lexer.Lex()
	require.Empty(t, lexer.Errors())
	parser := NewParser(tokens)
	stmts := parser.Parse()
	require.Empty(t, parser.Errors())
	return stmts
}

func TestParserEmptyStructIsForwardDeclOnly(t *testing.T) {
	stmts := parseOK(t, "struct Opaque\nend\n")
	require.Len(t, stmts, 1)
	s, ok := stmts[0].(StructStmt)
	require.True(t, ok)
	assert.Equal(t, "Opaque", s.Name)
	assert.Empty(t, s.Fields)
}

func TestParserStructWithFields(t *testing.T) {
	stmts := parseOK(t, "struct Point\nx: int\ny: int\nend\n")
	require.Len(t, stmts, 1)
	s := stmts[0].(StructStmt)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "x", s.Fields[0].Name)
	assert.Equal(t, "y", s.Fields[1].Name)
}

func TestParserGenericFunction(t *testing.T) {
	stmts := parseOK(t, "func identity[T](x: T): T\nreturn x\nend\n")
	require.Len(t, stmts, 1)
	g, ok := stmts[0].(GenericStmt)
	require.True(t, ok)
	require.Len(t, g.Params, 1)
	assert.Equal(t, "T", g.Params[0].Name)
	fn, ok := g.Inner.(FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "identity", fn.Name)
}

func TestParserStructMethodForm(t *testing.T) {
	stmts := parseOK(t, "func Point.magnitude(self: Point*): int\nreturn 0\nend\n")
	require.Len(t, stmts, 1)
	sf, ok := stmts[0].(StructFunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "Point", sf.StructName)
	assert.Equal(t, "magnitude", sf.MethodName)
}

func TestParserExpressionBodiedFunction(t *testing.T) {
	stmts := parseOK(t, "func square(x: int): int => x * x\n")
	require.Len(t, stmts, 1)
	fn := stmts[0].(FunctionStmt)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(ReturnStmt)
	require.True(t, ok)
	_, isBinary := ret.Value.(BinaryExpr)
	assert.True(t, isBinary)
}

func TestParserElseIfNesting(t *testing.T) {
	stmts := parseOK(t, "func f(): int\nif a\nreturn 1\nelse if b\nreturn 2\nelse\nreturn 3\nend\nreturn 0\nend\n")
	fn := stmts[0].(FunctionStmt)
	require.Len(t, fn.Body, 2)
	outer := fn.Body[0].(IfStmt)
	require.Len(t, outer.Else, 1)
	inner, ok := outer.Else[0].(IfStmt)
	require.True(t, ok)
	require.Len(t, inner.Else, 1)
}

func TestParserAnnotatedStruct(t *testing.T) {
	stmts := parseOK(t, "@packed\nstruct Header\nsize: int\nend\n")
	require.Len(t, stmts, 1)
	a, ok := stmts[0].(AnnotatedStmt)
	require.True(t, ok)
	require.Len(t, a.Uses, 1)
	assert.Equal(t, "packed", a.Uses[0].Name)
	_, isStruct := a.Inner.(StructStmt)
	assert.True(t, isStruct)
}

func TestParserGenericCallVsIndexDisambiguation(t *testing.T) {
	stmts := parseOK(t, "var a: int = make[int](1)\nvar b: int = arr[0]\n")
	require.Len(t, stmts, 2)

	v1 := stmts[0].(VariableStmt)
	gc, ok := v1.Init.(GenericCallExpr)
	require.True(t, ok)
	assert.Equal(t, "make", gc.Name)
	require.Len(t, gc.TypeArgs, 1)

	v2 := stmts[1].(VariableStmt)
	idx, ok := v2.Init.(IndexExpr)
	require.True(t, ok)
	base, ok := idx.Base.(IdentifierExpr)
	require.True(t, ok)
	assert.Equal(t, "arr", base.Name)
}

func TestParserReservedKeywordIsSyntaxError(t *testing.T) {
	lexer := NewLexer([]byte("for\n"))
	tokens := lexer.Lex()
	require.Empty(t, lexer.Errors())
	parser := NewParser(tokens)
	parser.Parse()
	require.Len(t, parser.Errors(), 1)
	var syn SyntaxError
	require.ErrorAs(t, parser.Errors()[0], &syn)
}

func TestParserNeverMovesCursorBackward(t *testing.T) {
	lexer := NewLexer([]byte("struct ??? end\n"))
	tokens := lexer.Lex()
	parser := NewParser(tokens)
	lastPos := 0
	_ = parser.Parse()
	assert.GreaterOrEqual(t, parser.pos, lastPos)
}
