package slc

import "strconv"

// Parser is a recursive-descent/Pratt parser over a token stream. It
// never aborts: syntax mistakes are accumulated as SyntaxErrors and
// parsing continues on a best-effort basis, matching the lexer's
// accumulate-don't-abort contract.
type Parser struct {
	tokens []Token
	pos    int
	errors []error
}

// NewParser returns a Parser ready to consume tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the SyntaxErrors accumulated while parsing.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) tokenAt(i int) Token {
	if i < 0 || i >= len(p.tokens) {
		last := p.tokens[len(p.tokens)-1]
		return Token{Kind: EndOfFile, Span: NewSpan(last.Span.End, last.Span.End)}
	}
	return p.tokens[i]
}

func (p *Parser) current() Token { return p.tokenAt(p.pos) }
func (p *Parser) peekAt(offset int) Token { return p.tokenAt(p.pos + offset) }

func (p *Parser) advance() Token {
	tok := p.current()
	if tok.Kind != EndOfFile {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind Kind) bool { return p.current().Kind == kind }

// expect consumes and returns the current token if it matches kind.
// On mismatch it accumulates a SyntaxError and returns a sentinel
// Error token *without* advancing — callers looping until a closing
// token must use syncIfStuck to guarantee forward progress (see
// SPEC_FULL.md Open Question 4).
func (p *Parser) expect(kind Kind) Token {
	cur := p.current()
	if cur.Kind == EndOfFile {
		p.errors = append(p.errors, SyntaxError{
			Message: "unexpected end of file, expected " + kind.String(),
			Span:    cur.Span,
		})
		return Token{Kind: TokError, Value: "unexpected end of file", Span: cur.Span}
	}
	if cur.Kind == kind {
		p.advance()
		return cur
	}
	p.errors = append(p.errors, SyntaxError{
		Message: "expected " + kind.String() + ", but got " + cur.Kind.String(),
		Span:    cur.Span,
	})
	return Token{Kind: TokError, Value: "expected " + kind.String() + ", but got " + cur.Kind.String(), Span: cur.Span}
}

// syncIfStuck guarantees a parsing loop makes forward progress: if
// the cursor hasn't moved since mark, it force-advances past the
// offending token so malformed input can't spin forever.
func (p *Parser) syncIfStuck(mark int) {
	if p.pos == mark && p.current().Kind != EndOfFile {
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the top-level
// statement list.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for p.current().Kind != EndOfFile {
		if p.current().Kind == Newline {
			p.advance()
			continue
		}
		mark := p.pos
		statements = append(statements, p.parseStatement())
		p.syncIfStuck(mark)
	}
	return statements
}

func (p *Parser) parseStatement() Stmt {
	switch p.current().Kind {
	case KwAnnotation:
		return p.parseAnnotation()
	case At:
		return p.parseAnnotated()
	case KwExternal:
		return p.parseExternal()
	case KwInline:
		return p.parseInline()
	case KwStruct:
		return p.parseStruct()
	case KwEnum:
		return p.parseEnum()
	case KwType:
		return p.parseTypeAlias()
	case KwFunc:
		return p.parseFunction()
	case KwVar:
		return p.parseVariable()
	case KwConst:
		return p.parseConstant()
	case KwReturn:
		return p.parseReturn()
	case KwImport:
		return p.parseImport()
	case KwWhile:
		return p.parseWhile()
	case KwIf:
		return p.parseIf()
	default:
		if reservedUnimplemented[p.current().Kind] {
			cur := p.current()
			p.errors = append(p.errors, SyntaxError{
				Message: "reserved keyword `" + cur.Kind.String() + "` is not implemented",
				Span:    cur.Span,
			})
			for p.current().Kind != Newline && p.current().Kind != EndOfFile {
				p.advance()
			}
			return ExpressionStmt{Expr: ErrorExpr{span: cur.Span}, span: cur.Span}
		}
		expr := p.parseExpression()
		return ExpressionStmt{Expr: expr, span: p.current().Span}
	}
}

func (p *Parser) parseAnnotation() Stmt {
	p.expect(KwAnnotation)
	nameSpan := p.current().Span
	name := p.expect(Identifier).Value
	if p.current().Kind == KwEnd {
		p.advance()
		return AnnotationStmt{Name: name, Fields: nil, span: nameSpan}
	}
	p.expect(Newline)
	var fields []Field
	for p.current().Kind != KwEnd && p.current().Kind != EndOfFile {
		mark := p.pos
		if p.current().Kind == Newline {
			p.advance()
			continue
		}
		fieldName := p.expect(Identifier).Value
		p.expect(Colon)
		fieldType := p.parseType()
		fields = append(fields, Field{Name: fieldName, Type: fieldType})
		p.expect(Newline)
		p.syncIfStuck(mark)
	}
	p.expect(KwEnd)
	return AnnotationStmt{Name: name, Fields: fields, span: nameSpan}
}

func (p *Parser) parseAnnotated() Stmt {
	var uses []AnnotationUse
	for p.current().Kind == At {
		p.expect(At)
		nameSpan := p.current().Span
		name := p.expect(Identifier).Value
		var args []Expr
		if p.current().Kind == OpenParen {
			p.expect(OpenParen)
			for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
				mark := p.pos
				args = append(args, p.parseExpression())
				if p.current().Kind == Comma {
					p.expect(Comma)
				}
				p.syncIfStuck(mark)
			}
			p.expect(CloseParen)
		}
		p.expect(Newline)
		uses = append(uses, AnnotationUse{Name: name, Args: args, span: nameSpan})
	}
	inner := p.parseStatement()
	return AnnotatedStmt{Inner: inner, Uses: uses, span: inner.Span()}
}

func (p *Parser) parseExternal() Stmt {
	span := p.current().Span
	p.expect(KwExternal)
	inner := p.parseStatement()
	return ExternalStmt{Inner: inner, span: span}
}

func (p *Parser) parseInline() Stmt {
	span := p.current().Span
	p.expect(KwInline)
	inner := p.parseStatement()
	return InlineStmt{Inner: inner, span: span}
}

func (p *Parser) parseBlockUntil(terminators ...Kind) []Stmt {
	isTerminator := func(k Kind) bool {
		for _, t := range terminators {
			if k == t {
				return true
			}
		}
		return false
	}
	var body []Stmt
	for !isTerminator(p.current().Kind) && p.current().Kind != EndOfFile {
		mark := p.pos
		if p.current().Kind == Newline {
			p.expect(Newline)
			continue
		}
		body = append(body, p.parseStatement())
		p.syncIfStuck(mark)
	}
	return body
}

func (p *Parser) parseStruct() Stmt {
	p.expect(KwStruct)
	span := p.current().Span
	name := p.expect(Identifier).Value
	if p.current().Kind == KwEnd {
		p.advance()
		return StructStmt{Name: name, span: span}
	}
	p.expect(Newline)
	var fields []Field
	for p.current().Kind != KwEnd && p.current().Kind != EndOfFile {
		mark := p.pos
		if p.current().Kind == Newline {
			p.advance()
			continue
		}
		fieldName := p.expect(Identifier).Value
		p.expect(Colon)
		fieldType := p.parseType()
		p.expect(Newline)
		fields = append(fields, Field{Name: fieldName, Type: fieldType})
		p.syncIfStuck(mark)
	}
	p.expect(KwEnd)
	return StructStmt{Name: name, Fields: fields, span: span}
}

func (p *Parser) parseEnum() Stmt {
	p.expect(KwEnum)
	span := p.current().Span
	name := p.expect(Identifier).Value
	p.expect(Colon)
	valueType := p.parseType()
	p.expect(Newline)
	var variants []EnumVariant
	for p.current().Kind != KwEnd && p.current().Kind != EndOfFile {
		mark := p.pos
		if p.current().Kind == Newline {
			p.advance()
			continue
		}
		variantSpan := p.current().Span
		variantName := p.expect(Identifier).Value
		p.expect(Equal)
		variantValue := p.parseExpression()
		p.expect(Newline)
		variants = append(variants, EnumVariant{Name: variantName, Value: variantValue, span: variantSpan})
		p.syncIfStuck(mark)
	}
	p.expect(KwEnd)
	return EnumStmt{Name: name, ValueType: valueType, Variants: variants, span: span}
}

func (p *Parser) parseTypeAlias() Stmt {
	p.expect(KwType)
	span := p.current().Span
	name := p.expect(Identifier).Value
	p.expect(Equal)
	var types []Type
	for p.current().Kind != Newline && p.current().Kind != EndOfFile {
		mark := p.pos
		types = append(types, p.parseType())
		if p.current().Kind == Pipe {
			p.expect(Pipe)
		}
		p.syncIfStuck(mark)
	}
	return TypeAliasStmt{Name: name, Types: types, span: span}
}

func (p *Parser) parseParamList() []Field {
	p.expect(OpenParen)
	var params []Field
	for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
		mark := p.pos
		argName := p.expect(Identifier).Value
		p.expect(Colon)
		argType := p.parseType()
		params = append(params, Field{Name: argName, Type: argType})
		if p.current().Kind == Comma {
			p.expect(Comma)
		}
		p.syncIfStuck(mark)
	}
	p.expect(CloseParen)
	return params
}

func (p *Parser) parseFunction() Stmt {
	p.expect(KwFunc)
	span := p.current().Span
	name := p.expect(Identifier).Value
	structName := ""
	if p.current().Kind == Dot {
		structName = name
		p.expect(Dot)
		name = p.expect(Identifier).Value
	}

	var typeParams []GenericTypeParam
	if p.current().Kind == OpenBracket {
		p.expect(OpenBracket)
		for p.current().Kind != CloseBracket && p.current().Kind != EndOfFile {
			mark := p.pos
			paramName := p.expect(Identifier).Value
			var bound Type
			if p.current().Kind == Colon {
				p.expect(Colon)
				bound = p.parseType()
			}
			typeParams = append(typeParams, GenericTypeParam{Name: paramName, Bound: bound})
			if p.current().Kind == Comma {
				p.expect(Comma)
			}
			p.syncIfStuck(mark)
		}
		p.expect(CloseBracket)
	}

	params := p.parseParamList()

	var returnType Type = VoidType{span: p.current().Span}
	if p.current().Kind == Colon {
		p.expect(Colon)
		returnType = p.parseType()
	}

	var body []Stmt
	if p.current().Kind == FatArrow {
		p.expect(FatArrow)
		expr := p.parseExpression()
		body = append(body, ReturnStmt{Value: expr, span: expr.Span()})
		p.expect(Newline)
	} else {
		body = p.parseBlockUntil(KwEnd)
		p.expect(KwEnd)
	}

	var stmt Stmt
	if structName != "" {
		stmt = StructFunctionStmt{StructName: structName, MethodName: name, Params: params, Return: returnType, Body: body, span: span}
	} else {
		stmt = FunctionStmt{Name: name, Params: params, Return: returnType, Body: body, span: span}
	}
	if len(typeParams) > 0 {
		stmt = GenericStmt{Inner: stmt, Params: typeParams, span: span}
	}
	return stmt
}

func (p *Parser) parseVariable() Stmt {
	p.expect(KwVar)
	span := p.current().Span
	name := p.expect(Identifier).Value
	var t Type = UnknownType{Name: "", span: span}
	if p.current().Kind == Colon {
		p.expect(Colon)
		t = p.parseType()
	}
	var value Expr = EmptyExpr{}
	if p.current().Kind == Equal {
		p.expect(Equal)
		value = p.parseExpression()
	}
	p.expect(Newline)
	return VariableStmt{Name: name, Type: t, Init: value, span: span}
}

func (p *Parser) parseConstant() Stmt {
	p.expect(KwConst)
	span := p.current().Span
	name := p.expect(Identifier).Value
	p.expect(Colon)
	t := p.parseType()
	p.expect(Equal)
	value := p.parseExpression()
	p.expect(Newline)
	return ConstantStmt{Name: name, Type: t, Value: value, span: span}
}

func (p *Parser) parseReturn() Stmt {
	p.expect(KwReturn)
	value := p.parseExpression()
	p.expect(Newline)
	return ReturnStmt{Value: value, span: value.Span()}
}

func (p *Parser) parseImport() Stmt {
	span := p.current().Span
	p.expect(KwImport)
	path := p.expect(StringLit).Value
	p.expect(Newline)
	return ImportStmt{Path: path, span: span}
}

func (p *Parser) parseWhile() Stmt {
	span := p.current().Span
	p.expect(KwWhile)
	cond := p.parseExpression()
	p.expect(Newline)
	body := p.parseBlockUntil(KwEnd)
	p.expect(KwEnd)
	return WhileStmt{Cond: cond, Body: body, span: span}
}

func (p *Parser) parseIf() Stmt {
	span := p.current().Span
	p.expect(KwIf)
	cond := p.parseExpression()
	p.expect(Newline)
	body := p.parseBlockUntil(KwEnd, KwElse)

	var elseBody []Stmt
	if p.current().Kind == KwElse {
		p.expect(KwElse)
		if p.current().Kind == KwIf {
			nested := p.parseIf()
			elseBody = append(elseBody, nested)
			return IfStmt{Cond: cond, Then: body, Else: elseBody, span: nested.Span()}
		}
		p.expect(Newline)
		elseBody = p.parseBlockUntil(KwEnd)
	}
	p.expect(KwEnd)
	return IfStmt{Cond: cond, Then: body, Else: elseBody, span: span}
}

// ---------------------------------------------------------------
// Expressions — precedence ladder per spec.md §4.2, authoritative
// over the inherited top-down ordering bug spec.md §9 calls out.

func (p *Parser) parseExpression() Expr { return p.parseTernary() }

func (p *Parser) parseTernary() Expr {
	expr := p.parseAssignment()
	if p.current().Kind == KwIf {
		span := p.current().Span
		p.expect(KwIf)
		cond := p.parseExpression()
		p.expect(KwElse)
		elseExpr := p.parseExpression()
		expr = TernaryExpr{Cond: cond, Then: expr, Else: elseExpr, span: span}
	}
	return expr
}

func (p *Parser) parseAssignment() Expr {
	expr := p.parseComparison()
	if p.current().Kind == Equal {
		span := p.current().Span
		p.expect(Equal)
		right := p.parseExpression()
		expr = AssignmentExpr{Target: expr, Value: right, span: span}
	}
	return expr
}

var comparisonOps = map[Kind]bool{
	EqualEqual: true, BangEqual: true, Less: true, LessEqual: true, Greater: true, GreaterEqual: true,
}

func (p *Parser) parseComparison() Expr {
	expr := p.parseAdditive()
	for comparisonOps[p.current().Kind] {
		span := p.current().Span
		op := p.current().Kind
		p.expect(op)
		right := p.parseAdditive()
		expr = BinaryExpr{Op: op, Left: expr, Right: right, span: span}
	}
	return expr
}

func (p *Parser) parseAdditive() Expr {
	expr := p.parseMultiplicative()
	for p.current().Kind == Plus || p.current().Kind == Minus {
		span := p.current().Span
		op := p.current().Kind
		p.expect(op)
		right := p.parseMultiplicative()
		expr = BinaryExpr{Op: op, Left: expr, Right: right, span: span}
	}
	return expr
}

func (p *Parser) parseMultiplicative() Expr {
	expr := p.parseGrouping()
	for p.current().Kind == Star || p.current().Kind == Slash || p.current().Kind == Percent {
		span := p.current().Span
		op := p.current().Kind
		p.expect(op)
		right := p.parseUnary()
		expr = BinaryExpr{Op: op, Left: expr, Right: right, span: span}
	}
	return expr
}

func (p *Parser) parseGrouping() Expr {
	span := p.current().Span
	if p.current().Kind == OpenParen {
		p.expect(OpenParen)
		inner := p.parseExpression()
		p.expect(CloseParen)
		return GroupingExpr{Inner: inner, span: span}
	}
	return p.parseUnary()
}

func (p *Parser) parseUnary() Expr {
	span := p.current().Span
	switch p.current().Kind {
	case Minus:
		p.expect(Minus)
		return UnaryExpr{Op: Minus, Operand: p.parseUnary(), span: span}
	case Bang:
		p.expect(Bang)
		return UnaryExpr{Op: Bang, Operand: p.parseUnary(), span: span}
	case Ampersand:
		p.expect(Ampersand)
		return AddressOfExpr{Inner: p.parseUnary(), span: span}
	case Star:
		p.expect(Star)
		return DereferenceExpr{Inner: p.parseUnary(), span: span}
	default:
		return p.parseIndex()
	}
}

func (p *Parser) parseIndex() Expr {
	expr := p.parseMember()
	for p.current().Kind == OpenBracket {
		span := p.current().Span
		p.expect(OpenBracket)
		index := p.parseExpression()
		p.expect(CloseBracket)
		expr = IndexExpr{Base: expr, Index: index, span: span}
	}
	return expr
}

func (p *Parser) parseMember() Expr {
	expr := p.parseCast()
	for p.current().Kind == Dot {
		span := p.current().Span
		p.expect(Dot)
		expr = MemberExpr{Object: expr, Member: p.parseExpression(), span: span}
	}
	return expr
}

func (p *Parser) parseCast() Expr {
	expr := p.parseRange()
	for p.current().Kind == KwAs {
		span := p.current().Span
		p.expect(KwAs)
		t := p.parseType()
		expr = CastExpr{Inner: expr, Type: t, span: span}
	}
	return expr
}

func (p *Parser) parseRange() Expr {
	expr := p.parseCall()
	for p.current().Kind == RangeOp {
		span := p.current().Span
		p.expect(RangeOp)
		expr = RangeExpr{From: expr, To: p.parseExpression(), span: span}
	}
	return expr
}

// isGenericCallLookahead reports whether the bracketed suffix
// starting at the current `[` is a generic-call type-argument list
// rather than an index expression: the token right after the first
// type token is either `,` (more than one type argument) or `]`
// followed by the `(` of the argument list (single type argument).
// A single-token subscript such as `arr[0]` has no `(` after its `]`
// and stays an index expression.
func (p *Parser) isGenericCallLookahead() bool {
	switch p.peekAt(2).Kind {
	case Comma:
		return true
	case CloseBracket:
		return p.peekAt(3).Kind == OpenParen
	default:
		return false
	}
}

func (p *Parser) parseCall() Expr {
	expr := p.parsePrimary()
	for p.current().Kind == OpenParen || p.current().Kind == OpenBracket {
		if p.current().Kind == OpenBracket && p.isGenericCallLookahead() {
			expr = p.parseGenericCallSuffix(expr)
			continue
		}
		if p.current().Kind == OpenBracket {
			break
		}
		expr = p.parseCallSuffix(expr)
	}
	return expr
}

func (p *Parser) parseGenericCallSuffix(callee Expr) Expr {
	span := p.current().Span
	p.expect(OpenBracket)
	var types []Type
	for p.current().Kind != CloseBracket && p.current().Kind != EndOfFile {
		mark := p.pos
		types = append(types, p.parseType())
		if p.current().Kind == Comma {
			p.expect(Comma)
		}
		p.syncIfStuck(mark)
	}
	p.expect(CloseBracket)
	p.expect(OpenParen)
	var args []Expr
	for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
		mark := p.pos
		args = append(args, p.parseExpression())
		if p.current().Kind == Comma {
			p.expect(Comma)
		}
		p.syncIfStuck(mark)
	}
	p.expect(CloseParen)
	name, ok := callee.(IdentifierExpr)
	if !ok {
		p.errors = append(p.errors, SyntaxError{Message: "expected identifier before generic call", Span: span})
		return GenericCallExpr{Name: "", TypeArgs: types, Args: args, span: span}
	}
	return GenericCallExpr{Name: name.Name, TypeArgs: types, Args: args, span: span}
}

func (p *Parser) parseCallSuffix(callee Expr) Expr {
	span := p.current().Span
	p.expect(OpenParen)
	var args []Expr
	for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
		mark := p.pos
		if p.current().Kind == Identifier && p.peekAt(1).Kind == Colon {
			nameSpan := p.current().Span
			name := p.expect(Identifier).Value
			p.expect(Colon)
			value := p.parseExpression()
			args = append(args, NamedArgumentExpr{Name: name, Value: value, span: nameSpan})
		} else {
			args = append(args, p.parseExpression())
		}
		if p.current().Kind == Comma {
			p.expect(Comma)
		}
		p.syncIfStuck(mark)
	}
	p.expect(CloseParen)
	name, ok := callee.(IdentifierExpr)
	if !ok {
		p.errors = append(p.errors, SyntaxError{Message: "expected identifier before call", Span: span})
		return CallExpr{Name: "", Args: args, span: span}
	}
	return CallExpr{Name: name.Name, Args: args, span: span}
}

func (p *Parser) parsePrimary() Expr {
	cur := p.current()
	switch cur.Kind {
	case NumberLit:
		tok := p.expect(NumberLit)
		v, _ := strconv.ParseInt(tok.Value, 10, 64)
		return NumberExpr{Value: v, span: tok.Span}
	case StringLit:
		tok := p.expect(StringLit)
		return StringExpr{Value: tok.Value, span: tok.Span}
	case CharLit:
		tok := p.expect(CharLit)
		return CharExpr{Value: tok.Value, span: tok.Span}
	case KwTrue:
		p.expect(KwTrue)
		return BooleanExpr{Value: true, span: cur.Span}
	case KwFalse:
		p.expect(KwFalse)
		return BooleanExpr{Value: false, span: cur.Span}
	case Identifier:
		tok := p.expect(Identifier)
		return IdentifierExpr{Name: tok.Value, span: tok.Span}
	case KwSizeOf:
		p.expect(KwSizeOf)
		t := p.parseType()
		return SizeOfExpr{Type: t, span: cur.Span}
	case OpenBracket:
		p.expect(OpenBracket)
		var elems []Expr
		for p.current().Kind != CloseBracket && p.current().Kind != EndOfFile {
			mark := p.pos
			elems = append(elems, p.parseExpression())
			if p.current().Kind == Comma {
				p.expect(Comma)
			}
			p.syncIfStuck(mark)
		}
		p.expect(CloseBracket)
		return ArrayLiteralExpr{Elements: elems, span: cur.Span}
	case KwNew:
		p.expect(KwNew)
		ctor := p.expect(Identifier).Value
		p.expect(OpenParen)
		var args []Expr
		for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
			mark := p.pos
			args = append(args, p.parseExpression())
			if p.current().Kind == Comma {
				p.expect(Comma)
			}
			p.syncIfStuck(mark)
		}
		p.expect(CloseParen)
		return NewExpr{CtorName: ctor, Args: args, span: cur.Span}
	case KwNull:
		p.expect(KwNull)
		return NullExpr{}
	default:
		err := SyntaxError{Message: "expected Expression, but got " + cur.Kind.String(), Span: cur.Span}
		p.errors = append(p.errors, err)
		return ErrorExpr{Err: err, span: cur.Span}
	}
}

// ---------------------------------------------------------------
// Types

func (p *Parser) parseType() Type {
	span := p.current().Span
	var t Type
	switch p.current().Kind {
	case KwInt:
		p.expect(KwInt)
		t = IntType{span: span}
	case KwUsize:
		p.expect(KwUsize)
		t = UsizeType{span: span}
	case KwString:
		p.expect(KwString)
		t = StringType{span: span}
	case KwCString:
		p.expect(KwCString)
		t = CStringType{span: span}
	case KwChar:
		p.expect(KwChar)
		t = CharType{span: span}
	case KwBool:
		p.expect(KwBool)
		t = BoolType{span: span}
	case KwVoid:
		p.expect(KwVoid)
		t = VoidType{span: span}
	case Identifier:
		name := p.expect(Identifier).Value
		t = UnknownType{Name: name, span: span}
	case KwFunc:
		p.expect(KwFunc)
		p.expect(OpenParen)
		var args []Type
		for p.current().Kind != CloseParen && p.current().Kind != EndOfFile {
			mark := p.pos
			args = append(args, p.parseType())
			if p.current().Kind == Comma {
				p.expect(Comma)
			}
			p.syncIfStuck(mark)
		}
		p.expect(CloseParen)
		retSpan := p.current().Span
		var ret Type = VoidType{span: retSpan}
		if p.current().Kind == Colon {
			p.expect(Colon)
			ret = p.parseType()
		}
		t = FunctionType{Args: args, Return: ret, span: span}
	case KwVolatile:
		p.expect(KwVolatile)
		t = VolatileType{Inner: p.parseType(), span: span}
	case KwConst:
		p.expect(KwConst)
		t = ConstType{Inner: p.parseType(), span: span}
	case KwRestrict:
		p.expect(KwRestrict)
		t = RestrictType{Inner: p.parseType(), span: span}
	default:
		err := SyntaxError{Message: "expected Type, but got " + p.current().Kind.String(), Span: span}
		p.errors = append(p.errors, err)
		t = ErrorType{Err: err, span: span}
	}

	switch p.current().Kind {
	case Star:
		starSpan := p.current().Span
		p.expect(Star)
		return PointerType{Inner: t, span: starSpan}
	case OpenBracket:
		bracketSpan := p.current().Span
		p.expect(OpenBracket)
		if p.current().Kind == CloseBracket {
			p.expect(CloseBracket)
			return DynamicArrayType{Inner: t, span: bracketSpan}
		}
		size := p.parseExpression()
		p.expect(CloseBracket)
		return ArrayType{Inner: t, Size: size, span: bracketSpan}
	default:
		return t
	}
}
