package slc

import (
	"strconv"
	"strings"
)

// Codegen walks the statement list produced by the Parser and emits
// portable C, tracking the symbol tables spec.md §4.3 needs to
// resolve named types, struct fields, enum value tables, and
// annotations. It mirrors the teacher's outputWriter-based emitters
// for indentation, generalized to SL's fixed grammar instead of a
// generated parser's bytecode.
type Codegen struct {
	structs          map[string]bool
	structFields     map[string][]Field
	structFunctions  map[string][]string
	enums            map[string]bool
	typeAliases      map[string]bool
	variableTypes    map[string]Type
	parameterTypes   map[string]Type
	annotations      map[string][]Field
	genericTypes     map[string][]string
	genericTypeNames map[string]bool
	toUndef          []string
	errors           []error
}

// NewCodegen returns a Codegen with empty symbol tables.
func NewCodegen() *Codegen {
	return &Codegen{
		structs:          map[string]bool{},
		structFields:     map[string][]Field{},
		structFunctions:  map[string][]string{},
		enums:            map[string]bool{},
		typeAliases:      map[string]bool{},
		variableTypes:    map[string]Type{},
		parameterTypes:   map[string]Type{},
		annotations:      map[string][]Field{},
		genericTypes:     map[string][]string{},
		genericTypeNames: map[string]bool{},
	}
}

// Errors returns the TypeErrors and RuntimeErrors accumulated while
// emitting.
func (c *Codegen) Errors() []error { return c.errors }

// Generate emits the whole program and returns the resulting C
// source. The to_undef list accumulated by generic calls is drained
// after every top-level statement, per spec.md §4.3.
func (c *Codegen) Generate(statements []Stmt) string {
	var out strings.Builder
	for _, stmt := range statements {
		out.WriteString(c.genStatement(stmt))
		for _, name := range c.toUndef {
			out.WriteString("#undef " + name + "\n")
		}
		c.toUndef = nil
	}
	return out.String()
}

func (c *Codegen) genStatement(stmt Stmt) string {
	switch s := stmt.(type) {
	case GenericStmt:
		return c.genGeneric(s)
	case AnnotationStmt:
		return c.genAnnotationStatement(s)
	case AnnotatedStmt:
		return c.genAnnotated(s)
	case ExternalStmt:
		return "extern " + c.genStatement(s.Inner)
	case InlineStmt:
		return "inline " + c.genStatement(s.Inner)
	case StructStmt:
		return c.genStruct(s)
	case EnumStmt:
		return c.genEnum(s)
	case TypeAliasStmt:
		return c.genTypeAlias(s)
	case FunctionStmt:
		return c.genFunction(s)
	case StructFunctionStmt:
		return c.genStructFunction(s)
	case VariableStmt:
		return c.genVariable(s)
	case ConstantStmt:
		return c.genConstant(s)
	case ReturnStmt:
		return "return " + c.genExpression(s.Value) + ";\n"
	case ImportStmt:
		return c.genImport(s)
	case WhileStmt:
		return c.genWhile(s)
	case IfStmt:
		return c.genIf(s)
	case ExpressionStmt:
		return c.genExpression(s.Expr) + ";\n"
	default:
		c.errors = append(c.errors, RuntimeError{Message: "unhandled statement kind", Span: stmt.Span()})
		return ""
	}
}

func (c *Codegen) genGeneric(s GenericStmt) string {
	var out strings.Builder
	var typeParamNames []string
	for _, param := range s.Params {
		typeParamNames = append(typeParamNames, param.Name)
		c.genericTypeNames[param.Name] = true
		out.WriteString("#define " + param.Name)
		if param.Bound != nil {
			out.WriteString(" " + c.genType(param.Bound))
		}
		out.WriteString("\n")
	}
	if fn, ok := s.Inner.(FunctionStmt); ok {
		c.genericTypes[fn.Name] = typeParamNames
	}
	out.WriteString(c.genStatement(s.Inner))
	for _, name := range typeParamNames {
		out.WriteString("#undef " + name + "\n")
	}
	return out.String()
}

func (c *Codegen) genAnnotationStatement(s AnnotationStmt) string {
	c.annotations[s.Name] = s.Fields
	var fieldNames []string
	for _, f := range s.Fields {
		fieldNames = append(fieldNames, f.Name)
	}
	return "#define " + s.Name + "(" + strings.Join(fieldNames, ", ") + ") __attribute__((annotate(\"" + s.Name + "\")))\n"
}

func (c *Codegen) genAnnotationUse(use AnnotationUse) string {
	if _, ok := c.annotations[use.Name]; !ok {
		c.errors = append(c.errors, TypeError{Message: "unknown annotation " + use.Name, Span: use.Span()})
	}
	return ""
}

func (c *Codegen) genAnnotated(s AnnotatedStmt) string {
	var out strings.Builder
	for _, use := range s.Uses {
		out.WriteString(c.genAnnotationUse(use))
	}
	structStmt, ok := s.Inner.(StructStmt)
	if !ok {
		c.errors = append(c.errors, TypeError{Message: "cannot annotate this statement", Span: s.Inner.Span()})
		return out.String()
	}
	body := c.genStruct(structStmt)
	// Splice the uses between the struct's closing brace and its ";".
	// The definition's "};\n" is the first one in genStruct's output:
	// method forward declarations come before it and the constructor,
	// if any, after it (kept in tail). An empty struct's "struct N;\n"
	// has no brace and just loses its trailing ";\n".
	tail := ""
	if i := strings.Index(body, "};\n"); i >= 0 {
		body, tail = body[:i+1], body[i+3:]
	} else if n := len(body); n >= 2 {
		body = body[:n-2]
	}
	out.WriteString(body)
	for _, use := range s.Uses {
		var args []string
		for _, arg := range use.Args {
			args = append(args, c.genExpression(arg))
		}
		out.WriteString(" " + use.Name + "(" + strings.Join(args, ", ") + ")")
	}
	out.WriteString(";\n")
	out.WriteString(tail)
	return out.String()
}

func (c *Codegen) genStruct(s StructStmt) string {
	c.structs[s.Name] = true
	c.structFields[s.Name] = s.Fields
	if _, ok := c.structFunctions[s.Name]; !ok {
		c.structFunctions[s.Name] = nil
	}
	if len(s.Fields) == 0 {
		return "struct " + s.Name + ";\n"
	}

	var body, forwardDecls, constructor strings.Builder
	body.WriteString("struct " + s.Name + " {\n")
	for _, field := range s.Fields {
		if fn, ok := field.Type.(FunctionType); ok {
			body.WriteString(c.genType(fn.Return) + " (*" + field.Name + ")(" + c.genTypeList(fn.Args) + ");\n")
			if field.Name == "constructor" {
				constructor.WriteString(c.genConstructor(s.Name, fn, s.Fields))
			} else {
				forwardDecls.WriteString(c.genType(fn.Return) + " __" + s.Name + "_" + field.Name + "(" + c.genTypeList(fn.Args) + ");\n")
			}
			continue
		}
		body.WriteString(c.genType(field.Type) + " " + field.Name + ";\n")
	}
	body.WriteString("};\n")

	var out strings.Builder
	out.WriteString(forwardDecls.String())
	out.WriteString(body.String())
	out.WriteString(constructor.String())
	return out.String()
}

// genConstructor emits the struct's allocation function. spec.md §9
// (Open Question 5) chooses to emit this — and the sibling method
// forward declarations — unlike the inherited implementation, which
// computed them but never appended them to the output.
func (c *Codegen) genConstructor(structName string, ctor FunctionType, fields []Field) string {
	var out strings.Builder
	retType := c.genType(ctor.Return)
	var params []string
	for i, argType := range ctor.Args {
		params = append(params, c.genType(argType)+" __"+strconv.Itoa(i))
	}
	out.WriteString("static " + retType + " __" + structName + "_constructor(" + strings.Join(params, ", ") + ") {\n")
	out.WriteString(retType + " self = (" + retType + ")(malloc(sizeof(" + retType + ")));\n")
	for i := range ctor.Args {
		if i < len(fields) {
			out.WriteString("self->" + fields[i].Name + " = __" + strconv.Itoa(i) + ";\n")
		}
	}
	for _, field := range fields {
		if _, ok := field.Type.(FunctionType); ok {
			out.WriteString("self->" + field.Name + " = __" + structName + "_" + field.Name + ";\n")
		}
	}
	out.WriteString("return self;\n}\n")
	return out.String()
}

func (c *Codegen) genEnum(s EnumStmt) string {
	var out strings.Builder
	out.WriteString("enum " + s.Name + " {\n")
	for _, variant := range s.Variants {
		out.WriteString(variant.Name + ",\n")
	}
	out.WriteString("};\n")

	if fn, ok := s.ValueType.(FunctionType); ok {
		out.WriteString("static " + c.genType(fn.Return) + " (*const __" + s.Name + "_values[])(" + c.genTypeList(fn.Args) + ") = {\n")
	} else {
		out.WriteString("static " + c.genType(s.ValueType) + " const __" + s.Name + "_values[] = {\n")
	}
	for _, variant := range s.Variants {
		out.WriteString("[" + variant.Name + "] = " + c.genExpression(variant.Value) + ",\n")
	}
	out.WriteString("};\n")
	c.enums[s.Name] = true
	return out.String()
}

func (c *Codegen) genTypeAlias(s TypeAliasStmt) string {
	var out strings.Builder
	out.WriteString("typedef ")
	if len(s.Types) == 1 {
		out.WriteString(c.genType(s.Types[0]))
	} else {
		out.WriteString("union {\n")
		for i, t := range s.Types {
			out.WriteString(c.genType(t) + " __" + strconv.Itoa(i) + ";\n")
		}
		out.WriteString("}")
	}
	out.WriteString(" " + s.Name + ";\n")
	c.typeAliases[s.Name] = true
	return out.String()
}

func (c *Codegen) genParamList(params []Field) string {
	var parts []string
	for _, param := range params {
		c.parameterTypes[param.Name] = param.Type
		if fn, ok := param.Type.(FunctionType); ok {
			parts = append(parts, c.genType(fn.Return)+" (*"+param.Name+")("+c.genTypeList(fn.Args)+")")
		} else {
			parts = append(parts, c.genType(param.Type)+" "+param.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func (c *Codegen) clearParamTypes(params []Field) {
	for _, param := range params {
		delete(c.parameterTypes, param.Name)
	}
}

func (c *Codegen) genFunction(s FunctionStmt) string {
	var out strings.Builder
	out.WriteString(c.genType(s.Return) + " " + s.Name + "(" + c.genParamList(s.Params) + ") {\n")
	out.WriteString(c.genBlock(s.Body))
	out.WriteString("}\n")
	c.clearParamTypes(s.Params)
	return out.String()
}

func (c *Codegen) genStructFunction(s StructFunctionStmt) string {
	c.structFunctions[s.StructName] = append(c.structFunctions[s.StructName], s.MethodName)
	var out strings.Builder
	out.WriteString(c.genType(s.Return) + " __" + s.StructName + "_" + s.MethodName + "(" + c.genParamList(s.Params) + ") {\n")
	out.WriteString(c.genBlock(s.Body))
	out.WriteString("}\n")
	c.clearParamTypes(s.Params)
	return out.String()
}

// genBlock indents a nested statement list using the teacher's
// outputWriter, an upgrade over the flat output the original emits.
func (c *Codegen) genBlock(stmts []Stmt) string {
	o := newOutputWriter("    ")
	o.indent()
	for _, stmt := range stmts {
		code := c.genStatement(stmt)
		for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
			if line == "" {
				continue
			}
			o.writeil(line)
		}
	}
	o.unindent()
	return o.buffer.String()
}

func (c *Codegen) genVariable(s VariableStmt) string {
	c.variableTypes[s.Name] = s.Type
	var out strings.Builder
	switch t := s.Type.(type) {
	case ArrayType:
		out.WriteString(c.genType(t.Inner) + " " + s.Name + "[" + c.genExpression(t.Size) + "]")
	case FunctionType:
		out.WriteString(c.genType(t.Return) + " (*" + s.Name + ")(" + c.genTypeList(t.Args) + ")")
	default:
		out.WriteString(c.genType(s.Type) + " " + s.Name)
	}
	if _, empty := s.Init.(EmptyExpr); empty {
		out.WriteString(";\n")
	} else {
		out.WriteString(" = " + c.genExpression(s.Init) + ";\n")
	}
	return out.String()
}

func (c *Codegen) genConstant(s ConstantStmt) string {
	c.variableTypes[s.Name] = s.Type
	return "const " + c.genType(s.Type) + " " + s.Name + " = " + c.genExpression(s.Value) + ";\n"
}

func (c *Codegen) genImport(s ImportStmt) string {
	if strings.HasPrefix(s.Path, "std/") {
		return "#include <" + strings.TrimPrefix(s.Path, "std/") + ">\n"
	}
	return "#include \"" + s.Path + "\"\n"
}

func (c *Codegen) genWhile(s WhileStmt) string {
	var out strings.Builder
	out.WriteString("while (" + c.genExpression(s.Cond) + ") {\n")
	out.WriteString(c.genBlock(s.Body))
	out.WriteString("}\n")
	return out.String()
}

func (c *Codegen) genIf(s IfStmt) string {
	var out strings.Builder
	out.WriteString("if (" + c.genExpression(s.Cond) + ") {\n")
	out.WriteString(c.genBlock(s.Then))
	out.WriteString("}\n")
	if len(s.Else) > 0 {
		out.WriteString("else {\n")
		out.WriteString(c.genBlock(s.Else))
		out.WriteString("}\n")
	}
	return out.String()
}

func (c *Codegen) genTypeList(types []Type) string {
	var parts []string
	for _, t := range types {
		parts = append(parts, c.genType(t))
	}
	return strings.Join(parts, ", ")
}

func (c *Codegen) genType(t Type) string {
	switch tt := t.(type) {
	case nil:
		return "void"
	case IntType:
		return "int"
	case UsizeType:
		return "size_t"
	case StringType:
		return "const char*"
	case CStringType:
		return "char*"
	case CharType:
		return "char"
	case BoolType:
		return "bool"
	case VoidType:
		return "void"
	case FunctionType:
		c.errors = append(c.errors, TypeError{Message: "function type is not allowed here", Span: tt.Span()})
		return ""
	case PointerType:
		return c.genType(tt.Inner) + "*"
	case ArrayType:
		return c.genType(tt.Inner) // size is generated at the declaration site
	case DynamicArrayType:
		return c.genType(tt.Inner) + "*"
	case RestrictType:
		return c.genType(tt.Inner) + " restrict"
	case ConstType:
		return "const " + c.genType(tt.Inner)
	case VolatileType:
		return "volatile " + c.genType(tt.Inner)
	case UnknownType:
		switch {
		case c.structs[tt.Name]:
			return "struct " + tt.Name
		case c.enums[tt.Name]:
			return "enum " + tt.Name
		case c.typeAliases[tt.Name]:
			return tt.Name
		case c.genericTypeNames[tt.Name]:
			return tt.Name
		default:
			c.errors = append(c.errors, TypeError{Message: "unknown type " + tt.Name, Span: tt.Span()})
			return "ERROR"
		}
	case ErrorType:
		c.errors = append(c.errors, tt.Err)
		return "ERROR"
	default:
		c.errors = append(c.errors, RuntimeError{Message: "unhandled type kind", Span: t.Span()})
		return "ERROR"
	}
}

var unaryOps = map[Kind]string{Minus: "-", Bang: "!"}

var binaryOps = map[Kind]string{
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	EqualEqual: "==", BangEqual: "!=", Less: "<", LessEqual: "<=",
	Greater: ">", GreaterEqual: ">=",
}

func (c *Codegen) genExpression(expr Expr) string {
	switch e := expr.(type) {
	case NumberExpr:
		return strconv.FormatInt(e.Value, 10)
	case StringExpr:
		return "\"" + e.Value + "\""
	case CharExpr:
		return "'" + e.Value + "'"
	case BooleanExpr:
		if e.Value {
			return "true"
		}
		return "false"
	case IdentifierExpr:
		return e.Name
	case NullExpr:
		return "NULL"
	case CallExpr:
		return c.genCall(e)
	case GenericCallExpr:
		return c.genGenericCall(e)
	case MemberExpr:
		return c.genMember(e)
	case GroupingExpr:
		return "(" + c.genExpression(e.Inner) + ")"
	case NamedArgumentExpr:
		return "." + e.Name + " = " + c.genExpression(e.Value)
	case CastExpr:
		return "(" + c.genType(e.Type) + ")" + c.genExpression(e.Inner)
	case SizeOfExpr:
		return "sizeof(" + c.genType(e.Type) + ")"
	case IndexExpr:
		return c.genExpression(e.Base) + "[" + c.genExpression(e.Index) + "]"
	case ArrayLiteralExpr:
		var parts []string
		for _, elem := range e.Elements {
			parts = append(parts, c.genExpression(elem))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case NewExpr:
		var args []string
		for _, arg := range e.Args {
			args = append(args, c.genExpression(arg))
		}
		return "__" + e.CtorName + "_constructor(" + strings.Join(args, ", ") + ")"
	case UnaryExpr:
		op, ok := unaryOps[e.Op]
		if !ok {
			c.errors = append(c.errors, RuntimeError{Message: "invalid unary operator", Span: e.Span()})
			return ""
		}
		return op + c.genExpression(e.Operand)
	case BinaryExpr:
		op, ok := binaryOps[e.Op]
		if !ok {
			c.errors = append(c.errors, RuntimeError{Message: "invalid binary operator", Span: e.Span()})
			return ""
		}
		return c.genExpression(e.Left) + " " + op + " " + c.genExpression(e.Right)
	case TernaryExpr:
		return c.genExpression(e.Cond) + " ? " + c.genExpression(e.Then) + " : " + c.genExpression(e.Else)
	case AssignmentExpr:
		return c.genExpression(e.Target) + " = " + c.genExpression(e.Value)
	case AddressOfExpr:
		return "&" + c.genExpression(e.Inner)
	case DereferenceExpr:
		return "*" + c.genExpression(e.Inner)
	case RangeExpr:
		// Intentionally invalid C: ranges have no runtime representation
		// yet and are reserved for a future desugaring pass.
		return c.genExpression(e.From) + ".." + c.genExpression(e.To)
	case EmptyExpr:
		return ""
	case ErrorExpr:
		if e.Err != nil {
			c.errors = append(c.errors, e.Err)
		}
		return ""
	default:
		c.errors = append(c.errors, RuntimeError{Message: "unhandled expression kind", Span: expr.Span()})
		return ""
	}
}

func (c *Codegen) genCall(e CallExpr) string {
	var args []string
	for _, arg := range e.Args {
		args = append(args, c.genExpression(arg))
	}
	if c.structs[e.Name] {
		return "&(struct " + e.Name + "){" + strings.Join(args, ", ") + "}"
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (c *Codegen) genGenericCall(e GenericCallExpr) string {
	var out strings.Builder
	params := c.genericTypes[e.Name]
	for i, param := range params {
		if i < len(e.TypeArgs) {
			out.WriteString("#define " + param + " " + c.genType(e.TypeArgs[i]) + "\n")
		}
	}
	var args []string
	for _, arg := range e.Args {
		args = append(args, c.genExpression(arg))
	}
	out.WriteString(e.Name + "(" + strings.Join(args, ", ") + ")")
	c.toUndef = append(c.toUndef, params...)
	return out.String()
}

func (c *Codegen) genMember(e MemberExpr) string {
	name, isIdent := e.Object.(IdentifierExpr)
	if !isIdent {
		return c.genExpression(e.Object) + "." + c.genExpression(e.Member)
	}

	if t, ok := c.variableTypes[name.Name]; ok {
		if call, isCall := e.Member.(CallExpr); isCall {
			var args []string
			args = append(args, name.Name)
			for _, arg := range call.Args {
				args = append(args, c.genExpression(arg))
			}
			return name.Name + "->" + call.Name + "(" + strings.Join(args, ", ") + ")"
		}
		if _, isPointer := t.(PointerType); isPointer {
			return name.Name + "->" + c.genExpression(e.Member)
		}
		c.errors = append(c.errors, RuntimeError{Message: "invalid member access", Span: e.Object.Span()})
		return ""
	}

	if t, ok := c.parameterTypes[name.Name]; ok {
		if _, isPointer := t.(PointerType); isPointer {
			return name.Name + "->" + c.genExpression(e.Member)
		}
		c.errors = append(c.errors, RuntimeError{Message: "invalid member access", Span: e.Object.Span()})
		return ""
	}

	if c.structs[name.Name] {
		memberID, isIdentMember := e.Member.(IdentifierExpr)
		if !isIdentMember {
			return name.Name + "." + c.genExpression(e.Member)
		}
		for _, field := range c.structFields[name.Name] {
			if field.Name != memberID.Name {
				continue
			}
			if _, isFunc := field.Type.(FunctionType); isFunc {
				return "__" + name.Name + "_" + memberID.Name
			}
			return name.Name + "." + memberID.Name
		}
		c.errors = append(c.errors, RuntimeError{Message: "unknown field " + memberID.Name + " in struct " + name.Name, Span: e.Object.Span()})
		return ""
	}

	if c.enums[name.Name] {
		switch member := e.Member.(type) {
		case CallExpr:
			var args []string
			for _, arg := range member.Args {
				args = append(args, c.genExpression(arg))
			}
			return "__" + name.Name + "_values[" + member.Name + "](" + strings.Join(args, ", ") + ")"
		case IdentifierExpr:
			return "__" + name.Name + "_values[" + member.Name + "]"
		default:
			c.errors = append(c.errors, RuntimeError{Message: "invalid enum member access", Span: e.Object.Span()})
			return ""
		}
	}

	return name.Name + "." + c.genExpression(e.Member)
}

