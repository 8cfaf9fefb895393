package slc

import (
	"strconv"
	"strings"
)

// JSONAST serializes a statement list to JSON for editor tooling. It
// is deliberately incomplete: only the statement kinds an editor's
// outline view needs (annotations, enums, externals, functions, and
// bare expressions) are handled. Everything else — and all expression
// and type serialization — falls back to an empty value, matching the
// coverage the original IDE support plan ever reached.
type JSONAST struct {
	Filename   string
	Statements []Stmt
}

// NewJSONAST returns a JSONAST for the given filename and statements.
func NewJSONAST(filename string, statements []Stmt) *JSONAST {
	return &JSONAST{Filename: filename, Statements: statements}
}

// Marshal renders the statement list as a JSON array.
func (j *JSONAST) Marshal() string {
	var parts []string
	for _, stmt := range j.Statements {
		parts = append(parts, j.jsonifyStatement(stmt))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func jsonString(s string) string {
	var out strings.Builder
	out.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			out.WriteByte('\\')
			out.WriteByte(s[i])
		default:
			out.WriteByte(s[i])
		}
	}
	out.WriteByte('"')
	return out.String()
}

func (j *JSONAST) jsonifyLocation(span Span) string {
	return "{\"start\": " + strconv.Itoa(span.Start) + ", \"end\": " + strconv.Itoa(span.End) + "}"
}

func (j *JSONAST) jsonifyStatement(stmt Stmt) string {
	switch s := stmt.(type) {
	case AnnotatedStmt:
		var uses []string
		for _, use := range s.Uses {
			uses = append(uses, j.jsonifyAnnotationUse(use))
		}
		return "{\"type\": \"Annotated\", \"annotations\": [" + strings.Join(uses, ", ") +
			"], \"statement\": " + j.jsonifyStatement(s.Inner) +
			", \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	case AnnotationStmt:
		var fields []string
		for _, f := range s.Fields {
			fields = append(fields, jsonString(f.Name)+": "+j.jsonifyType(f.Type))
		}
		return "{\"type\": \"Annotation\", \"name\": " + jsonString(s.Name) +
			", \"parameters\": [" + strings.Join(fields, ", ") +
			"], \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	case EnumStmt:
		var values []string
		for _, v := range s.Variants {
			values = append(values, jsonString(v.Name)+": "+j.jsonifyExpression(v.Value))
		}
		return "{\"type\": \"Enum\", \"name\": " + jsonString(s.Name) +
			", \"value_type\": " + j.jsonifyType(s.ValueType) +
			", \"values\": [" + strings.Join(values, ", ") +
			"], \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	case ExpressionStmt:
		return "{\"type\": \"Expression\", \"expression\": " + j.jsonifyExpression(s.Expr) +
			", \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	case ExternalStmt:
		return "{\"type\": \"External\", \"statement\": " + j.jsonifyStatement(s.Inner) +
			", \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	case FunctionStmt:
		var params []string
		for _, p := range s.Params {
			params = append(params, jsonString(p.Name)+": "+j.jsonifyType(p.Type))
		}
		var body []string
		for _, stmt := range s.Body {
			body = append(body, j.jsonifyStatement(stmt))
		}
		return "{\"type\": \"Function\", \"name\": " + jsonString(s.Name) +
			", \"parameters\": [" + strings.Join(params, ", ") +
			"], \"return_type\": " + j.jsonifyType(s.Return) +
			", \"body\": [" + strings.Join(body, ", ") +
			"], \"location\": " + j.jsonifyLocation(s.Span()) + "}"
	default:
		return ""
	}
}

func (j *JSONAST) jsonifyAnnotationUse(use AnnotationUse) string {
	var args []string
	for _, arg := range use.Args {
		args = append(args, j.jsonifyExpression(arg))
	}
	return "{\"name\": " + jsonString(use.Name) + ", \"arguments\": [" + strings.Join(args, ", ") + "]}"
}

// jsonifyExpression is unimplemented: it returns an empty string for
// every expression, including those the statement kinds above pass it
// for their own fields — same gap the original IDE support left.
func (j *JSONAST) jsonifyExpression(Expr) string { return "" }

// jsonifyType is likewise unimplemented.
func (j *JSONAST) jsonifyType(Type) string { return "" }
