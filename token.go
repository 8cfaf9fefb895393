package slc

// Kind tags a Token with its lexical category.
type Kind int

const (
	// Literals
	Identifier Kind = iota
	StringLit
	CharLit
	NumberLit

	// Keywords
	KwAnnotation
	KwStruct
	KwEnd
	KwEnum
	KwExternal
	KwInline
	KwFunc
	KwType
	KwVar
	KwConst
	KwReturn
	KwImport
	KwAs
	KwSizeOf
	KwNew
	KwTrue
	KwFalse
	KwNull
	KwIf
	KwElse
	KwWhile
	KwFor
	KwIn
	KwSwitch
	KwCase
	KwBreak
	KwContinue
	KwDefault

	// Primitive type names
	KwInt
	KwUsize
	KwString
	KwCString
	KwChar
	KwBool
	KwVoid

	// Type qualifiers
	KwVolatile
	KwConst_ // (reserved, see NOTE below)
	KwRestrict

	// Punctuation and operators
	Colon
	Comma
	Dot
	At
	Pipe
	Ampersand
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Equal
	EqualEqual
	Bang
	BangEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	Plus
	PlusEqual
	Minus
	MinusEqual
	Star
	StarEqual
	Slash
	SlashEqual
	Percent
	PercentEqual
	FatArrow
	RangeOp // ..

	// Special
	Newline
	TokError
	EndOfFile
)

// NOTE: `const` is both a statement keyword (KwConst, "const X: T =
// value") and a type qualifier (applied as a prefix to a type, e.g.
// "const int*"). The lexer only ever produces KwConst for the text
// "const"; KwConst_ is unused and kept only so the qualifier-group
// comment block above reads the way spec.md documents it (three
// qualifiers: volatile, const, restrict). The parser disambiguates by
// position, not by token kind.

var kindNames = map[Kind]string{
	Identifier: "Identifier", StringLit: "StringLit", CharLit: "CharLit", NumberLit: "NumberLit",
	KwAnnotation: "annotation", KwStruct: "struct", KwEnd: "end", KwEnum: "enum",
	KwExternal: "external", KwInline: "inline", KwFunc: "func", KwType: "type",
	KwVar: "var", KwConst: "const", KwReturn: "return", KwImport: "import",
	KwAs: "as", KwSizeOf: "sizeof", KwNew: "new", KwTrue: "true", KwFalse: "false",
	KwNull: "null", KwIf: "if", KwElse: "else", KwWhile: "while", KwFor: "for",
	KwIn: "in", KwSwitch: "switch", KwCase: "case", KwBreak: "break",
	KwContinue: "continue", KwDefault: "default",
	KwInt: "int", KwUsize: "usize", KwString: "string", KwCString: "cstring",
	KwChar: "char", KwBool: "bool", KwVoid: "void",
	KwVolatile: "volatile", KwRestrict: "restrict",
	Colon: ":", Comma: ",", Dot: ".", At: "@", Pipe: "|", Ampersand: "&",
	OpenParen: "(", CloseParen: ")", OpenBracket: "[", CloseBracket: "]",
	Equal: "=", EqualEqual: "==", Bang: "!", BangEqual: "!=",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Plus: "+", PlusEqual: "+=", Minus: "-", MinusEqual: "-=",
	Star: "*", StarEqual: "*=", Slash: "/", SlashEqual: "/=",
	Percent: "%", PercentEqual: "%=", FatArrow: "=>", RangeOp: "..",
	Newline: "Newline", TokError: "Error", EndOfFile: "EndOfFile",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// keywords maps an identifier's text to its keyword Kind. Populated
// from spec.md §6's exhaustive keyword set.
var keywords = map[string]Kind{
	"annotation": KwAnnotation,
	"struct":     KwStruct,
	"end":        KwEnd,
	"enum":       KwEnum,
	"external":   KwExternal,
	"inline":     KwInline,
	"func":       KwFunc,
	"type":       KwType,
	"var":        KwVar,
	"const":      KwConst,
	"return":     KwReturn,
	"import":     KwImport,
	"as":         KwAs,
	"sizeof":     KwSizeOf,
	"new":        KwNew,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"in":         KwIn,
	"switch":     KwSwitch,
	"case":       KwCase,
	"break":      KwBreak,
	"continue":   KwContinue,
	"default":    KwDefault,
	"int":        KwInt,
	"usize":      KwUsize,
	"string":     KwString,
	"cstring":    KwCString,
	"char":       KwChar,
	"bool":       KwBool,
	"void":       KwVoid,
	"volatile":   KwVolatile,
	"restrict":   KwRestrict,
}

// reservedUnimplemented names the keywords the lexer recognizes but
// the parser has no production for (spec.md §6 note, §9 open
// question). Used by the parser to reject them explicitly instead of
// silently falling through to an expression statement.
var reservedUnimplemented = map[Kind]bool{
	KwFor: true, KwIn: true, KwSwitch: true, KwCase: true,
	KwBreak: true, KwContinue: true, KwDefault: true,
}

// Token is a tagged record with a kind, its literal text, and the
// span it occupies in the source.
type Token struct {
	Kind  Kind
	Value string
	Span  Span
}
