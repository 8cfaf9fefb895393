package slc

// Result holds everything a compile pass produced: the source text
// (kept for diagnostic rendering), the emitted C, and any errors
// accumulated along the way.
type Result struct {
	Source []byte
	Output string
	Errors []error
}

// Compile runs the lexer, parser, and codegen over source in
// sequence, halting at the first stage that reports errors — mirroring
// the original compiler's behavior of never generating code for input
// it couldn't fully lex or parse.
func Compile(source []byte) Result {
	lexer := NewLexer(source)
	tokens := lexer.Lex()
	if errs := lexer.Errors(); len(errs) > 0 {
		return Result{Source: source, Errors: errs}
	}

	parser := NewParser(tokens)
	statements := parser.Parse()
	if errs := parser.Errors(); len(errs) > 0 {
		return Result{Source: source, Errors: errs}
	}

	codegen := NewCodegen()
	output := codegen.Generate(statements)
	if errs := codegen.Errors(); len(errs) > 0 {
		return Result{Source: source, Errors: errs}
	}

	return Result{Source: source, Output: output}
}

// Diagnostics renders every accumulated error through Diagnostic,
// using r.Source for line/column resolution.
func (r Result) Diagnostics(file string) []string {
	var lines []string
	for _, err := range r.Errors {
		lines = append(lines, Diagnostic(file, r.Source, err))
	}
	return lines
}

// DiagnosticsColored is Diagnostics rendered through the ascii theme.
func (r Result) DiagnosticsColored(file string) []string {
	var lines []string
	for _, err := range r.Errors {
		lines = append(lines, DiagnosticColored(file, r.Source, err))
	}
	return lines
}
