// Command slc compiles an SL source file to portable C.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/icxd/slc"
)

type args struct {
	inputPath  string
	outputPath string
	noColor    bool
	astOnly    bool
	tokensOnly bool
}

func parseArgs() args {
	var a args
	flag.StringVar(&a.outputPath, "o", "", "output path (default: input path with .sl replaced by .c)")
	flag.BoolVar(&a.noColor, "no-color", false, "disable colorized diagnostics")
	flag.BoolVar(&a.astOnly, "ast-only", false, "print the JSON AST and exit without generating C")
	flag.BoolVar(&a.tokensOnly, "tokens-only", false, "print the token stream and exit without parsing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: slc [flags] <input.sl>")
		os.Exit(2)
	}
	a.inputPath = flag.Arg(0)
	return a
}

// outputPathFor replaces the first ".sl" occurrence with ".c",
// matching the original compiler's filename.replace(".sl", ".c")
// rather than a generic extension swap.
func outputPathFor(inputPath string) string {
	return strings.Replace(inputPath, ".sl", ".c", 1)
}

func main() {
	a := parseArgs()

	source, err := os.ReadFile(a.inputPath)
	if err != nil {
		log.Fatalf("slc: cannot read %s: %v", a.inputPath, err)
	}

	if a.tokensOnly {
		lexer := slc.NewLexer(source)
		tokens := lexer.Lex()
		for _, tok := range tokens {
			fmt.Printf("%-12s %-20q %s\n", tok.Kind, tok.Value, tok.Span)
		}
		for _, e := range lexer.Errors() {
			printError(a, source, e)
		}
		return
	}

	if a.astOnly {
		lexer := slc.NewLexer(source)
		tokens := lexer.Lex()
		if errs := lexer.Errors(); len(errs) > 0 {
			for _, e := range errs {
				printError(a, source, e)
			}
			return
		}
		parser := slc.NewParser(tokens)
		statements := parser.Parse()
		if errs := parser.Errors(); len(errs) > 0 {
			for _, e := range errs {
				printError(a, source, e)
			}
			return
		}
		fmt.Println(slc.NewJSONAST(a.inputPath, statements).Marshal())
		return
	}

	result := slc.Compile(source)
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			printError(a, source, e)
		}
		return
	}

	outputPath := a.outputPath
	if outputPath == "" {
		outputPath = outputPathFor(a.inputPath)
	}
	if err := os.WriteFile(outputPath, []byte(result.Output), 0644); err != nil {
		log.Fatalf("slc: cannot write %s: %v", outputPath, err)
	}
}

func printError(a args, source []byte, err error) {
	if a.noColor {
		fmt.Println(slc.Diagnostic(a.inputPath, source, err))
	} else {
		fmt.Println(slc.DiagnosticColored(a.inputPath, source, err))
	}
}
