package slc

import "github.com/icxd/slc/ascii"

// DiagnosticColored renders the same message as Diagnostic but wraps
// the whole line in the theme's error color, mirroring the original
// implementation's behavior of coloring the entire diagnostic line
// rather than just the error kind.
func DiagnosticColored(file string, source []byte, err error) string {
	return ascii.Color(ascii.DefaultTheme.Error, "%s", Diagnostic(file, source, err))
}
