package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationInComputesLineAndColumn(t *testing.T) {
	source := []byte("line one\nline two\nline three")

	tests := []struct {
		Name     string
		Cursor   int
		Expected Location
	}{
		{Name: "start of file", Cursor: 0, Expected: Location{Line: 1, Column: 1}},
		{Name: "mid first line", Cursor: 5, Expected: Location{Line: 1, Column: 6}},
		{Name: "start of second line", Cursor: 9, Expected: Location{Line: 2, Column: 1}},
		{Name: "start of third line", Cursor: 18, Expected: Location{Line: 3, Column: 1}},
		{Name: "past end of source clamps", Cursor: 1000, Expected: Location{Line: 3, Column: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, LocationIn(source, tt.Cursor))
		})
	}
}

func TestDiagnosticFormat(t *testing.T) {
	source := []byte("var x = y\n")
	err := TypeError{Message: "unknown type Y", Span: NewSpan(8, 9)}
	assert.Equal(t, "[main.sl:1:9] TypeError: unknown type Y", Diagnostic("main.sl", source, err))
}
