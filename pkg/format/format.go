package format

import (
	"io"

	"github.com/leapstack-labs/enginegen/pkg/dsl"
)

// File formats a complete document.
func File(f *dsl.File) string {
	p := newPrinter()
	p.formatFile(f)
	return p.String()
}

// Fprint writes the formatted document to w.
func Fprint(w io.Writer, f *dsl.File) error {
	_, err := io.WriteString(w, File(f))
	return err
}

// Expr formats a single expression.
func Expr(e dsl.Expr) string {
	p := newPrinter()
	p.formatExpr(e)
	return p.output.String()
}
