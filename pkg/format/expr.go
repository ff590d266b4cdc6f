package format

import (
	"strconv"

	"github.com/leapstack-labs/enginegen/pkg/dsl"
)

func (p *Printer) formatExpr(e dsl.Expr) {
	if e == nil {
		return
	}

	switch ex := e.(type) {
	case *dsl.Number:
		p.write(Number(ex.Value))
	case *dsl.Quantity:
		p.write(Number(ex.Value))
		p.write(" * units.")
		p.write(ex.Unit)
	case *dsl.Ident:
		p.write(ex.Name)
	case *dsl.String:
		p.write(strconv.Quote(ex.Value))
	case *dsl.Bool:
		p.write(strconv.FormatBool(ex.Value))
	case *dsl.Binary:
		p.formatExpr(ex.Left)
		p.space()
		p.write(ex.Op)
		p.space()
		p.formatExpr(ex.Right)
	case *dsl.Paren:
		p.write("(")
		p.formatExpr(ex.X)
		p.write(")")
	case *dsl.CallExpr:
		p.formatCall(ex)
	case *dsl.MethodChain:
		p.formatExpr(ex.Recv)
		p.indent()
		for _, call := range ex.Calls {
			p.writeln()
			p.write(".")
			p.formatCall(call)
		}
		p.dedent()
	}
}

func (p *Printer) formatCall(c *dsl.CallExpr) {
	p.write(c.Func)
	p.formatArgs(c.Args, c.Multiline)
}

// formatArgs prints a parenthesized argument list. Multiline lists put one
// argument per line, indented one level, with the closing paren back at
// the enclosing level.
func (p *Printer) formatArgs(args []dsl.Arg, multiline bool) {
	p.write("(")
	if multiline && len(args) > 0 {
		p.writeln()
		p.indent()
		p.formatList(len(args), func(i int) { p.formatArg(args[i]) }, ",", true)
		p.writeln()
		p.dedent()
	} else {
		p.formatList(len(args), func(i int) { p.formatArg(args[i]) }, ", ", false)
	}
	p.write(")")
}

func (p *Printer) formatArg(a dsl.Arg) {
	if a.Name != "" {
		p.write(a.Name)
		p.write(": ")
	}
	p.formatExpr(a.Value)
}
