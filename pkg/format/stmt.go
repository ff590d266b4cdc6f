package format

import (
	"strconv"

	"github.com/leapstack-labs/enginegen/pkg/dsl"
)

func (p *Printer) formatFile(f *dsl.File) {
	for _, s := range f.Stmts {
		p.formatStmt(s)
	}
}

func (p *Printer) formatStmt(s dsl.Stmt) {
	switch st := s.(type) {
	case *dsl.Import:
		p.write("import ")
		p.write(strconv.Quote(st.Path))
		p.writeln()
	case *dsl.Instance:
		p.formatInstance(st)
	case *dsl.NodeDecl:
		p.formatNodeDecl(st)
	case *dsl.Input:
		p.write("input ")
		p.write(st.Name)
		if st.Default != nil {
			p.write(": ")
			p.formatExpr(st.Default)
		}
		p.write(";")
		p.writeln()
	case *dsl.Output:
		if st.Alias {
			p.write("alias ")
		}
		p.write("output ")
		p.write(st.Name)
		p.write(": ")
		p.formatExpr(st.Value)
		p.write(";")
		p.writeln()
	case *dsl.Chain:
		p.formatChain(st)
	case *dsl.CallStmt:
		p.formatCall(st.Call)
		p.writeln()
	case *dsl.Blank:
		p.writeln()
	case *dsl.Comment:
		p.write("// ")
		p.write(st.Text)
		p.writeln()
	}
}

func (p *Printer) formatInstance(inst *dsl.Instance) {
	p.write(inst.Type)
	p.space()
	p.write(inst.Name)
	p.formatArgs(inst.Args, inst.Multiline)
	p.writeln()
}

func (p *Printer) formatNodeDecl(n *dsl.NodeDecl) {
	if n.Public {
		p.write("public node ")
	} else {
		p.write("private node ")
	}
	p.write(n.Name)
	p.write(" {")
	p.writeln()

	p.indent()
	for _, s := range n.Body {
		p.formatStmt(s)
	}
	p.dedent()

	p.write("}")
	p.writeln()
}

func (p *Printer) formatChain(c *dsl.Chain) {
	if c.Inline {
		p.write(c.Target)
		for _, call := range c.Calls {
			p.write(".")
			p.formatCall(call)
		}
		p.writeln()
		return
	}

	p.write(c.Target)
	p.writeln()
	p.indent()
	for _, call := range c.Calls {
		p.write(".")
		p.formatCall(call)
		p.writeln()
	}
	p.dedent()
}
