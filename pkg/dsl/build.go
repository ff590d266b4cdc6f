package dsl

// Shorthand constructors used when assembling documents.

// N returns a number literal.
func N(v float64) *Number { return &Number{Value: v} }

// Q returns `v * units.unit`.
func Q(v float64, unit string) *Quantity { return &Quantity{Value: v, Unit: unit} }

// Id returns an identifier.
func Id(name string) *Ident { return &Ident{Name: name} }

// Str returns a string literal.
func Str(s string) *String { return &String{Value: s} }

// B returns a boolean literal.
func B(v bool) *Bool { return &Bool{Value: v} }

// Op returns `left op right`.
func Op(left Expr, op string, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Named returns a `name: value` argument.
func Named(name string, value Expr) Arg { return Arg{Name: name, Value: value} }

// Pos returns a positional argument.
func Pos(value Expr) Arg { return Arg{Value: value} }

// Call returns a single-line call expression.
func Call(fn string, args ...Arg) *CallExpr { return &CallExpr{Func: fn, Args: args} }

// Block returns a call expression with one argument per line.
func Block(fn string, args ...Arg) *CallExpr {
	return &CallExpr{Func: fn, Args: args, Multiline: true}
}

// Label returns `label name(value)`.
func Label(name string, value Expr) *Instance {
	return &Instance{Type: "label", Name: name, Args: []Arg{Pos(value)}}
}

// NewNode returns a node declaration.
func NewNode(public bool, name string, body ...Stmt) *NodeDecl {
	return &NodeDecl{Public: public, Name: name, Body: body}
}

// Inspect traverses the tree rooted at n in depth-first order, calling fn
// for each node. If fn returns false, Inspect skips the node's children.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *File:
		for _, s := range v.Stmts {
			Inspect(s, fn)
		}
	case *NodeDecl:
		for _, s := range v.Body {
			Inspect(s, fn)
		}
	case *Instance:
		inspectArgs(v.Args, fn)
	case *Input:
		if v.Default != nil {
			Inspect(v.Default, fn)
		}
	case *Output:
		Inspect(v.Value, fn)
	case *Chain:
		for _, c := range v.Calls {
			Inspect(c, fn)
		}
	case *CallStmt:
		Inspect(v.Call, fn)
	case *Binary:
		Inspect(v.Left, fn)
		Inspect(v.Right, fn)
	case *Paren:
		Inspect(v.X, fn)
	case *CallExpr:
		inspectArgs(v.Args, fn)
	case *MethodChain:
		Inspect(v.Recv, fn)
		for _, c := range v.Calls {
			Inspect(c, fn)
		}
	}
}

func inspectArgs(args []Arg, fn func(Node) bool) {
	for _, a := range args {
		Inspect(a.Value, fn)
	}
}

// FindNode returns the top-level node declaration with the given name.
func (f *File) FindNode(name string) *NodeDecl {
	for _, s := range f.Stmts {
		if d, ok := s.(*NodeDecl); ok && d.Name == name {
			return d
		}
	}
	return nil
}

// Instances returns the instances of typ declared directly in the body.
func (d *NodeDecl) Instances(typ string) []*Instance {
	var out []*Instance
	for _, s := range d.Body {
		if inst, ok := s.(*Instance); ok && inst.Type == typ {
			out = append(out, inst)
		}
	}
	return out
}

// Chains returns the chains applied to target directly in the body.
func (d *NodeDecl) Chains(target string) []*Chain {
	var out []*Chain
	for _, s := range d.Body {
		if c, ok := s.(*Chain); ok && c.Target == target {
			out = append(out, c)
		}
	}
	return out
}

// Arg returns the value of the named argument, or nil.
func (i *Instance) Arg(name string) Expr {
	return findArg(i.Args, name)
}

// Arg returns the value of the named argument, or nil.
func (c *CallExpr) Arg(name string) Expr {
	return findArg(c.Args, name)
}

func findArg(args []Arg, name string) Expr {
	for _, a := range args {
		if a.Name == name {
			return a.Value
		}
	}
	return nil
}
