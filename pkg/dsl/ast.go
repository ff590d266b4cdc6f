// Package dsl is a structural model of the simulator's node language.
//
// A File is a list of statements: imports, node instantiations, node
// declarations with bodies, input/output ports, method chains and calls.
// The model says what a document contains; pkg/format decides how it is
// printed.
package dsl

// Node is the base interface for all document nodes.
type Node interface {
	node()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// File is a complete document.
type File struct {
	Stmts []Stmt
}

// =============================================================================
// Statements
// =============================================================================

// Import is `import "path"`.
type Import struct {
	Path string
}

// Instance is `type name(args)`, e.g. `crankshaft c0(...)` or
// `label stroke(86 * units.mm)`.
type Instance struct {
	Type      string
	Name      string
	Args      []Arg
	Multiline bool
}

// NodeDecl is `public node name { body }` or `private node name { body }`.
type NodeDecl struct {
	Public bool
	Name   string
	Body   []Stmt
}

// Input is `input name;` or `input name: default;`.
type Input struct {
	Name    string
	Default Expr // nil for a required input
}

// Output is `output name: value;` or, with Alias, `alias output name: value;`.
type Output struct {
	Name  string
	Value Expr
	Alias bool
}

// Chain applies method calls to a target, one call per line:
//
//	c0
//	    .add_rod_journal(rj0)
//	    .add_rod_journal(rj1)
//
// An Inline chain with a single call prints as `engine.add_crankshaft(c0)`.
type Chain struct {
	Target string
	Calls  []*CallExpr
	Inline bool
}

// CallStmt is a bare call such as `run(...)` or `main()`.
type CallStmt struct {
	Call *CallExpr
}

// Blank is an empty line.
type Blank struct{}

// Comment is a `//` line comment.
type Comment struct {
	Text string
}

// =============================================================================
// Expressions
// =============================================================================

// Number is a plain numeric literal.
type Number struct {
	Value float64
}

// Quantity is a number scaled by a unit token: `86 * units.mm`.
type Quantity struct {
	Value float64
	Unit  string // unit token without the "units." prefix
}

// Ident is a (possibly dotted) name: `stroke`, `wires.wire0`, `units.cc`.
type Ident struct {
	Name string
}

// String is a double-quoted string literal.
type String struct {
	Value string
}

// Bool is `true` or `false`.
type Bool struct {
	Value bool
}

// Binary is `left op right`, printed without parentheses.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Paren wraps an expression in parentheses.
type Paren struct {
	X Expr
}

// CallExpr is `func(args)`. Multiline puts each argument on its own line.
type CallExpr struct {
	Func      string
	Args      []Arg
	Multiline bool
}

// MethodChain is an expression followed by method calls, one per line:
//
//	transmission(max_clutch_torque: 1000 * units.lb_ft)
//	    .add_gear(2.8)
type MethodChain struct {
	Recv  Expr
	Calls []*CallExpr
}

// Arg is a call argument; Name is empty for positional arguments.
type Arg struct {
	Name  string
	Value Expr
}

func (*File) node()     {}
func (*Import) node()   {}
func (*Instance) node() {}
func (*NodeDecl) node() {}
func (*Input) node()    {}
func (*Output) node()   {}
func (*Chain) node()    {}
func (*CallStmt) node() {}
func (*Blank) node()    {}
func (*Comment) node()  {}

func (*Import) stmtNode()   {}
func (*Instance) stmtNode() {}
func (*NodeDecl) stmtNode() {}
func (*Input) stmtNode()    {}
func (*Output) stmtNode()   {}
func (*Chain) stmtNode()    {}
func (*CallStmt) stmtNode() {}
func (*Blank) stmtNode()    {}
func (*Comment) stmtNode()  {}

func (*Number) node()      {}
func (*Quantity) node()    {}
func (*Ident) node()       {}
func (*String) node()      {}
func (*Bool) node()        {}
func (*Binary) node()      {}
func (*Paren) node()       {}
func (*CallExpr) node()    {}
func (*MethodChain) node() {}

func (*Number) exprNode()      {}
func (*Quantity) exprNode()    {}
func (*Ident) exprNode()       {}
func (*String) exprNode()      {}
func (*Bool) exprNode()        {}
func (*Binary) exprNode()      {}
func (*Paren) exprNode()       {}
func (*CallExpr) exprNode()    {}
func (*MethodChain) exprNode() {}
