/*
File    : mhando/ast/ast.go
*/

// Package ast defines the mhando abstract syntax tree.
//
// REDESIGN FLAG (spec.md §9): the original compiler dispatches emission
// through virtual methods on a polymorphic expression base. Here Expr is
// a closed sum type instead — every variant implements the unexported
// exprNode method, so no type outside this package can satisfy Expr, and
// the ir package's emission switch can be checked against this file by a
// reader without chasing a v-table. Adding a fourteenth variant means adding
// a fourteenth case to every switch that matters; the compiler won't enforce
// that for you (Go has no sealed-interface exhaustiveness check), but it
// keeps the set discoverable in one place.
package ast

// Expr is any node that can appear where an expression is expected.
type Expr interface {
	exprNode()
}

// NumberExpr is a double-precision float literal.
type NumberExpr struct{ Value float64 }

// StringExpr is a string literal, lowered to an interned global pointer
// at emission time.
type StringExpr struct{ Value string }

// VariableExpr references a local or global binding by name.
type VariableExpr struct{ Name string }

// UnaryExpr applies a user-defined prefix operator.
type UnaryExpr struct {
	Op      byte
	Operand Expr
}

// BinaryExpr applies a built-in or user-defined infix operator. '=' with
// a VariableExpr LHS is an assignment, not an operator dispatch.
type BinaryExpr struct {
	Op  byte
	LHS Expr
	RHS Expr
}

// CallExpr calls a named function (possibly qualified as Class.method).
type CallExpr struct {
	Callee string
	Args   []Expr
}

// IfExpr is kana (cond) { then } [kanaKuti { else }].
type IfExpr struct {
	Cond Expr
	Then []Expr
	Else []Expr // nil when no kanaKuti clause
}

// WhileExpr is kusvika (cond) { body }.
type WhileExpr struct {
	Cond Expr
	Body []Expr
}

// ForExpr is pakati (Var = Start, End[, Step]) { Body }.
type ForExpr struct {
	Var   string
	Start Expr
	End   Expr
	Step  Expr // nil means 1.0
	Body  []Expr
}

// Binding is one name[= init] clause within a zita/zitaGuru form.
type Binding struct {
	Name string
	Init Expr // nil means "default to 0.0" for zita, required for zitaGuru
}

// VarExpr is zita bindings mu body — bindings scoped to Body.
type VarExpr struct {
	Bindings []Binding
	Body     []Expr
}

// GlobalVarExpr is zitaGuru bindings — no body, process-wide lifetime.
type GlobalVarExpr struct {
	Bindings []Binding
}

// BlockExpr is a brace-delimited statement sequence; its value is the
// value of its last statement.
type BlockExpr struct {
	Stmts []Expr
}

// ReturnExpr is dzosa value — an early return from the enclosing function.
type ReturnExpr struct{ Value Expr }

func (*NumberExpr) exprNode()    {}
func (*StringExpr) exprNode()    {}
func (*VariableExpr) exprNode()  {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*CallExpr) exprNode()      {}
func (*IfExpr) exprNode()        {}
func (*WhileExpr) exprNode()     {}
func (*ForExpr) exprNode()       {}
func (*VarExpr) exprNode()       {}
func (*GlobalVarExpr) exprNode() {}
func (*BlockExpr) exprNode()     {}
func (*ReturnExpr) exprNode()    {}

// Prototype is a function signature, independent of any body.
//
// IsOperator && len(Args) == 1 means a unary operator definition;
// IsOperator && len(Args) == 2 means a binary operator definition. The
// operator character is the last byte of Name in both cases (e.g. a
// binary ":" definition has Name == "binary:").
type Prototype struct {
	Name       string
	Args       []string
	IsOperator bool
	Precedence int
}

// OperatorChar returns the operator byte this prototype installs, valid
// only when IsOperator is true.
func (p *Prototype) OperatorChar() byte {
	return p.Name[len(p.Name)-1]
}

// IsUnaryOp reports whether this prototype declares a unary operator.
func (p *Prototype) IsUnaryOp() bool {
	return p.IsOperator && len(p.Args) == 1
}

// IsBinaryOp reports whether this prototype declares a binary operator.
func (p *Prototype) IsBinaryOp() bool {
	return p.IsOperator && len(p.Args) == 2
}

// FunctionAST is a prototype paired with a body. QualifiedName is set for
// class methods ("Class.method"); free functions leave it empty and use
// Proto.Name.
type FunctionAST struct {
	Proto         *Prototype
	Body          []Expr
	QualifiedName string
}

// EffectiveName is the name this function is emitted under.
func (f *FunctionAST) EffectiveName() string {
	if f.QualifiedName != "" {
		return f.QualifiedName
	}
	return f.Proto.Name
}

// ClassAST is a class declaration: methods lower to Class.method
// functions, members lower to Class.member globals (§3.5).
type ClassAST struct {
	Name    string
	Methods []*FunctionAST
	Members []Binding
}
