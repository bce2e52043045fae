/*
File    : mhando/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
)

func newTestParser(src string) *Parser {
	return NewParser(src, scope.NewTables())
}

func TestParseTopLevel_TopLevelExpressionIsWrappedAnonymous(t *testing.T) {
	p := newTestParser(`1 + 2 * 3`)
	item, done := p.ParseTopLevel()
	require.False(t, done)
	require.False(t, p.HasErrors())
	fn, ok := item.(*ast.FunctionAST)
	require.True(t, ok)
	assert.Equal(t, "__anon_expr1", fn.Proto.Name)
	bin, ok := fn.Body[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('+'), bin.Op)
	rhs, ok := bin.RHS.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('*'), rhs.Op)
}

func TestParseTopLevel_PrecedenceLeftAssociative(t *testing.T) {
	p := newTestParser(`1 - 2 - 3`)
	item, _ := p.ParseTopLevel()
	fn := item.(*ast.FunctionAST)
	outer := fn.Body[0].(*ast.BinaryExpr)
	assert.Equal(t, byte('-'), outer.Op)
	inner, ok := outer.LHS.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('-'), inner.Op)
	_, isNumber := outer.RHS.(*ast.NumberExpr)
	assert.True(t, isNumber)
}

func TestParseDefinition_Fib(t *testing.T) {
	p := newTestParser(`basa fib(n) { kana (n < 2) { dzosa n } kanaKuti { dzosa fib(n-1) + fib(n-2) } }`)
	item, done := p.ParseTopLevel()
	require.False(t, done)
	require.False(t, p.HasErrors(), "%v", p.Errors)
	fn, ok := item.(*ast.FunctionAST)
	require.True(t, ok)
	assert.Equal(t, "fib", fn.Proto.Name)
	assert.Equal(t, []string{"n"}, fn.Proto.Args)
	ifExpr, ok := fn.Body[0].(*ast.IfExpr)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseDefinition_UserBinaryOperator(t *testing.T) {
	tables := scope.NewTables()
	p := NewParser(`basa binary : 1 (a b) { b }`, tables)
	item, _ := p.ParseTopLevel()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	fn := item.(*ast.FunctionAST)
	assert.Equal(t, "binary:", fn.Proto.Name)
	assert.True(t, fn.Proto.IsBinaryOp())
	assert.Equal(t, 1, tables.BinopPrecedence[':'])

	p2 := NewParser(`1+2 : 3+4`, tables)
	item2, _ := p2.ParseTopLevel()
	require.False(t, p2.HasErrors(), "%v", p2.Errors)
	anon := item2.(*ast.FunctionAST)
	root, ok := anon.Body[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte(':'), root.Op)
	_, lhsIsPlus := root.LHS.(*ast.BinaryExpr)
	_, rhsIsPlus := root.RHS.(*ast.BinaryExpr)
	assert.True(t, lhsIsPlus)
	assert.True(t, rhsIsPlus)
}

func TestParseClass_MethodAndMember(t *testing.T) {
	p := newTestParser(`kirasi Point { scale = 2; basa dist(x) { dzosa x * x } }`)
	item, _ := p.ParseTopLevel()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	cls, ok := item.(*ast.ClassAST)
	require.True(t, ok)
	assert.Equal(t, "Point", cls.Name)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "dist", cls.Methods[0].Proto.Name)
	require.Len(t, cls.Members, 1)
	assert.Equal(t, "scale", cls.Members[0].Name)
}

func TestParseGlobalVar(t *testing.T) {
	p := newTestParser(`zitaGuru counter = 0`)
	item, _ := p.ParseTopLevel()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	gv, ok := item.(*ast.GlobalVarExpr)
	require.True(t, ok)
	require.Len(t, gv.Bindings, 1)
	assert.Equal(t, "counter", gv.Bindings[0].Name)
}

func TestParseTopLevel_ErrorRecoverySkipsOneToken(t *testing.T) {
	p := newTestParser(`, 1`)
	_, done := p.ParseTopLevel()
	assert.False(t, done)
	assert.True(t, p.HasErrors())

	item, done2 := p.ParseTopLevel()
	assert.False(t, done2)
	fn, ok := item.(*ast.FunctionAST)
	require.True(t, ok)
	_, isNumber := fn.Body[0].(*ast.NumberExpr)
	assert.True(t, isNumber)
}

func TestParseFor(t *testing.T) {
	p := newTestParser(`pakati (i = 1, n+1, 1) { s = s + i }`)
	expr, ok := p.parseExpression(0)
	require.True(t, ok)
	forExpr, ok := expr.(*ast.ForExpr)
	require.True(t, ok)
	assert.Equal(t, "i", forExpr.Var)
	assert.NotNil(t, forExpr.Step)
}
