/*
File    : mhando/ir/emitter_test.go
*/
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
	"tinygo.org/x/go-llvm"
)

func newTestEmitter(t *testing.T) *Emitter {
	t.Helper()
	tables := scope.NewTables()
	e := NewEmitter("test", tables)
	fnType := llvm.FunctionType(e.doubleTy, nil, false)
	fn := e.Module.AddFunction("__test_entry", fnType)
	entry := e.Ctx.AddBasicBlock(fn, "entry")
	e.Builder.SetInsertPointAtEnd(entry)
	e.locals = scope.NewLocals[llvm.Value]()
	return e
}

func TestEmitNumber(t *testing.T) {
	e := newTestEmitter(t)
	v, err := e.emitNumber(&ast.NumberExpr{Value: 3.5})
	require.NoError(t, err)
	assert.Equal(t, llvm.DoubleTypeKind, v.Type().TypeKind())
}

func TestEmitBinaryArithmetic(t *testing.T) {
	e := newTestEmitter(t)
	expr := &ast.BinaryExpr{
		Op:  '+',
		LHS: &ast.NumberExpr{Value: 1},
		RHS: &ast.BinaryExpr{Op: '*', LHS: &ast.NumberExpr{Value: 2}, RHS: &ast.NumberExpr{Value: 3}},
	}
	v, err := e.Emit(expr)
	require.NoError(t, err)
	assert.False(t, v.IsNil())
}

func TestEmitVariable_UnknownNameErrors(t *testing.T) {
	e := newTestEmitter(t)
	_, err := e.Emit(&ast.VariableExpr{Name: "ndatadzwa"})
	assert.Error(t, err)
}

func TestEmitVariable_LocalResolvesBeforeGlobal(t *testing.T) {
	e := newTestEmitter(t)
	fn := e.Builder.GetInsertBlock().Parent()
	alloca := e.createEntryAlloca(fn, "x")
	e.Builder.CreateStore(llvm.ConstFloat(e.doubleTy, 42), alloca)
	e.locals.Set("x", alloca)

	e.Tables.Globals["x"] = &scope.Global{Name: "x", Num: 0}

	v, err := e.Emit(&ast.VariableExpr{Name: "x"})
	require.NoError(t, err)
	assert.False(t, v.IsNil())
	assert.True(t, e.Module.NamedGlobal("x").IsNil(), "global x must not be materialized when a local x is bound")
}

func TestEmitUnknownFunctionCallErrors(t *testing.T) {
	e := newTestEmitter(t)
	_, err := e.Emit(&ast.CallExpr{Callee: "haizve"})
	assert.Error(t, err)
}

func TestEmitCall_ArityMismatchErrors(t *testing.T) {
	e := newTestEmitter(t)
	e.Tables.FunctionProtos["foo"] = &ast.Prototype{Name: "foo", Args: []string{"a", "b"}}
	_, err := e.Emit(&ast.CallExpr{Callee: "foo", Args: []ast.Expr{&ast.NumberExpr{Value: 1}}})
	assert.Error(t, err)
}

func TestEmitAssign_RequiresVariableTarget(t *testing.T) {
	e := newTestEmitter(t)
	_, err := e.Emit(&ast.BinaryExpr{Op: '=', LHS: &ast.NumberExpr{Value: 1}, RHS: &ast.NumberExpr{Value: 2}})
	assert.Error(t, err)
}

func TestEmitString_ProducesPointerType(t *testing.T) {
	e := newTestEmitter(t)
	v, err := e.Emit(&ast.StringExpr{Value: "mhoro"})
	require.NoError(t, err)
	assert.Equal(t, llvm.PointerTypeKind, v.Type().TypeKind())
}
