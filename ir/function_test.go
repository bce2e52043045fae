/*
File    : mhando/ir/function_test.go
*/
package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
)

// fibFunctionAST hand-builds the AST for:
//   basa fib(n) { kana (n < 2) { dzosa n } kanaKuti { dzosa fib(n-1) + fib(n-2) } }
// mirroring what parser.TestParseDefinition_Fib already verifies the
// parser would produce, so EmitFunction is tested independent of the
// parser.
func fibFunctionAST() *ast.FunctionAST {
	proto := &ast.Prototype{Name: "fib", Args: []string{"n"}}
	body := []ast.Expr{
		&ast.IfExpr{
			Cond: &ast.BinaryExpr{Op: '<', LHS: &ast.VariableExpr{Name: "n"}, RHS: &ast.NumberExpr{Value: 2}},
			Then: []ast.Expr{&ast.ReturnExpr{Value: &ast.VariableExpr{Name: "n"}}},
			Else: []ast.Expr{&ast.ReturnExpr{Value: &ast.BinaryExpr{
				Op: '+',
				LHS: &ast.CallExpr{Callee: "fib", Args: []ast.Expr{
					&ast.BinaryExpr{Op: '-', LHS: &ast.VariableExpr{Name: "n"}, RHS: &ast.NumberExpr{Value: 1}},
				}},
				RHS: &ast.CallExpr{Callee: "fib", Args: []ast.Expr{
					&ast.BinaryExpr{Op: '-', LHS: &ast.VariableExpr{Name: "n"}, RHS: &ast.NumberExpr{Value: 2}},
				}},
			}}},
		},
	}
	return &ast.FunctionAST{Proto: proto, Body: body}
}

func TestEmitFunction_Fib(t *testing.T) {
	tables := scope.NewTables()
	e := NewEmitter("mod0", tables)

	fn, err := e.EmitFunction(fibFunctionAST())
	require.NoError(t, err)
	require.False(t, fn.IsNil())
	require.Contains(t, tables.FunctionProtos, "fib")
}

func TestEmitFunction_RedefinitionErrors(t *testing.T) {
	tables := scope.NewTables()
	e := NewEmitter("mod0", tables)

	_, err := e.EmitFunction(fibFunctionAST())
	require.NoError(t, err)
	_, err = e.EmitFunction(fibFunctionAST())
	require.Error(t, err)
}

func TestEmitFunction_InstallsBinaryPrecedence(t *testing.T) {
	tables := scope.NewTables()
	e := NewEmitter("mod0", tables)

	proto := &ast.Prototype{Name: "binary:", Args: []string{"a", "b"}, IsOperator: true, Precedence: 1}
	fn := &ast.FunctionAST{Proto: proto, Body: []ast.Expr{&ast.VariableExpr{Name: "b"}}}

	_, err := e.EmitFunction(fn)
	require.NoError(t, err)
	require.Equal(t, 1, tables.BinopPrecedence[':'])
}

func TestClone_ProducesIndependentModule(t *testing.T) {
	tables := scope.NewTables()
	e := NewEmitter("mod0", tables)
	_, err := e.EmitFunction(fibFunctionAST())
	require.NoError(t, err)

	clone, err := e.Clone()
	require.NoError(t, err)
	defer clone.Dispose()

	require.False(t, clone.Module.NamedFunction("fib").IsNil())
	require.NotEqual(t, e.Ctx.C, clone.Ctx.C)
}

func TestEmitClass_QualifiesMethodsAndMembers(t *testing.T) {
	tables := scope.NewTables()
	e := NewEmitter("mod0", tables)

	cls := &ast.ClassAST{
		Name:    "Point",
		Members: []ast.Binding{{Name: "scale", Init: &ast.NumberExpr{Value: 2}}},
		Methods: []*ast.FunctionAST{
			{Proto: &ast.Prototype{Name: "dist", Args: []string{"x"}}, Body: []ast.Expr{
				&ast.BinaryExpr{Op: '*', LHS: &ast.VariableExpr{Name: "x"}, RHS: &ast.VariableExpr{Name: "x"}},
			}},
		},
	}

	err := e.EmitClass(cls)
	require.NoError(t, err)
	require.Contains(t, tables.FunctionProtos, "Point.dist")
	require.Contains(t, tables.Globals, "Point.scale")
}
