/*
File    : mhando/ir/nyora.go
*/
package ir

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/runtime"
	"tinygo.org/x/go-llvm"
)

// emitNyora lowers a call to the built-in print intrinsic nyora(expr).
// As SPEC_FULL.md's Supplemented features section records, nyora dispatches on the static shape
// of its argument rather than on a runtime tag (mhando has none): a
// StringExpr-typed argument (or anything the type-checker can already
// see is a string, i.e. a call to a known string-returning runtime
// helper) formats as "%s\n"; everything else formats as "%.5f\n",
// matching the original's nyora table (SPEC_FULL.md §"Supplemented
// features").
func (e *Emitter) emitNyora(c *ast.CallExpr) (llvm.Value, error) {
	if len(c.Args) != 1 {
		return llvm.Value{}, fmt.Errorf("nyora takes exactly one argument")
	}
	arg := c.Args[0]
	val, err := e.Emit(arg)
	if err != nil {
		return llvm.Value{}, err
	}

	printf, err := e.declareVariadicRuntime("printf", e.i8ptrTy)
	if err != nil {
		return llvm.Value{}, err
	}

	if e.isStringTyped(arg) {
		fmtStr := e.Builder.CreateGlobalStringPtr("%s\n", ".fmt")
		e.Builder.CreateCall(printf.GlobalValueType(), printf, []llvm.Value{fmtStr, val}, "")
	} else {
		fmtStr := e.Builder.CreateGlobalStringPtr("%.5f\n", ".fmt")
		e.Builder.CreateCall(printf.GlobalValueType(), printf, []llvm.Value{fmtStr, val}, "")
	}
	return llvm.ConstFloat(e.doubleTy, 0.0), nil
}

// isStringTyped reports whether expr is known, from its AST shape
// alone, to produce an i8* rather than a double. mhando has no general
// type inference (Non-goal, spec.md §9), so this is a narrow syntactic
// check covering the cases the grammar actually allows to be stringy:
// a literal, a variable bound to a string global, or a call to one of
// the runtime's string-returning helpers.
func (e *Emitter) isStringTyped(expr ast.Expr) bool {
	switch n := expr.(type) {
	case *ast.StringExpr:
		return true
	case *ast.VariableExpr:
		g, ok := e.Tables.Globals[n.Name]
		return ok && g.IsString
	case *ast.CallExpr:
		return runtime.StringReturning[n.Callee]
	default:
		return false
	}
}

// declareVariadicRuntime lazily declares an externally-linked variadic
// function of the given fixed leading parameter types, returning an
// i32 (the C int printf returns; the declared return type is only used
// for its call ABI here, not inspected by callers). nyora uses it to
// declare printf.
func (e *Emitter) declareVariadicRuntime(name string, fixedArgs ...llvm.Type) (llvm.Value, error) {
	if fn := e.Module.NamedFunction(name); !fn.IsNil() {
		return fn, nil
	}
	fnType := llvm.FunctionType(e.Ctx.Int32Type(), fixedArgs, true)
	return e.Module.AddFunction(name, fnType), nil
}
