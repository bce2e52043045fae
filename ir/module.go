/*
File    : mhando/ir/module.go
*/

// Package ir is the mhando code generator: it walks ast.Expr trees and
// emits LLVM IR into a currently-open module via tinygo.org/x/go-llvm,
// the out-of-scope "underlying IR library" spec.md §1 names as an
// external collaborator. Every value mhando computes is a double; a
// string literal is the one exception, lowered to an interned
// i8* (§4.3), accepted only where the grammar allows it.
//
// The teacher's eval package walks the same shape of AST by direct
// interpretation over boxed GoMixObject values and a Scope chain; here
// the walk instead builds IR, and "scope" for a single function body is
// the much flatter scope.Locals[llvm.Value] shadow/restore stack,
// because mhando's bindings back real stack slots (alloca) rather than
// map entries in a heap-resident environment.
package ir

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
	"tinygo.org/x/go-llvm"
)

// Emitter owns the currently-open module and builder plus references to
// the process-wide symbol tables (§3.6). It is re-pointed at a fresh
// module by Reinit after every top-level EOF, and a cloned Emitter (see
// Clone in clone.go) backs the one-shot execution of a single
// top-level expression.
type Emitter struct {
	Ctx     llvm.Context
	Module  llvm.Module
	Builder llvm.Builder
	Tables  *scope.Tables

	doubleTy llvm.Type
	i8ptrTy  llvm.Type

	// locals is nil outside of function-body emission; EmitFunction
	// sets it fresh at entry (§4.3.2 step 5) and clears it on exit.
	locals *scope.Locals[llvm.Value]
}

// NewEmitter opens a brand new module named moduleName in a brand new
// context, sharing tables with the rest of the driver.
func NewEmitter(moduleName string, tables *scope.Tables) *Emitter {
	ctx := llvm.NewContext()
	e := &Emitter{
		Ctx:      ctx,
		Module:   ctx.NewModule(moduleName),
		Builder:  ctx.NewBuilder(),
		Tables:   tables,
		doubleTy: ctx.DoubleType(),
		i8ptrTy:  llvm.PointerType(ctx.Int8Type(), 0),
	}
	return e
}

// Reinit replaces Module/Builder with a fresh pair in a fresh context,
// and re-declares every known global so that later definitions can
// still resolve names accumulated before this point (§4.6 EOF case:
// "re-initialize a fresh module so subsequent calls can still resolve
// names"). FunctionProtos needs no re-declaration step here — function
// declarations are materialized lazily on first call (§4.3.1 Call).
func (e *Emitter) Reinit(moduleName string) {
	e.Ctx = llvm.NewContext()
	e.Module = e.Ctx.NewModule(moduleName)
	e.Builder = e.Ctx.NewBuilder()
	e.doubleTy = e.Ctx.DoubleType()
	e.i8ptrTy = llvm.PointerType(e.Ctx.Int8Type(), 0)
	e.redeclareGlobals()
}

// redeclareGlobals emits an external-linkage global with a matching
// initializer for every entry in Tables.Globals, restoring invariant
// (c) from spec.md §3.7 after a module swap.
func (e *Emitter) redeclareGlobals() {
	for _, g := range e.Tables.Globals {
		var init llvm.Value
		if g.IsString {
			init = e.Builder.CreateGlobalStringPtr(g.Str, g.Name+".str")
		} else {
			init = llvm.ConstFloat(e.doubleTy, g.Num)
		}
		gv := e.Module.AddGlobal(init.Type(), g.Name)
		gv.SetInitializer(init)
		gv.SetLinkage(llvm.ExternalLinkage)
	}
}

// declareFunction lazily materializes a declaration for name from
// Tables.FunctionProtos into the current module, the way Call lowering
// requires (§4.3.1): "lookup or lazily materialize a declaration".
func (e *Emitter) declareFunction(name string) (llvm.Value, error) {
	if fn := e.Module.NamedFunction(name); !fn.IsNil() {
		return fn, nil
	}
	proto, ok := e.Tables.FunctionProtos[name]
	if !ok {
		return llvm.Value{}, fmt.Errorf("unknown function referenced: %s", name)
	}
	return e.declareFromPrototype(proto, name), nil
}

func (e *Emitter) declareFromPrototype(proto *ast.Prototype, name string) llvm.Value {
	params := make([]llvm.Type, len(proto.Args))
	for i := range params {
		params[i] = e.doubleTy
	}
	fnType := llvm.FunctionType(e.doubleTy, params, false)
	fn := e.Module.AddFunction(name, fnType)
	for i, argName := range proto.Args {
		fn.Param(i).SetName(argName)
	}
	return fn
}
