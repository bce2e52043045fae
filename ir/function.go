/*
File    : mhando/ir/function.go
*/
package ir

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
	"tinygo.org/x/go-llvm"
)

// EmitFunction lowers a parsed FunctionAST into an LLVM function
// definition in the current module, per spec.md §4.3.2:
//  1. install/refresh the prototype in Tables.FunctionProtos
//  2. declare (or reuse) the function in the module
//  3. error if the function already has a body (no redefinition)
//  4. open the entry block and position the builder
//  5. bind each parameter to a fresh entry-block alloca in e.locals
//  6. emit the body, emitting an implicit ret of the last value if the
//     body never reached a dzosa
//  7. run the optimization pipeline (§4.5) over the finished function
func (e *Emitter) EmitFunction(f *ast.FunctionAST) (llvm.Value, error) {
	name := f.EffectiveName()
	e.Tables.FunctionProtos[name] = f.Proto

	fn := e.Module.NamedFunction(name)
	if fn.IsNil() {
		fn = e.declareFromPrototype(f.Proto, name)
	}
	if fn.BasicBlocksCount() != 0 {
		return llvm.Value{}, fmt.Errorf("function cannot be redefined: %s", name)
	}

	if f.Proto.IsBinaryOp() {
		e.Tables.BinopPrecedence[f.Proto.OperatorChar()] = f.Proto.Precedence
	}

	entry := e.Ctx.AddBasicBlock(fn, "entry")
	e.Builder.SetInsertPointAtEnd(entry)

	e.locals = scope.NewLocals[llvm.Value]()
	for i, argName := range f.Proto.Args {
		alloca := e.createEntryAlloca(fn, argName)
		e.Builder.CreateStore(fn.Param(i), alloca)
		e.locals.Set(argName, alloca)
	}

	bodyVal, err := e.emitExprList(f.Body)
	if err != nil {
		fn.EraseFromParentAsFunction()
		e.locals = nil
		return llvm.Value{}, err
	}
	if e.Builder.GetInsertBlock().LastInstruction().IsNil() ||
		e.Builder.GetInsertBlock().LastInstruction().InstructionOpcode() != llvm.Ret {
		e.Builder.CreateRet(bodyVal)
	}
	e.locals = nil

	if err := llvm.VerifyFunction(fn, llvm.PrintMessageAction); err != nil {
		fn.EraseFromParentAsFunction()
		return llvm.Value{}, fmt.Errorf("invalid function %s: %w", name, err)
	}

	e.optimizeFunction(fn)
	return fn, nil
}

// optimizeFunction runs the fixed pass pipeline spec.md §4.5 names:
// mem2reg, instcombine, reassociate, CSE/GVN, CFG-simplify. Built with
// a fresh per-call FunctionPassManager rather than a long-lived one,
// since each clone of the emitter (see clone.go) gets its own module.
func (e *Emitter) optimizeFunction(fn llvm.Value) {
	fpm := llvm.NewFunctionPassManagerForModule(e.Module)
	defer fpm.Dispose()

	fpm.AddPromoteMemoryToRegisterPass()
	fpm.AddInstructionCombiningPass()
	fpm.AddReassociatePass()
	fpm.AddGVNPass()
	fpm.AddCFGSimplificationPass()

	fpm.InitializeFunc()
	fpm.RunFunc(fn)
	fpm.FinalizeFunc()
}
