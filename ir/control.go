/*
File    : mhando/ir/control.go
*/
package ir

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/scope"
	"tinygo.org/x/go-llvm"
)

// emitIf lowers kana/kanaKuti to a then/else/merge diamond; without a
// kanaKuti clause the else block only branches to the merge block. kana is always a statement form that
// yields the null double (§4.3.1, matching the original's
// `Constant::getNullValue` result for an if) — never the merged branch
// value — so there is no phi to build here.
func (e *Emitter) emitIf(n *ast.IfExpr) (llvm.Value, error) {
	condVal, err := e.Emit(n.Cond)
	if err != nil {
		return llvm.Value{}, err
	}
	zero := llvm.ConstFloat(e.doubleTy, 0.0)
	cond := e.Builder.CreateFCmp(llvm.FloatONE, condVal, zero, "ifcond")

	fn := e.Builder.GetInsertBlock().Parent()
	thenBB := e.Ctx.AddBasicBlock(fn, "then")
	elseBB := e.Ctx.AddBasicBlock(fn, "else")
	mergeBB := e.Ctx.AddBasicBlock(fn, "ifcont")

	e.Builder.CreateCondBr(cond, thenBB, elseBB)

	e.Builder.SetInsertPointAtEnd(thenBB)
	if _, err := e.emitExprList(n.Then); err != nil {
		return llvm.Value{}, err
	}
	// A branch ending in dzosa already terminates its block (with a
	// ret); only an untaken fall-through needs the br to mergeBB, or
	// LLVM sees two terminators in one block.
	if !blockTerminated(e.Builder.GetInsertBlock()) {
		e.Builder.CreateBr(mergeBB)
	}

	e.Builder.SetInsertPointAtEnd(elseBB)
	if n.Else != nil {
		if _, err := e.emitExprList(n.Else); err != nil {
			return llvm.Value{}, err
		}
	}
	if !blockTerminated(e.Builder.GetInsertBlock()) {
		e.Builder.CreateBr(mergeBB)
	}

	e.Builder.SetInsertPointAtEnd(mergeBB)
	return zero, nil
}

// blockTerminated reports whether bb already ends in a terminator
// instruction (ret or br) — the only two this emitter ever produces —
// so callers know not to append a second one.
func blockTerminated(bb llvm.BasicBlock) bool {
	last := bb.LastInstruction()
	if last.IsNil() {
		return false
	}
	switch last.InstructionOpcode() {
	case llvm.Ret, llvm.Br:
		return true
	default:
		return false
	}
}

// emitWhile lowers kusvika to the standard cond/loop/after triangle.
// As a statement form, kusvika always evaluates to 0.0 (§4.3.1).
func (e *Emitter) emitWhile(n *ast.WhileExpr) (llvm.Value, error) {
	fn := e.Builder.GetInsertBlock().Parent()
	condBB := e.Ctx.AddBasicBlock(fn, "whilecond")
	loopBB := e.Ctx.AddBasicBlock(fn, "whileloop")
	afterBB := e.Ctx.AddBasicBlock(fn, "whileafter")

	e.Builder.CreateBr(condBB)
	e.Builder.SetInsertPointAtEnd(condBB)
	condVal, err := e.Emit(n.Cond)
	if err != nil {
		return llvm.Value{}, err
	}
	zero := llvm.ConstFloat(e.doubleTy, 0.0)
	cond := e.Builder.CreateFCmp(llvm.FloatONE, condVal, zero, "whilecond")
	e.Builder.CreateCondBr(cond, loopBB, afterBB)

	e.Builder.SetInsertPointAtEnd(loopBB)
	if _, err := e.emitExprList(n.Body); err != nil {
		return llvm.Value{}, err
	}
	if !blockTerminated(e.Builder.GetInsertBlock()) {
		e.Builder.CreateBr(condBB)
	}

	e.Builder.SetInsertPointAtEnd(afterBB)
	return zero, nil
}

// emitFor lowers pakati (Var = Start, End, Step) { Body } to the
// canonical Kaleidoscope-style mem2reg-friendly loop: the induction
// variable lives in an alloca, shadowing any outer binding of the same
// name for the duration of the loop and restored afterward (§4.4).
func (e *Emitter) emitFor(n *ast.ForExpr) (llvm.Value, error) {
	startVal, err := e.Emit(n.Start)
	if err != nil {
		return llvm.Value{}, err
	}

	fn := e.Builder.GetInsertBlock().Parent()
	alloca := e.createEntryAlloca(fn, n.Var)
	e.Builder.CreateStore(startVal, alloca)

	prior, hadPrior := e.locals.Get(n.Var)
	e.locals.Set(n.Var, alloca)

	condBB := e.Ctx.AddBasicBlock(fn, "forcond")
	loopBB := e.Ctx.AddBasicBlock(fn, "forloop")
	afterBB := e.Ctx.AddBasicBlock(fn, "forafter")

	e.Builder.CreateBr(condBB)
	e.Builder.SetInsertPointAtEnd(condBB)
	endVal, err := e.Emit(n.End)
	if err != nil {
		return llvm.Value{}, err
	}
	cur := e.Builder.CreateLoad(e.doubleTy, alloca, n.Var)
	cond := e.Builder.CreateFCmp(llvm.FloatULT, cur, endVal, "forcond")
	e.Builder.CreateCondBr(cond, loopBB, afterBB)

	e.Builder.SetInsertPointAtEnd(loopBB)
	if _, err := e.emitExprList(n.Body); err != nil {
		return llvm.Value{}, err
	}
	// A dzosa inside the body already terminated this block; stepping
	// the induction variable and branching back would be unreachable
	// code after a terminator, which LLVM rejects.
	if !blockTerminated(e.Builder.GetInsertBlock()) {
		var stepVal llvm.Value
		if n.Step != nil {
			stepVal, err = e.Emit(n.Step)
			if err != nil {
				return llvm.Value{}, err
			}
		} else {
			stepVal = llvm.ConstFloat(e.doubleTy, 1.0)
		}
		cur2 := e.Builder.CreateLoad(e.doubleTy, alloca, n.Var)
		next := e.Builder.CreateFAdd(cur2, stepVal, "nextvar")
		e.Builder.CreateStore(next, alloca)
		e.Builder.CreateBr(condBB)
	}

	e.Builder.SetInsertPointAtEnd(afterBB)
	if hadPrior {
		e.locals.Set(n.Var, prior)
	} else {
		e.locals.Delete(n.Var)
	}
	return llvm.ConstFloat(e.doubleTy, 0.0), nil
}

// emitVar allocates a slot per binding, shadowing outer bindings of the
// same name (§4.4), evaluates Body with those bindings visible, and
// restores the shadowed names on exit.
func (e *Emitter) emitVar(n *ast.VarExpr) (llvm.Value, error) {
	fn := e.Builder.GetInsertBlock().Parent()
	type saved struct {
		name     string
		prior    llvm.Value
		hadPrior bool
	}
	var restores []saved

	for _, b := range n.Bindings {
		var initVal llvm.Value
		var err error
		if b.Init != nil {
			initVal, err = e.Emit(b.Init)
		} else {
			initVal = llvm.ConstFloat(e.doubleTy, 0.0)
		}
		if err != nil {
			return llvm.Value{}, err
		}
		prior, hadPrior := e.locals.Get(b.Name)
		restores = append(restores, saved{b.Name, prior, hadPrior})

		alloca := e.createEntryAlloca(fn, b.Name)
		e.Builder.CreateStore(initVal, alloca)
		e.locals.Set(b.Name, alloca)
	}

	bodyVal, err := e.emitExprList(n.Body)

	for _, s := range restores {
		if s.hadPrior {
			e.locals.Set(s.name, s.prior)
		} else {
			e.locals.Delete(s.name)
		}
	}
	if err != nil {
		return llvm.Value{}, err
	}
	return bodyVal, nil
}

// emitGlobalVar registers each binding in Tables.Globals (erroring on
// redeclaration per spec.md §4.4 rule 5 and §8) and materializes it in
// the current module so it is usable immediately after this statement.
func (e *Emitter) emitGlobalVar(n *ast.GlobalVarExpr) (llvm.Value, error) {
	for _, b := range n.Bindings {
		initVal, isString, numVal, strVal, err := e.constEval(b.Init)
		if err != nil {
			return llvm.Value{}, err
		}
		g := &scope.Global{Name: b.Name, IsString: isString, Num: numVal, Str: strVal}
		if err := e.Tables.DeclareGlobal(g); err != nil {
			return llvm.Value{}, err
		}

		gv := e.Module.AddGlobal(initVal.Type(), g.Name)
		gv.SetInitializer(initVal)
		gv.SetLinkage(llvm.ExternalLinkage)
	}
	return llvm.ConstFloat(e.doubleTy, 0.0), nil
}

// emitBlock evaluates every statement in sequence, yielding the value
// of the last one (or 0.0 for an empty block).
func (e *Emitter) emitBlock(n *ast.BlockExpr) (llvm.Value, error) {
	return e.emitExprList(n.Stmts)
}

// emitReturn evaluates Value and emits a ret instruction. mhando has no
// control-flow-reachability analysis beyond what LLVM's verifier
// enforces; a dzosa mid-block simply terminates the current block.
func (e *Emitter) emitReturn(n *ast.ReturnExpr) (llvm.Value, error) {
	val, err := e.Emit(n.Value)
	if err != nil {
		return llvm.Value{}, err
	}
	e.Builder.CreateRet(val)
	return val, nil
}

// emitExprList emits a statement sequence and returns the value of the
// last statement (§3.2: a block's value is its tail expression's
// value), or 0.0 for an empty sequence.
func (e *Emitter) emitExprList(stmts []ast.Expr) (llvm.Value, error) {
	if len(stmts) == 0 {
		return llvm.ConstFloat(e.doubleTy, 0.0), nil
	}
	var last llvm.Value
	for _, s := range stmts {
		v, err := e.Emit(s)
		if err != nil {
			return llvm.Value{}, err
		}
		last = v
	}
	return last, nil
}

// createEntryAlloca inserts an alloca at the start of fn's entry block,
// the mem2reg-friendly placement the optimizer pipeline (§4.5) expects
// so that PromoteMemToReg can eliminate it entirely.
func (e *Emitter) createEntryAlloca(fn llvm.Value, name string) llvm.Value {
	entry := fn.EntryBasicBlock()
	tmp := e.Ctx.NewBuilder()
	defer tmp.Dispose()
	if first := entry.FirstInstruction(); !first.IsNil() {
		tmp.SetInsertPointBefore(first)
	} else {
		tmp.SetInsertPointAtEnd(entry)
	}
	return tmp.CreateAlloca(e.doubleTy, name)
}

// constEval evaluates an initializer expression that must be a
// compile-time constant — zitaGuru bindings are module-level globals,
// and LLVM globals need a constant initializer. The parser accepts any
// expression as a zitaGuru initializer; only a number or string literal
// is evaluated here, and any other initializer is an error.
func (e *Emitter) constEval(expr ast.Expr) (val llvm.Value, isString bool, num float64, str string, err error) {
	switch n := expr.(type) {
	case *ast.NumberExpr:
		return llvm.ConstFloat(e.doubleTy, n.Value), false, n.Value, "", nil
	case *ast.StringExpr:
		gv := e.Module.AddGlobal(llvm.ArrayType(e.Ctx.Int8Type(), len(n.Value)+1), ".constinit")
		gv.SetInitializer(e.Ctx.ConstString(n.Value, true))
		gv.SetLinkage(llvm.PrivateLinkage)
		ptr := llvm.ConstBitCast(gv, e.i8ptrTy)
		return ptr, true, 0, n.Value, nil
	default:
		return llvm.Value{}, false, 0, "", fmt.Errorf("zitaGuru initializer must be a literal")
	}
}
