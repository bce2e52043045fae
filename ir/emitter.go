/*
File    : mhando/ir/emitter.go
*/
package ir

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"tinygo.org/x/go-llvm"
)

// Emit dispatches on the concrete type of e, the exhaustive switch the
// REDESIGN FLAG in spec.md §9 calls for. Every ast.Expr variant has a
// case; the default panics so that a forgotten fourteenth variant fails
// loudly in tests rather than silently emitting nothing.
func (e *Emitter) Emit(expr ast.Expr) (llvm.Value, error) {
	switch node := expr.(type) {
	case *ast.NumberExpr:
		return e.emitNumber(node)
	case *ast.StringExpr:
		return e.emitString(node)
	case *ast.VariableExpr:
		return e.emitVariable(node)
	case *ast.UnaryExpr:
		return e.emitUnary(node)
	case *ast.BinaryExpr:
		return e.emitBinary(node)
	case *ast.CallExpr:
		return e.emitCall(node)
	case *ast.IfExpr:
		return e.emitIf(node)
	case *ast.WhileExpr:
		return e.emitWhile(node)
	case *ast.ForExpr:
		return e.emitFor(node)
	case *ast.VarExpr:
		return e.emitVar(node)
	case *ast.GlobalVarExpr:
		return e.emitGlobalVar(node)
	case *ast.BlockExpr:
		return e.emitBlock(node)
	case *ast.ReturnExpr:
		return e.emitReturn(node)
	default:
		panic(fmt.Sprintf("ir: unhandled ast.Expr variant %T", expr))
	}
}

func (e *Emitter) emitNumber(n *ast.NumberExpr) (llvm.Value, error) {
	return llvm.ConstFloat(e.doubleTy, n.Value), nil
}

// emitString interns a global string and yields its i8* — the sole
// non-double type mhando values ever carry (§4.3).
func (e *Emitter) emitString(s *ast.StringExpr) (llvm.Value, error) {
	return e.Builder.CreateGlobalStringPtr(s.Value, ".str"), nil
}

// emitVariable resolves name against the local scope first, then the
// global registry (§4.4 rule 1), loading through whichever slot it
// finds — there is no distinction at the call site between a local
// alloca and a global (§4.3.1).
func (e *Emitter) emitVariable(v *ast.VariableExpr) (llvm.Value, error) {
	slot, elemTy, err := e.resolveSlot(v.Name)
	if err != nil {
		return llvm.Value{}, err
	}
	return e.Builder.CreateLoad(elemTy, slot, v.Name), nil
}

// resolveSlot finds the storage slot backing name: a local alloca if
// one is bound in the current function, otherwise a global declaration
// in the current module (materializing it from Tables.Globals if the
// module doesn't carry it yet, i.e. for a global registered after the
// current module was opened or cloned).
func (e *Emitter) resolveSlot(name string) (slot llvm.Value, elemTy llvm.Type, err error) {
	if e.locals != nil {
		if v, ok := e.locals.Get(name); ok {
			return v, e.doubleTy, nil
		}
	}
	if gv := e.Module.NamedGlobal(name); !gv.IsNil() {
		return gv, gv.GlobalValueType(), nil
	}
	g, ok := e.Tables.Globals[name]
	if !ok {
		return llvm.Value{}, llvm.Type{}, fmt.Errorf("Unknown variable name: %s", name)
	}
	var init llvm.Value
	if g.IsString {
		init = e.Builder.CreateGlobalStringPtr(g.Str, g.Name+".str")
	} else {
		init = llvm.ConstFloat(e.doubleTy, g.Num)
	}
	gv := e.Module.AddGlobal(init.Type(), g.Name)
	gv.SetInitializer(init)
	gv.SetLinkage(llvm.ExternalLinkage)
	return gv, init.Type(), nil
}

// emitUnary dispatches to the user-defined "unary<op>" function
// (§4.3.1); there are no built-in unary operators in mhando.
func (e *Emitter) emitUnary(u *ast.UnaryExpr) (llvm.Value, error) {
	operand, err := e.Emit(u.Operand)
	if err != nil {
		return llvm.Value{}, err
	}
	name := "unary" + string(u.Op)
	fn, err := e.declareFunction(name)
	if err != nil {
		return llvm.Value{}, fmt.Errorf("Unknown unary operator: %c", u.Op)
	}
	return e.Builder.CreateCall(fn.GlobalValueType(), fn, []llvm.Value{operand}, "unop"), nil
}

// emitBinary handles assignment, the three built-in arithmetic
// operators, the two built-in comparisons, and falls back to a
// user-defined "binary<op>" function (§4.3.1).
func (e *Emitter) emitBinary(b *ast.BinaryExpr) (llvm.Value, error) {
	if b.Op == '=' {
		return e.emitAssign(b)
	}

	lhs, err := e.Emit(b.LHS)
	if err != nil {
		return llvm.Value{}, err
	}
	rhs, err := e.Emit(b.RHS)
	if err != nil {
		return llvm.Value{}, err
	}

	switch b.Op {
	case '+':
		return e.Builder.CreateFAdd(lhs, rhs, "addtmp"), nil
	case '-':
		return e.Builder.CreateFSub(lhs, rhs, "subtmp"), nil
	case '*':
		return e.Builder.CreateFMul(lhs, rhs, "multmp"), nil
	case '<':
		cmp := e.Builder.CreateFCmp(llvm.FloatULT, lhs, rhs, "cmptmp")
		return e.Builder.CreateUIToFP(cmp, e.doubleTy, "booltmp"), nil
	case '>':
		cmp := e.Builder.CreateFCmp(llvm.FloatUGT, lhs, rhs, "cmptmp")
		return e.Builder.CreateUIToFP(cmp, e.doubleTy, "booltmp"), nil
	}

	name := "binary" + string(b.Op)
	fn, err := e.declareFunction(name)
	if err != nil {
		return llvm.Value{}, fmt.Errorf("Unknown binary operator: %c", b.Op)
	}
	return e.Builder.CreateCall(fn.GlobalValueType(), fn, []llvm.Value{lhs, rhs}, "binop"), nil
}

// emitAssign requires a Variable on the left (§4.3.1) and stores the
// evaluated right-hand side into its slot, yielding the stored value.
func (e *Emitter) emitAssign(b *ast.BinaryExpr) (llvm.Value, error) {
	target, ok := b.LHS.(*ast.VariableExpr)
	if !ok {
		return llvm.Value{}, fmt.Errorf("destination of '=' must be a variable")
	}
	val, err := e.Emit(b.RHS)
	if err != nil {
		return llvm.Value{}, err
	}
	slot, _, err := e.resolveSlot(target.Name)
	if err != nil {
		return llvm.Value{}, err
	}
	e.Builder.CreateStore(val, slot)
	return val, nil
}

// emitCall looks up (lazily declaring) the callee, checks arity, and
// special-cases nyora's printf-style format dispatch (§4.3.1, §6 ABI).
func (e *Emitter) emitCall(c *ast.CallExpr) (llvm.Value, error) {
	if c.Callee == "nyora" {
		return e.emitNyora(c)
	}

	fn, err := e.declareFunction(c.Callee)
	if err != nil {
		return llvm.Value{}, fmt.Errorf("Unknown function referenced: %s", c.Callee)
	}
	proto := e.Tables.FunctionProtos[c.Callee]
	if proto != nil && len(proto.Args) != len(c.Args) {
		return llvm.Value{}, fmt.Errorf("Incorrect number of arguments passed to %s: want %d, got %d",
			c.Callee, len(proto.Args), len(c.Args))
	}

	args := make([]llvm.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := e.Emit(a)
		if err != nil {
			return llvm.Value{}, err
		}
		args[i] = v
	}
	return e.Builder.CreateCall(fn.GlobalValueType(), fn, args, "calltmp"), nil
}
