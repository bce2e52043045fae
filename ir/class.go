/*
File    : mhando/ir/class.go
*/
package ir

import (
	"github.com/tadiwanashe/mhando/ast"
)

// EmitClass lowers a kirasi declaration per spec.md §4.3.3 and §3.5:
// each method is emitted as an ordinary function qualified
// "Class.method", and each member is lowered to a "Class.member"
// zitaGuru binding, reusing emitGlobalVar's constant-initializer path.
// mhando has no instances or `this` dispatch (generics/GC/closures are
// Non-goals, §9) — a class is sugar for a namespace of free functions
// plus shared globals, nothing more.
func (e *Emitter) EmitClass(c *ast.ClassAST) error {
	if len(c.Members) > 0 {
		qualified := make([]ast.Binding, len(c.Members))
		for i, m := range c.Members {
			qualified[i] = ast.Binding{Name: c.Name + "." + m.Name, Init: m.Init}
		}
		if _, err := e.emitGlobalVar(&ast.GlobalVarExpr{Bindings: qualified}); err != nil {
			return err
		}
	}

	for _, method := range c.Methods {
		method.QualifiedName = c.Name + "." + method.Proto.Name
		if _, err := e.EmitFunction(method); err != nil {
			return err
		}
	}
	return nil
}
