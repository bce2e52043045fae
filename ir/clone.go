/*
File    : mhando/ir/clone.go
*/
package ir

import (
	"fmt"

	"tinygo.org/x/go-llvm"
)

// Clone produces an independent copy of e's current module in a fresh
// context, by the textual-IR round-trip technique documented in
// DESIGN.md's ir/clone.go entry: tinygo.org/x/go-llvm, being a
// thin C-API binding, does not expose LLVM's C++-only CloneModule (and
// its ValueToValueMapTy) across context boundaries, so the realistic
// mapping onto spec.md §4.6's "clone the accumulated module" step is
// to print the module to .ll text and re-parse it in a new context.
// This is what the driver calls once per top-level expression so that
// one-shot JIT execution can freely mutate (and then discard) its own
// copy without disturbing the long-lived accumulated module.
func (e *Emitter) Clone() (*Emitter, error) {
	ir := e.Module.String()

	ctx := llvm.NewContext()
	buf := llvm.NewMemoryBufferFromString(ir)
	mod, err := ctx.ParseIR(buf)
	if err != nil {
		return nil, fmt.Errorf("cloning module: %w", err)
	}

	return &Emitter{
		Ctx:      ctx,
		Module:   mod,
		Builder:  ctx.NewBuilder(),
		Tables:   e.Tables,
		doubleTy: ctx.DoubleType(),
		i8ptrTy:  llvm.PointerType(ctx.Int8Type(), 0),
	}, nil
}

// Dispose releases the builder and context owned by e. Cloned,
// one-shot emitters are disposed of by the driver right after their
// module has been handed to (and removed from) the JIT.
func (e *Emitter) Dispose() {
	e.Builder.Dispose()
	e.Ctx.Dispose()
}
