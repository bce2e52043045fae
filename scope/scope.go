/*
File    : mhando/scope/scope.go
*/

// Package scope owns the process-wide symbol tables described in
// spec.md §3.6: FunctionProtos, the global-variable registry, and
// BinopPrecedence. All three live for the lifetime of the driver and
// are passed by reference into the parser and the code generator —
// there are no package-level singletons, per the DESIGN NOTES in
// spec.md §9 ("process-wide mutable maps ... must be owned by the
// driver and passed by reference").
//
// This replaces the teacher's Scope chain (scope.Scope with a Parent
// pointer, used for nested lexical closures over heap-allocated
// GoMixObject values). mhando has no closures and no heap-allocated
// runtime objects — every binding backs an LLVM stack slot local to one
// function body — so the nested-chain structure doesn't apply. What
// does carry over is the teacher's save/restore discipline for
// shadowing (scope.Scope.Bind returning the prior occupant implicitly
// via the map), generalized here into an explicit Locals stack that the
// ir package uses to shadow and restore a name across a zita/pakati
// body, as spec.md §4.4 requires.
package scope

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
)

// Tables is the complete set of process-wide symbol tables.
type Tables struct {
	// FunctionProtos maps an effective name (possibly "Class.method")
	// to its declared signature. A function name may be redeclared —
	// the map is last-write-wins, and callers re-materialize against
	// whatever is current (§4.4 rule 5).
	FunctionProtos map[string]*ast.Prototype

	// Globals records every global variable declared so far, keyed by
	// its possibly-qualified name ("Class.member" for class members).
	Globals map[string]*Global

	// BinopPrecedence maps an operator byte to its binding power in
	// [1,100]. Seeded per §3.6; extended by every binary operator
	// definition that is emitted.
	BinopPrecedence map[byte]int
}

// Global is what the registry remembers about one global variable: its
// name and the constant it was initialized with, which is enough to
// re-declare it (with a matching initializer) in a freshly re-opened or
// cloned module — see ir.Emitter.redeclareGlobals.
type Global struct {
	Name     string
	IsString bool
	Num      float64
	Str      string
}

// NewTables builds the seeded, empty symbol-table set for a fresh
// driver session.
func NewTables() *Tables {
	return &Tables{
		FunctionProtos: make(map[string]*ast.Prototype),
		Globals:        make(map[string]*Global),
		BinopPrecedence: map[byte]int{
			'=': 2,
			'<': 10,
			'>': 10,
			'+': 20,
			'-': 20,
			'*': 40,
		},
	}
}

// Precedence returns op's binding power, or -1 if op is not a declared
// binary operator (matching the parser's "not a declared binop" case).
func (t *Tables) Precedence(op byte) int {
	if p, ok := t.BinopPrecedence[op]; ok {
		return p
	}
	return -1
}

// DeclareGlobal registers a new global. Redeclaring an existing name is
// an error and leaves the existing entry untouched (§4.4 rule 5,
// §8 "Redeclaring a global ... does not mutate the existing global").
func (t *Tables) DeclareGlobal(g *Global) error {
	if _, exists := t.Globals[g.Name]; exists {
		return fmt.Errorf("global '%s' already declared", g.Name)
	}
	t.Globals[g.Name] = g
	return nil
}

// Locals is the flat name -> T map backing one function body's local
// bindings (T is instantiated with llvm.Value by the ir package). It
// supports the save/restore discipline that zita and pakati need to
// shadow an outer binding for the extent of a body and then undo it.
type Locals[T any] struct {
	vars map[string]T
}

// NewLocals returns an empty local-binding map, as cleared at entry to
// every function body (§3.6).
func NewLocals[T any]() *Locals[T] {
	return &Locals[T]{vars: make(map[string]T)}
}

// Get looks up name in this function's locals only (the caller falls
// back to Globals itself — see spec.md §4.4 rule 1).
func (l *Locals[T]) Get(name string) (T, bool) {
	v, ok := l.vars[name]
	return v, ok
}

// Set binds name to v in the current function, overwriting any prior
// occupant without remembering it — callers that need to restore a
// shadowed binding must save it first via Get.
func (l *Locals[T]) Set(name string, v T) {
	l.vars[name] = v
}

// Delete removes name entirely, used to restore the "no prior binding"
// case after a shadowing body exits.
func (l *Locals[T]) Delete(name string) {
	delete(l.vars, name)
}
