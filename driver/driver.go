/*
File    : mhando/driver/driver.go
*/

// Package driver is the mhando JIT top-level loop: it owns the
// accumulated module, the execution engine, and the process-wide
// symbol tables, and implements spec.md §4.6's read-compile-execute
// cycle. It is the structural replacement for the teacher's
// eval.Evaluator — same role (the thing repl.Repl and main drive one
// line at a time), different engine underneath (JIT execution of
// generated machine code instead of tree-walking interpretation).
package driver

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/ir"
	"github.com/tadiwanashe/mhando/parser"
	"github.com/tadiwanashe/mhando/runtime"
	"github.com/tadiwanashe/mhando/scope"
	"tinygo.org/x/go-llvm"
)

// Driver runs one mhando session: every Exec call advances the same
// accumulated module and symbol tables, matching spec.md §3.7's
// invariant that later top-level forms can call earlier ones.
type Driver struct {
	Tables    *scope.Tables
	emitter   *ir.Emitter
	engine    llvm.ExecutionEngine
	moduleSeq int
}

func init() {
	llvm.LinkInMCJIT()
	llvm.InitializeNativeTarget()
	llvm.InitializeNativeAsmPrinter()
}

// New opens a fresh driver over an empty accumulated module named
// "mhando0", with the runtime intrinsic table declared and an MCJIT
// execution engine bound to it (§4.6 "a JIT execution engine resolves
// symbols" + SPEC_FULL.md's go-llvm grounding).
func New() (*Driver, error) {
	tables := scope.NewTables()
	emitter := ir.NewEmitter("mhando0", tables)
	runtime.Declare(emitter.Ctx, emitter.Module)

	d := &Driver{Tables: tables, emitter: emitter}
	if err := d.bindEngine(); err != nil {
		return nil, err
	}
	return d, nil
}

// bindEngine creates a new MCJIT compiler over the current
// accumulated module and maps every runtime intrinsic into it.
// Classic MCJIT (unlike ORC) offers no fine-grained incremental
// unloading, so AddModule/RemoveModule is the closest honest mapping
// onto spec.md §4.6's "resource tracker" concept — documented in
// SPEC_FULL.md §1 (JIT runtime) and DESIGN.md's Open Question decisions.
func (d *Driver) bindEngine() error {
	ee, err := llvm.NewMCJITCompiler(d.emitter.Module, llvm.MCJITCompilerOptions{})
	if err != nil {
		return fmt.Errorf("creating JIT execution engine: %w", err)
	}
	runtime.Bind(d.emitter.Ctx, d.emitter.Module, ee)
	d.engine = ee
	return nil
}

// Result is what one Exec call produced: either a numeric value from
// running an anonymous top-level expression, or nothing (a
// definition, class, global, or extern was installed instead).
type Result struct {
	HasValue bool
	Value    float64
}

// Exec parses and executes one unit of source text end to end,
// dispatching on the parsed top-level form per spec.md §4.6:
//   - Definition (basa/operator) or Class (kirasi): emitted into the
//     accumulated module, made resolvable for everything after it.
//   - GlobalVar (zitaGuru): emitted as a module-level global.
//   - Extern: declared only, no body.
//   - a bare top-level expression: wrapped anonymous by the parser,
//     compiled into a throwaway clone of the accumulated module,
//     JIT-executed once, and discarded (§4.6, §3.7).
func (d *Driver) Exec(source string) (*Result, []string) {
	p := parser.NewParser(source, d.Tables)

	var results []*Result
	var errs []string
	for {
		item, done := p.ParseTopLevel()
		if len(p.Errors) > 0 {
			errs = append(errs, p.Errors...)
			p.Errors = nil
		}
		if done {
			d.reinit()
			break
		}
		if item == nil {
			continue
		}

		res, err := d.execTopLevel(item)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if res != nil {
			results = append(results, res)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(results) == 0 {
		return &Result{}, nil
	}
	return results[len(results)-1], nil
}

func (d *Driver) execTopLevel(item parser.TopLevel) (*Result, error) {
	switch node := item.(type) {
	case *ast.Prototype:
		d.Tables.FunctionProtos[node.Name] = node
		return nil, nil

	case *ast.GlobalVarExpr:
		if _, err := d.emitter.Emit(node); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.ClassAST:
		if err := d.emitter.EmitClass(node); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.FunctionAST:
		if isAnonTopLevel(node) {
			return d.execAnonymous(node)
		}
		if _, err := d.emitter.EmitFunction(node); err != nil {
			return nil, err
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("driver: unrecognized top-level form %T", item)
	}
}

func isAnonTopLevel(fn *ast.FunctionAST) bool {
	return len(fn.Proto.Name) >= len(anonPrefix) && fn.Proto.Name[:len(anonPrefix)] == anonPrefix
}

const anonPrefix = "__anon_expr"

// execAnonymous implements §4.6's one-shot path: clone the
// accumulated module, emit the anonymous wrapper function into the
// clone, JIT it, run it, tear the clone's JIT registration down, and
// return the computed double — the accumulated module itself is never
// mutated by evaluating a bare expression.
func (d *Driver) execAnonymous(fn *ast.FunctionAST) (*Result, error) {
	clone, err := d.emitter.Clone()
	if err != nil {
		return nil, err
	}
	defer clone.Dispose()

	if _, err := clone.EmitFunction(fn); err != nil {
		return nil, err
	}

	d.engine.AddModule(clone.Module)
	runtime.Bind(clone.Ctx, clone.Module, d.engine)
	defer d.engine.RemoveModule(clone.Module)

	compiled := clone.Module.NamedFunction(fn.Proto.Name)
	generic := d.engine.RunFunction(compiled, nil)
	value := generic.Float(d.emitter.Ctx.DoubleType())

	return &Result{HasValue: true, Value: value}, nil
}

// reinit re-points the emitter at a fresh, empty module once a read
// reaches EOF, per spec.md §4.6: "on EOF, stage the accumulated
// definitions and re-initialize a fresh module so subsequent calls
// can still resolve names." Mirroring the multi-module idiom go-llvm's
// own Kaleidoscope JIT chapter uses: the about-to-be-replaced module
// is permanently handed to the execution engine (never Removed, only
// the one-shot clones in execAnonymous are), so every function body it
// carries stays resolvable for the rest of the session, and the fresh
// module that replaces it starts out with only the re-declared globals
// and runtime intrinsic declarations, and accumulates the next batch of
// definitions the same way.
func (d *Driver) reinit() {
	d.engine.AddModule(d.emitter.Module)

	d.moduleSeq++
	d.emitter.Reinit(fmt.Sprintf("mhando%d", d.moduleSeq))
	runtime.Declare(d.emitter.Ctx, d.emitter.Module)
	runtime.Bind(d.emitter.Ctx, d.emitter.Module, d.engine)
}
