/*
File    : mhando/runtime/bind.go
*/
package runtime

import (
	"reflect"
	"unsafe"

	"tinygo.org/x/go-llvm"
)

// StringReturning names every runtime helper whose mhando-visible
// return type is i8* rather than double, mirroring the list the ir
// package's nyora dispatch consults (SPEC_FULL.md Supplemented features
// section). Kept
// here, next to the functions themselves, so the two never drift.
var StringReturning = map[string]bool{
	"verengaFaera": true,
}

// entry pairs a mhando-visible intrinsic name with the Go function
// that implements it and the declared LLVM signature the JIT module
// must declare the symbol with before AddGlobalMapping can bind it.
type entry struct {
	name string
	fn   interface{}
	args []llvm.Type
	ret  llvm.Type
}

// Entries builds the full intrinsic table against the given context's
// double and i8* types, ready for Bind to declare and map into a
// module + execution engine pair.
func Entries(ctx llvm.Context) []entry {
	dbl := ctx.DoubleType()
	i8p := llvm.PointerType(ctx.Int8Type(), 0)

	return []entry{
		{"wedzera", Wedzera, []llvm.Type{dbl, dbl}, dbl},
		{"bvisaNamba", BvisaNamba, []llvm.Type{dbl, dbl}, dbl},
		{"wedzeranisa", Wedzeranisa, []llvm.Type{dbl, dbl}, dbl},
		{"govana", Govana, []llvm.Type{dbl, dbl}, dbl},
		{"nambaInosara", NambaInosara, []llvm.Type{dbl, dbl}, dbl},
		{"simba", Simba, []llvm.Type{dbl, dbl}, dbl},
		{"tsvagaMudzi", TsvagaMudzi, []llvm.Type{dbl}, dbl},
		{"logarithm", Logarithm, []llvm.Type{dbl}, dbl},
		{"expo", Expo, []llvm.Type{dbl}, dbl},
		{"saini", Saini, []llvm.Type{dbl}, dbl},
		{"cosi", Cosi, []llvm.Type{dbl}, dbl},
		{"tanhi", Tanhi, []llvm.Type{dbl}, dbl},
		{"putchard", Putchard, []llvm.Type{dbl}, dbl},
		{"randNumber", RandNumber, nil, dbl},
		{"vhuraFaera", VhuraFaera, []llvm.Type{i8p, i8p}, dbl},
		{"verengaFaera", VerengaFaera, []llvm.Type{dbl}, i8p},
		{"nyoraFaera", NyoraFaera, []llvm.Type{dbl, i8p}, dbl},
		{"bvisaFaera", BvisaFaera, []llvm.Type{dbl}, dbl},
	}
}

// Declare adds an external declaration for every runtime intrinsic to
// mod, the way the ir package lazily declares mhando-level functions —
// but these are declared eagerly, up front, since the driver needs
// them resolvable in every module it creates (§4.6's "accumulated
// module" carries the same intrinsic surface throughout the session).
func Declare(ctx llvm.Context, mod llvm.Module) {
	for _, e := range Entries(ctx) {
		if !mod.NamedFunction(e.name).IsNil() {
			continue
		}
		fnType := llvm.FunctionType(e.ret, e.args, false)
		mod.AddFunction(e.name, fnType)
	}
}

// Bind resolves each runtime intrinsic's declaration in mod against
// its Go implementation inside ee, the same AddGlobalMapping pattern
// go-llvm's own Kaleidoscope example uses to splice host functions
// into JIT-compiled code.
func Bind(ctx llvm.Context, mod llvm.Module, ee llvm.ExecutionEngine) {
	for _, e := range Entries(ctx) {
		fn := mod.NamedFunction(e.name)
		if fn.IsNil() {
			continue
		}
		ee.AddGlobalMapping(fn, funcPointer(e.fn))
	}
}

// funcPointer extracts the callable entry point of a Go func value for
// AddGlobalMapping, which wants a raw unsafe.Pointer to jump to.
func funcPointer(fn interface{}) unsafe.Pointer {
	v := reflect.ValueOf(fn)
	return unsafe.Pointer(v.Pointer())
}
