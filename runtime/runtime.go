/*
File    : mhando/runtime/runtime.go
*/

// Package runtime is the host side of mhando's JIT boundary: the Go
// functions that compiled mhando code actually calls, grounded on
// SPEC_FULL.md's supplemented-features section (itself grounded on
// the original compiler's arithmetic-intrinsic table and the
// teacher's std/math.go, std/io.go and file/file.go builtins, ported
// from GoMixObject-boxed signatures to a flat float64/*byte ABI since
// every mhando value is either a double or a string pointer).
//
// Every exported function here has the C calling convention the JIT
// needs: float64 in, float64 out (or, for the I/O primitives, a raw
// *byte in place of a string). None of them know about llvm.Value —
// that boundary is crossed once, at registration time, in bind.go.
package runtime
