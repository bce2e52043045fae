/*
File    : mhando/runtime/file.go
*/
package runtime

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// Putchard writes a single character, the Kaleidoscope-lineage debug
// intrinsic go-llvm's own demo binds the same way (one float64 in,
// the ASCII code truncated to a byte, 0.0 out).
func Putchard(x float64) float64 {
	fmt.Fprintf(os.Stdout, "%c", byte(x))
	return 0
}

// handle is one open mhando file: the *os.File the primitives operate
// on, plus the path it was opened from, which BvisaFaera needs to
// delete the file after closing it.
type handle struct {
	f    *os.File
	path string
}

// handles owns every open mhando file handle, keyed by a small integer
// the compiled code carries around as a double (mhando has no pointer
// type of its own to hand back a *os.File in) — grounded on the
// teacher's file.FileObject, which wraps the same *os.File but is
// addressed by a GoMixObject reference instead of a numeric handle.
var handles = struct {
	sync.Mutex
	next  float64
	files map[float64]*handle
}{next: 1, files: make(map[float64]*handle)}

// VhuraFaera opens path in mode ("r", "w", or "a", matching the
// teacher's fopen) and returns a handle number, or -1 on failure.
func VhuraFaera(path *byte, mode *byte) float64 {
	p := cString(path)
	m := cString(mode)

	var flag int
	switch m {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return -1
	}

	f, err := os.OpenFile(p, flag, 0644)
	if err != nil {
		return -1
	}

	handles.Lock()
	defer handles.Unlock()
	h := handles.next
	handles.next++
	handles.files[h] = &handle{f: f, path: p}
	return h
}

// VerengaFaera reads one line from the handle opened by VhuraFaera and
// returns it as a freshly-allocated, NUL-terminated C string; returns
// nil at EOF or on error. Named in runtime.StringReturning so the ir
// package's nyora formatting knows to treat a call to it as
// string-typed (SPEC_FULL.md nyora dispatch rule).
func VerengaFaera(h float64) *byte {
	handles.Lock()
	entry, ok := handles.files[h]
	handles.Unlock()
	if !ok {
		return nil
	}
	line, err := bufio.NewReader(entry.f).ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	return cBytes(line)
}

// NyoraFaera writes text to the handle opened by VhuraFaera, returning
// the number of bytes written (or -1 on error).
func NyoraFaera(h float64, text *byte) float64 {
	handles.Lock()
	entry, ok := handles.files[h]
	handles.Unlock()
	if !ok {
		return -1
	}
	n, err := entry.f.WriteString(cString(text))
	if err != nil {
		return -1
	}
	return float64(n)
}

// BvisaFaera closes the handle and deletes the underlying file, the
// host side of the original compiler's bvisaFaera(filePath) — grounded
// on original_source/src/main.cpp's std::filesystem::remove call, kept
// handle-addressed here (rather than path-addressed) so it matches the
// other three file primitives' calling convention.
func BvisaFaera(h float64) float64 {
	handles.Lock()
	entry, ok := handles.files[h]
	delete(handles.files, h)
	handles.Unlock()
	if !ok {
		return -1
	}
	entry.f.Close()
	if err := os.Remove(entry.path); err != nil {
		return -1
	}
	return 0
}

// cString reads a NUL-terminated C string out of JIT-owned memory.
func cString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for {
		b := *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n)))
		if b == 0 {
			break
		}
		n++
	}
	return string(unsafe.Slice(p, n))
}

// cBytes allocates a NUL-terminated copy of s that outlives this call,
// for handing back to compiled code as an i8*.
func cBytes(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}
