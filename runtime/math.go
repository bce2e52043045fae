/*
File    : mhando/runtime/math.go
*/
package runtime

import (
	"math"
	"math/rand"
)

// Wedzera, BvisaNamba, Wedzeranisa, Govana mirror the original
// compiler's four named arithmetic intrinsics (wedzera=add,
// bvisaNamba=subtract, wedzeranisa=multiply, govana=divide) — present
// here as host functions rather than built-in operators so that user
// code can also shadow or extend them via binary operator overloads
// without the compiler special-casing anything.
func Wedzera(a, b float64) float64 { return a + b }

func BvisaNamba(a, b float64) float64 { return a - b }

func Wedzeranisa(a, b float64) float64 { return a * b }

func Govana(a, b float64) float64 {
	if b == 0 {
		return math.Inf(int(math.Copysign(1, a)))
	}
	return a / b
}

// NambaInosara is the original's modulo intrinsic.
func NambaInosara(a, b float64) float64 { return math.Mod(a, b) }

// Simba raises a to the power b (original: simba = "power/strength").
func Simba(a, b float64) float64 { return math.Pow(a, b) }

// TsvagaMudzi is the original's square-root intrinsic
// (tsvagaMudzi = "find the root").
func TsvagaMudzi(a float64) float64 { return math.Sqrt(a) }

// Logarithm, Expo, Saini, Cosi, Tanhi round out the transcendental
// table the original exposes to generated code.
func Logarithm(a float64) float64 { return math.Log(a) }
func Expo(a float64) float64      { return math.Exp(a) }
func Saini(a float64) float64     { return math.Sin(a) }
func Cosi(a float64) float64      { return math.Cos(a) }
func Tanhi(a float64) float64     { return math.Tanh(a) }

// RandNumber returns a pseudo-random double in [0, 1), the host side
// of the teacher's std/math.go `rand` builtin.
func RandNumber() float64 { return rand.Float64() }
