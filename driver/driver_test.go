/*
File    : mhando/driver/driver_test.go
*/
package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_BareExpressionReturnsValue(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	res, errs := d.Exec("1 + 2 * 3")
	require.Nil(t, errs)
	require.True(t, res.HasValue)
	assert.Equal(t, 7.0, res.Value)
}

func TestExec_DefinitionThenCall(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	_, errs := d.Exec(`basa square(x) { x * x }`)
	require.Nil(t, errs)

	res, errs := d.Exec(`square(9)`)
	require.Nil(t, errs)
	require.True(t, res.HasValue)
	assert.Equal(t, 81.0, res.Value)
}

func TestExec_FunctionsSurviveAcrossExecCalls(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	_, errs := d.Exec(`basa fib(n) { kana (n < 2) { dzosa n } kanaKuti { dzosa fib(n-1) + fib(n-2) } }`)
	require.Nil(t, errs)

	res, errs := d.Exec(`fib(10)`)
	require.Nil(t, errs)
	require.True(t, res.HasValue)
	assert.Equal(t, 55.0, res.Value)
}

func TestExec_RuntimeIntrinsicIsCallable(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	res, errs := d.Exec(`wedzera(3, 4)`)
	require.Nil(t, errs)
	require.True(t, res.HasValue)
	assert.Equal(t, 7.0, res.Value)
}

func TestExec_SyntaxErrorIsReported(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	_, errs := d.Exec(`basa (`)
	assert.NotEmpty(t, errs)
}

func TestExec_GlobalVarPersistsAcrossExecCalls(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	_, errs := d.Exec(`zitaGuru counter = 0`)
	require.Nil(t, errs)
	assert.Contains(t, d.Tables.Globals, "counter")

	_, errs = d.Exec(`zitaGuru counter = 1`)
	assert.NotEmpty(t, errs, "redeclaring a global must fail")
}
