/*
File    : mhando/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareGlobal_RedeclarationErrorsAndLeavesOriginal(t *testing.T) {
	tables := NewTables()

	first := &Global{Name: "mari", Num: 10}
	require.NoError(t, tables.DeclareGlobal(first))

	second := &Global{Name: "mari", Num: 99}
	assert.Error(t, tables.DeclareGlobal(second))
	assert.Equal(t, float64(10), tables.Globals["mari"].Num)
}

func TestPrecedence_UnknownOperatorReturnsNegativeOne(t *testing.T) {
	tables := NewTables()

	assert.Equal(t, 10, tables.Precedence('<'))
	assert.Equal(t, -1, tables.Precedence('?'))
}

func TestLocals_SetGetDeleteShadowing(t *testing.T) {
	locals := NewLocals[int]()

	_, ok := locals.Get("x")
	assert.False(t, ok, "fresh Locals should have no bindings")

	locals.Set("x", 1)
	v, ok := locals.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	locals.Set("x", 2)
	v, ok = locals.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2, v, "expected shadowed binding to win")

	locals.Delete("x")
	_, ok = locals.Get("x")
	assert.False(t, ok, "expected x to be gone after Delete")
}
