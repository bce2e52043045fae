/*
File    : mhando/runtime/runtime_test.go
*/
package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticIntrinsics(t *testing.T) {
	assert.Equal(t, 7.0, Wedzera(3, 4))
	assert.Equal(t, -1.0, BvisaNamba(3, 4))
	assert.Equal(t, 12.0, Wedzeranisa(3, 4))
	assert.Equal(t, 2.0, Govana(8, 4))
	assert.Equal(t, 1.0, NambaInosara(7, 3))
	assert.Equal(t, 8.0, Simba(2, 3))
	assert.Equal(t, 3.0, TsvagaMudzi(9))
}

func TestGovana_DivisionByZeroReturnsInf(t *testing.T) {
	assert.True(t, Govana(1, 0) > 1e300)
	assert.True(t, Govana(-1, 0) < -1e300)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")

	wh := VhuraFaera(cBytes(path), cBytes("w"))
	require.NotEqual(t, -1.0, wh)
	n := NyoraFaera(wh, cBytes("mhoro\n"))
	assert.True(t, n > 0)

	rh := VhuraFaera(cBytes(path), cBytes("r"))
	require.NotEqual(t, -1.0, rh)
	line := VerengaFaera(rh)
	require.NotNil(t, line)
	assert.Equal(t, "mhoro\n", cString(line))

	assert.Equal(t, 0.0, BvisaFaera(rh))
}

func TestVhuraFaera_InvalidModeReturnsNegativeOne(t *testing.T) {
	assert.Equal(t, -1.0, VhuraFaera(cBytes("/tmp/whatever"), cBytes("bogus")))
}

func TestVerengaFaera_UnknownHandleReturnsNil(t *testing.T) {
	assert.Nil(t, VerengaFaera(999999))
}

func TestBvisaFaera_RemovesFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doomed.txt")

	h := VhuraFaera(cBytes(path), cBytes("w"))
	require.NotEqual(t, -1.0, h)

	assert.Equal(t, 0.0, BvisaFaera(h))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBvisaFaera_UnknownHandleReturnsNegativeOne(t *testing.T) {
	assert.Equal(t, -1.0, BvisaFaera(999999))
}
