package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBigIntFromStr(t *testing.T) {
	bi, err := GetBigIntFromStr("1000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, "1000000000000000000", bi.String())

	bi, err = GetBigIntFromStr("0xde0b6b3a7640000")
	assert.NoError(t, err)
	assert.Equal(t, "1000000000000000000", bi.String())

	bi, err = GetBigIntFromStr(" 42 ")
	assert.NoError(t, err)
	assert.Equal(t, "42", bi.String())

	_, err = GetBigIntFromStr("")
	assert.Error(t, err)

	_, err = GetBigIntFromStr("notanumber")
	assert.Error(t, err)
}

func TestIsMaxAmount(t *testing.T) {
	assert.True(t, IsMaxAmount(MaxUint256))
	assert.False(t, IsMaxAmount(nil))
	assert.False(t, IsMaxAmount(Big0))
	assert.False(t, IsMaxAmount(BigFromUint64(1)))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(""))
	assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	assert.True(t, IsZeroAddress("0000"))
	assert.False(t, IsZeroAddress("alice"))
	assert.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
}

func TestKeccak256Hash(t *testing.T) {
	// keccak256 of empty input
	h := Keccak256Hash()
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", h.Hex())

	h1 := Keccak256Hash([]byte("abc"))
	h2 := Keccak256Hash([]byte("a"), []byte("bc"))
	assert.Equal(t, h1, h2)
}
