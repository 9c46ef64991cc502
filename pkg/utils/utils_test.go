package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToUint16(t *testing.T) {
	for high := 0; high < 256; high++ {
		for low := 0; low < 256; low++ {
			v := BytesToUint16(uint8(high), uint8(low))
			if v != uint16(high*256+low) {
				t.Fatalf("BytesToUint16(%02X, %02X) = %04X", high, low, v)
			}
			h, l := Uint16ToBytes(v)
			if h != uint8(high) || l != uint8(low) {
				t.Fatalf("Uint16ToBytes(%04X) = %02X, %02X", v, h, l)
			}
		}
	}
}

func TestBits(t *testing.T) {
	assert.True(t, TestBit(0x08, 3))
	assert.False(t, TestBit(0x08, 4))
	assert.Equal(t, uint8(0x89), SetBitIf(0x80, 0x09, true))
	assert.Equal(t, uint8(0x80), SetBitIf(0x80, 0x09, false))
}
