package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_PairAddresses(t *testing.T) {
	r := NewRegisters()
	for high := 0; high < 256; high++ {
		for low := 0; low < 256; low++ {
			want := uint16(high*256 + low)
			r.B, r.C = uint8(high), uint8(low)
			r.D, r.E = uint8(high), uint8(low)
			r.H, r.L = uint8(high), uint8(low)
			if r.BCAddress() != want || r.DEAddress() != want || r.HLAddress() != want {
				t.Fatalf("pair address for %02X%02X: BC=%04X DE=%04X HL=%04X", high, low, r.BCAddress(), r.DEAddress(), r.HLAddress())
			}
		}
	}
}

func TestRegisters_HL(t *testing.T) {
	r := NewRegisters()
	testCases := []struct {
		desc  string
		h, l  uint8
		inc   bool
		wantH uint8
		wantL uint8
	}{
		{desc: "increment wraps", h: 0xFF, l: 0xFF, inc: true, wantH: 0x00, wantL: 0x00},
		{desc: "increment from zero", h: 0x00, l: 0x00, inc: true, wantH: 0x00, wantL: 0x01},
		{desc: "increment carries into H", h: 0x00, l: 0xFF, inc: true, wantH: 0x01, wantL: 0x00},
		{desc: "decrement to zero", h: 0x00, l: 0x01, wantH: 0x00, wantL: 0x00},
		{desc: "decrement wraps", h: 0x00, l: 0x00, wantH: 0xFF, wantL: 0xFF},
		{desc: "decrement borrows from H", h: 0x01, l: 0x00, wantH: 0x00, wantL: 0xFF},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r.H, r.L = tC.h, tC.l
			if tC.inc {
				r.IncrementHL()
			} else {
				r.DecrementHL()
			}
			assert.Equal(t, tC.wantH, r.H)
			assert.Equal(t, tC.wantL, r.L)
		})
	}
}

func TestRegisters_HLInverse(t *testing.T) {
	r := NewRegisters()
	for v := 0; v < 0x10000; v++ {
		r.HL.SetUint16(uint16(v))
		r.DecrementHL()
		r.IncrementHL()
		if r.HLAddress() != uint16(v) {
			t.Fatalf("increment(decrement(%04X)) = %04X", v, r.HLAddress())
		}
	}
}

func TestRegisters_Restore(t *testing.T) {
	r := NewRegisters()
	r.B, r.C, r.PC, r.SP = 0x12, 0x34, 0x0100, 0xFFFE

	saved := *r
	r.BC.SetUint16(0xBEEF)
	r.PC = 0x0200
	r.Restore(saved)
	assert.Equal(t, uint16(0x1234), r.BCAddress())
	assert.Equal(t, uint16(0x0100), r.PC)
	assert.Equal(t, uint16(0xFFFE), r.SP)

	// the pairs stay bound to r after a restore
	r.BC.SetUint16(0x5678)
	assert.Equal(t, uint8(0x56), r.B)
}

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0x3456)
	s.Write32(0x789ABCDE)
	s.Write64(0x0123456789ABCDEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	assert.Equal(t, 1+2+4+8+1+3, len(s.Bytes()))

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x12), r.Read8())
	assert.Equal(t, uint16(0x3456), r.Read16())
	assert.Equal(t, uint32(0x789ABCDE), r.Read32())
	assert.Equal(t, uint64(0x0123456789ABCDEF), r.Read64())
	assert.True(t, r.ReadBool())
	p := make([]byte, 3)
	r.ReadData(p)
	assert.Equal(t, []byte{1, 2, 3}, p)
	assert.Equal(t, 0, r.Remaining())
	assert.ErrorIs(t, r.Check(1), ErrShortState)
}
