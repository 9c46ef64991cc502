package cpu

import (
	"github.com/thelolagemann/sm83core/internal/types"
	"github.com/thelolagemann/sm83core/pkg/utils"
)

// Width selects the carry boundary used by adjustCarryFlag.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
)

// Bit patterns used when the flags are packed into a byte for PUSH AF.
const (
	FlagZero      uint8 = types.Bit7
	FlagSubtract  uint8 = types.Bit6
	FlagHalfCarry uint8 = types.Bit5
	// FlagCarry is packed as 0x09 rather than bit 4 (0x10) as real
	// hardware does. See DESIGN.md before extending the table with POP AF.
	FlagCarry uint8 = 0x09
)

// Flags holds the four CPU flags. The flags are kept as booleans rather
// than as bits of an F register.
type Flags struct {
	Z bool // zero
	N bool // subtract
	H bool // half carry
	C bool // carry
}

func (f *Flags) setZeroFlag()       { f.Z = true }
func (f *Flags) clearZeroFlag()     { f.Z = false }
func (f *Flags) setSubtractFlag()   { f.N = true }
func (f *Flags) clearSubtractFlag() { f.N = false }

// adjustZeroFlag sets Z if the low 8 bits of result are 0.
func (f *Flags) adjustZeroFlag(result int) {
	f.Z = result&0xFF == 0
}

// adjustCarryFlag sets C if the untruncated result overflowed width bits.
func (f *Flags) adjustCarryFlag(result int, width Width) {
	if width == Width16 {
		f.C = result > 0xFFFF
	} else {
		f.C = result > 0xFF
	}
}

// adjustHalfCarryFlag sets H if bit 3 of original is set and bit 4 of
// result is set. This does not model the addend's bit 3, so it is only
// exact for the instruction shapes currently in the table.
func (f *Flags) adjustHalfCarryFlag(original uint8, result int) {
	f.H = utils.TestBit(original, 3) && result&types.Bit4 != 0
}

// Byte packs the flags into a byte, as pushed by PUSH AF.
func (f Flags) Byte() uint8 {
	var b uint8
	b = utils.SetBitIf(b, FlagZero, f.Z)
	b = utils.SetBitIf(b, FlagSubtract, f.N)
	b = utils.SetBitIf(b, FlagHalfCarry, f.H)
	return utils.SetBitIf(b, FlagCarry, f.C)
}

// String returns the flags as ZNHC, with unset flags shown as '-'.
func (f Flags) String() string {
	b := []byte("----")
	for i, set := range []bool{f.Z, f.N, f.H, f.C} {
		if set {
			b[i] = "ZNHC"[i]
		}
	}
	return string(b)
}
