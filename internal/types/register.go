package types

import "github.com/thelolagemann/sm83core/pkg/utils"

// Register represents an 8-bit CPU register.
type Register = uint8

// RegisterPair represents a pair of Registers used as a single 16-bit
// value. The pair does not hold a value of its own; High and Low point at
// the two independent byte registers it is composed of.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return utils.BytesToUint16(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = utils.Uint16ToBytes(value)
}

// Increment adds 1 to the pair, wrapping from 0xFFFF to 0x0000.
func (r *RegisterPair) Increment() {
	r.SetUint16(r.Uint16() + 1)
}

// Decrement subtracts 1 from the pair, wrapping from 0x0000 to 0xFFFF.
func (r *RegisterPair) Decrement() {
	r.SetUint16(r.Uint16() - 1)
}

// Registers holds the 8-bit registers along with PC and SP. The flags
// are kept outside the register file, so there is no F register and no
// AF pair.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points at the last pushed byte.
	SP uint16

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with its pairs bound.
func NewRegisters() *Registers {
	r := &Registers{}
	r.bindPairs()
	return r
}

func (r *Registers) bindPairs() {
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
}

// Restore overwrites the register values with those of other, keeping
// the receiver's pairs bound to the receiver.
func (r *Registers) Restore(other Registers) {
	r.A, r.B, r.C, r.D, r.E, r.H, r.L = other.A, other.B, other.C, other.D, other.E, other.H, other.L
	r.PC, r.SP = other.PC, other.SP
}

// HLAddress returns the address held in HL.
func (r *Registers) HLAddress() uint16 { return r.HL.Uint16() }

// BCAddress returns the address held in BC.
func (r *Registers) BCAddress() uint16 { return r.BC.Uint16() }

// DEAddress returns the address held in DE.
func (r *Registers) DEAddress() uint16 { return r.DE.Uint16() }

// IncrementHL adds 1 to HL with 16-bit wraparound.
func (r *Registers) IncrementHL() { r.HL.Increment() }

// DecrementHL subtracts 1 from HL with 16-bit wraparound.
func (r *Registers) DecrementHL() { r.HL.Decrement() }
