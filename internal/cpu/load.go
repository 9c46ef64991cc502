package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83core/internal/types"
)

// registerNames holds the operand names in the order the opcode encodes
// them. Index 6 is (HL), which addresses memory rather than a register.
var registerNames = []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerIndex returns a Register pointer for the given operand index.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// loadRegisterToRegister loads the value of the given Register into the given
// Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register *types.Register, value *types.Register) {
	*register = *value
}

// loadRegister8 loads the immediate operand into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8(reg *types.Register) {
	*reg = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address into the
// given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *types.Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given Register into the given
// memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg types.Register, address uint16) {
	c.writeByte(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the
// I/O window at 0xFF00 + offset.
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(reg types.Register, offset uint8) {
	c.writeByte(types.IOWindow+uint16(offset), reg)
}

// loadHardwareToRegister loads the value in the I/O window at
// 0xFF00 + offset into the given Register.
//
//	LD A, (0xFF00 + n)
//	n = C, 8 bit immediate value
func (c *CPU) loadHardwareToRegister(reg *types.Register, offset uint8) {
	*reg = c.readByte(types.IOWindow + uint16(offset))
}

// loadRegister16 loads the 16-bit immediate operand into the given
// Register pair. The low byte comes first.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *types.RegisterPair) {
	*reg.Low = c.readOperand()
	*reg.High = c.readByte(c.PC + 2)
}

// loadHLSPSigned adds the signed immediate operand to SP and stores the
// sum in HL. Z and N are cleared, H and C are derived from the wide sum.
//
//	LD HL, SP+r8
func (c *CPU) loadHLSPSigned() {
	sum := int(c.SP) + int(int8(c.readOperand()))
	c.HL.SetUint16(uint16(sum))

	c.Flags.clearZeroFlag()
	c.Flags.clearSubtractFlag()
	c.Flags.adjustHalfCarryFlag(uint8(c.SP), sum)
	c.Flags.adjustCarryFlag(sum, Width16)
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", 3, 12, func(c *CPU) { c.loadRegister16(c.BC) })
	DefineInstruction(0x02, "LD (BC), A", 1, 8, func(c *CPU) { c.loadRegisterToMemory(c.A, c.BCAddress()) })
	DefineInstruction(0x08, "LD (a16), SP", 3, 20, func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
	})
	DefineInstruction(0x0A, "LD A, (BC)", 1, 8, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BCAddress()) })
	DefineInstruction(0x11, "LD DE, d16", 3, 12, func(c *CPU) { c.loadRegister16(c.DE) })
	DefineInstruction(0x12, "LD (DE), A", 1, 8, func(c *CPU) { c.loadRegisterToMemory(c.A, c.DEAddress()) })
	DefineInstruction(0x1A, "LD A, (DE)", 1, 8, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DEAddress()) })
	DefineInstruction(0x21, "LD HL, d16", 3, 12, func(c *CPU) { c.loadRegister16(c.HL) })
	DefineInstruction(0x22, "LD (HL+), A", 1, 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HLAddress())
		c.IncrementHL()
	})
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HLAddress())
		c.IncrementHL()
	})
	DefineInstruction(0x31, "LD SP, d16", 3, 12, func(c *CPU) { c.SP = c.readOperand16() })
	DefineInstruction(0x32, "LD (HL-), A", 1, 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HLAddress())
		c.DecrementHL()
	})
	DefineInstruction(0x36, "LD (HL), d8", 2, 12, func(c *CPU) {
		c.writeByte(c.HLAddress(), c.readOperand())
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HLAddress())
		c.DecrementHL()
	})
	DefineInstruction(0xE0, "LDH (a8), A", 2, 12, func(c *CPU) { c.loadRegisterToHardware(c.A, c.readOperand()) })
	DefineInstruction(0xE2, "LD (C), A", 1, 8, func(c *CPU) { c.loadRegisterToHardware(c.A, c.C) })
	DefineInstruction(0xEA, "LD (a16), A", 3, 16, func(c *CPU) { c.loadRegisterToMemory(c.A, c.readOperand16()) })
	DefineInstruction(0xF0, "LDH A, (a8)", 2, 12, func(c *CPU) { c.loadHardwareToRegister(&c.A, c.readOperand()) })
	DefineInstruction(0xF2, "LD A, (C)", 1, 8, func(c *CPU) { c.loadHardwareToRegister(&c.A, c.C) })
	DefineInstruction(0xF8, "LD HL, SP+r8", 2, 12, func(c *CPU) { c.loadHLSPSigned() })
	DefineInstruction(0xF9, "LD SP, HL", 1, 8, func(c *CPU) { c.SP = c.HLAddress() })
	DefineInstruction(0xFA, "LD A, (a16)", 3, 16, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.readOperand16()) })

	generateLoadRegister8Instructions()
	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegister8Instructions generates the immediate loads
// (e.g. LD B, d8), which sit at 0x06 + 8*n. 0x36, LD (HL), d8, is
// defined on its own as it stores to memory.
func generateLoadRegister8Instructions() {
	for i := uint8(0); i < 8; i++ {
		toRegister := i
		if toRegister == 6 {
			continue
		}
		DefineInstruction(0x06+i*8, fmt.Sprintf("LD %s, d8", registerNames[toRegister]), 2, 8, func(c *CPU) {
			c.loadRegister8(c.registerIndex(toRegister))
		})
	}
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76, which would be LD (HL), (HL), is HALT and is not generated.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			// needs to be captured per iteration, otherwise every closure sees the last register
			toRegister, fromRegister := i, j
			opcode := 0x40 + i*8 + j
			name := fmt.Sprintf("LD %s, %s", registerNames[toRegister], registerNames[fromRegister])

			switch {
			case toRegister == 6 && fromRegister == 6:
				continue
			case toRegister == 6:
				DefineInstruction(opcode, name, 1, 8, func(c *CPU) {
					c.loadRegisterToMemory(*c.registerIndex(fromRegister), c.HLAddress())
				})
			case fromRegister == 6:
				DefineInstruction(opcode, name, 1, 8, func(c *CPU) {
					c.loadMemoryToRegister(c.registerIndex(toRegister), c.HLAddress())
				})
			default:
				DefineInstruction(opcode, name, 1, 4, func(c *CPU) {
					c.loadRegisterToRegister(c.registerIndex(toRegister), c.registerIndex(fromRegister))
				})
			}
		}
	}
}
