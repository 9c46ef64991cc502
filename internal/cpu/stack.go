package cpu

import "github.com/thelolagemann/sm83core/internal/types"

// pushNN pushes the given RegisterPair onto the stack, high byte first.
//
//	PUSH nn
//	nn = BC, DE, HL
func (c *CPU) pushNN(reg *types.RegisterPair) {
	c.pushToStack(*reg.High)
	c.pushToStack(*reg.Low)
}

// pushAF pushes A, followed by the flags packed into a byte.
//
//	PUSH AF
func (c *CPU) pushAF() {
	c.pushToStack(c.A)
	c.pushToStack(c.Flags.Byte())
}

func init() {
	DefineInstruction(0xC5, "PUSH BC", 1, 16, func(c *CPU) { c.pushNN(c.BC) })
	DefineInstruction(0xD5, "PUSH DE", 1, 16, func(c *CPU) { c.pushNN(c.DE) })
	DefineInstruction(0xE5, "PUSH HL", 1, 16, func(c *CPU) { c.pushNN(c.HL) })
	DefineInstruction(0xF5, "PUSH AF", 1, 16, func(c *CPU) { c.pushAF() })
}
