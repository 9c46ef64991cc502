package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timings holds the cost of each opcode in machine cycles (4 clock
// cycles each). 0 marks an opcode that is not implemented.
var timings = [256]uint8{
	0, 3, 2, 0, 0, 0, 2, 0, 5, 0, 2, 0, 0, 0, 2, 0,
	0, 3, 2, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2, 0,
	0, 3, 2, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2, 0,
	0, 3, 2, 0, 0, 0, 3, 0, 0, 0, 2, 0, 0, 0, 2, 0,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	3, 0, 2, 0, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0,
	3, 0, 2, 0, 0, 4, 0, 0, 3, 2, 4, 0, 0, 0, 0, 0,
}

// lengths holds the length of each opcode in bytes.
var lengths = [256]uint8{
	0, 3, 1, 0, 0, 0, 2, 0, 3, 0, 1, 0, 0, 0, 2, 0,
	0, 3, 1, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 2, 0,
	0, 3, 1, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 2, 0,
	0, 3, 1, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 2, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	2, 0, 1, 0, 0, 1, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0,
	2, 0, 1, 0, 0, 1, 0, 0, 2, 1, 3, 0, 0, 0, 0, 0,
}

func TestInstruction_Table(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		instruction, ok := Lookup(uint8(opcode))
		if timings[opcode] == 0 {
			assert.False(t, ok, "opcode %02X should not be implemented", opcode)
			continue
		}
		if !assert.True(t, ok, "opcode %02X should be implemented", opcode) {
			continue
		}
		assert.Equal(t, timings[opcode]*4, instruction.Cycles(), "%02X %s cycles", opcode, instruction.Name())
		assert.Equal(t, lengths[opcode], instruction.Length(), "%02X %s length", opcode, instruction.Name())
	}
}

func TestInstruction_DefineTwice(t *testing.T) {
	assert.Panics(t, func() {
		DefineInstruction(0x06, "LD B, d8", 2, 8, func(c *CPU) {})
	})
}

// TestInstruction_Step checks that every opcode advances PC by its length
// and the cycle counter by its cost, whatever the operands and register
// values are.
func TestInstruction_Step(t *testing.T) {
	r := rand.New(rand.NewSource(0x5183))

	for opcode := 0; opcode < 256; opcode++ {
		instruction, ok := Lookup(uint8(opcode))
		if !ok {
			continue
		}
		for run := 0; run < 16; run++ {
			c, m := newTestCPU(t)
			pc := uint16(0x0100 + r.Intn(0x7000))
			m.Write(pc, uint8(opcode))
			m.Write(pc+1, uint8(r.Intn(256)))
			m.Write(pc+2, uint8(r.Intn(256)))
			c.PC = pc
			c.SP = uint16(r.Intn(0x10000))
			c.A, c.B, c.C, c.D = uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256))
			c.E, c.H, c.L = uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256))
			c.cycles = uint64(r.Intn(1000))
			before := c.cycles

			cycles, err := c.Step()
			require.NoError(t, err, "opcode %02X", opcode)
			assert.Equal(t, instruction.Cycles(), cycles)
			assert.Equal(t, pc+uint16(instruction.Length()), c.PC, "opcode %02X", opcode)
			assert.Equal(t, before+uint64(instruction.Cycles()), c.Cycles(), "opcode %02X", opcode)
		}
	}
}
