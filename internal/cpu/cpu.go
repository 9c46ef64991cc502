// Package cpu implements the instruction execution core of the SM83, the
// CPU of the Game Boy. A CPU is bound to a memory map and executes one
// instruction per call to Step, counting the cycles each one takes.
package cpu

import (
	"github.com/thelolagemann/sm83core/internal/mmu"
	"github.com/thelolagemann/sm83core/internal/types"
	"github.com/thelolagemann/sm83core/pkg/log"
	"github.com/thelolagemann/sm83core/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// pendingWrite is a memory write staged during Step.
type pendingWrite struct {
	address uint16
	value   uint8
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, PC, SP and the register pairs.
	*types.Registers
	// Flags holds Z, N, H and C.
	Flags Flags

	mmu    mmu.IOBus
	cycles uint64

	Log   log.Logger
	Debug bool

	// state of the instruction being executed
	opcode  uint8
	pending []pendingWrite
	fault   error

	// err is the fault that stopped execution, if any
	err error
}

// NewCPU creates a new CPU bound to the given memory map. All registers,
// flags and the cycle counter start at 0.
func NewCPU(bus mmu.IOBus, opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		mmu:       bus,
		Log:       log.NewNullLogger(),
		pending:   make([]pendingWrite, 0, 2),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Cycles returns the number of cycles executed since the CPU was created.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Err returns the fault that stopped the CPU, or nil if it is running.
func (c *CPU) Err() error {
	return c.err
}

// Step executes the instruction at PC and returns the number of cycles
// it took.
//
// An instruction either completes all of its effects or none of them.
// When the opcode is not implemented, or the instruction addresses memory
// outside of the memory map, the registers, flags, cycle counter and
// memory are left as they were and the error is returned. The CPU then
// stays stopped, and every further call returns the same error.
func (c *CPU) Step() (uint8, error) {
	if c.err != nil {
		return 0, c.err
	}

	pc := c.PC
	if !c.mmu.Contains(pc) {
		return 0, c.stop(&AddressError{Address: pc, PC: pc, fetch: true})
	}
	c.opcode = c.mmu.Read(pc)

	instruction, ok := Lookup(c.opcode)
	if !ok {
		return 0, c.stop(&UnimplementedOpcodeError{Opcode: c.opcode, PC: pc})
	}

	// saved shares its pairs with c.Registers, only its values are used
	saved, flags := *c.Registers, c.Flags
	c.pending = c.pending[:0]

	instruction.fn(c)

	if c.fault != nil {
		c.Registers.Restore(saved)
		c.Flags = flags
		err := c.fault
		c.fault = nil
		return 0, c.stop(err)
	}

	for _, w := range c.pending {
		c.mmu.Write(w.address, w.value)
	}
	c.PC = pc + uint16(instruction.length)
	c.cycles += uint64(instruction.cycles)

	if c.Debug {
		c.Log.Debugf("%04X  %-16s %2d  A:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X F:%s",
			pc, instruction.name, instruction.cycles, c.A, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.Flags)
	}

	return instruction.cycles, nil
}

// stop halts execution with err.
func (c *CPU) stop(err error) error {
	c.err = err
	c.Log.Errorf("%v", err)
	return err
}

// readByte reads a byte from memory. Reading outside of the memory map
// faults the current instruction and returns 0.
func (c *CPU) readByte(address uint16) uint8 {
	if !c.mmu.Contains(address) {
		c.addressFault(address)
		return 0
	}
	return c.mmu.Read(address)
}

// writeByte stages a write of value to address. Staged writes reach
// memory once the instruction has completed, so they are not visible to
// reads made by the same instruction.
func (c *CPU) writeByte(address uint16, value uint8) {
	if !c.mmu.Contains(address) {
		c.addressFault(address)
		return
	}
	c.pending = append(c.pending, pendingWrite{address, value})
}

func (c *CPU) addressFault(address uint16) {
	if c.fault == nil {
		c.fault = &AddressError{Address: address, Opcode: c.opcode, PC: c.PC}
	}
}

// readOperand reads the byte following the opcode.
func (c *CPU) readOperand() uint8 {
	return c.readByte(c.PC + 1)
}

// readOperand16 reads the two bytes following the opcode as a
// little-endian value.
func (c *CPU) readOperand16() uint16 {
	return c.twoByteAddress(c.PC + 1)
}

// twoByteAddress composes the bytes at base and base+1 into a 16-bit
// value, low byte first.
func (c *CPU) twoByteAddress(base uint16) uint16 {
	low := c.readByte(base)
	high := c.readByte(base + 1)
	return utils.BytesToUint16(high, low)
}

// pushToStack decrements SP, then writes value at the new SP.
func (c *CPU) pushToStack(value uint8) {
	c.SP--
	c.writeByte(c.SP, value)
}
