package cpu

import "fmt"

// Instruction represents a single entry of the instruction table. Each
// entry fixes the total length of the instruction in bytes and its cost
// in cycles, independently of its operands.
type Instruction struct {
	name   string     // mnemonic, with operand placeholders (d8, d16, a8, a16, r8)
	length uint8      // bytes, including the opcode
	cycles uint8      // clock cycles
	fn     func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Length returns the length of the instruction in bytes.
func (i Instruction) Length() uint8 { return i.length }

// Cycles returns the number of clock cycles the instruction takes.
func (i Instruction) Cycles() uint8 { return i.cycles }

// InstructionSet holds the instructions keyed by opcode. Opcodes without
// a handler are not implemented.
var InstructionSet [256]Instruction

// DefineInstruction defines the instruction for opcode in the InstructionSet.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU)) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("opcode 0x%02X defined twice (%s, %s)", opcode, InstructionSet[opcode].name, name))
	}
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		cycles: cycles,
		fn:     fn,
	}
}

// Lookup returns the instruction for opcode, and whether it is implemented.
func Lookup(opcode uint8) (Instruction, bool) {
	i := InstructionSet[opcode]
	return i, i.fn != nil
}
