package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/sm83core/pkg/utils"
)

// Disassemble returns the mnemonic of the instruction at address with its
// operands filled in, along with the length of the instruction. Memory
// and CPU state are left untouched.
func (c *CPU) Disassemble(address uint16) (string, uint8, error) {
	if !c.mmu.Contains(address) {
		return "", 0, &AddressError{Address: address, PC: address, fetch: true}
	}
	opcode := c.mmu.Read(address)
	instruction, ok := Lookup(opcode)
	if !ok {
		return "", 0, &UnimplementedOpcodeError{Opcode: opcode, PC: address}
	}

	operands := make([]uint8, instruction.length-1)
	for i := range operands {
		operandAddress := address + 1 + uint16(i)
		if !c.mmu.Contains(operandAddress) {
			return "", 0, &AddressError{Address: operandAddress, Opcode: opcode, PC: address}
		}
		operands[i] = c.mmu.Read(operandAddress)
	}

	name := instruction.name
	switch len(operands) {
	case 1:
		name = strings.NewReplacer(
			"+r8", fmt.Sprintf("%+d", int8(operands[0])),
			"d8", fmt.Sprintf("0x%02X", operands[0]),
			"a8", fmt.Sprintf("0x%02X", operands[0]),
		).Replace(name)
	case 2:
		value := fmt.Sprintf("0x%04X", utils.BytesToUint16(operands[1], operands[0]))
		name = strings.NewReplacer("d16", value, "a16", value).Replace(name)
	}

	return name, instruction.length, nil
}
