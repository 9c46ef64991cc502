package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplementedOpcode is wrapped by UnimplementedOpcodeError.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	// ErrAddressOutOfRange is wrapped by AddressError.
	ErrAddressOutOfRange = errors.New("address out of range")
)

// UnimplementedOpcodeError is returned by Step when the byte at PC has no
// entry in the InstructionSet. The length of such an instruction is
// unknown, so execution cannot continue past it.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Unwrap() error { return ErrUnimplementedOpcode }

// AddressError is returned by Step when an instruction composes an
// address that lies outside of the memory map.
type AddressError struct {
	Address uint16
	Opcode  uint8
	PC      uint16

	fetch bool // the opcode itself could not be fetched
}

func (e *AddressError) Error() string {
	if e.fetch {
		return fmt.Sprintf("cpu: cannot fetch opcode, PC 0x%04X out of range", e.PC)
	}
	return fmt.Sprintf("cpu: address 0x%04X out of range (opcode 0x%02X at PC 0x%04X)", e.Address, e.Opcode, e.PC)
}

func (e *AddressError) Unwrap() error { return ErrAddressOutOfRange }
