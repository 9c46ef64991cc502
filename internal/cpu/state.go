package cpu

import "github.com/thelolagemann/sm83core/internal/types"

var _ types.Stater = (*CPU)(nil)

// cpuStateSize is the number of bytes written by Save.
const cpuStateSize = 7 + 2 + 2 + 4 + 8

// Load restores the registers, flags and cycle counter from s. Loading a
// state clears a fault that stopped the CPU.
func (c *CPU) Load(s *types.State) error {
	if err := s.Check(cpuStateSize); err != nil {
		return err
	}
	c.A = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.Flags.Z = s.ReadBool()
	c.Flags.N = s.ReadBool()
	c.Flags.H = s.ReadBool()
	c.Flags.C = s.ReadBool()
	c.cycles = s.Read64()
	c.err = nil
	return nil
}

// Save writes the registers, flags and cycle counter to s.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.Flags.Z)
	s.WriteBool(c.Flags.N)
	s.WriteBool(c.Flags.H)
	s.WriteBool(c.Flags.C)
	s.Write64(c.cycles)
}
