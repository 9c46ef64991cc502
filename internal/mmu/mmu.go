// Package mmu provides the memory map shared by the CPU and any other
// component that needs to observe or mutate the address space.
//
// The MMU is always handed around by pointer. Its contents are guarded by
// its own lock, so every holder of the pointer may Read and Write without
// the caller having to coordinate access.
package mmu

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83core/internal/types"
	"github.com/thelolagemann/sm83core/pkg/log"
)

// IOBus is the view of the MMU used by the CPU.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// Contains reports whether address falls inside the bus.
	Contains(address uint16) bool
}

// MMU is a fixed size, byte addressable memory map. Every byte starts
// out as 0.
type MMU struct {
	mu  sync.RWMutex
	raw []byte

	Log log.Logger
}

var _ IOBus = (*MMU)(nil)

// NewMMU returns a new MMU of the given size. types.AddressSpace is the
// reference size covering the full 16-bit address space.
func NewMMU(size int) *MMU {
	if size <= 0 || size > types.AddressSpace {
		panic(fmt.Sprintf("mmu: invalid size %d", size))
	}
	return &MMU{
		raw: make([]byte, size),
		Log: log.NewNullLogger(),
	}
}

// Size returns the number of addressable bytes.
func (m *MMU) Size() int {
	return len(m.raw)
}

// Contains reports whether address is backed by memory.
func (m *MMU) Contains(address uint16) bool {
	return int(address) < len(m.raw)
}

// Read returns the byte at address. Reading outside of the
// memory map panics, callers composing addresses check Contains first.
func (m *MMU) Read(address uint16) uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.raw[address]
}

// Write stores value at address. It panics under the same condition
// as Read.
func (m *MMU) Write(address uint16, value uint8) {
	m.mu.Lock()
	m.raw[address] = value
	m.mu.Unlock()
}

// LoadProgram copies program into memory starting at offset.
func (m *MMU) LoadProgram(offset uint16, program []byte) error {
	if int(offset)+len(program) > len(m.raw) {
		return fmt.Errorf("mmu: program of %d bytes at 0x%04X exceeds memory size 0x%X", len(program), offset, len(m.raw))
	}
	m.mu.Lock()
	copy(m.raw[offset:], program)
	m.mu.Unlock()

	m.Log.Debugf("loaded %d bytes at 0x%04X", len(program), offset)
	return nil
}

// Checksum returns the xxhash of the whole memory map.
func (m *MMU) Checksum() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return xxhash.Sum64(m.raw)
}

var _ types.Stater = (*MMU)(nil)

// Save writes the size and contents of the memory map to s.
func (m *MMU) Save(s *types.State) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s.Write32(uint32(len(m.raw)))
	s.WriteData(m.raw)
}

// Load replaces the contents of the memory map with those stored in s.
// A state saved from a memory map of a different size is rejected.
func (m *MMU) Load(s *types.State) error {
	if err := s.Check(4); err != nil {
		return err
	}
	size := int(s.Read32())
	if size != len(m.raw) {
		return fmt.Errorf("mmu: state holds 0x%X bytes, memory map is 0x%X", size, len(m.raw))
	}
	if err := s.Check(size); err != nil {
		return err
	}

	m.mu.Lock()
	s.ReadData(m.raw)
	m.mu.Unlock()
	return nil
}
