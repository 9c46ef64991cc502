package types

const (
	// AddressSpace is the size of the CPU's flat 16-bit address space.
	AddressSpace = 0x10000

	// IOWindow is the base of the I/O register window, addressed by the
	// short form LDH instructions as IOWindow + offset.
	IOWindow uint16 = 0xFF00
)
