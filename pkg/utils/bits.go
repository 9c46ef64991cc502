package utils

// TestBit returns true if the bit is set, false otherwise.
func TestBit(value uint8, bit uint8) bool {
	return value&(1<<bit) != 0
}

// SetBitIf ORs mask into value when cond is true.
func SetBitIf(value uint8, mask uint8, cond bool) uint8 {
	if cond {
		return value | mask
	}
	return value
}
