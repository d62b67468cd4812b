package mpu3

// RAM is a fixed 256-byte flat memory, byte-addressed with a wrapping 8-bit
// index. Reads of uninitialised cells return 0. There is no protection —
// addressing is always in range because the index type is byte.
type RAM struct {
	cells [RAMSize]byte
}

// Read returns the byte at addr.
func (m *RAM) Read(addr byte) byte {
	return m.cells[addr]
}

// Write stores v at addr.
func (m *RAM) Write(addr byte, v byte) {
	m.cells[addr] = v
}
