package mpu3

// Architecture-fixed bounds for the M-PU-3. These are invariant constants
// of the machine, not configuration: every CPU instance has exactly this
// many registers, this much RAM, this many program slots, and this deep a
// pipeline.
const (
	// RegisterCount is the number of 8-bit registers, R0..R7. R0 is
	// hard-wired to zero.
	RegisterCount = 8

	// RAMSize is the number of addressable bytes in main memory.
	RAMSize = 256

	// MaxProgramSize is the maximum number of decoded instructions a
	// Program may hold; the program counter is a 10-bit index into it.
	MaxProgramSize = 1024

	// PortCount is the number of addressable I/O port slots.
	PortCount = 256

	// InstructionPipelineSize is the fixed depth of the fetch pipeline.
	InstructionPipelineSize = 3

	// DisplayWidth and DisplayHeight bound the pixel display's coordinate
	// space.
	DisplayWidth  = 128
	DisplayHeight = 128
)

// Condition codes used by BRH and the conditional-move instruction.
const (
	CondIfZero     = 0 // if Z
	CondIfNotZero  = 1 // if !Z
	CondIfCarry    = 2 // if C
	CondIfNotCarry = 3 // if !C
)
