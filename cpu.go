package mpu3

// Context is the aggregate CPU state: the register file, RAM, program
// counter with its call stack, stack pointer, port bus, and the Z/C/Halted
// flags. It is mutated only by the executor for the instruction currently
// running; devices bound on Ports mutate only their own internal state.
type Context struct {
	Registers RegisterFile
	RAM       RAM
	PC        ProgramCounter
	SP        StackPointer
	Ports     *PortBus

	Z      bool
	C      bool
	Halted bool
}

// NewContext builds a CPU context bound to the given port bus, with PC and
// SP at zero. Callers typically build the bus first (binding all devices),
// then construct the context, then set PC/SP to the program's intended
// entry point if it differs from zero.
func NewContext(ports *PortBus) *Context {
	return &Context{Ports: ports}
}
