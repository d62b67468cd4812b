package mpu3

// ProgramCounter is the 10-bit instruction pointer plus its independent
// LIFO return-address stack. The call stack is not part of RAM and has no
// fixed depth bound in this spec.
type ProgramCounter struct {
	value     int
	callStack []int
}

// Value returns the current program counter.
func (p *ProgramCounter) Value() int {
	return p.value
}

// Set overwrites the program counter directly (used at construction/reset).
func (p *ProgramCounter) Set(addr int) {
	p.value = addr
}

// Increment advances the program counter by one. Fails if the new value
// would reach MaxProgramSize.
func (p *ProgramCounter) Increment() error {
	next := p.value + 1
	if next >= MaxProgramSize {
		return fault(FaultPCOverflow, next, "program counter increment overflow")
	}
	p.value = next
	return nil
}

// SetBranch jumps directly to addr. Fails if addr is out of range.
func (p *ProgramCounter) SetBranch(addr int) error {
	if addr < 0 || addr >= MaxProgramSize {
		return fault(FaultAddressOutOfRange, addr, "branch target out of range")
	}
	p.value = addr
	return nil
}

// PushCall pushes value+1 as the return address, then jumps to addr. Fails
// if addr or the return address are out of range, leaving the call stack
// untouched.
func (p *ProgramCounter) PushCall(addr int) error {
	if addr < 0 || addr >= MaxProgramSize {
		return fault(FaultAddressOutOfRange, addr, "call target out of range")
	}
	ret := p.value + 1
	if ret >= MaxProgramSize {
		return fault(FaultPCOverflow, ret, "call return address overflow")
	}
	p.callStack = append(p.callStack, ret)
	p.value = addr
	return nil
}

// PopReturn pops the call stack into the program counter. Fails if the call
// stack is empty.
func (p *ProgramCounter) PopReturn() error {
	n := len(p.callStack)
	if n == 0 {
		return fault(FaultCallStackEmpty, p.value, "return with empty call stack")
	}
	p.value = p.callStack[n-1]
	p.callStack = p.callStack[:n-1]
	return nil
}

// CallDepth reports the number of pending return addresses, mainly useful
// for tests asserting the call stack unwinds to empty.
func (p *ProgramCounter) CallDepth() int {
	return len(p.callStack)
}
