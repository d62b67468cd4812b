package mpu3

// pushImmExecutor implements PSH imm: RAM[SP] <- imm, then SP grows by one.
type pushImmExecutor struct {
	imm byte
}

func (e pushImmExecutor) Execute(ctx *Context, advancePC bool) error {
	ctx.RAM.Write(ctx.SP.Value(), e.imm)
	if err := ctx.SP.Increment(1); err != nil {
		return err
	}
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e pushImmExecutor) IsControlFlow() bool { return false }

// pushRegExecutor implements PSHR reg (also spelled PHR): RAM[SP] <- reg,
// then SP grows by one.
type pushRegExecutor struct {
	reg int
}

func (e pushRegExecutor) Execute(ctx *Context, advancePC bool) error {
	ctx.RAM.Write(ctx.SP.Value(), ctx.Registers.Read(e.reg))
	if err := ctx.SP.Increment(1); err != nil {
		return err
	}
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e pushRegExecutor) IsControlFlow() bool { return false }

// popExecutor implements POP n: SP shrinks by n. Nothing is read back into
// a register — the caller addresses the freed slots directly via the
// stack-relative addressing modes if it needs the values.
type popExecutor struct {
	n int
}

func (e popExecutor) Execute(ctx *Context, advancePC bool) error {
	if err := ctx.SP.Decrement(e.n); err != nil {
		return err
	}
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e popExecutor) IsControlFlow() bool { return false }

// pushManyExecutor implements PSHM n: SP grows by n with no RAM write,
// reserving n bytes of frame space.
type pushManyExecutor struct {
	n int
}

func (e pushManyExecutor) Execute(ctx *Context, advancePC bool) error {
	if err := ctx.SP.Increment(e.n); err != nil {
		return err
	}
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e pushManyExecutor) IsControlFlow() bool { return false }
