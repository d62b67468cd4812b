package mpu3

// The four RAM addressing modes from spec.md §4.7. offset is always
// interpreted as signed 8-bit two's complement; ptr is a register value.
func absoluteAddr(addr byte) byte {
	return addr
}

func pointerOffsetAddr(ptr byte, offset int8) byte {
	return byte((int(ptr) - int(offset) - 1) & 0xFF)
}

func stackOffsetAddr(sp byte, offset int8) byte {
	return byte((int(sp) - int(offset) - 1) & 0xFF)
}

func stackPointerOffsetAddr(sp, ptr byte, offset int8) byte {
	return byte(((int(sp) - int(offset) - 1) - int(ptr) - 1) & 0xFF)
}

// memStoreExecutor covers MST/MSP/MSS/MSPS: compute an address from the
// configured mode and store reg there. No flag changes.
type memStoreExecutor struct {
	reg     int
	addr    func(ctx *Context) byte
}

func (e memStoreExecutor) Execute(ctx *Context, advancePC bool) error {
	ctx.RAM.Write(e.addr(ctx), ctx.Registers.Read(e.reg))
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e memStoreExecutor) IsControlFlow() bool { return false }

// memLoadExecutor covers MLD/MLP/MLS/MLPS: compute an address from the
// configured mode, load into dst and set Z. C is unchanged.
type memLoadExecutor struct {
	dst  int
	addr func(ctx *Context) byte
}

func (e memLoadExecutor) Execute(ctx *Context, advancePC bool) error {
	v := ctx.RAM.Read(e.addr(ctx))
	ctx.Registers.Write(e.dst, v)
	ctx.Z = v == 0
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e memLoadExecutor) IsControlFlow() bool { return false }

func newMST(ops []Operand) Executor {
	reg := ops[0].AsRegister()
	addr := ops[1].AsNumber()
	return memStoreExecutor{reg: reg, addr: func(*Context) byte { return absoluteAddr(addr) }}
}

func newMSP(ops []Operand) Executor {
	reg := ops[0].AsRegister()
	ptrReg := ops[1].AsRegister()
	offset := ops[2].AsSigned8()
	return memStoreExecutor{reg: reg, addr: func(ctx *Context) byte {
		return pointerOffsetAddr(ctx.Registers.Read(ptrReg), offset)
	}}
}

func newMSS(ops []Operand) Executor {
	reg := ops[0].AsRegister()
	offset := ops[1].AsSigned8()
	return memStoreExecutor{reg: reg, addr: func(ctx *Context) byte {
		return stackOffsetAddr(ctx.SP.Value(), offset)
	}}
}

func newMSPS(ops []Operand) Executor {
	reg := ops[0].AsRegister()
	ptrReg := ops[1].AsRegister()
	offset := ops[2].AsSigned8()
	return memStoreExecutor{reg: reg, addr: func(ctx *Context) byte {
		return stackPointerOffsetAddr(ctx.SP.Value(), ctx.Registers.Read(ptrReg), offset)
	}}
}

func newMLD(ops []Operand) Executor {
	dst := ops[0].AsRegister()
	addr := ops[1].AsNumber()
	return memLoadExecutor{dst: dst, addr: func(*Context) byte { return absoluteAddr(addr) }}
}

func newMLP(ops []Operand) Executor {
	dst := ops[0].AsRegister()
	ptrReg := ops[1].AsRegister()
	offset := ops[2].AsSigned8()
	return memLoadExecutor{dst: dst, addr: func(ctx *Context) byte {
		return pointerOffsetAddr(ctx.Registers.Read(ptrReg), offset)
	}}
}

func newMLS(ops []Operand) Executor {
	dst := ops[0].AsRegister()
	offset := ops[1].AsSigned8()
	return memLoadExecutor{dst: dst, addr: func(ctx *Context) byte {
		return stackOffsetAddr(ctx.SP.Value(), offset)
	}}
}

func newMLPS(ops []Operand) Executor {
	dst := ops[0].AsRegister()
	ptrReg := ops[1].AsRegister()
	offset := ops[2].AsSigned8()
	return memLoadExecutor{dst: dst, addr: func(ctx *Context) byte {
		return stackPointerOffsetAddr(ctx.SP.Value(), ctx.Registers.Read(ptrReg), offset)
	}}
}
