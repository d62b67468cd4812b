package mpu3

// aluOp computes a result byte and the carry it produces from two operand
// bytes and the incoming carry flag. Logical and move variants ignore cin
// and always return carry=false.
type aluOp func(a, b byte, cin bool) (result byte, carry bool)

func addCarry(a, b byte, cin bool) (byte, bool) {
	sum := int(a) + int(b)
	if cin {
		sum++
	}
	return byte(sum), sum >= 256
}

func subBorrow(a, b byte, cin bool) (byte, bool) {
	sum := int(a) + int(^b&0xFF)
	if cin {
		sum++
	}
	return byte(sum), sum >= 256
}

func aluADD(a, b byte, _ bool) (byte, bool)  { return addCarry(a, b, false) }
func aluADC(a, b byte, cin bool) (byte, bool) { return addCarry(a, b, cin) }
func aluSUB(a, b byte, _ bool) (byte, bool)  { return subBorrow(a, b, true) }
func aluSUBC(a, b byte, cin bool) (byte, bool) { return subBorrow(a, b, cin) }

func aluAND(a, b byte, _ bool) (byte, bool) { return a & b, false }
func aluOR(a, b byte, _ bool) (byte, bool)  { return a | b, false }
func aluXOR(a, b byte, _ bool) (byte, bool) { return a ^ b, false }
func aluNOT(a, _ byte, _ bool) (byte, bool) { return ^a, false }
func aluMOV(a, _ byte, _ bool) (byte, bool) { return a, false }

func aluSHFT(a, _ byte, _ bool) (byte, bool) {
	return a >> 1, a&1 != 0
}

func aluSHFC(a, _ byte, cin bool) (byte, bool) {
	result := a >> 1
	if cin {
		result |= 0x80
	}
	return result, a&1 != 0
}

func aluSHFE(a, _ byte, _ bool) (byte, bool) {
	result := byte(int8(a) >> 1)
	return result, a&1 != 0
}

func aluSEX(a, _ byte, _ bool) (byte, bool) {
	if a&0x80 != 0 {
		return 0xFF, false
	}
	return 0x00, false
}

// aluExecutor implements the ALU register form (dst, srcA [, srcB]): it
// reads srcA and srcB (srcB defaulting to R0, which always reads zero),
// applies op, writes the result to dst, and sets Z/C from the result.
type aluExecutor struct {
	dst, srcA, srcB int
	op               aluOp
}

func newALUExecutor(ops []Operand, op aluOp) Executor {
	return aluExecutor{
		dst:  ops[0].AsRegister(),
		srcA: ops[1].AsRegister(),
		srcB: regOperand(ops, 2, 0),
		op:   op,
	}
}

func (e aluExecutor) Execute(ctx *Context, advancePC bool) error {
	a := ctx.Registers.Read(e.srcA)
	b := ctx.Registers.Read(e.srcB)
	result, carry := e.op(a, b, ctx.C)
	ctx.Registers.Write(e.dst, result)
	ctx.Z = result == 0
	ctx.C = carry
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e aluExecutor) IsControlFlow() bool { return false }

// immArithExecutor implements ADI/SUBI (dst, srcA, imm): dst <- srcA op imm,
// with Z and C both set from the result.
type immArithExecutor struct {
	dst, srcA int
	imm       byte
	op        aluOp
}

func (e immArithExecutor) Execute(ctx *Context, advancePC bool) error {
	a := ctx.Registers.Read(e.srcA)
	result, carry := e.op(a, e.imm, false)
	ctx.Registers.Write(e.dst, result)
	ctx.Z = result == 0
	ctx.C = carry
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e immArithExecutor) IsControlFlow() bool { return false }

// ldiExecutor implements LDI (dst, imm): dst <- imm; Z set; C unchanged.
type ldiExecutor struct {
	dst int
	imm byte
}

func (e ldiExecutor) Execute(ctx *Context, advancePC bool) error {
	ctx.Registers.Write(e.dst, e.imm)
	ctx.Z = e.imm == 0
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e ldiExecutor) IsControlFlow() bool { return false }

// cmovExecutor implements the conditional move (dst, src, cond): dst <- src
// and Z is recomputed only when the condition holds; otherwise the
// register file and flags are left untouched.
type cmovExecutor struct {
	dst, src, cond int
}

func condHolds(cond int, z, c bool) bool {
	switch cond {
	case CondIfZero:
		return z
	case CondIfNotZero:
		return !z
	case CondIfCarry:
		return c
	case CondIfNotCarry:
		return !c
	default:
		return false
	}
}

func (e cmovExecutor) Execute(ctx *Context, advancePC bool) error {
	if condHolds(e.cond, ctx.Z, ctx.C) {
		v := ctx.Registers.Read(e.src)
		ctx.Registers.Write(e.dst, v)
		ctx.Z = v == 0
	}
	if advancePC {
		return ctx.PC.Increment()
	}
	return nil
}

func (e cmovExecutor) IsControlFlow() bool { return false }
