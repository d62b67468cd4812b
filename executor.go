package mpu3

import "fmt"

// Executor knows how to mutate a Context for one decoded instruction, and
// whether it manages the program counter itself (control-flow) or expects
// the caller to advance PC on its behalf. Construction is idempotent and
// side-effect-free: building an Executor never touches a Context.
type Executor interface {
	Execute(ctx *Context, advancePC bool) error
	IsControlFlow() bool
}

// execBuilder turns an instruction's operand list into an Executor. The
// mnemonic has already been matched against the dispatch table by the time
// a builder runs.
type execBuilder func(ops []Operand) Executor

// dispatchTable is the exhaustive mnemonic -> builder map, built once at
// package init. This replaces any notion of reflection-based lookup with a
// closed, reviewable set of known mnemonics (spec.md §9).
var dispatchTable = map[string]execBuilder{
	"ADD":  func(ops []Operand) Executor { return newALUExecutor(ops, aluADD) },
	"ADC":  func(ops []Operand) Executor { return newALUExecutor(ops, aluADC) },
	"SUB":  func(ops []Operand) Executor { return newALUExecutor(ops, aluSUB) },
	"SUBC": func(ops []Operand) Executor { return newALUExecutor(ops, aluSUBC) },
	"AND":  func(ops []Operand) Executor { return newALUExecutor(ops, aluAND) },
	"OR":   func(ops []Operand) Executor { return newALUExecutor(ops, aluOR) },
	"XOR":  func(ops []Operand) Executor { return newALUExecutor(ops, aluXOR) },
	"NOT":  func(ops []Operand) Executor { return newALUExecutor(ops, aluNOT) },
	"SHFT": func(ops []Operand) Executor { return newALUExecutor(ops, aluSHFT) },
	"SHFC": func(ops []Operand) Executor { return newALUExecutor(ops, aluSHFC) },
	"SHFE": func(ops []Operand) Executor { return newALUExecutor(ops, aluSHFE) },
	"SEX":  func(ops []Operand) Executor { return newALUExecutor(ops, aluSEX) },
	"MOV":  func(ops []Operand) Executor { return newALUExecutor(ops, aluMOV) },

	"ADI": func(ops []Operand) Executor {
		return immArithExecutor{dst: ops[0].AsRegister(), srcA: ops[1].AsRegister(), imm: ops[2].AsNumber(), op: aluADD}
	},
	"SUBI": func(ops []Operand) Executor {
		return immArithExecutor{dst: ops[0].AsRegister(), srcA: ops[1].AsRegister(), imm: ops[2].AsNumber(), op: aluSUB}
	},
	"LDI": func(ops []Operand) Executor {
		return ldiExecutor{dst: ops[0].AsRegister(), imm: ops[1].AsNumber()}
	},
	"CMOV": func(ops []Operand) Executor {
		return cmovExecutor{dst: ops[0].AsRegister(), src: ops[1].AsRegister(), cond: int(ops[2].AsNumber())}
	},

	"MST":  newMST,
	"MSP":  newMSP,
	"MSS":  newMSS,
	"MSPS": newMSPS,
	"MLD":  newMLD,
	"MLP":  newMLP,
	"MLS":  newMLS,
	"MLPS": newMLPS,

	"PSH": func(ops []Operand) Executor { return pushImmExecutor{imm: ops[0].AsNumber()} },
	"PSHR": func(ops []Operand) Executor { return pushRegExecutor{reg: ops[0].AsRegister()} },
	"PHR":  func(ops []Operand) Executor { return pushRegExecutor{reg: ops[0].AsRegister()} },
	"POP":  func(ops []Operand) Executor { return popExecutor{n: int(ops[0].AsNumber())} },
	"PSHM": func(ops []Operand) Executor { return pushManyExecutor{n: int(ops[0].AsNumber())} },

	"JMP": func(ops []Operand) Executor { return jmpExecutor{addr: ops[0].AsAddress()} },
	"BRH": func(ops []Operand) Executor {
		return brhExecutor{cond: int(ops[0].AsNumber()), addr: ops[1].AsAddress()}
	},
	"CAL": func(ops []Operand) Executor { return calExecutor{addr: ops[0].AsAddress()} },
	"RET": func(ops []Operand) Executor { return retExecutor{n: int(ops[0].AsNumber())} },
	"HLT": func(ops []Operand) Executor { return hltExecutor{} },
	"NOP": func(ops []Operand) Executor { return nopExecutor{} },

	"PST": func(ops []Operand) Executor { return pstExecutor{reg: ops[0].AsRegister(), port: int(ops[1].AsNumber())} },
	"DPS": func(ops []Operand) Executor {
		return dpsExecutor{regA: ops[0].AsRegister(), regB: ops[1].AsRegister(), port: int(ops[2].AsNumber())}
	},
	"PLD": func(ops []Operand) Executor { return pldExecutor{reg: ops[0].AsRegister(), port: int(ops[1].AsNumber())} },
}

// Decode maps a decoded Instruction to its Executor. It returns an error
// for any mnemonic outside the fixed instruction set — that indicates a
// bug in the program-loading collaborator, since spec.md §6.1 says only
// mnemonics from the fixed set should ever reach the core.
func Decode(instr Instruction) (Executor, error) {
	build, ok := dispatchTable[instr.Mnemonic]
	if !ok {
		return nil, fmt.Errorf("mpu3: unknown mnemonic %q", instr.Mnemonic)
	}
	return build(instr.Operands), nil
}

// IsControlFlow reports whether mnemonic is one of the pipeline-flushing
// control-flow instructions, without needing a full Instruction to decode.
// The pipeline controller uses this to decide whether to inject flush NOPs
// before it has built an Executor for the freshly fetched instruction.
func IsControlFlow(mnemonic string) bool {
	switch mnemonic {
	case "JMP", "BRH", "CAL", "RET", "HLT":
		return true
	default:
		return false
	}
}
