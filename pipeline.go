package mpu3

// Pipeline is the fetch/execute controller backed by a constant-length-3
// FIFO. Slot 2 (the tail) is always the instruction just selected this
// cycle; it executes immediately (a control-flow instruction "takes effect
// immediately" per its own PC-rewriting semantics), and the oldest slot is
// dropped to hold the FIFO at its fixed depth. A control-flow push voids
// the InstructionPipelineSize-1 instructions already in flight behind it
// by injecting NOPs that do not advance PC, then resumes normal fetch with
// one further NOP that also does not advance PC — PC already sits on the
// branch target, set by the control-flow instruction itself, so nothing
// after it may move PC a second time before the target is fetched.
type Pipeline struct {
	program Program
	fifo    []fetched

	flushRemaining  int
	finalNOPPending bool
}

type fetched struct {
	exec      Executor
	advancePC bool
}

// NewPipeline builds a pipeline over program, its FIFO prefilled with three
// inert NOPs so the length invariant holds from the very first Step.
func NewPipeline(program Program) *Pipeline {
	fifo := make([]fetched, InstructionPipelineSize)
	for i := range fifo {
		fifo[i] = fetched{exec: nopExecutor{}, advancePC: false}
	}
	return &Pipeline{program: program, fifo: fifo}
}

// Step runs one fetch->advance->execute cycle against ctx. It is a no-op if
// ctx.Halted is already set.
func (p *Pipeline) Step(ctx *Context) error {
	if ctx.Halted {
		return nil
	}

	next, err := p.selectNext(ctx)
	if err != nil {
		return err
	}

	p.fifo = append(p.fifo[1:], next)

	return next.exec.Execute(ctx, next.advancePC)
}

// selectNext decides what to push into the FIFO this cycle, per the
// pipeline controller's three-way choice: finish a flush in progress, emit
// the final resuming NOP, or fetch fresh from PC.
func (p *Pipeline) selectNext(ctx *Context) (fetched, error) {
	if p.flushRemaining > 0 {
		p.flushRemaining--
		return fetched{exec: nopExecutor{}, advancePC: false}, nil
	}
	if p.finalNOPPending {
		p.finalNOPPending = false
		// advancePC is false here, not true: PC already holds the branch
		// target (the control-flow instruction set it directly), so this
		// resuming NOP must not move it a second time. The next selectNext
		// call fetches normally from that target.
		return fetched{exec: nopExecutor{}, advancePC: false}, nil
	}

	pc := ctx.PC.Value()
	if pc < 0 || pc >= len(p.program) {
		return fetched{}, fault(FaultProgramBounds, pc, "program counter outside loaded program")
	}
	instr := p.program[pc]

	exec, err := Decode(instr)
	if err != nil {
		return fetched{}, err
	}

	if IsControlFlow(instr.Mnemonic) {
		p.flushRemaining = InstructionPipelineSize - 1
		p.finalNOPPending = true
		return fetched{exec: exec, advancePC: false}, nil
	}
	return fetched{exec: exec, advancePC: true}, nil
}

// Run steps the pipeline until ctx.Halted is observed, returning the first
// error encountered.
func (p *Pipeline) Run(ctx *Context) error {
	for !ctx.Halted {
		if err := p.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
