package mpu3

import "testing"

func TestProgramCounterIncrement(t *testing.T) {
	var pc ProgramCounter
	if err := pc.Increment(); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if pc.Value() != 1 {
		t.Fatalf("PC = %d, want 1", pc.Value())
	}
}

func TestProgramCounterOverflowIsFatal(t *testing.T) {
	var pc ProgramCounter
	pc.Set(MaxProgramSize - 1)
	if err := pc.Increment(); err == nil {
		t.Fatal("expected overflow error incrementing past MaxProgramSize-1")
	}
}

func TestProgramCounterSetBranchRange(t *testing.T) {
	var pc ProgramCounter
	if err := pc.SetBranch(MaxProgramSize); err == nil {
		t.Fatal("expected out-of-range error branching to MaxProgramSize")
	}
	if err := pc.SetBranch(10); err != nil {
		t.Fatalf("SetBranch(10): %v", err)
	}
	if pc.Value() != 10 {
		t.Fatalf("PC = %d, want 10", pc.Value())
	}
}

func TestProgramCounterCallReturnRoundTrip(t *testing.T) {
	var pc ProgramCounter
	pc.Set(0)
	if err := pc.PushCall(3); err != nil {
		t.Fatalf("PushCall: %v", err)
	}
	if pc.Value() != 3 {
		t.Fatalf("PC = %d after call, want 3", pc.Value())
	}
	if pc.CallDepth() != 1 {
		t.Fatalf("CallDepth = %d, want 1", pc.CallDepth())
	}
	if err := pc.PopReturn(); err != nil {
		t.Fatalf("PopReturn: %v", err)
	}
	if pc.Value() != 1 {
		t.Fatalf("PC = %d after return, want 1 (the address after CAL)", pc.Value())
	}
	if pc.CallDepth() != 0 {
		t.Fatalf("CallDepth = %d after return, want 0", pc.CallDepth())
	}
}

func TestProgramCounterReturnWithEmptyCallStackIsFatal(t *testing.T) {
	var pc ProgramCounter
	if err := pc.PopReturn(); err == nil {
		t.Fatal("expected error returning with an empty call stack")
	}
}
