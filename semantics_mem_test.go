package mpu3

import "testing"

func TestPointerOffsetAddrWraps(t *testing.T) {
	// ptr=5, offset=0 => (5-0-1)&0xFF = 4
	if got := pointerOffsetAddr(5, 0); got != 4 {
		t.Fatalf("pointerOffsetAddr(5,0) = %d, want 4", got)
	}
	// ptr=0, offset=0 => (0-0-1)&0xFF = 255
	if got := pointerOffsetAddr(0, 0); got != 255 {
		t.Fatalf("pointerOffsetAddr(0,0) = %d, want 255 (wraps)", got)
	}
}

func TestMemStoreLoadRoundTrip(t *testing.T) {
	ctx := NewContext(&PortBus{})
	ctx.Registers.Write(1, 0x99)
	store := newMST([]Operand{Reg(1), Num(0x20)})
	if err := store.Execute(ctx, true); err != nil {
		t.Fatalf("store Execute: %v", err)
	}
	load := newMLD([]Operand{Reg(2), Num(0x20)})
	if err := load.Execute(ctx, true); err != nil {
		t.Fatalf("load Execute: %v", err)
	}
	if ctx.Registers.Read(2) != 0x99 {
		t.Fatalf("R2 = %#x, want 0x99", ctx.Registers.Read(2))
	}
	if ctx.Z {
		t.Fatal("Z = true, want false for a nonzero load")
	}
}

func TestMemLoadSetsZeroFlagWithoutTouchingCarry(t *testing.T) {
	ctx := NewContext(&PortBus{})
	ctx.C = true
	load := newMLD([]Operand{Reg(1), Num(0x50)})
	if err := load.Execute(ctx, true); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ctx.Z {
		t.Fatal("Z = false, want true for a zero load")
	}
	if !ctx.C {
		t.Fatal("C changed by a memory load, should be untouched")
	}
}
