package mpu3

import "testing"

func TestRegisterZeroIsHardwired(t *testing.T) {
	var rf RegisterFile
	rf.Write(0, 0xFF)
	if got := rf.Read(0); got != 0 {
		t.Fatalf("R0 = %d, want 0 after write(R0, 0xFF)", got)
	}
}

func TestRegisterReadWriteRoundTrip(t *testing.T) {
	var rf RegisterFile
	rf.Write(3, 42)
	if got := rf.Read(3); got != 42 {
		t.Fatalf("R3 = %d, want 42", got)
	}
}

func TestRegisterIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range register index")
		}
	}()
	var rf RegisterFile
	rf.Read(RegisterCount)
}
