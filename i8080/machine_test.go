package i8080

import (
	"testing"
)

func TestFrameCycleTotal(t *testing.T) {
	// Zeroed memory is NOPs everywhere; the vectors just fall through.
	c := NewCPU(0, false)
	c.sp = 0x2400

	before := c.GetCycles()
	if err := c.RunFrame(); err != nil {
		t.Fatalf("[frame] unexpected error: %v", err)
	}
	total := c.GetCycles() - before
	if total < 33200 || total > 33466 {
		t.Errorf("[cycles] expected within [33200, 33466], actual: %d", total)
	}
}

func TestFrameInterruptOrdering(t *testing.T) {
	c := NewCPU(0, false)
	c.sp = 0x2400
	// EI at the mid-frame vector so the VBlank interrupt lands too.
	c.Write(IntMidFrame, 0xFB)

	if err := c.RunFrame(); err != nil {
		t.Fatalf("[frame] unexpected error: %v", err)
	}
	if c.pc != IntVBlank {
		t.Errorf("[PC] expected: %04X, actual: %04X", IntVBlank, c.pc)
	}
	if c.sp != 0x23FC {
		t.Errorf("[SP] expected: %04X, actual: %04X", 0x23FC, c.sp)
	}
	if c.InterruptsEnabled() {
		t.Error("[IE] expected injection to clear the latch")
	}
	// First push is the PC reached after the first half-frame of NOPs.
	first := uint16(c.Read(0x23FE)) | uint16(c.Read(0x23FF))<<8
	if first < 0x1000 {
		t.Errorf("[first push] expected address past the first slice, actual: %04X", first)
	}
}

func TestFrameWithInterruptsDisabled(t *testing.T) {
	c := NewCPU(0, false)
	c.sp = 0x2400
	c.Write(0, 0xF3) // DI

	if err := c.RunFrame(); err != nil {
		t.Fatalf("[frame] unexpected error: %v", err)
	}
	if c.sp != 0x2400 {
		t.Errorf("[SP] expected: %04X, actual: %04X", 0x2400, c.sp)
	}
	if c.pc == IntVBlank {
		t.Errorf("[PC] expected no vectoring, actual: %04X", c.pc)
	}
}

func TestFrameAbortsOnTrap(t *testing.T) {
	c := NewCPU(0, false)
	c.Write(0x20, 0xFD)

	err := c.RunFrame()
	if err == nil {
		t.Fatal("[frame] expected trap to propagate")
	}
}

func TestRunCyclesCount(t *testing.T) {
	c := NewCPU(0, false)
	count, err := c.RunCycles(100)
	if err != nil {
		t.Fatalf("[run] unexpected error: %v", err)
	}
	// NOPs are 4 cycles, so the first boundary at or past 100 is 100.
	if count != 100 {
		t.Errorf("[count] expected: %d, actual: %d", 100, count)
	}
}
