package i8080

import (
	"errors"
	"testing"
)

func testCPU(prog ...uint8) *CPU {
	c := NewCPU(0, false)
	copy(c.mem[:], prog)
	return c
}

func mustStep(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Execute(); err != nil {
			t.Fatalf("[step %d] unexpected error: %v", i, err)
		}
	}
}

func TestLxiMovSta(t *testing.T) {
	// LXI SP,0x2400 / MVI A,0x42 / STA 0x2000 / HLT
	c := testCPU(0x31, 0x00, 0x24, 0x3E, 0x42, 0x32, 0x00, 0x20, 0x76)
	mustStep(t, c, 3)

	if c.Read(0x2000) != 0x42 {
		t.Errorf("[mem] expected: %02X, actual: %02X", 0x42, c.Read(0x2000))
	}
	if c.pc != 0x0008 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0008, c.pc)
	}
}

func TestCallRet(t *testing.T) {
	c := testCPU(0xCD, 0x10, 0x00)
	c.Write(0x10, 0xC9)
	c.sp = 0x2400

	mustStep(t, c, 1)
	if c.Read(0x23FF) != 0x00 {
		t.Errorf("[ret hi] expected: %02X, actual: %02X", 0x00, c.Read(0x23FF))
	}
	if c.Read(0x23FE) != 0x03 {
		t.Errorf("[ret lo] expected: %02X, actual: %02X", 0x03, c.Read(0x23FE))
	}
	if c.sp != 0x23FE {
		t.Errorf("[SP] expected: %04X, actual: %04X", 0x23FE, c.sp)
	}
	if c.pc != 0x0010 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0010, c.pc)
	}

	mustStep(t, c, 1)
	if c.sp != 0x2400 {
		t.Errorf("[SP] expected: %04X, actual: %04X", 0x2400, c.sp)
	}
	if c.pc != 0x0003 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0003, c.pc)
	}
}

func TestJnzNotTaken(t *testing.T) {
	c := testCPU(0xC2, 0x34, 0x12)
	c.flags.Z = 1

	mustStep(t, c, 1)
	if c.pc != 0x0003 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0003, c.pc)
	}
}

func TestAdiCarryOut(t *testing.T) {
	c := testCPU(0xC6, 0x20)
	c.reg.A = 0xF0

	mustStep(t, c, 1)
	if c.reg.A != 0x10 {
		t.Errorf("[A] expected: %02X, actual: %02X", 0x10, c.reg.A)
	}
	if c.flags.CY != 1 {
		t.Errorf("[CY] expected: %d, actual: %d", 1, c.flags.CY)
	}
	if c.flags.Z != 0 {
		t.Errorf("[Z] expected: %d, actual: %d", 0, c.flags.Z)
	}
	if c.flags.S != 0 {
		t.Errorf("[S] expected: %d, actual: %d", 0, c.flags.S)
	}
	// 0x10 has a single 1-bit, so parity is odd.
	if c.flags.P != 0 {
		t.Errorf("[P] expected: %d, actual: %d", 0, c.flags.P)
	}
}

func TestShiftHardware(t *testing.T) {
	// OUT 4 with 0xAA, OUT 4 with 0xBB, OUT 2 with 3, IN 3.
	c := testCPU(
		0x3E, 0xAA, 0xD3, 0x04,
		0x3E, 0xBB, 0xD3, 0x04,
		0x3E, 0x03, 0xD3, 0x02,
		0xDB, 0x03)
	mustStep(t, c, 7)

	if c.reg.A != 0xDD {
		t.Errorf("[A] expected: %02X, actual: %02X", 0xDD, c.reg.A)
	}
}

func TestInterruptInjection(t *testing.T) {
	c := NewCPU(0, false)
	c.pc = 0x1234
	c.sp = 0x2400

	c.Interrupt(0x10)
	if c.Read(0x23FF) != 0x12 {
		t.Errorf("[pc hi] expected: %02X, actual: %02X", 0x12, c.Read(0x23FF))
	}
	if c.Read(0x23FE) != 0x34 {
		t.Errorf("[pc lo] expected: %02X, actual: %02X", 0x34, c.Read(0x23FE))
	}
	if c.sp != 0x23FE {
		t.Errorf("[SP] expected: %04X, actual: %04X", 0x23FE, c.sp)
	}
	if c.pc != 0x0010 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0010, c.pc)
	}
	if c.intEnable != 0 {
		t.Errorf("[IE] expected: %d, actual: %d", 0, c.intEnable)
	}

	// Second injection with IE cleared is a no-op.
	c.Interrupt(0x08)
	if c.pc != 0x0010 || c.sp != 0x23FE {
		t.Errorf("[no-op] expected PC %04X SP %04X, actual PC %04X SP %04X",
			0x0010, 0x23FE, c.pc, c.sp)
	}
}

func TestInrDcrPreserveCarry(t *testing.T) {
	for _, cy := range []uint8{0, 1} {
		for _, op := range []uint8{0x04, 0x05, 0x3C, 0x3D} {
			c := testCPU(op)
			c.flags.CY = cy
			mustStep(t, c, 1)
			if c.flags.CY != cy {
				t.Errorf("[%02X cy=%d] expected: %d, actual: %d", op, cy, cy, c.flags.CY)
			}
		}
	}
}

func TestConditionalPCAdvancement(t *testing.T) {
	cases := []struct {
		op    uint8
		flag  func(f *Flags) *uint8
		taken uint8
	}{
		{0xC2, func(f *Flags) *uint8 { return &f.Z }, 0},
		{0xCA, func(f *Flags) *uint8 { return &f.Z }, 1},
		{0xD2, func(f *Flags) *uint8 { return &f.CY }, 0},
		{0xDA, func(f *Flags) *uint8 { return &f.CY }, 1},
		{0xE2, func(f *Flags) *uint8 { return &f.P }, 0},
		{0xEA, func(f *Flags) *uint8 { return &f.P }, 1},
		{0xF2, func(f *Flags) *uint8 { return &f.S }, 0},
		{0xFA, func(f *Flags) *uint8 { return &f.S }, 1},
		{0xC4, func(f *Flags) *uint8 { return &f.Z }, 0},
		{0xCC, func(f *Flags) *uint8 { return &f.Z }, 1},
		{0xD4, func(f *Flags) *uint8 { return &f.CY }, 0},
		{0xDC, func(f *Flags) *uint8 { return &f.CY }, 1},
		{0xE4, func(f *Flags) *uint8 { return &f.P }, 0},
		{0xEC, func(f *Flags) *uint8 { return &f.P }, 1},
		{0xF4, func(f *Flags) *uint8 { return &f.S }, 0},
		{0xFC, func(f *Flags) *uint8 { return &f.S }, 1},
	}
	for _, tc := range cases {
		for _, val := range []uint8{0, 1} {
			c := testCPU(tc.op, 0x34, 0x12)
			c.sp = 0x2400
			*tc.flag(c.flags) = val
			mustStep(t, c, 1)

			want := uint16(0x0003)
			if val == tc.taken {
				want = 0x1234
			}
			if c.pc != want {
				t.Errorf("[%02X flag=%d] expected: %04X, actual: %04X", tc.op, val, want, c.pc)
			}
		}
	}
}

func TestUnimplementedOpcodeTraps(t *testing.T) {
	c := testCPU(0x00, 0xFD)
	mustStep(t, c, 1)

	_, err := c.Execute()
	var opErr *OpcodeError
	if !errors.As(err, &opErr) {
		t.Fatalf("[error] expected *OpcodeError, actual: %v", err)
	}
	if opErr.PC != 0x0001 {
		t.Errorf("[PC] expected: %04X, actual: %04X", 0x0001, opErr.PC)
	}
	if opErr.Opcode != 0xFD {
		t.Errorf("[opcode] expected: %02X, actual: %02X", 0xFD, opErr.Opcode)
	}
	if c.pc != 0x0001 {
		t.Errorf("[state] expected PC: %04X, actual: %04X", 0x0001, c.pc)
	}
}

func TestLoadRomTooLarge(t *testing.T) {
	c := NewCPU(0, false)
	if err := c.LoadRom(make([]byte, 0x10001), 0); !errors.Is(err, ErrRomTooLarge) {
		t.Errorf("[oversized] expected ErrRomTooLarge, actual: %v", err)
	}
	if err := c.LoadRom(make([]byte, 0x100), 0xFF80); !errors.Is(err, ErrRomTooLarge) {
		t.Errorf("[offset] expected ErrRomTooLarge, actual: %v", err)
	}
	if err := c.LoadRom(make([]byte, 0x10000), 0); err != nil {
		t.Errorf("[exact fit] expected nil, actual: %v", err)
	}
}

func TestHaltAndResume(t *testing.T) {
	c := testCPU(0x76)
	c.sp = 0x2400
	mustStep(t, c, 1)
	if !c.Halted() {
		t.Fatal("[halt] expected halted cpu")
	}

	cyc, err := c.Execute()
	if err != nil {
		t.Fatalf("[halted step] unexpected error: %v", err)
	}
	if cyc != 4 {
		t.Errorf("[halted cycles] expected: %d, actual: %d", 4, cyc)
	}
	if c.pc != 0x0001 {
		t.Errorf("[halted PC] expected: %04X, actual: %04X", 0x0001, c.pc)
	}

	c.Interrupt(IntMidFrame)
	if c.Halted() {
		t.Error("[resume] expected interrupt to clear halt")
	}
	if c.pc != IntMidFrame {
		t.Errorf("[resume PC] expected: %04X, actual: %04X", IntMidFrame, c.pc)
	}
}

func TestDaa(t *testing.T) {
	c := testCPU(0x27)
	c.reg.A = 0x9B
	mustStep(t, c, 1)

	if c.reg.A != 0x01 {
		t.Errorf("[A] expected: %02X, actual: %02X", 0x01, c.reg.A)
	}
	if c.flags.CY != 1 {
		t.Errorf("[CY] expected: %d, actual: %d", 1, c.flags.CY)
	}
}

func TestCmpBorrow(t *testing.T) {
	// CPI with A < operand sets the borrow and leaves A alone.
	c := testCPU(0xFE, 0x30)
	c.reg.A = 0x20
	mustStep(t, c, 1)

	if c.flags.CY != 1 {
		t.Errorf("[CY] expected: %d, actual: %d", 1, c.flags.CY)
	}
	if c.reg.A != 0x20 {
		t.Errorf("[A] expected: %02X, actual: %02X", 0x20, c.reg.A)
	}

	c = testCPU(0xFE, 0x20)
	c.reg.A = 0x20
	mustStep(t, c, 1)
	if c.flags.CY != 0 || c.flags.Z != 1 {
		t.Errorf("[equal] expected CY 0 Z 1, actual CY %d Z %d", c.flags.CY, c.flags.Z)
	}
}

func TestXchg(t *testing.T) {
	c := testCPU(0xEB)
	c.setDE(0x1234)
	c.setHL(0x5678)
	mustStep(t, c, 1)

	if c.getDE() != 0x5678 {
		t.Errorf("[DE] expected: %04X, actual: %04X", 0x5678, c.getDE())
	}
	if c.getHL() != 0x1234 {
		t.Errorf("[HL] expected: %04X, actual: %04X", 0x1234, c.getHL())
	}
}

func TestPairViewsSplitHighByte(t *testing.T) {
	c := NewCPU(0, false)
	c.setBC(0xABCD)
	if c.reg.B != 0xAB || c.reg.C != 0xCD {
		t.Errorf("[BC] expected B AB C CD, actual B %02X C %02X", c.reg.B, c.reg.C)
	}
	c.setDE(0x1122)
	if c.reg.D != 0x11 || c.reg.E != 0x22 {
		t.Errorf("[DE] expected D 11 E 22, actual D %02X E %02X", c.reg.D, c.reg.E)
	}
	c.setHL(0x3344)
	if c.reg.H != 0x33 || c.reg.L != 0x44 {
		t.Errorf("[HL] expected H 33 L 44, actual H %02X L %02X", c.reg.H, c.reg.L)
	}
}

func TestWordAccessLittleEndian(t *testing.T) {
	c := NewCPU(0, false)
	c.writeWord(0x2000, 0xBEEF)
	if c.Read(0x2000) != 0xEF || c.Read(0x2001) != 0xBE {
		t.Errorf("[write] expected EF BE, actual %02X %02X", c.Read(0x2000), c.Read(0x2001))
	}
	if c.readWord(0x2000) != 0xBEEF {
		t.Errorf("[read] expected: %04X, actual: %04X", 0xBEEF, c.readWord(0x2000))
	}
}
