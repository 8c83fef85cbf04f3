package i8080

import (
	"math/bits"
	"testing"
)

func TestPSWPackRoundTrip(t *testing.T) {
	for combo := 0; combo < 32; combo++ {
		f := &Flags{
			Z:  uint8(combo) & 1,
			S:  uint8(combo>>1) & 1,
			P:  uint8(combo>>2) & 1,
			CY: uint8(combo>>3) & 1,
			AC: uint8(combo>>4) & 1,
		}
		got := &Flags{}
		got.unpack(f.pack())
		if *got != *f {
			t.Errorf("[combo %05b] expected: %+v, actual: %+v", combo, *f, *got)
		}
	}
}

func TestPushPopPSW(t *testing.T) {
	for combo := 0; combo < 32; combo++ {
		c := NewCPU(0, false)
		c.Write(0, 0xF5) // PUSH PSW
		c.Write(1, 0xF1) // POP PSW
		c.sp = 0x2400
		c.reg.A = 0x42
		want := Flags{
			Z:  uint8(combo) & 1,
			S:  uint8(combo>>1) & 1,
			P:  uint8(combo>>2) & 1,
			CY: uint8(combo>>3) & 1,
			AC: uint8(combo>>4) & 1,
		}
		*c.flags = want

		mustStep(t, c, 2)
		if *c.flags != want {
			t.Errorf("[combo %05b] expected: %+v, actual: %+v", combo, want, *c.flags)
		}
		if c.reg.A != 0x42 {
			t.Errorf("[A] expected: %02X, actual: %02X", 0x42, c.reg.A)
		}
		if c.sp != 0x2400 {
			t.Errorf("[SP] expected: %04X, actual: %04X", 0x2400, c.sp)
		}
	}
}

func TestParityLaw(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := NewCPU(0, false)
		c.reg.A = uint8(v)
		c.Write(0, 0xB7) // ORA A
		mustStep(t, c, 1)

		want := uint8(0)
		if bits.OnesCount8(uint8(v))%2 == 0 {
			want = 1
		}
		if c.flags.P != want {
			t.Errorf("[%02X] expected P: %d, actual: %d", v, want, c.flags.P)
		}
	}
}
