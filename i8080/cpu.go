package i8080

import (
	"errors"
	"fmt"
)

/* Memory Map
ROM
$0000-$07FF: invaders.h
$0800-$0FFF: invaders.g
$1000-$17FF: invaders.f
$1800-$1FFF: invaders.e

RAM
$2000-$23FF: work
$2400-$3FFF: video
$4000 onwards: mirror
*/

var ErrRomTooLarge = errors.New("rom does not fit in memory")

// OpcodeError is returned by Execute when the fetched byte has no
// handler. The frame is aborted; there is no NOP fallback.
type OpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

type CPU struct {
	mem       [64 * 1024]uint8
	reg       *Registers
	flags     *Flags
	pc        uint16
	sp        uint16
	cyc       int
	intEnable uint8
	halted    bool
	ports     [9]uint8
	shiftLo   uint8
	shiftHi   uint8
	shiftOff  uint8
	outHook   func(port uint8, val uint8)
	showDebug bool
}

func NewCPU(pcStart uint16, showDebug bool) *CPU {
	return &CPU{
		reg: &Registers{}, flags: &Flags{}, pc: pcStart,
		intEnable: 1, showDebug: showDebug}
}

// LoadRom copies rom into memory starting at offset. The image must fit
// inside the 64 KiB address space.
func (c *CPU) LoadRom(rom []byte, offset uint16) error {
	if int(offset)+len(rom) > len(c.mem) {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrRomTooLarge, len(rom), offset)
	}
	copy(c.mem[offset:], rom)
	return nil
}

func (c *CPU) Write(addr uint16, val uint8) {
	c.mem[addr] = val
}

func (c *CPU) Read(addr uint16) uint8 {
	return c.mem[addr]
}

// readWord reads a little-endian word. addr+1 wraps modulo 2^16.
func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.mem[addr]) | (uint16(c.mem[addr+1]) << 8)
}

func (c *CPU) writeWord(addr uint16, val uint16) {
	c.mem[addr] = uint8(val)
	c.mem[addr+1] = uint8(val >> 8)
}

func (c *CPU) getNextByte() uint8 {
	return c.Read(c.pc + 1)
}

func (c *CPU) getNextTwoBytes() uint16 {
	return c.readWord(c.pc + 1)
}

func (c *CPU) getBC() uint16 {
	return (uint16(c.reg.B) << 8) | uint16(c.reg.C)
}

func (c *CPU) getDE() uint16 {
	return (uint16(c.reg.D) << 8) | uint16(c.reg.E)
}

func (c *CPU) getHL() uint16 {
	return (uint16(c.reg.H) << 8) | uint16(c.reg.L)
}

func (c *CPU) setBC(val uint16) {
	c.reg.B = uint8(val >> 8)
	c.reg.C = uint8(val & 0xff)
}

func (c *CPU) setDE(val uint16) {
	c.reg.D = uint8(val >> 8)
	c.reg.E = uint8(val & 0xff)
}

func (c *CPU) setHL(val uint16) {
	c.reg.H = uint8(val >> 8)
	c.reg.L = uint8(val & 0xff)
}

func (c *CPU) push(val uint16) {
	c.Write(c.sp-1, uint8(val>>8))
	c.Write(c.sp-2, uint8(val&0xff))
	c.sp -= 2
}

func (c *CPU) pop() uint16 {
	c.sp += 2
	return c.readWord(c.sp - 2)
}

func (c *CPU) fetch() uint8 {
	return c.Read(c.pc)
}

// Execute runs a single instruction and returns the cycles it consumed.
// Taken conditional calls and returns cost 6 cycles on top of the table
// value. A fetched byte with no handler aborts with an *OpcodeError and
// leaves the CPU state untouched.
func (c *CPU) Execute() (int, error) {
	if c.halted {
		c.cyc += CYCLES[0x00]
		return CYCLES[0x00], nil
	}

	opcode := c.fetch()
	instr := INSTRUCTIONS[opcode]
	if instr == nil {
		return 0, &OpcodeError{PC: c.pc, Opcode: opcode}
	}

	if c.showDebug {
		c.debugOutput()
	}

	before := c.cyc
	c.cyc += CYCLES[opcode]
	steps := instr(c)
	c.pc += steps
	return c.cyc - before, nil
}

func (c *CPU) debugOutput() {
	f := uint8(0)
	f |= c.flags.S << 7
	f |= c.flags.Z << 6
	f |= c.flags.AC << 4
	f |= c.flags.P << 2
	f |= 1 << 1
	f |= c.flags.CY << 0
	fmt.Printf("\nPC: %04X, AF: %04X, BC: %04X, DE: %04X, HL: %04X, SP: %04X, CYC: %04d (%02X %02X %02X %02X)",
		c.pc, uint16(c.reg.A)<<8|uint16(f), c.getBC(), c.getDE(), c.getHL(), c.sp, c.cyc,
		c.fetch(), c.Read(c.pc+1), c.Read(c.pc+2), c.Read(c.pc+3))
}

func (c *CPU) GetMemory() []uint8 {
	return c.mem[:]
}

func (c *CPU) GetRegisters() *Registers {
	return c.reg
}

func (c *CPU) GetFlags() *Flags {
	return c.flags
}

func (c *CPU) GetPC() uint16 {
	return c.pc
}

func (c *CPU) GetSP() uint16 {
	return c.sp
}

func (c *CPU) GetCycles() int {
	return c.cyc
}

func (c *CPU) GetAF() uint16 {
	return (uint16(c.reg.A) << 8) | uint16(c.flags.pack())
}

func (c *CPU) GetBC() uint16 {
	return c.getBC()
}

func (c *CPU) GetDE() uint16 {
	return c.getDE()
}

func (c *CPU) GetHL() uint16 {
	return c.getHL()
}

func (c *CPU) Halted() bool {
	return c.halted
}
