package i8080

// CYCLES holds the base cycle cost per opcode. Conditional calls and
// returns add 6 more when taken.
var CYCLES = [256]int{
	04, 10, 07, 05, 05, 05, 07, 04, 04, 10, 07, 05, 05, 05, 07, 04,
	04, 10, 07, 05, 05, 05, 07, 04, 04, 10, 07, 05, 05, 05, 07, 04,
	04, 10, 16, 05, 05, 05, 07, 04, 04, 10, 16, 05, 05, 05, 07, 04,
	04, 10, 13, 05, 10, 10, 10, 04, 04, 10, 13, 05, 05, 05, 07, 04,
	05, 05, 05, 05, 05, 05, 07, 05, 05, 05, 05, 05, 05, 05, 07, 05,
	05, 05, 05, 05, 05, 05, 07, 05, 05, 05, 05, 05, 05, 05, 07, 05,
	05, 05, 05, 05, 05, 05, 07, 05, 05, 05, 05, 05, 05, 05, 07, 05,
	07, 07, 07, 07, 07, 07, 07, 07, 05, 05, 05, 05, 05, 05, 07, 05,
	04, 04, 04, 04, 04, 04, 07, 04, 04, 04, 04, 04, 04, 04, 07, 04,
	04, 04, 04, 04, 04, 04, 07, 04, 04, 04, 04, 04, 04, 04, 07, 04,
	04, 04, 04, 04, 04, 04, 07, 04, 04, 04, 04, 04, 04, 04, 07, 04,
	04, 04, 04, 04, 04, 04, 07, 04, 04, 04, 04, 04, 04, 04, 07, 04,
	05, 10, 10, 10, 11, 11, 07, 11, 05, 10, 10, 10, 11, 17, 07, 11,
	05, 10, 10, 10, 11, 11, 07, 11, 05, 10, 10, 10, 11, 17, 07, 11,
	05, 10, 10, 18, 11, 11, 07, 11, 05, 05, 10, 04, 11, 17, 07, 11,
	05, 10, 10, 04, 11, 11, 07, 11, 05, 05, 10, 04, 11, 17, 07, 11}

// INSTRUCTIONS maps each opcode to its handler. A handler returns how
// far the PC advances; jumps, calls and returns set the PC themselves
// and return 0. A nil entry traps in Execute. The undocumented opcodes
// (0x08, 0x10, ... 0xFD) are left nil.
var INSTRUCTIONS = [256]func(*CPU) uint16{
	0x00: noOp,
	0x01: lxiB,
	0x02: staxB,
	0x03: inxB,
	0x04: inrB,
	0x05: dcrB,
	0x06: mviB,
	0x07: rlc,
	0x09: dadB,
	0x0a: ldaxB,
	0x0b: dcxB,
	0x0c: inrC,
	0x0d: dcrC,
	0x0e: mviC,
	0x0f: rrc,
	0x11: lxiD,
	0x12: staxD,
	0x13: inxD,
	0x14: inrD,
	0x15: dcrD,
	0x16: mviD,
	0x17: ral,
	0x19: dadD,
	0x1a: ldaxD,
	0x1b: dcxD,
	0x1c: inrE,
	0x1d: dcrE,
	0x1e: mviE,
	0x1f: rar,
	0x21: lxiH,
	0x22: shld,
	0x23: inxH,
	0x24: inrH,
	0x25: dcrH,
	0x26: mviH,
	0x27: daa,
	0x29: dadH,
	0x2a: lhld,
	0x2b: dcxH,
	0x2c: inrL,
	0x2d: dcrL,
	0x2e: mviL,
	0x2f: cma,
	0x31: lxiSP,
	0x32: sta,
	0x33: inxSP,
	0x34: inrM,
	0x35: dcrM,
	0x36: mviM,
	0x37: stc,
	0x39: dadSP,
	0x3a: lda,
	0x3b: dcxSP,
	0x3c: inrA,
	0x3d: dcrA,
	0x3e: mviA,
	0x3f: cmc,
	0x40: movBB,
	0x41: movBC,
	0x42: movBD,
	0x43: movBE,
	0x44: movBH,
	0x45: movBL,
	0x46: movBM,
	0x47: movBA,
	0x48: movCB,
	0x49: movCC,
	0x4a: movCD,
	0x4b: movCE,
	0x4c: movCH,
	0x4d: movCL,
	0x4e: movCM,
	0x4f: movCA,
	0x50: movDB,
	0x51: movDC,
	0x52: movDD,
	0x53: movDE,
	0x54: movDH,
	0x55: movDL,
	0x56: movDM,
	0x57: movDA,
	0x58: movEB,
	0x59: movEC,
	0x5a: movED,
	0x5b: movEE,
	0x5c: movEH,
	0x5d: movEL,
	0x5e: movEM,
	0x5f: movEA,
	0x60: movHB,
	0x61: movHC,
	0x62: movHD,
	0x63: movHE,
	0x64: movHH,
	0x65: movHL,
	0x66: movHM,
	0x67: movHA,
	0x68: movLB,
	0x69: movLC,
	0x6a: movLD,
	0x6b: movLE,
	0x6c: movLH,
	0x6d: movLL,
	0x6e: movLM,
	0x6f: movLA,
	0x70: movMB,
	0x71: movMC,
	0x72: movMD,
	0x73: movME,
	0x74: movMH,
	0x75: movML,
	0x76: hlt,
	0x77: movMA,
	0x78: movAB,
	0x79: movAC,
	0x7a: movAD,
	0x7b: movAE,
	0x7c: movAH,
	0x7d: movAL,
	0x7e: movAM,
	0x7f: movAA,
	0x80: addB,
	0x81: addC,
	0x82: addD,
	0x83: addE,
	0x84: addH,
	0x85: addL,
	0x86: addM,
	0x87: addA,
	0x88: adcB,
	0x89: adcC,
	0x8a: adcD,
	0x8b: adcE,
	0x8c: adcH,
	0x8d: adcL,
	0x8e: adcM,
	0x8f: adcA,
	0x90: subB,
	0x91: subC,
	0x92: subD,
	0x93: subE,
	0x94: subH,
	0x95: subL,
	0x96: subM,
	0x97: subA,
	0x98: sbbB,
	0x99: sbbC,
	0x9a: sbbD,
	0x9b: sbbE,
	0x9c: sbbH,
	0x9d: sbbL,
	0x9e: sbbM,
	0x9f: sbbA,
	0xa0: anaB,
	0xa1: anaC,
	0xa2: anaD,
	0xa3: anaE,
	0xa4: anaH,
	0xa5: anaL,
	0xa6: anaM,
	0xa7: anaA,
	0xa8: xraB,
	0xa9: xraC,
	0xaa: xraD,
	0xab: xraE,
	0xac: xraH,
	0xad: xraL,
	0xae: xraM,
	0xaf: xraA,
	0xb0: oraB,
	0xb1: oraC,
	0xb2: oraD,
	0xb3: oraE,
	0xb4: oraH,
	0xb5: oraL,
	0xb6: oraM,
	0xb7: oraA,
	0xb8: cmpB,
	0xb9: cmpC,
	0xba: cmpD,
	0xbb: cmpE,
	0xbc: cmpH,
	0xbd: cmpL,
	0xbe: cmpM,
	0xbf: cmpA,
	0xc0: rnz,
	0xc1: popB,
	0xc2: jnz,
	0xc3: jmp,
	0xc4: cnz,
	0xc5: pushB,
	0xc6: adi,
	0xc7: rst0,
	0xc8: rz,
	0xc9: ret,
	0xca: jz,
	0xcc: cz,
	0xcd: call,
	0xce: aci,
	0xcf: rst1,
	0xd0: rnc,
	0xd1: popD,
	0xd2: jnc,
	0xd3: out,
	0xd4: cnc,
	0xd5: pushD,
	0xd6: sui,
	0xd7: rst2,
	0xd8: rc,
	0xda: jc,
	0xdb: in,
	0xdc: cc,
	0xde: sbi,
	0xdf: rst3,
	0xe0: rpo,
	0xe1: popH,
	0xe2: jpo,
	0xe3: xthl,
	0xe4: cpo,
	0xe5: pushH,
	0xe6: ani,
	0xe7: rst4,
	0xe8: rpe,
	0xe9: pchl,
	0xea: jpe,
	0xeb: xchg,
	0xec: cpe,
	0xee: xri,
	0xef: rst5,
	0xf0: rp,
	0xf1: popPSW,
	0xf2: jp,
	0xf3: di,
	0xf4: cp,
	0xf5: pushPSW,
	0xf6: ori,
	0xf7: rst6,
	0xf8: rm,
	0xf9: sphl,
	0xfa: jm,
	0xfb: ei,
	0xfc: cm,
	0xfe: cpi,
	0xff: rst7,
}

func noOp(c *CPU) uint16 {
	return 1
}

func addB(c *CPU) uint16 {
	c.add(c.reg.B, 0)
	return 1
}

func addC(c *CPU) uint16 {
	c.add(c.reg.C, 0)
	return 1
}

func addD(c *CPU) uint16 {
	c.add(c.reg.D, 0)
	return 1
}

func addE(c *CPU) uint16 {
	c.add(c.reg.E, 0)
	return 1
}

func addH(c *CPU) uint16 {
	c.add(c.reg.H, 0)
	return 1
}

func addL(c *CPU) uint16 {
	c.add(c.reg.L, 0)
	return 1
}

func addM(c *CPU) uint16 {
	c.add(c.Read(c.getHL()), 0)
	return 1
}

func addA(c *CPU) uint16 {
	c.add(c.reg.A, 0)
	return 1
}

func adi(c *CPU) uint16 {
	c.add(c.getNextByte(), 0)
	return 2
}

func adcB(c *CPU) uint16 {
	c.add(c.reg.B, c.flags.CY)
	return 1
}

func adcC(c *CPU) uint16 {
	c.add(c.reg.C, c.flags.CY)
	return 1
}

func adcD(c *CPU) uint16 {
	c.add(c.reg.D, c.flags.CY)
	return 1
}

func adcE(c *CPU) uint16 {
	c.add(c.reg.E, c.flags.CY)
	return 1
}

func adcH(c *CPU) uint16 {
	c.add(c.reg.H, c.flags.CY)
	return 1
}

func adcL(c *CPU) uint16 {
	c.add(c.reg.L, c.flags.CY)
	return 1
}

func adcM(c *CPU) uint16 {
	c.add(c.Read(c.getHL()), c.flags.CY)
	return 1
}

func adcA(c *CPU) uint16 {
	c.add(c.reg.A, c.flags.CY)
	return 1
}

func aci(c *CPU) uint16 {
	c.add(c.getNextByte(), c.flags.CY)
	return 2
}

func subB(c *CPU) uint16 {
	c.sub(c.reg.B, 0)
	return 1
}

func subC(c *CPU) uint16 {
	c.sub(c.reg.C, 0)
	return 1
}

func subD(c *CPU) uint16 {
	c.sub(c.reg.D, 0)
	return 1
}

func subE(c *CPU) uint16 {
	c.sub(c.reg.E, 0)
	return 1
}

func subH(c *CPU) uint16 {
	c.sub(c.reg.H, 0)
	return 1
}

func subL(c *CPU) uint16 {
	c.sub(c.reg.L, 0)
	return 1
}

func subM(c *CPU) uint16 {
	c.sub(c.Read(c.getHL()), 0)
	return 1
}

func subA(c *CPU) uint16 {
	c.sub(c.reg.A, 0)
	return 1
}

func sui(c *CPU) uint16 {
	c.sub(c.getNextByte(), 0)
	return 2
}

func sbbB(c *CPU) uint16 {
	c.sub(c.reg.B, c.flags.CY)
	return 1
}

func sbbC(c *CPU) uint16 {
	c.sub(c.reg.C, c.flags.CY)
	return 1
}

func sbbD(c *CPU) uint16 {
	c.sub(c.reg.D, c.flags.CY)
	return 1
}

func sbbE(c *CPU) uint16 {
	c.sub(c.reg.E, c.flags.CY)
	return 1
}

func sbbH(c *CPU) uint16 {
	c.sub(c.reg.H, c.flags.CY)
	return 1
}

func sbbL(c *CPU) uint16 {
	c.sub(c.reg.L, c.flags.CY)
	return 1
}

func sbbM(c *CPU) uint16 {
	c.sub(c.Read(c.getHL()), c.flags.CY)
	return 1
}

func sbbA(c *CPU) uint16 {
	c.sub(c.reg.A, c.flags.CY)
	return 1
}

func sbi(c *CPU) uint16 {
	c.sub(c.getNextByte(), c.flags.CY)
	return 2
}

func inrB(c *CPU) uint16 {
	c.reg.B = c.inr(c.reg.B)
	return 1
}

func inrC(c *CPU) uint16 {
	c.reg.C = c.inr(c.reg.C)
	return 1
}

func inrD(c *CPU) uint16 {
	c.reg.D = c.inr(c.reg.D)
	return 1
}

func inrE(c *CPU) uint16 {
	c.reg.E = c.inr(c.reg.E)
	return 1
}

func inrH(c *CPU) uint16 {
	c.reg.H = c.inr(c.reg.H)
	return 1
}

func inrL(c *CPU) uint16 {
	c.reg.L = c.inr(c.reg.L)
	return 1
}

func inrM(c *CPU) uint16 {
	c.Write(c.getHL(), c.inr(c.Read(c.getHL())))
	return 1
}

func inrA(c *CPU) uint16 {
	c.reg.A = c.inr(c.reg.A)
	return 1
}

func dcrB(c *CPU) uint16 {
	c.reg.B = c.dcr(c.reg.B)
	return 1
}

func dcrC(c *CPU) uint16 {
	c.reg.C = c.dcr(c.reg.C)
	return 1
}

func dcrD(c *CPU) uint16 {
	c.reg.D = c.dcr(c.reg.D)
	return 1
}

func dcrE(c *CPU) uint16 {
	c.reg.E = c.dcr(c.reg.E)
	return 1
}

func dcrH(c *CPU) uint16 {
	c.reg.H = c.dcr(c.reg.H)
	return 1
}

func dcrL(c *CPU) uint16 {
	c.reg.L = c.dcr(c.reg.L)
	return 1
}

func dcrM(c *CPU) uint16 {
	c.Write(c.getHL(), c.dcr(c.Read(c.getHL())))
	return 1
}

func dcrA(c *CPU) uint16 {
	c.reg.A = c.dcr(c.reg.A)
	return 1
}

func inxB(c *CPU) uint16 {
	c.setBC(c.getBC() + 1)
	return 1
}

func inxD(c *CPU) uint16 {
	c.setDE(c.getDE() + 1)
	return 1
}

func inxH(c *CPU) uint16 {
	c.setHL(c.getHL() + 1)
	return 1
}

func inxSP(c *CPU) uint16 {
	c.sp += 1
	return 1
}

func dcxB(c *CPU) uint16 {
	c.setBC(c.getBC() - 1)
	return 1
}

func dcxD(c *CPU) uint16 {
	c.setDE(c.getDE() - 1)
	return 1
}

func dcxH(c *CPU) uint16 {
	c.setHL(c.getHL() - 1)
	return 1
}

func dcxSP(c *CPU) uint16 {
	c.sp -= 1
	return 1
}

func dadB(c *CPU) uint16 {
	c.dad(c.getBC())
	return 1
}

func dadD(c *CPU) uint16 {
	c.dad(c.getDE())
	return 1
}

func dadH(c *CPU) uint16 {
	c.dad(c.getHL())
	return 1
}

func dadSP(c *CPU) uint16 {
	c.dad(c.sp)
	return 1
}

func daa(c *CPU) uint16 {
	c.daa()
	return 1
}

func jmp(c *CPU) uint16 {
	c.pc = c.getNextTwoBytes()
	return 0
}

// A failed condition still consumes the 2-byte immediate, otherwise the
// next decode desynchronizes.
func jmpCond(c *CPU, cond bool) uint16 {
	if cond {
		return jmp(c)
	}
	return 3
}

func jnz(c *CPU) uint16 {
	return jmpCond(c, c.flags.Z == 0)
}

func jz(c *CPU) uint16 {
	return jmpCond(c, c.flags.Z == 1)
}

func jnc(c *CPU) uint16 {
	return jmpCond(c, c.flags.CY == 0)
}

func jc(c *CPU) uint16 {
	return jmpCond(c, c.flags.CY == 1)
}

func jpo(c *CPU) uint16 {
	return jmpCond(c, c.flags.P == 0)
}

func jpe(c *CPU) uint16 {
	return jmpCond(c, c.flags.P == 1)
}

func jp(c *CPU) uint16 {
	return jmpCond(c, c.flags.S == 0)
}

func jm(c *CPU) uint16 {
	return jmpCond(c, c.flags.S == 1)
}

func ret(c *CPU) uint16 {
	c.pc = c.pop()
	return 0
}

func retCond(c *CPU, cond bool) uint16 {
	if cond {
		c.cyc += 6
		return ret(c)
	}
	return 1
}

func rnz(c *CPU) uint16 {
	return retCond(c, c.flags.Z == 0)
}

func rz(c *CPU) uint16 {
	return retCond(c, c.flags.Z == 1)
}

func rnc(c *CPU) uint16 {
	return retCond(c, c.flags.CY == 0)
}

func rc(c *CPU) uint16 {
	return retCond(c, c.flags.CY == 1)
}

func rpo(c *CPU) uint16 {
	return retCond(c, c.flags.P == 0)
}

func rpe(c *CPU) uint16 {
	return retCond(c, c.flags.P == 1)
}

func rp(c *CPU) uint16 {
	return retCond(c, c.flags.S == 0)
}

func rm(c *CPU) uint16 {
	return retCond(c, c.flags.S == 1)
}

// call pushes the address of the instruction after the 3-byte call,
// high byte at SP-1, low byte at SP-2.
func call(c *CPU) uint16 {
	c.push(c.pc + 3)
	c.pc = c.getNextTwoBytes()
	return 0
}

func callCond(c *CPU, cond bool) uint16 {
	if cond {
		c.cyc += 6
		return call(c)
	}
	return 3
}

func cnz(c *CPU) uint16 {
	return callCond(c, c.flags.Z == 0)
}

func cz(c *CPU) uint16 {
	return callCond(c, c.flags.Z == 1)
}

func cnc(c *CPU) uint16 {
	return callCond(c, c.flags.CY == 0)
}

func cc(c *CPU) uint16 {
	return callCond(c, c.flags.CY == 1)
}

func cpo(c *CPU) uint16 {
	return callCond(c, c.flags.P == 0)
}

func cpe(c *CPU) uint16 {
	return callCond(c, c.flags.P == 1)
}

func cp(c *CPU) uint16 {
	return callCond(c, c.flags.S == 0)
}

func cm(c *CPU) uint16 {
	return callCond(c, c.flags.S == 1)
}

func callRst(c *CPU, addr uint16) uint16 {
	c.push(c.pc + 1)
	c.pc = addr
	return 0
}

func rst0(c *CPU) uint16 {
	return callRst(c, 0x00)
}

func rst1(c *CPU) uint16 {
	return callRst(c, 0x08)
}

func rst2(c *CPU) uint16 {
	return callRst(c, 0x10)
}

func rst3(c *CPU) uint16 {
	return callRst(c, 0x18)
}

func rst4(c *CPU) uint16 {
	return callRst(c, 0x20)
}

func rst5(c *CPU) uint16 {
	return callRst(c, 0x28)
}

func rst6(c *CPU) uint16 {
	return callRst(c, 0x30)
}

func rst7(c *CPU) uint16 {
	return callRst(c, 0x38)
}

func lxiB(c *CPU) uint16 {
	c.setBC(c.getNextTwoBytes())
	return 3
}

func lxiD(c *CPU) uint16 {
	c.setDE(c.getNextTwoBytes())
	return 3
}

func lxiH(c *CPU) uint16 {
	c.setHL(c.getNextTwoBytes())
	return 3
}

func lxiSP(c *CPU) uint16 {
	c.sp = c.getNextTwoBytes()
	return 3
}

func mviB(c *CPU) uint16 {
	c.reg.B = c.getNextByte()
	return 2
}

func mviC(c *CPU) uint16 {
	c.reg.C = c.getNextByte()
	return 2
}

func mviD(c *CPU) uint16 {
	c.reg.D = c.getNextByte()
	return 2
}

func mviE(c *CPU) uint16 {
	c.reg.E = c.getNextByte()
	return 2
}

func mviH(c *CPU) uint16 {
	c.reg.H = c.getNextByte()
	return 2
}

func mviL(c *CPU) uint16 {
	c.reg.L = c.getNextByte()
	return 2
}

func mviM(c *CPU) uint16 {
	c.Write(c.getHL(), c.getNextByte())
	return 2
}

func mviA(c *CPU) uint16 {
	c.reg.A = c.getNextByte()
	return 2
}

func lda(c *CPU) uint16 {
	c.reg.A = c.Read(c.getNextTwoBytes())
	return 3
}

func sta(c *CPU) uint16 {
	c.Write(c.getNextTwoBytes(), c.reg.A)
	return 3
}

func ldaxB(c *CPU) uint16 {
	c.reg.A = c.Read(c.getBC())
	return 1
}

func ldaxD(c *CPU) uint16 {
	c.reg.A = c.Read(c.getDE())
	return 1
}

func staxB(c *CPU) uint16 {
	c.Write(c.getBC(), c.reg.A)
	return 1
}

func staxD(c *CPU) uint16 {
	c.Write(c.getDE(), c.reg.A)
	return 1
}

func lhld(c *CPU) uint16 {
	c.setHL(c.readWord(c.getNextTwoBytes()))
	return 3
}

func shld(c *CPU) uint16 {
	c.writeWord(c.getNextTwoBytes(), c.getHL())
	return 3
}

func movBB(c *CPU) uint16 {
	return 1
}

func movBC(c *CPU) uint16 {
	c.reg.B = c.reg.C
	return 1
}

func movBD(c *CPU) uint16 {
	c.reg.B = c.reg.D
	return 1
}

func movBE(c *CPU) uint16 {
	c.reg.B = c.reg.E
	return 1
}

func movBH(c *CPU) uint16 {
	c.reg.B = c.reg.H
	return 1
}

func movBL(c *CPU) uint16 {
	c.reg.B = c.reg.L
	return 1
}

func movBM(c *CPU) uint16 {
	c.reg.B = c.Read(c.getHL())
	return 1
}

func movBA(c *CPU) uint16 {
	c.reg.B = c.reg.A
	return 1
}

func movCB(c *CPU) uint16 {
	c.reg.C = c.reg.B
	return 1
}

func movCC(c *CPU) uint16 {
	return 1
}

func movCD(c *CPU) uint16 {
	c.reg.C = c.reg.D
	return 1
}

func movCE(c *CPU) uint16 {
	c.reg.C = c.reg.E
	return 1
}

func movCH(c *CPU) uint16 {
	c.reg.C = c.reg.H
	return 1
}

func movCL(c *CPU) uint16 {
	c.reg.C = c.reg.L
	return 1
}

func movCM(c *CPU) uint16 {
	c.reg.C = c.Read(c.getHL())
	return 1
}

func movCA(c *CPU) uint16 {
	c.reg.C = c.reg.A
	return 1
}

func movDB(c *CPU) uint16 {
	c.reg.D = c.reg.B
	return 1
}

func movDC(c *CPU) uint16 {
	c.reg.D = c.reg.C
	return 1
}

func movDD(c *CPU) uint16 {
	return 1
}

func movDE(c *CPU) uint16 {
	c.reg.D = c.reg.E
	return 1
}

func movDH(c *CPU) uint16 {
	c.reg.D = c.reg.H
	return 1
}

func movDL(c *CPU) uint16 {
	c.reg.D = c.reg.L
	return 1
}

func movDM(c *CPU) uint16 {
	c.reg.D = c.Read(c.getHL())
	return 1
}

func movDA(c *CPU) uint16 {
	c.reg.D = c.reg.A
	return 1
}

func movEB(c *CPU) uint16 {
	c.reg.E = c.reg.B
	return 1
}

func movEC(c *CPU) uint16 {
	c.reg.E = c.reg.C
	return 1
}

func movED(c *CPU) uint16 {
	c.reg.E = c.reg.D
	return 1
}

func movEE(c *CPU) uint16 {
	return 1
}

func movEH(c *CPU) uint16 {
	c.reg.E = c.reg.H
	return 1
}

func movEL(c *CPU) uint16 {
	c.reg.E = c.reg.L
	return 1
}

func movEM(c *CPU) uint16 {
	c.reg.E = c.Read(c.getHL())
	return 1
}

func movEA(c *CPU) uint16 {
	c.reg.E = c.reg.A
	return 1
}

func movHB(c *CPU) uint16 {
	c.reg.H = c.reg.B
	return 1
}

func movHC(c *CPU) uint16 {
	c.reg.H = c.reg.C
	return 1
}

func movHD(c *CPU) uint16 {
	c.reg.H = c.reg.D
	return 1
}

func movHE(c *CPU) uint16 {
	c.reg.H = c.reg.E
	return 1
}

func movHH(c *CPU) uint16 {
	return 1
}

func movHL(c *CPU) uint16 {
	c.reg.H = c.reg.L
	return 1
}

func movHM(c *CPU) uint16 {
	c.reg.H = c.Read(c.getHL())
	return 1
}

func movHA(c *CPU) uint16 {
	c.reg.H = c.reg.A
	return 1
}

func movLB(c *CPU) uint16 {
	c.reg.L = c.reg.B
	return 1
}

func movLC(c *CPU) uint16 {
	c.reg.L = c.reg.C
	return 1
}

func movLD(c *CPU) uint16 {
	c.reg.L = c.reg.D
	return 1
}

func movLE(c *CPU) uint16 {
	c.reg.L = c.reg.E
	return 1
}

func movLH(c *CPU) uint16 {
	c.reg.L = c.reg.H
	return 1
}

func movLL(c *CPU) uint16 {
	return 1
}

func movLM(c *CPU) uint16 {
	c.reg.L = c.Read(c.getHL())
	return 1
}

func movLA(c *CPU) uint16 {
	c.reg.L = c.reg.A
	return 1
}

func movMB(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.B)
	return 1
}

func movMC(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.C)
	return 1
}

func movMD(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.D)
	return 1
}

func movME(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.E)
	return 1
}

func movMH(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.H)
	return 1
}

func movML(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.L)
	return 1
}

func movMA(c *CPU) uint16 {
	c.Write(c.getHL(), c.reg.A)
	return 1
}

func movAB(c *CPU) uint16 {
	c.reg.A = c.reg.B
	return 1
}

func movAC(c *CPU) uint16 {
	c.reg.A = c.reg.C
	return 1
}

func movAD(c *CPU) uint16 {
	c.reg.A = c.reg.D
	return 1
}

func movAE(c *CPU) uint16 {
	c.reg.A = c.reg.E
	return 1
}

func movAH(c *CPU) uint16 {
	c.reg.A = c.reg.H
	return 1
}

func movAL(c *CPU) uint16 {
	c.reg.A = c.reg.L
	return 1
}

func movAM(c *CPU) uint16 {
	c.reg.A = c.Read(c.getHL())
	return 1
}

func movAA(c *CPU) uint16 {
	return 1
}

func anaB(c *CPU) uint16 {
	c.and(c.reg.B)
	return 1
}

func anaC(c *CPU) uint16 {
	c.and(c.reg.C)
	return 1
}

func anaD(c *CPU) uint16 {
	c.and(c.reg.D)
	return 1
}

func anaE(c *CPU) uint16 {
	c.and(c.reg.E)
	return 1
}

func anaH(c *CPU) uint16 {
	c.and(c.reg.H)
	return 1
}

func anaL(c *CPU) uint16 {
	c.and(c.reg.L)
	return 1
}

func anaM(c *CPU) uint16 {
	c.and(c.Read(c.getHL()))
	return 1
}

func anaA(c *CPU) uint16 {
	c.and(c.reg.A)
	return 1
}

func ani(c *CPU) uint16 {
	c.and(c.getNextByte())
	return 2
}

func xraB(c *CPU) uint16 {
	c.xor(c.reg.B)
	return 1
}

func xraC(c *CPU) uint16 {
	c.xor(c.reg.C)
	return 1
}

func xraD(c *CPU) uint16 {
	c.xor(c.reg.D)
	return 1
}

func xraE(c *CPU) uint16 {
	c.xor(c.reg.E)
	return 1
}

func xraH(c *CPU) uint16 {
	c.xor(c.reg.H)
	return 1
}

func xraL(c *CPU) uint16 {
	c.xor(c.reg.L)
	return 1
}

func xraM(c *CPU) uint16 {
	c.xor(c.Read(c.getHL()))
	return 1
}

func xraA(c *CPU) uint16 {
	c.xor(c.reg.A)
	return 1
}

func xri(c *CPU) uint16 {
	c.xor(c.getNextByte())
	return 2
}

func oraB(c *CPU) uint16 {
	c.or(c.reg.B)
	return 1
}

func oraC(c *CPU) uint16 {
	c.or(c.reg.C)
	return 1
}

func oraD(c *CPU) uint16 {
	c.or(c.reg.D)
	return 1
}

func oraE(c *CPU) uint16 {
	c.or(c.reg.E)
	return 1
}

func oraH(c *CPU) uint16 {
	c.or(c.reg.H)
	return 1
}

func oraL(c *CPU) uint16 {
	c.or(c.reg.L)
	return 1
}

func oraM(c *CPU) uint16 {
	c.or(c.Read(c.getHL()))
	return 1
}

func oraA(c *CPU) uint16 {
	c.or(c.reg.A)
	return 1
}

func ori(c *CPU) uint16 {
	c.or(c.getNextByte())
	return 2
}

func cmpB(c *CPU) uint16 {
	c.cmp(c.reg.B)
	return 1
}

func cmpC(c *CPU) uint16 {
	c.cmp(c.reg.C)
	return 1
}

func cmpD(c *CPU) uint16 {
	c.cmp(c.reg.D)
	return 1
}

func cmpE(c *CPU) uint16 {
	c.cmp(c.reg.E)
	return 1
}

func cmpH(c *CPU) uint16 {
	c.cmp(c.reg.H)
	return 1
}

func cmpL(c *CPU) uint16 {
	c.cmp(c.reg.L)
	return 1
}

func cmpM(c *CPU) uint16 {
	c.cmp(c.Read(c.getHL()))
	return 1
}

func cmpA(c *CPU) uint16 {
	c.cmp(c.reg.A)
	return 1
}

func cpi(c *CPU) uint16 {
	c.cmp(c.getNextByte())
	return 2
}

func rlc(c *CPU) uint16 {
	c.flags.CY = c.reg.A >> 7
	c.reg.A = (c.reg.A << 1) | c.flags.CY
	return 1
}

func rrc(c *CPU) uint16 {
	c.flags.CY = c.reg.A & 1
	c.reg.A = (c.reg.A >> 1) | (c.flags.CY << 7)
	return 1
}

func ral(c *CPU) uint16 {
	cy := c.flags.CY
	c.flags.CY = c.reg.A >> 7
	c.reg.A = (c.reg.A << 1) | cy
	return 1
}

func rar(c *CPU) uint16 {
	cy := c.flags.CY
	c.flags.CY = c.reg.A & 1
	c.reg.A = (c.reg.A >> 1) | (cy << 7)
	return 1
}

func stc(c *CPU) uint16 {
	c.flags.CY = 1
	return 1
}

func cmc(c *CPU) uint16 {
	c.flags.CY ^= 1
	return 1
}

func cma(c *CPU) uint16 {
	c.reg.A ^= 255
	return 1
}

func pushB(c *CPU) uint16 {
	c.push(c.getBC())
	return 1
}

func pushD(c *CPU) uint16 {
	c.push(c.getDE())
	return 1
}

func pushH(c *CPU) uint16 {
	c.push(c.getHL())
	return 1
}

func pushPSW(c *CPU) uint16 {
	c.push((uint16(c.reg.A) << 8) | uint16(c.flags.pack()))
	return 1
}

func popB(c *CPU) uint16 {
	c.setBC(c.pop())
	return 1
}

func popD(c *CPU) uint16 {
	c.setDE(c.pop())
	return 1
}

func popH(c *CPU) uint16 {
	c.setHL(c.pop())
	return 1
}

func popPSW(c *CPU) uint16 {
	af := c.pop()
	c.reg.A = uint8(af >> 8)
	c.flags.unpack(uint8(af))
	return 1
}

func xchg(c *CPU) uint16 {
	c.reg.H, c.reg.D = c.reg.D, c.reg.H
	c.reg.L, c.reg.E = c.reg.E, c.reg.L
	return 1
}

func xthl(c *CPU) uint16 {
	hl := c.getHL()
	c.setHL(c.readWord(c.sp))
	c.writeWord(c.sp, hl)
	return 1
}

func sphl(c *CPU) uint16 {
	c.sp = c.getHL()
	return 1
}

func pchl(c *CPU) uint16 {
	c.pc = c.getHL()
	return 0
}

func in(c *CPU) uint16 {
	c.reg.A = c.portIn(c.getNextByte())
	return 2
}

func out(c *CPU) uint16 {
	c.portOut(c.getNextByte(), c.reg.A)
	return 2
}

func ei(c *CPU) uint16 {
	c.intEnable = 1
	return 1
}

func di(c *CPU) uint16 {
	c.intEnable = 0
	return 1
}

func hlt(c *CPU) uint16 {
	c.halted = true
	return 1
}
