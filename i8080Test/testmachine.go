package i8080Test

import (
	"fmt"
	"strings"

	"github.com/is386/GoInvaders/i8080"
)

// TestMachine runs a small program against the CPU the way the CP/M
// test binaries expect it: the program is loaded at 0x100, the BDOS
// console entry at 0x0005 and the warm-boot exit at 0x0000 are
// rewritten as OUT instructions the harness intercepts through the
// output hook.
type TestMachine struct {
	cpu        *i8080.CPU
	out        strings.Builder
	instrCount int
	running    bool
	showDebug  bool
}

func NewTestMachine(prog []byte, showDebug bool) (*TestMachine, error) {
	tm := &TestMachine{showDebug: showDebug, running: true}
	cpu := i8080.NewCPU(0x100, showDebug)
	if err := cpu.LoadRom(prog, 0x100); err != nil {
		return nil, err
	}
	cpu.Write(0x0, 0xD3) // OUT 0: program exit
	cpu.Write(0x1, 0x00)
	cpu.Write(0x5, 0xD3) // OUT 1: BDOS console call
	cpu.Write(0x6, 0x01)
	cpu.Write(0x7, 0xC9)
	cpu.SetOutputHook(tm.portOut)
	tm.cpu = cpu
	return tm, nil
}

func (tm *TestMachine) Run() error {
	for tm.running {
		if _, err := tm.cpu.Execute(); err != nil {
			return err
		}
		tm.instrCount++
	}
	if tm.showDebug {
		fmt.Printf("\nTest Completed\nInstructions: %d\nCycles: %d\n",
			tm.instrCount, tm.cpu.GetCycles())
	}
	return nil
}

func (tm *TestMachine) portOut(port uint8, val uint8) {
	if port == 0 {
		tm.running = false
	} else if port == 1 {
		reg := tm.cpu.GetRegisters()
		if reg.C == 9 {
			mem := tm.cpu.GetMemory()
			offset := tm.cpu.GetDE()
			for mem[offset] != '$' {
				tm.out.WriteByte(mem[offset])
				offset++
			}
		} else if reg.C == 2 {
			tm.out.WriteByte(reg.E)
		}
	}
}

func (tm *TestMachine) Output() string {
	return tm.out.String()
}

func (tm *TestMachine) Cycles() int {
	return tm.cpu.GetCycles()
}

func (tm *TestMachine) Instructions() int {
	return tm.instrCount
}
