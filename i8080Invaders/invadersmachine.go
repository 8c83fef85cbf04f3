package i8080Invaders

import (
	"github.com/is386/GoInvaders/i8080"
	"github.com/veandco/go-sdl2/sdl"
)

type button struct {
	port uint8
	mask uint8
}

// Cabinet switch wiring. Port 1: bit 0 coin, bit 1 P2 start, bit 2 P1
// start, bit 4 P1 shoot, bit 5 P1 left, bit 6 P1 right. Port 2: bits
// 4/5/6 are the P2 controls.
var BUTTONS = map[sdl.Keycode]button{
	sdl.K_c:      {1, 0x01},
	sdl.K_RETURN: {1, 0x02},
	sdl.K_s:      {1, 0x04},
	sdl.K_w:      {1, 0x10},
	sdl.K_a:      {1, 0x20},
	sdl.K_d:      {1, 0x40},
	sdl.K_UP:     {2, 0x10},
	sdl.K_LEFT:   {2, 0x20},
	sdl.K_RIGHT:  {2, 0x40},
}

type InvadersMachine struct {
	cpu    *i8080.CPU
	screen *Screen
	beeper *Beeper
}

func NewInvadersMachine(rom []byte, showDebug bool, mute bool) (*InvadersMachine, error) {
	cpu := i8080.NewCPU(0x0, showDebug)
	if err := cpu.LoadRom(rom, 0x0); err != nil {
		return nil, err
	}
	im := &InvadersMachine{cpu: cpu, screen: NewScreen()}
	if !mute {
		beeper, err := NewBeeper()
		if err != nil {
			im.screen.Destroy()
			return nil, err
		}
		im.beeper = beeper
		cpu.SetOutputHook(func(port uint8, val uint8) {
			if port == 3 || port == 5 {
				beeper.Set(port, val)
			}
		})
	}
	return im, nil
}

func (im *InvadersMachine) Run() error {
	defer im.destroy()

	frameMs := uint32(1000 / i8080.FramesPerSec)
	lastTic := sdl.GetTicks()

	for {
		now := sdl.GetTicks()
		if now-lastTic < frameMs {
			sdl.Delay(1)
			continue
		}
		lastTic = now

		if !im.pollSDL() {
			return nil
		}
		if err := im.runFrame(); err != nil {
			return err
		}
	}
}

// runFrame is one 60 Hz tic: first half of the cycle budget, mid-frame
// interrupt, second half, then the host work (blit, already-polled
// input) before the VBlank interrupt.
func (im *InvadersMachine) runFrame() error {
	half := i8080.CyclesPerFrame / 2
	if _, err := im.cpu.RunCycles(half); err != nil {
		return err
	}
	im.cpu.Interrupt(i8080.IntMidFrame)
	if _, err := im.cpu.RunCycles(i8080.CyclesPerFrame - half); err != nil {
		return err
	}
	im.screen.Draw(im.cpu.GetMemory())
	im.screen.Update()
	im.cpu.Interrupt(i8080.IntVBlank)
	return nil
}

func (im *InvadersMachine) pollSDL() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Keysym.Sym == sdl.K_q {
					return false
				}
				im.keyDown(e.Keysym.Sym)
			case sdl.KEYUP:
				im.keyUp(e.Keysym.Sym)
			}
		}
	}
	return true
}

func (im *InvadersMachine) keyDown(key sdl.Keycode) {
	if b, ok := BUTTONS[key]; ok {
		im.cpu.OrInputBit(b.port, b.mask)
	}
}

func (im *InvadersMachine) keyUp(key sdl.Keycode) {
	if b, ok := BUTTONS[key]; ok {
		im.cpu.ClearInputBit(b.port, b.mask)
	}
}

func (im *InvadersMachine) destroy() {
	if im.beeper != nil {
		im.beeper.Close()
	}
	im.screen.Destroy()
}
