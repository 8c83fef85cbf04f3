package i8080

// The 8080 in the cabinet runs at 2 MHz against a 60 Hz display, so a
// frame is 33,333 cycles split into two slices around the mid-frame
// interrupt.
const (
	ClockSpeed     = 2000000
	FramesPerSec   = 60
	CyclesPerFrame = ClockSpeed / FramesPerSec
	halfFrame      = CyclesPerFrame / 2
)

// RunCycles executes instructions until at least n cycles have elapsed
// and returns the count actually consumed. The overshoot is at most one
// instruction.
func (c *CPU) RunCycles(n int) (int, error) {
	count := 0
	for count < n {
		cyc, err := c.Execute()
		if err != nil {
			return count, err
		}
		count += cyc
	}
	return count, nil
}

// RunFrame executes one 60 Hz frame: the first half up to the mid-frame
// interrupt, then the rest up to VBlank. The host reads the video RAM
// out of GetMemory between frames.
func (c *CPU) RunFrame() error {
	if _, err := c.RunCycles(halfFrame); err != nil {
		return err
	}
	c.Interrupt(IntMidFrame)
	if _, err := c.RunCycles(CyclesPerFrame - halfFrame); err != nil {
		return err
	}
	c.Interrupt(IntVBlank)
	return nil
}
