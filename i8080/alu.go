package i8080

func (c *CPU) setZSP(val uint8) {
	c.setZero(uint16(val))
	c.setSign(uint16(val))
	c.setParity(uint16(val))
}

func (c *CPU) setZero(val uint16) {
	if (val & 0xff) == 0 {
		c.flags.Z = 1
	} else {
		c.flags.Z = 0
	}
}

func (c *CPU) setSign(val uint16) {
	if (val & 0x80) != 0 {
		c.flags.S = 1
	} else {
		c.flags.S = 0
	}
}

// P = 1 when the low byte has an even number of 1-bits.
func (c *CPU) setParity(val uint16) {
	ones := uint16(0)
	for i := 0; i < 8; i++ {
		ones += ((val >> i) & 1)
	}
	if (ones % 2) == 0 {
		c.flags.P = 1
	} else {
		c.flags.P = 0
	}
}

func (c *CPU) setCarry(val uint16) {
	if val > 0xff {
		c.flags.CY = 1
	} else {
		c.flags.CY = 0
	}
}

func flip(val uint8) uint8 {
	if val == 1 {
		return 0
	}
	return 1
}

func (c *CPU) add(val uint8, cy uint8) {
	ans := uint16(c.reg.A) + uint16(val) + uint16(cy)
	c.setZSP(uint8(ans))
	c.setCarry(ans)
	if ((uint16(c.reg.A) ^ uint16(val) ^ ans) & 0x10) > 0 {
		c.flags.AC = 1
	} else {
		c.flags.AC = 0
	}
	c.reg.A = uint8(ans)
}

// sub is add of the complement with the borrow flipped both ways.
func (c *CPU) sub(val uint8, cy uint8) {
	cy = flip(cy)
	c.add(^val, cy)
	c.flags.CY = flip(c.flags.CY)
}

// inr and dcr leave CY alone. That is the one flag they preserve.
func (c *CPU) inr(val uint8) uint8 {
	val++
	c.setZSP(val)
	if (val & 0xf) == 0 {
		c.flags.AC = 1
	} else {
		c.flags.AC = 0
	}
	return val
}

func (c *CPU) dcr(val uint8) uint8 {
	val--
	c.setZSP(val)
	if (val & 0xf) == 0xf {
		c.flags.AC = 0
	} else {
		c.flags.AC = 1
	}
	return val
}

func (c *CPU) dad(val uint16) {
	ans := uint32(c.getHL()) + uint32(val)
	c.setHL(uint16(ans))
	if (ans & 0xffff0000) > 0 {
		c.flags.CY = 1
	} else {
		c.flags.CY = 0
	}
}

func (c *CPU) and(val uint8) {
	ans := c.reg.A & val
	c.setZSP(ans)
	c.flags.CY = 0
	if ((c.reg.A | val) & 0x08) > 0 {
		c.flags.AC = 1
	} else {
		c.flags.AC = 0
	}
	c.reg.A = ans
}

func (c *CPU) xor(val uint8) {
	ans := c.reg.A ^ val
	c.setZSP(ans)
	c.flags.CY = 0
	c.flags.AC = 0
	c.reg.A = ans
}

func (c *CPU) or(val uint8) {
	ans := c.reg.A | val
	c.setZSP(ans)
	c.flags.CY = 0
	c.flags.AC = 0
	c.reg.A = ans
}

// cmp sets the flags a subtract would, CY being the borrow, and leaves
// A alone.
func (c *CPU) cmp(val uint8) {
	ans := uint16(c.reg.A) - uint16(val)
	c.setZSP(uint8(ans))
	c.setCarry(ans)
	if (^(uint16(c.reg.A) ^ ans ^ uint16(val)) & 0x10) > 0 {
		c.flags.AC = 1
	} else {
		c.flags.AC = 0
	}
}

// daa adds 0x06 when the low nibble spills past 9, then 0x60 when the
// high nibble does, forcing CY only in that second branch.
func (c *CPU) daa() {
	cy := c.flags.CY
	lsb := c.reg.A & 0x0f
	msb := c.reg.A >> 4
	correction := 0

	if lsb > 9 || c.flags.AC == 1 {
		correction += 0x06
	}

	if (c.flags.CY == 1 || msb > 9) || (msb >= 9 && lsb > 9) {
		correction += 0x60
		cy = 1
	}

	c.add(uint8(correction), 0)
	c.flags.CY = cy
}
