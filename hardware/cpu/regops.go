package cpu

// reg8 returns a pointer to the 8-bit accumulator named by letter ('A' or 'B').
func (c *CPU) reg8(letter byte) *uint8 {
	switch letter {
	case 'A':
		return &c.A
	case 'B':
		return &c.B
	}
	return nil
}

// getReg16/setReg16 read and write the 16-bit register named by letter
// ('D','X','Y','U','S'). Writing S sets nmi_armed (see armNMI).
func (c *CPU) getReg16(letter byte) uint16 {
	switch letter {
	case 'D':
		return c.D()
	case 'X':
		return c.X
	case 'Y':
		return c.Y
	case 'U':
		return c.U
	case 'S':
		return c.S
	}
	return 0
}

func (c *CPU) setReg16(letter byte, v uint16) {
	switch letter {
	case 'D':
		c.SetD(v)
	case 'X':
		c.X = v
	case 'Y':
		c.Y = v
	case 'U':
		c.U = v
	case 'S':
		c.S = v
		c.armNMI()
	}
}

// regValue/setRegValue address the wider EXG/TFR register set, which also
// includes PC, CC and DP and the 8-bit accumulators by their postbyte codes.
func (c *CPU) regValue(code uint8) (v uint16, is8 bool) {
	switch code & 0x0F {
	case 0:
		return c.D(), false
	case 1:
		return c.X, false
	case 2:
		return c.Y, false
	case 3:
		return c.U, false
	case 4:
		return c.S, false
	case 5:
		return c.PC, false
	case 8:
		return uint16(c.A), true
	case 9:
		return uint16(c.B), true
	case 10:
		return uint16(c.CC.Pack()), true
	case 11:
		return uint16(c.DP), true
	}
	return 0, false
}

func (c *CPU) setRegValue(code uint8, v uint16) {
	switch code & 0x0F {
	case 0:
		c.SetD(v)
	case 1:
		c.X = v
	case 2:
		c.Y = v
	case 3:
		c.U = v
	case 4:
		c.S = v
		c.armNMI()
	case 5:
		c.PC = v
	case 8:
		c.A = uint8(v)
	case 9:
		c.B = uint8(v)
	case 10:
		c.CC.Unpack(uint8(v))
	case 11:
		c.DP = uint8(v)
	}
}

// exg swaps the two registers named by post's nibbles. Exchanging an 8-bit
// register with a 16-bit one is hardware-undefined on the real MC6809E;
// here the 8-bit value is simply widened/truncated rather than rejected.
func (c *CPU) exg(post uint8) {
	srcCode := post >> 4
	dstCode := post & 0x0F
	srcVal, _ := c.regValue(srcCode)
	dstVal, _ := c.regValue(dstCode)
	c.setRegValue(dstCode, srcVal)
	c.setRegValue(srcCode, dstVal)
}

func (c *CPU) tfr(post uint8) {
	srcCode := post >> 4
	dstCode := post & 0x0F
	v, _ := c.regValue(srcCode)
	c.setRegValue(dstCode, v)
}

// pushRegisters/pullRegisters implement PSHS/PULS (useS true, other
// pointer register is U) and PSHU/PULU (useS false, other pointer
// register is S), transferring registers named by the postbyte's set
// bits in PC,U/S,Y,X,DP,B,A,CC order (PC first/highest address, CC
// last/lowest), mirroring pushFullFrame's chronology.
func (c *CPU) pushRegisters(bits uint8, useS bool) int {
	extra := 0
	push8 := func(v uint8) {
		if useS {
			c.pushS8(v)
		} else {
			c.pushU8(v)
		}
		extra++
	}
	push16 := func(v uint16) {
		if useS {
			c.pushS16(v)
		} else {
			c.pushU16(v)
		}
		extra += 2
	}

	if bits&0x80 != 0 {
		push16(c.PC)
	}
	if bits&0x40 != 0 {
		if useS {
			push16(c.U)
		} else {
			push16(c.S)
		}
	}
	if bits&0x20 != 0 {
		push16(c.Y)
	}
	if bits&0x10 != 0 {
		push16(c.X)
	}
	if bits&0x08 != 0 {
		push8(c.DP)
	}
	if bits&0x04 != 0 {
		push8(c.B)
	}
	if bits&0x02 != 0 {
		push8(c.A)
	}
	if bits&0x01 != 0 {
		push8(c.CC.Pack())
	}
	return extra
}

func (c *CPU) pullRegisters(bits uint8, useS bool) int {
	extra := 0
	pull8 := func() uint8 {
		var v uint8
		if useS {
			v = c.pullS8()
		} else {
			v = c.pullU8()
		}
		extra++
		return v
	}
	pull16 := func() uint16 {
		var v uint16
		if useS {
			v = c.pullS16()
		} else {
			v = c.pullU16()
		}
		extra += 2
		return v
	}

	if bits&0x01 != 0 {
		c.CC.Unpack(pull8())
	}
	if bits&0x02 != 0 {
		c.A = pull8()
	}
	if bits&0x04 != 0 {
		c.B = pull8()
	}
	if bits&0x08 != 0 {
		c.DP = pull8()
	}
	if bits&0x10 != 0 {
		c.X = pull16()
	}
	if bits&0x20 != 0 {
		c.Y = pull16()
	}
	if bits&0x40 != 0 {
		if useS {
			c.U = pull16()
		} else {
			c.S = pull16()
			c.armNMI()
		}
	}
	if bits&0x80 != 0 {
		c.PC = pull16()
	}
	return extra
}
