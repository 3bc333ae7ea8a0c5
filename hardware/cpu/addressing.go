package cpu

// indexReg returns a pointer to the index/stack register selected by
// postbyte bits 5..6 (00=X, 01=Y, 10=U, 11=S).
func (c *CPU) indexReg(sel uint8) *uint16 {
	switch sel {
	case 0:
		return &c.X
	case 1:
		return &c.Y
	case 2:
		return &c.U
	default:
		return &c.S
	}
}

// effectiveAddress resolves Direct, Extended or Indexed addressing and
// returns the computed address plus any extra cycles beyond the
// opcode-table base cycle count. Relative/LRelative/Immediate/LImmediate/
// Inherent are handled directly at the call site since they don't produce
// a memory effective address in the same sense.
func (c *CPU) effectiveAddress(mode AddrMode) (ea uint16, extra int, ok bool) {
	switch mode {
	case Direct:
		lo := c.fetch8()
		return uint16(c.DP)<<8 | uint16(lo), 0, true

	case Extended:
		return c.fetch16(), 0, true

	case Indexed:
		return c.indexedEA()

	default:
		return 0, 0, false
	}
}

func (c *CPU) indexedEA() (ea uint16, extra int, ok bool) {
	post := c.fetch8()
	reg := c.indexReg((post >> 5) & 0x03)

	if post&0x80 == 0 {
		// 5-bit signed constant offset, no indirection
		offset := int16(int8(post<<3) >> 3)
		return uint16(int32(*reg) + int32(offset)), 1, true
	}

	indirect := post&0x10 != 0
	submode := post & 0x0F

	switch submode {
	case 0: // ,R+
		if indirect {
			return 0, 0, false
		}
		ea = *reg
		*reg++
		extra = 2

	case 1: // ,R++
		ea = *reg
		*reg += 2
		extra = 3
		if indirect {
			extra = 6
		}

	case 2: // ,-R
		if indirect {
			return 0, 0, false
		}
		*reg--
		ea = *reg
		extra = 2

	case 3: // ,--R
		*reg -= 2
		ea = *reg
		extra = 3
		if indirect {
			extra = 6
		}

	case 4: // 0,R
		ea = *reg
		if indirect {
			extra = 3
		}

	case 5: // B,R
		ea = uint16(int32(*reg) + int32(int8(c.B)))
		extra = 1
		if indirect {
			extra = 4
		}

	case 6: // A,R
		ea = uint16(int32(*reg) + int32(int8(c.A)))
		extra = 1
		if indirect {
			extra = 4
		}

	case 8: // n8,R
		off := c.fetchSigned8()
		ea = uint16(int32(*reg) + int32(off))
		extra = 1
		if indirect {
			extra = 4
		}

	case 9: // n16,R
		off := int16(c.fetch16())
		ea = uint16(int32(*reg) + int32(off))
		extra = 4
		if indirect {
			extra = 7
		}

	case 11: // D,R
		ea = uint16(int32(*reg) + int32(int16(c.D())))
		extra = 4
		if indirect {
			extra = 7
		}

	case 12: // n8,PC
		off := c.fetchSigned8()
		ea = uint16(int32(c.PC) + int32(off))
		extra = 1
		if indirect {
			extra = 4
		}

	case 13: // n16,PC
		off := int16(c.fetch16())
		ea = uint16(int32(c.PC) + int32(off))
		extra = 5
		if indirect {
			extra = 8
		}

	case 15: // [n16] extended indirect, always indirect
		ea = c.fetch16()
		indirect = true
		extra = 5

	default:
		return 0, 0, false
	}

	if indirect {
		ea = c.read16(ea)
	}
	return ea, extra, true
}
