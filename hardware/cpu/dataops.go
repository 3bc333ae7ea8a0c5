package cpu

// operand8 fetches the 8-bit operand named by mode: an immediate byte, or
// the memory byte at the mode's effective address.
func (c *CPU) operand8(mode AddrMode) (v uint8, extra int, ok bool) {
	switch mode {
	case Immediate:
		return c.fetch8(), 0, true
	case Direct, Extended, Indexed:
		ea, ex, resolved := c.effectiveAddress(mode)
		if !resolved {
			return 0, 0, false
		}
		return c.read8(ea), ex, true
	}
	return 0, 0, false
}

// operand16 is operand8's 16-bit counterpart, used by the D/X/Y/U/S forms.
func (c *CPU) operand16(mode AddrMode) (v uint16, extra int, ok bool) {
	switch mode {
	case LImmediate:
		return c.fetch16(), 0, true
	case Direct, Extended, Indexed:
		ea, ex, resolved := c.effectiveAddress(mode)
		if !resolved {
			return 0, 0, false
		}
		return c.read16(ea), ex, true
	}
	return 0, 0, false
}

// dispatchDataOp handles every load/store/arithmetic/logic mnemonic whose
// shape is a two-or-three-letter base (LD, ST, ADD, SUB, ADC, SBC, AND, OR,
// EOR, BIT, CMP) followed by a register-selecting suffix (A, B, D, X, Y, U,
// S). It covers the bulk of the instruction set because the 6809 repeats
// the same few operations across every accumulator and index register.
func (c *CPU) dispatchDataOp(m string, def opcodeDef) (extra int, handled bool) {
	if len(m) < 2 {
		return 0, false
	}
	suffix := m[len(m)-1]
	base := m[:len(m)-1]

	is8 := suffix == 'A' || suffix == 'B'
	is16 := suffix == 'D' || suffix == 'X' || suffix == 'Y' || suffix == 'U' || suffix == 'S'
	if !is8 && !is16 {
		return 0, false
	}

	switch base {
	case "LD":
		if is8 {
			v, ex, ok := c.operand8(def.mode)
			if !ok {
				c.unresolvable(0, c.lastPC)
				return 0, false
			}
			*c.reg8(suffix) = v
			c.setNZ8(v)
			c.CC.V = false
			return ex, true
		}
		v, ex, ok := c.operand16(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.setReg16(suffix, v)
		c.setNZ16(v)
		c.CC.V = false
		return ex, true

	case "ST":
		ea, ex, ok := c.effectiveAddress(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		if is8 {
			v := *c.reg8(suffix)
			c.write8(ea, v)
			c.setNZ8(v)
		} else {
			v := c.getReg16(suffix)
			c.write16(ea, v)
			c.setNZ16(v)
		}
		c.CC.V = false
		return ex, true

	case "CMP":
		if is8 {
			v, ex, ok := c.operand8(def.mode)
			if !ok {
				c.unresolvable(0, c.lastPC)
				return 0, false
			}
			c.sub8(*c.reg8(suffix), v, false)
			return ex, true
		}
		v, ex, ok := c.operand16(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.sub16(c.getReg16(suffix), v)
		return ex, true

	case "ADD":
		if is8 {
			v, ex, ok := c.operand8(def.mode)
			if !ok {
				c.unresolvable(0, c.lastPC)
				return 0, false
			}
			r := c.reg8(suffix)
			*r = c.add8(*r, v, false)
			return ex, true
		}
		v, ex, ok := c.operand16(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.SetD(c.add16(c.D(), v))
		return ex, true

	case "ADC":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		r := c.reg8(suffix)
		*r = c.add8(*r, v, c.CC.C)
		return ex, true

	case "SUB":
		if is8 {
			v, ex, ok := c.operand8(def.mode)
			if !ok {
				c.unresolvable(0, c.lastPC)
				return 0, false
			}
			r := c.reg8(suffix)
			*r = c.sub8(*r, v, false)
			return ex, true
		}
		v, ex, ok := c.operand16(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.SetD(c.sub16(c.D(), v))
		return ex, true

	case "SBC":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		r := c.reg8(suffix)
		*r = c.sub8(*r, v, c.CC.C)
		return ex, true

	case "AND":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		r := c.reg8(suffix)
		*r = c.and8(*r, v)
		return ex, true

	case "OR":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		r := c.reg8(suffix)
		*r = c.or8(*r, v)
		return ex, true

	case "EOR":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		r := c.reg8(suffix)
		*r = c.eor8(*r, v)
		return ex, true

	case "BIT":
		v, ex, ok := c.operand8(def.mode)
		if !ok {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.and8(*c.reg8(suffix), v)
		return ex, true
	}

	return 0, false
}
