package cpu

// execute fetches and runs one instruction starting at the current PC.
// Addressing-mode resolution happens inline per mnemonic because several
// mnemonics (the inherent-register forms like NEGA/NEGB) need the target
// register rather than a memory effective address, while their sibling
// opcode rows (NEG direct/indexed/extended) need the opposite.
func (c *CPU) execute() {
	startPC := c.PC
	c.lastPC = startPC

	opcodeByte := c.fetch8()
	var def opcodeDef
	var ok bool
	reportOpcode := opcodeByte

	switch opcodeByte {
	case 0x10:
		sub := c.fetch8()
		def, ok = page10[sub]
		reportOpcode = sub
	case 0x11:
		sub := c.fetch8()
		def, ok = page11[sub]
		reportOpcode = sub
	default:
		def = page0[opcodeByte]
		ok = def.mnemonic != ""
	}

	if !ok {
		c.illegal(reportOpcode, startPC)
		return
	}

	cycles := def.cycles
	extra, handled := c.dispatch(def)
	if !handled {
		// dispatch already set EXCEPTION via c.unresolvable or c.illegal
		return
	}
	cycles += extra

	c.lastByteCount = int(c.PC - startPC)
	c.lastCycleCount = cycles
}

// unaryMemOps are opcodes that exist in Direct/Extended/Indexed forms
// operating read-modify-write on a memory byte, and whose A/B-register
// forms (mnemonic + "A"/"B") operate inherently on that register instead.
var unaryMemOps = map[string]func(*CPU, uint8) uint8{
	"NEG": (*CPU).neg8,
	"COM": (*CPU).com8,
	"LSR": (*CPU).lsr8,
	"ROR": (*CPU).ror8,
	"ASR": (*CPU).asr8,
	"ASL": (*CPU).asl8,
	"ROL": (*CPU).rol8,
	"DEC": (*CPU).dec8,
	"INC": (*CPU).inc8,
}

// dispatch executes def and returns any extra cycles beyond the base
// opcode-table cycle count, plus whether the instruction resolved
// successfully (false means it transitioned to EXCEPTION).
func (c *CPU) dispatch(def opcodeDef) (extra int, ok bool) {
	m := def.mnemonic

	// Inherent-register unary RMW ops: NEGA, NEGB, COMA, COMB, ...
	if def.mode == Inherent && len(m) > 1 {
		base := m[:len(m)-1]
		reg := m[len(m)-1]
		if fn, isUnary := unaryMemOps[base]; isUnary && (reg == 'A' || reg == 'B') {
			if reg == 'A' {
				c.A = fn(c, c.A)
			} else {
				c.B = fn(c, c.B)
			}
			return 0, true
		}
	}

	// Memory-operand unary RMW ops: NEG, COM, LSR, ... in Direct/Extended/Indexed.
	if fn, isUnary := unaryMemOps[m]; isUnary {
		ea, ex, resolved := c.effectiveAddress(def.mode)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		v := c.read8(ea)
		c.write8(ea, fn(c, v))
		return ex, true
	}

	switch m {
	case "TSTA":
		c.tst8(c.A)
		return 0, true
	case "TSTB":
		c.tst8(c.B)
		return 0, true
	case "TST":
		ea, ex, resolved := c.effectiveAddress(def.mode)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.tst8(c.read8(ea))
		return ex, true

	case "CLRA":
		c.A = c.clr8()
		return 0, true
	case "CLRB":
		c.B = c.clr8()
		return 0, true
	case "CLR":
		ea, ex, resolved := c.effectiveAddress(def.mode)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.write8(ea, c.clr8())
		return ex, true

	case "NOP":
		return 0, true
	case "SYNC":
		c.runState = SYNC
		return 0, true

	case "DAA":
		c.daa()
		return 0, true
	case "SEX":
		c.SetD(uint16(int16(int8(c.B))))
		c.setNZ16(c.D())
		return 0, true

	case "JMP":
		ea, ex, resolved := c.effectiveAddress(def.mode)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.PC = ea
		return ex, true

	case "JSR":
		ea, ex, resolved := c.effectiveAddress(def.mode)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.pushS16(c.PC)
		c.PC = ea
		return ex, true

	case "RTS":
		c.PC = c.pullS16()
		return 0, true

	case "RTI":
		ccByte := c.pullS8()
		c.CC.Unpack(ccByte)
		if c.CC.E {
			c.A = c.pullS8()
			c.B = c.pullS8()
			c.DP = c.pullS8()
			c.X = c.pullS16()
			c.Y = c.pullS16()
			c.U = c.pullS16()
			c.PC = c.pullS16()
		} else {
			c.PC = c.pullS16()
		}
		return 0, true

	case "ABX":
		c.X += uint16(c.B)
		return 0, true

	case "MUL":
		d := uint16(c.A) * uint16(c.B)
		c.SetD(d)
		c.CC.Z = d == 0
		c.CC.C = d&0x80 != 0
		return 0, true

	case "SWI":
		c.CC.E = true
		c.pushFullFrame()
		c.CC.F = true
		c.CC.I = true
		c.PC = c.read16(0xFFFA)
		return 0, true
	case "SWI2":
		c.CC.E = true
		c.pushFullFrame()
		c.PC = c.read16(0xFFF4)
		return 0, true
	case "SWI3":
		c.CC.E = true
		c.pushFullFrame()
		c.PC = c.read16(0xFFF2)
		return 0, true

	case "CWAI":
		mask := c.fetch8()
		c.CC.Unpack(c.CC.Pack() & mask)
		c.CC.E = true
		c.pushFullFrame()
		c.cwaiPending = true
		c.runState = SYNC
		return 0, true

	case "ORCC":
		mask := c.fetch8()
		c.CC.Unpack(c.CC.Pack() | mask)
		return 0, true
	case "ANDCC":
		mask := c.fetch8()
		c.CC.Unpack(c.CC.Pack() & mask)
		return 0, true

	case "EXG":
		post := c.fetch8()
		c.exg(post)
		return 0, true
	case "TFR":
		post := c.fetch8()
		c.tfr(post)
		return 0, true

	case "LEAX":
		ea, ex, resolved := c.effectiveAddress(Indexed)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.X = ea
		c.CC.Z = c.X == 0
		return ex, true
	case "LEAY":
		ea, ex, resolved := c.effectiveAddress(Indexed)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.Y = ea
		c.CC.Z = c.Y == 0
		return ex, true
	case "LEAS":
		ea, ex, resolved := c.effectiveAddress(Indexed)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.S = ea
		c.armNMI()
		return ex, true
	case "LEAU":
		ea, ex, resolved := c.effectiveAddress(Indexed)
		if !resolved {
			c.unresolvable(0, c.lastPC)
			return 0, false
		}
		c.U = ea
		return ex, true

	case "PSHS":
		bits := c.fetch8()
		return c.pushRegisters(bits, true), true
	case "PULS":
		bits := c.fetch8()
		return c.pullRegisters(bits, true), true
	case "PSHU":
		bits := c.fetch8()
		return c.pushRegisters(bits, false), true
	case "PULU":
		bits := c.fetch8()
		return c.pullRegisters(bits, false), true

	case "BSR", "LBSR":
		target := c.branchTarget(def.mode)
		c.pushS16(c.PC)
		c.PC = target
		return 0, true
	}

	// Conditional and unconditional branches
	if cond, isBranch := branchConditions[m]; isBranch {
		target := c.branchTarget(def.mode)
		if cond(c.CC) {
			c.PC = target
		}
		return 0, true
	}

	// Load/store/arithmetic/logic ops, dispatched generically by operand
	// size and addressing mode.
	if extra, handled := c.dispatchDataOp(m, def); handled {
		return extra, true
	}

	c.illegal(0, c.lastPC)
	return 0, false
}

func (c *CPU) branchTarget(mode AddrMode) uint16 {
	if mode == LRelative {
		off := int16(c.fetch16())
		return uint16(int32(c.PC) + int32(off))
	}
	off := c.fetchSigned8()
	return uint16(int32(c.PC) + int32(off))
}

var branchConditions = map[string]func(ConditionCode) bool{
	"BRA": func(ConditionCode) bool { return true },
	"BRN": func(ConditionCode) bool { return false },
	"BHI": func(cc ConditionCode) bool { return !cc.C && !cc.Z },
	"BLS": func(cc ConditionCode) bool { return cc.C || cc.Z },
	"BCC": func(cc ConditionCode) bool { return !cc.C },
	"BCS": func(cc ConditionCode) bool { return cc.C },
	"BNE": func(cc ConditionCode) bool { return !cc.Z },
	"BEQ": func(cc ConditionCode) bool { return cc.Z },
	"BVC": func(cc ConditionCode) bool { return !cc.V },
	"BVS": func(cc ConditionCode) bool { return cc.V },
	"BPL": func(cc ConditionCode) bool { return !cc.N },
	"BMI": func(cc ConditionCode) bool { return cc.N },
	"BGE": func(cc ConditionCode) bool { return cc.N == cc.V },
	"BLT": func(cc ConditionCode) bool { return cc.N != cc.V },
	"BGT": func(cc ConditionCode) bool { return (cc.N == cc.V) && !cc.Z },
	"BLE": func(cc ConditionCode) bool { return (cc.N != cc.V) || cc.Z },

	"LBRA": func(ConditionCode) bool { return true },
	"LBRN": func(ConditionCode) bool { return false },
	"LBHI": func(cc ConditionCode) bool { return !cc.C && !cc.Z },
	"LBLS": func(cc ConditionCode) bool { return cc.C || cc.Z },
	"LBCC": func(cc ConditionCode) bool { return !cc.C },
	"LBCS": func(cc ConditionCode) bool { return cc.C },
	"LBNE": func(cc ConditionCode) bool { return !cc.Z },
	"LBEQ": func(cc ConditionCode) bool { return cc.Z },
	"LBVC": func(cc ConditionCode) bool { return !cc.V },
	"LBVS": func(cc ConditionCode) bool { return cc.V },
	"LBPL": func(cc ConditionCode) bool { return !cc.N },
	"LBMI": func(cc ConditionCode) bool { return cc.N },
	"LBGE": func(cc ConditionCode) bool { return cc.N == cc.V },
	"LBLT": func(cc ConditionCode) bool { return cc.N != cc.V },
	"LBGT": func(cc ConditionCode) bool { return (cc.N == cc.V) && !cc.Z },
	"LBLE": func(cc ConditionCode) bool { return (cc.N != cc.V) || cc.Z },
}
