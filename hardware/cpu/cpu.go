// Package cpu implements the MC6809E instruction interpreter: opcode
// decode, addressing-mode resolution, condition-code algebra, stack
// frames, and the reset/interrupt/HALT/SYNC/CWAI run-state machine.
//
// The coding shape — a struct holding the register file, constructor,
// byte/word read-write helpers that thread through a Bus, and a big
// mnemonic-dispatch switch inside Step — is grounded on
// _examples/JetSetIlly-Gopher2600/hardware/cpu/cpu.go. The instruction
// semantics themselves are grounded on original_source/cpu.c and the
// Motorola MC6809E data sheet transcription in
// original_source/include/mc6809e.h.
package cpu

import (
	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/logger"
)

// Bus is the narrow memory interface the CPU requires. hardware/memory.Memory
// satisfies it.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// CPU is the MC6809E register file plus its run-state machine. The zero
// value is not usable; construct with NewCPU.
type CPU struct {
	Registers

	bus      Bus
	runState RunState

	haltLatch  bool
	resetLatch bool
	irqLatch   bool
	firqLatch  bool
	nmiLatch   bool // edge latch, set by TriggerNMI
	nmiArmed   bool

	cwaiPending bool // set by CWAI; cleared once the interrupt it's waiting for is serviced

	lastPC         uint16
	lastByteCount  int
	lastCycleCount int
}

// NewCPU constructs a CPU wired to bus, with all registers zeroed and
// run_state = HALTED, matching cold construction before Init is called.
func NewCPU(bus Bus) *CPU {
	return &CPU{bus: bus, runState: HALTED}
}

// Init zeroes all registers, sets run_state = HALTED, and sets PC to
// startAddr.
func (c *CPU) Init(startAddr uint16) {
	c.Registers = Registers{PC: startAddr}
	c.runState = HALTED
	c.haltLatch = false
	c.resetLatch = false
	c.irqLatch = false
	c.firqLatch = false
	c.nmiLatch = false
	c.nmiArmed = false
	c.cwaiPending = false
}

func (c *CPU) SetHalt(v bool)  { c.haltLatch = v }
func (c *CPU) SetReset(v bool) { c.resetLatch = v }
func (c *CPU) SetIRQ(v bool)   { c.irqLatch = v }
func (c *CPU) SetFIRQ(v bool)  { c.firqLatch = v }
func (c *CPU) TriggerNMI()     { c.nmiLatch = true }

// State returns a snapshot of the register file and run-state metadata.
func (c *CPU) State() State {
	return State{
		Registers:      c.Registers,
		RunState:       c.runState,
		LastPC:         c.lastPC,
		LastByteCount:  c.lastByteCount,
		LastCycleCount: c.lastCycleCount,
	}
}

// MnemonicAt decodes the opcode at addr (following any 0x10/0x11 prefix)
// without executing it, and returns its mnemonic, or "???" if unknown.
func (c *CPU) MnemonicAt(addr uint16) string {
	def, _, ok := c.lookup(addr)
	if !ok {
		return "???"
	}
	return def.mnemonic
}

func (c *CPU) lookup(addr uint16) (opcodeDef, int, bool) {
	b0 := c.bus.Read(addr)
	switch b0 {
	case 0x10:
		def, ok := page10[c.bus.Read(addr+1)]
		return def, 1, ok
	case 0x11:
		def, ok := page11[c.bus.Read(addr+1)]
		return def, 1, ok
	default:
		def := page0[b0]
		return def, 0, def.mnemonic != ""
	}
}

// read8/write8 thread every CPU-initiated memory access through the bus
// exactly once, so IO callbacks see one access per CPU access.
func (c *CPU) read8(addr uint16) uint8    { return c.bus.Read(addr) }
func (c *CPU) write8(addr uint16, v uint8) { c.bus.Write(addr, v) }

func (c *CPU) read16(addr uint16) uint16 {
	hi := c.read8(addr)
	lo := c.read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) write16(addr uint16, v uint16) {
	c.write8(addr, uint8(v>>8))
	c.write8(addr+1, uint8(v))
}

func (c *CPU) fetch8() uint8 {
	v := c.read8(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) fetchSigned8() int8 { return int8(c.fetch8()) }

func (c *CPU) pushS8(v uint8)  { c.S--; c.write8(c.S, v) }
func (c *CPU) pullS8() uint8   { v := c.read8(c.S); c.S++; return v }
func (c *CPU) pushS16(v uint16) {
	c.pushS8(uint8(v))
	c.pushS8(uint8(v >> 8))
}
func (c *CPU) pullS16() uint16 {
	hi := c.pullS8()
	lo := c.pullS8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushU8(v uint8)  { c.U--; c.write8(c.U, v) }
func (c *CPU) pullU8() uint8   { v := c.read8(c.U); c.U++; return v }
func (c *CPU) pushU16(v uint16) {
	c.pushU8(uint8(v))
	c.pushU8(uint8(v >> 8))
}
func (c *CPU) pullU16() uint16 {
	hi := c.pullU8()
	lo := c.pullU8()
	return uint16(hi)<<8 | uint16(lo)
}

// armNMI sets nmi_armed. It is called when S is loaded as a register:
// LDS, LEAS, TFR/EXG into S, and PULU pulling S. Stack pushes and pulls
// through S (PSHS/PULS, JSR/RTS, interrupt frames) do not arm it.
func (c *CPU) armNMI() { c.nmiArmed = true }

// pushFullFrame pushes the twelve-byte machine state used by NMI, IRQ,
// SWI/SWI2/SWI3 and CWAI, in the literal chronological order PC, U, Y, X,
// DP, B, A, CC (so that, read back in ascending address order starting at
// the post-push S, the layout is CC, A, B, DP, X, Y, U, PC — matching
// SPEC_FULL.md §4.2.2 and scenario S5).
func (c *CPU) pushFullFrame() {
	c.pushS16(c.PC)
	c.pushS16(c.U)
	c.pushS16(c.Y)
	c.pushS16(c.X)
	c.pushS8(c.DP)
	c.pushS8(c.B)
	c.pushS8(c.A)
	c.pushS8(c.CC.Pack())
}

func (c *CPU) pullFullFrame() {
	var ccByte uint8
	ccByte = c.pullS8()
	c.A = c.pullS8()
	c.B = c.pullS8()
	c.DP = c.pullS8()
	c.X = c.pullS16()
	c.Y = c.pullS16()
	c.U = c.pullS16()
	c.PC = c.pullS16()
	c.CC.Unpack(ccByte)
}

// Step advances the CPU by one instruction, or by one state-machine tick
// when not executing, and returns the resulting run state. This is the
// only forward-progress primitive; callers drive the emulation by calling
// Step in a loop.
func (c *CPU) Step() RunState {
	// 1. reset
	if c.resetLatch {
		c.DP = 0
		c.CC.F = true
		c.CC.I = true
		c.nmiArmed = false
		c.PC = c.read16(0xFFFE)
		c.runState = RESET
		return c.runState
	}

	// 2. halt
	if c.haltLatch {
		c.runState = HALTED
		return c.runState
	}

	// 3. interrupt sampling, priority NMI > FIRQ > IRQ
	serviced := c.serviceInterrupts()

	// 4. SYNC leaves SYNC as soon as any interrupt line is sampled
	// asserted, even one masked by CC — a masked line still wakes the
	// CPU to resume execution at the next instruction, it just isn't
	// serviced.
	if c.runState == SYNC && !serviced {
		if !c.irqLatch && !c.firqLatch && !c.nmiLatch {
			return c.runState
		}
		c.runState = EXEC
	}

	// 5. fetch and execute
	c.runState = EXEC
	c.execute()
	return c.runState
}

func (c *CPU) serviceInterrupts() bool {
	switch {
	case c.nmiArmed && c.nmiLatch:
		c.CC.E = true
		if !c.cwaiPending {
			c.pushFullFrame()
		}
		c.cwaiPending = false
		c.CC.F = true
		c.CC.I = true
		c.nmiLatch = false
		c.PC = c.read16(0xFFFC)
		c.runState = EXEC
		return true

	case !c.CC.F && c.firqLatch:
		c.CC.E = false
		if !c.cwaiPending {
			c.pushS16(c.PC)
			c.pushS8(c.CC.Pack())
		}
		c.cwaiPending = false
		c.CC.F = true
		c.CC.I = true
		c.PC = c.read16(0xFFF6)
		c.runState = EXEC
		return true

	case !c.CC.I && c.irqLatch:
		c.CC.E = true
		if !c.cwaiPending {
			c.pushFullFrame()
		}
		c.cwaiPending = false
		c.CC.I = true
		c.PC = c.read16(0xFFF8)
		c.runState = EXEC
		return true

	case c.cwaiPending:
		// still SYNCed from CWAI, nothing pending to wake it
		return false

	default:
		return false
	}
}

func (c *CPU) illegal(opcode uint8, at uint16) {
	logger.Logf(logger.Allow, "cpu", "%v", errors.New(errors.IllegalOpcode, opcode, at))
	c.runState = EXCEPTION
}

func (c *CPU) unresolvable(opcode uint8, at uint16) {
	logger.Logf(logger.Allow, "cpu", "%v", errors.New(errors.UnresolvableMode, opcode, at))
	c.runState = EXCEPTION
}
