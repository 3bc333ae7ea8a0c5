// Package pia implements the two MC6821 Peripheral Interface Adapters:
// PIA0 (keyboard matrix, field-sync IRQ, joystick comparator) and PIA1
// (audio DAC, cassette bit-stream, VDG mode-bits, cassette motor).
//
// Grounded on original_source/pia.c's io_handler_pia0_write/read functions
// and the rest of the device's state machine; wired through
// hardware/memory.Memory the way hardware/sam.SAM wires its own registers.
package pia

import (
	"github.com/8bitgopher/coco6809/hardware/memory"
)

// register offsets within a PIA's 4-byte IO block.
const (
	regPA  = 0
	regCRA = 1
	regPB  = 2
	regCRB = 3
)

// IRQLine is the single CPU input PIA0's field-sync interrupt asserts.
// hardware/cpu.CPU's SetIRQ satisfies it.
type IRQLine interface {
	SetIRQ(v bool)
}

// KeyboardHost is the subset of host.Host PIA0 polls while the ROM is
// scanning the keyboard matrix.
type KeyboardHost interface {
	KeyboardRead() uint8
	JoystickComparator() bool
	JoystickButton() bool
}

// vsyncInterval is PIA_VSYNC_INTERVAL: the minimum spacing, in host
// microseconds, between two field-sync IRQ assertions.
const vsyncInterval = 20000

// PIA0 implements the keyboard row-scan matrix, the field-sync interrupt,
// and the joystick comparator/button inputs, matching original_source/
// pia.c's PIA0_* register handlers.
type PIA0 struct {
	pa, pb   uint8
	cra, crb uint8

	keyboardRows [7]uint8 // cached column bitmask per matrix row, bit cleared = key down
	functionKey  int      // one-shot 1..10, or 0

	irqAsserted bool // IRQA1 status, mirrored into CRB bit 7
	irqEnabled  bool // CRB bit 0 latch

	lastVsyncUs uint32
	haveVsync   bool

	host IRQLine
	kbd  KeyboardHost
	mux  *AudioMuxState
}

// NewPIA0 constructs a PIA0 wired to mem's IO block at base, irq's SetIRQ for
// field-sync, kbd for keyboard/joystick polling, and mux for the
// audio-select bit 0 it owns. keyboardRows starts at all-ones (no key
// held), matching scan_code_table's reset state.
func NewPIA0(mem *memory.Memory, base uint32, irq IRQLine, kbd KeyboardHost, mux *AudioMuxState) *PIA0 {
	p := &PIA0{host: irq, kbd: kbd, mux: mux}
	for i := range p.keyboardRows {
		p.keyboardRows[i] = 0xff
	}
	mem.DefineIO(base, base+3, p.io)
	return p
}

func (p *PIA0) io(addr uint16, value uint8, kind memory.AccessKind) uint8 {
	offset := addr % 4
	if kind == memory.Write {
		switch offset {
		case regPA:
			p.pa = value
			return value
		case regCRA:
			p.writeCRA(value)
			return value
		case regPB:
			p.writePB(value)
			return p.pa
		case regCRB:
			p.writeCRB(value)
			return value
		}
	}
	switch offset {
	case regPA:
		return p.readPA()
	case regCRA:
		return p.cra
	case regPB:
		return p.readPB()
	case regCRB:
		return p.crb
	}
	return value
}

// readPA combines the row-scan comparison computed at the last PB write
// with the live joystick comparator (bit 7) and fire button (bit 0, only
// ever forced low, never forced high) — original_source/pia.c's PIA0-PA
// read path.
func (p *PIA0) readPA() uint8 {
	v := p.pa
	if p.kbd.JoystickComparator() {
		v |= 0x80
	} else {
		v &^= 0x80
	}
	if !p.kbd.JoystickButton() {
		v |= 0x01
	}
	return v
}

// writePB polls the host for a pending key event, folds it into the
// row-bitmap cache (or the function-key latch), then recomputes the PA
// byte the next PA read will report.
func (p *PIA0) writePB(data uint8) {
	p.pb = data

	code := p.kbd.KeyboardRead()
	if code != 0 {
		scan := code & 0x7f
		breaking := code&0x80 != 0

		switch {
		case scan >= 59 && scan <= 68:
			if !breaking {
				p.functionKey = int(scan) - 58
			}
		case int(scan) < len(scanTable):
			e := scanTable[scan]
			if e.row != noRow {
				if breaking {
					p.keyboardRows[e.row] |= ^e.columns
				} else {
					p.keyboardRows[e.row] &= e.columns
				}
			}
		}
	}

	var rowBits uint8
	for row, cached := range p.keyboardRows {
		test := ^data & cached
		if test == ^data {
			rowBits |= 1 << row
		}
	}
	p.pa = rowBits
}

// readPB acknowledges the field-sync IRQ: clears the IRQA1 status bit and
// drops the CPU IRQ line.
func (p *PIA0) readPB() uint8 {
	p.crb &^= 0x80
	p.irqAsserted = false
	if p.host != nil {
		p.host.SetIRQ(false)
	}
	return p.pb
}

// writeCRA latches CRA and, if bits 3..5 match the CA2-set pattern
// (0b111xx, mask 0x38), sets audio-mux bit 0.
func (p *PIA0) writeCRA(data uint8) {
	p.cra = data
	if data&0x38 == 0x38 && p.mux != nil {
		p.mux.setBit(0)
	}
}

// writeCRB latches CRB and its IRQ-enable bit (bit 0).
func (p *PIA0) writeCRB(data uint8) {
	p.crb = (data &^ 0x80) | (p.crb & 0x80)
	p.irqEnabled = data&0x01 != 0
}

// VsyncIRQ is the host-driven ~50Hz tick. It self-throttles against
// vsyncInterval the way original_source/pia.c's pia_vsync_irq() guards
// against being called faster than the real field-sync rate, and only
// asserts IRQ if the ROM has set the CRB enable bit.
func (p *PIA0) VsyncIRQ(nowUs uint32) {
	if p.haveVsync && nowUs-p.lastVsyncUs < vsyncInterval {
		return
	}
	p.haveVsync = true
	p.lastVsyncUs = nowUs

	p.crb |= 0x80
	p.irqAsserted = true
	if p.irqEnabled && p.host != nil {
		p.host.SetIRQ(true)
	}
}

// FunctionKey returns the latched function key (1..10) and clears it, or
// 0 if none is pending.
func (p *PIA0) FunctionKey() int {
	k := p.functionKey
	p.functionKey = 0
	return k
}
