// Package sam implements the MC6883 Synchronous Address Multiplexer: the
// pair-set register writes at 0xFFC0-0xFFDF that configure VDG display
// mode and screen offset, and the vector-redirect reads at 0xFFF2-0xFFFF
// that let cartridge-less machines boot from the base ROM's own vectors.
//
// Grounded on original_source/sam.c. The struct-plus-IO-handler shape
// follows hardware/memory.Memory's DefineIO contract the way
// _examples/JetSetIlly-Gopher2600/hardware/riot wires chip registers
// through its memory bus.
package sam

import "github.com/8bitgopher/coco6809/hardware/memory"

// VDGController receives the SAM's display configuration. hardware/vdg.VDG
// satisfies it.
type VDGController interface {
	SetMode(mode uint8)
	SetDisplayOffset(offset uint8)
}

// SAM holds the six legacy compatibility fields from the original Dragon
// SAM register set, though only vdgMode and displayOffset have any
// observable effect; the rest exist for fidelity with original_source/sam.c
// and a future Dragon 64 memory-map mode.
type SAM struct {
	vdgMode       uint8
	displayOffset uint8
	page          uint8
	mpuRate       uint8
	memorySize    uint8
	memoryMapType uint8

	vdg VDGController
	mem *memory.Memory
}

// New constructs a SAM wired to mem's IO address space and vdg's mode
// inputs, matching sam_init's register defaults (alphanumeric mode,
// text page at 0x0400).
func New(mem *memory.Memory, vdg VDGController) *SAM {
	s := &SAM{
		vdgMode:       0,
		displayOffset: 2,
		page:          1,
		mpuRate:       0,
		memorySize:    2,
		memoryMapType: 0,
		vdg:           vdg,
		mem:           mem,
	}
	mem.DefineIO(0xFFF2, 0xFFFF, s.vectorRedirect)
	mem.DefineIO(0xFFC0, 0xFFDF, s.registerWrite)
	s.publish()
	return s
}

// vectorRedirect serves CPU reads in 0xFFF2-0xFFFF from 0xBFF2-0xBFFF,
// the address with bit 14 cleared, so a cartridge-less machine still
// finds valid reset/interrupt vectors in the base 32K ROM image.
func (s *SAM) vectorRedirect(addr uint16, value uint8, kind memory.AccessKind) uint8 {
	if kind == memory.Read {
		return s.mem.Read(addr & 0xBFFF)
	}
	return 0
}

// registerWrite implements the pair-set convention used by every SAM
// register: an even offset within 0xFFC0-0xFFDF clears one bit of a
// register, the next odd offset sets the same bit.
func (s *SAM) registerWrite(addr uint16, value uint8, kind memory.AccessKind) uint8 {
	if kind != memory.Write {
		s.publish()
		return 0
	}

	reg := addr & 0x1F
	switch {
	case reg <= 0x05:
		setPairBit(&s.vdgMode, uint8(reg))
	case reg <= 0x13:
		setPairBit(&s.displayOffset, uint8(reg-0x06))
	}

	s.publish()
	return 0
}

// setPairBit decodes a pair-set address offset (0,1 -> bit0; 2,3 -> bit1;
// ...) into a clear (even) or set (odd) of that bit in *field.
func setPairBit(field *uint8, pairOffset uint8) {
	bit := pairOffset / 2
	if pairOffset%2 == 0 {
		*field &^= 1 << bit
	} else {
		*field |= 1 << bit
	}
}

func (s *SAM) publish() {
	if s.vdg == nil {
		return
	}
	s.vdg.SetMode(s.vdgMode)
	s.vdg.SetDisplayOffset(s.displayOffset)
}

// Mode returns the current 3-bit VDG mode field.
func (s *SAM) Mode() uint8 { return s.vdgMode }

// DisplayOffset returns the current 7-bit display offset field.
func (s *SAM) DisplayOffset() uint8 { return s.displayOffset }
