package pia

import (
	"io"

	"github.com/8bitgopher/coco6809/cassette"
	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/hardware/memory"
	"github.com/8bitgopher/coco6809/logger"
)

// bitThresholdHi/Lo are the sub-bit sample counts a cassette '1' and '0'
// bit respectively hold their half-cycle for, matching original_source/
// pia.c's BIT_THRESHOLD_HI/LO.
const (
	bitThresholdHi = 4
	bitThresholdLo = 20
)

// DAC receives 6-bit audio samples from PIA1-PA writes.
type DAC interface {
	WriteDAC(v6 uint8)
}

// VDGMode receives the 5-bit pia_video_mode field PIA1-PB writes derive.
type VDGMode interface {
	SetPIAMode(mode uint8)
}

// PIA1 implements the audio DAC, the cassette bit-stream generator, the
// VDG mode-bits output, and the cassette motor control, matching
// original_source/pia.c's PIA1_* register handlers.
type PIA1 struct {
	pa, pb   uint8
	cra, crb uint8

	dac  DAC
	vdg  VDGMode
	mux  *AudioMuxState
	tape cassette.Image

	curByte    byte
	shiftCount int // bits consumed from curByte, 0..9
	subBit     int // sub-bit sample counter within the current half-cycle
	haveByte   bool

	mountRequest func()
}

// SetMountRequest installs the collaborator PIA1-CRA's motor-on
// transition invokes to service original_source/pia.c's single
// loader_mount_cas(file_ref) call. machine.Machine wires this to its
// loader.Loader.
func (p *PIA1) SetMountRequest(f func()) {
	p.mountRequest = f
}

// NewPIA1 constructs a PIA1 wired to mem's IO block at base, dac for
// PA-write samples, vdg for PB-write mode bits, and mux for the
// audio-select bit 1 it owns. No cassette is mounted initially; reads of
// PA before a LoaderMountCassette call synthesize silence (0x55).
func NewPIA1(mem *memory.Memory, base uint32, dac DAC, vdg VDGMode, mux *AudioMuxState) *PIA1 {
	p := &PIA1{dac: dac, vdg: vdg, mux: mux, shiftCount: 9}
	mem.DefineIO(base, base+3, p.io)
	return p
}

// LoaderMountCassette installs img as the cassette image PA reads pull
// from, the collaborator call PIA1-CRA's motor-on transition invokes.
func (p *PIA1) LoaderMountCassette(img cassette.Image) {
	p.tape = img
	p.haveByte = false
	p.shiftCount = 9
}

func (p *PIA1) io(addr uint16, value uint8, kind memory.AccessKind) uint8 {
	offset := addr % 4
	if kind == memory.Write {
		switch offset {
		case regPA:
			p.writePA(value)
			return value
		case regCRA:
			p.writeCRA(value)
			return value
		case regPB:
			p.writePB(value)
			return value
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
		return p.pb
	case regCRB:
		return p.crb
	}
	return value
}

// writePA drives the DAC from the upper six bits.
func (p *PIA1) writePA(data uint8) {
	p.pa = data
	if p.dac != nil {
		p.dac.WriteDAC(data >> 2)
	}
}

// readPA synthesizes the next cassette sample bit into PA bit 0, leaving
// the rest of PA unchanged from the last write.
func (p *PIA1) readPA() uint8 {
	bit := p.nextTapeBit()
	return (p.pa &^ 0x01) | bit
}

// nextTapeBit advances the bit-stream generator by one sample and returns
// the bit it produces, matching original_source/pia.c's square-wave-per-
// bit cassette model: a '1' data bit holds its half-cycle level for
// bitThresholdHi samples, a '0' bit for bitThresholdLo, and a byte is
// fully shifted out after 9 sample groups — the extra group accommodates
// the ROM's own sampling loop structure.
func (p *PIA1) nextTapeBit() uint8 {
	if !p.haveByte || p.shiftCount >= 9 {
		p.curByte = p.fetchByte()
		p.shiftCount = 0
		p.subBit = 0
		p.haveByte = true
	}

	dataBit := (p.curByte >> (7 - uint(min(p.shiftCount, 7)))) & 0x01
	threshold := bitThresholdLo
	if dataBit != 0 {
		threshold = bitThresholdHi
	}

	out := uint8(0)
	if (p.subBit/threshold)%2 == 0 {
		out = dataBit
	} else {
		out = dataBit ^ 1
	}

	p.subBit++
	if p.subBit >= threshold*2 {
		p.subBit = 0
		p.shiftCount++
	}

	return out
}

// fetchByte pulls the next octet from the mounted cassette image,
// substituting 0x55 on end-of-file without closing the file, matching
// original_source/pia.c's fat32_fread fallback.
func (p *PIA1) fetchByte() byte {
	if p.tape == nil {
		return 0x55
	}
	b, err := p.tape.ReadByte()
	if err == io.EOF {
		logger.Logf(logger.Allow, "pia1", "%v", errors.New(errors.CassetteEOF))
		return 0x55
	}
	if err != nil {
		logger.Logf(logger.Allow, "pia1", "%v", errors.New(errors.LoaderFileError, err))
		return 0x55
	}
	return b
}

// writePB pushes bits 3..7 (shifted right 3) to the VDG as its 5-bit
// pia_video_mode.
func (p *PIA1) writePB(data uint8) {
	p.pb = data
	if p.vdg != nil {
		p.vdg.SetPIAMode(data >> 3)
	}
}

// writeCRA latches CRA and, on a transition into the CA2-asserted
// pattern (bits 4..5 becoming 0b11), requests the mount collaborator if
// the motor bit (bit 3) is set.
func (p *PIA1) writeCRA(data uint8) {
	asserting := data&0x30 == 0x30 && p.cra&0x30 != 0x30
	p.cra = data
	if asserting && data&0x08 != 0 && p.mountRequest != nil {
		p.mountRequest()
	}
}

// writeCRB latches CRB and, same pattern logic as CRA, updates
// audio-mux bit 1.
func (p *PIA1) writeCRB(data uint8) {
	asserting := data&0x30 == 0x30 && p.crb&0x30 != 0x30
	p.crb = data
	if asserting && p.mux != nil {
		p.mux.setBit(1)
	}
}
