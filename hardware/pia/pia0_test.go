package pia_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/hardware/memory"
	"github.com/8bitgopher/coco6809/hardware/pia"
)

type fakeIRQ struct{ asserted bool }

func (f *fakeIRQ) SetIRQ(v bool) { f.asserted = v }

type fakeKeyboard struct {
	events     []uint8
	comparator bool
	button     bool
}

func (f *fakeKeyboard) KeyboardRead() uint8 {
	if len(f.events) == 0 {
		return 0
	}
	e := f.events[0]
	f.events = f.events[1:]
	return e
}
func (f *fakeKeyboard) JoystickComparator() bool { return f.comparator }
func (f *fakeKeyboard) JoystickButton() bool     { return f.button }

func TestPIA0KeyPressSetsRowBit(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	irq := &fakeIRQ{}
	// scan code 2 ("1" key) makes row 0, column mask 0b11111101.
	kbd := &fakeKeyboard{events: []uint8{2}}

	pia.NewPIA0(mem, 0xFF00, irq, kbd, nil)

	const columnMask = 0b11111101
	// Addressing exactly the pressed key's column pulls row 0's bit low;
	// every other row's cache is untouched and still reads idle (high).
	mem.Write(0xFF00+2, columnMask)

	pa := mem.Read(0xFF00)
	is.True(pa&(1<<0) == 0) // row 0 -> PA bit 0, pressed
	is.True(pa&(1<<1) != 0) // row 1 -> PA bit 1, idle
}

func TestPIA0KeyPressClearsMatchingRowBitNotNeighbour(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	irq := &fakeIRQ{}
	// scan code 16 ("Q" key) makes row 4.
	kbd := &fakeKeyboard{events: []uint8{16}}

	pia.NewPIA0(mem, 0xFF00, irq, kbd, nil)

	mem.Write(0xFF00+2, 0xfd) // PB=0xFD addresses Q's column

	pa := mem.Read(0xFF00)
	is.True(pa&(1<<4) == 0) // row 4 -> PA bit 4, pressed
	is.True(pa&(1<<5) != 0) // row 5 -> PA bit 5, untouched
}

func TestPIA0FunctionKeyLatchedNotInjected(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	irq := &fakeIRQ{}
	kbd := &fakeKeyboard{events: []uint8{60}} // F2

	p := pia.NewPIA0(mem, 0xFF00, irq, kbd, nil)
	mem.Write(0xFF00+2, 0xff)

	is.Equal(p.FunctionKey(), 2)
	is.Equal(p.FunctionKey(), 0) // one-shot
}

func TestPIA0VSyncThrottleAndAck(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	irq := &fakeIRQ{}
	kbd := &fakeKeyboard{}

	p := pia.NewPIA0(mem, 0xFF00, irq, kbd, nil)
	mem.Write(0xFF00+3, 0x01) // CRB: enable IRQ

	p.VsyncIRQ(0)
	is.True(irq.asserted)

	p.VsyncIRQ(1000) // well within the 20ms window
	is.True(irq.asserted)

	mem.Read(0xFF00 + 2) // PB read acknowledges
	is.True(!irq.asserted)
}

func TestPIA0JoystickBits(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	irq := &fakeIRQ{}
	kbd := &fakeKeyboard{comparator: true, button: false}

	pia.NewPIA0(mem, 0xFF00, irq, kbd, nil)
	mem.Write(0xFF00+2, 0xff)

	pa := mem.Read(0xFF00)
	is.True(pa&0x80 != 0) // comparator high
	is.True(pa&0x01 != 0) // button not pressed -> bit forced high
}
