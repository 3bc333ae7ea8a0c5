package sam_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/hardware/memory"
	"github.com/8bitgopher/coco6809/hardware/sam"
)

type fakeVDG struct {
	mode   uint8
	offset uint8
}

func (f *fakeVDG) SetMode(mode uint8)       { f.mode = mode }
func (f *fakeVDG) SetDisplayOffset(o uint8) { f.offset = o }

func TestRegisterWriteSetsAndClearsBits(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	mem.DefineRAM(0x0000, 0xFFFF)
	vdg := &fakeVDG{}
	s := sam.New(mem, vdg)

	is.Equal(s.Mode(), uint8(0))
	is.Equal(s.DisplayOffset(), uint8(2))

	mem.Write(0xFFC1, 0) // set bit 0 of vdg_mode
	is.Equal(s.Mode(), uint8(0x01))
	is.Equal(vdg.mode, uint8(0x01))

	mem.Write(0xFFC5, 0) // set bit 2 of vdg_mode
	is.Equal(s.Mode(), uint8(0x05))

	mem.Write(0xFFC0, 0) // clear bit 0
	is.Equal(s.Mode(), uint8(0x04))

	mem.Write(0xFFC7, 0) // set bit 0 of display offset
	is.Equal(s.DisplayOffset(), uint8(0x03))
}

func TestVectorRedirect(t *testing.T) {
	is := is.New(t)
	mem := memory.New()
	mem.DefineRAM(0x0000, 0xFFFF)
	sam.New(mem, nil)

	mem.Poke(0xBFFC, 0x42)
	is.Equal(mem.Read(0xFFFC), uint8(0x42))
}
