package vdg_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/hardware/vdg"
)

func TestDefaultVideoBaseIsTextPage(t *testing.T) {
	is := is.New(t)
	v := vdg.New()

	v.SetMode(0)
	v.SetPIAMode(0)

	is.Equal(v.VideoBase(), uint16(0x0400))
}

func TestModeCompositionGraphics(t *testing.T) {
	is := is.New(t)
	v := vdg.New()

	v.SetMode(0)
	// ^G set (bit 4), GM=011 (GRAPHICS_2R) -> piaMode bits: 1_011_0 = 0x16
	v.SetPIAMode(0x16)

	is.Equal(v.ComposedMode(), vdg.Graphics2R)
}

func TestModeCompositionSemiGraphics24(t *testing.T) {
	is := is.New(t)
	v := vdg.New()

	// Scenario S6's sibling case: sam_video_mode=6, no PIA graphics bit.
	v.SetMode(6)
	v.SetPIAMode(0)

	is.Equal(v.ComposedMode(), vdg.SemiGraphics24)
}

func TestModeCompositionAlphaInternalAfterPairSetWrites(t *testing.T) {
	is := is.New(t)
	v := vdg.New()

	// Scenario S6: 0xFFC1 then 0xFFC2 sets bit 0, clears bit 1 -> 0b001.
	v.SetMode(0b001)
	v.SetPIAMode(0)

	is.Equal(v.ComposedMode(), vdg.AlphaInternal)
}

func TestVideoBaseShift(t *testing.T) {
	is := is.New(t)
	v := vdg.New()

	v.SetDisplayOffset(0x10)
	is.Equal(v.VideoBase(), uint16(0x10)<<9)
}
