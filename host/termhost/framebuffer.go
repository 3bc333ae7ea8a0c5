package termhost

import "github.com/8bitgopher/coco6809/host"

// frameBuffer stores one palette index per VDG pixel, later downsampled
// by Present into half-block terminal cells.
type frameBuffer struct {
	w, h int
	px   []uint8
}

func newFrameBuffer(w, h int) *frameBuffer {
	return &frameBuffer{w: w, h: h, px: make([]uint8, w*h)}
}

func (f *frameBuffer) Width() int  { return f.w }
func (f *frameBuffer) Height() int { return f.h }

func (f *frameBuffer) SetPixel(x, y int, colorIndex uint8) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.px[y*f.w+x] = colorIndex
}

func (f *frameBuffer) at(x, y int) uint8 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.px[y*f.w+x]
}

// ansi256 maps one of host.Palette's 16 indexed colors to the nearest
// ANSI 256-color palette slot, via the 6x6x6 color cube (indices 16-231).
func ansi256(colorIndex uint8) int {
	bgr := host.Palette[colorIndex&0x0f]
	cube := func(c uint8) int { return int(c) * 5 / 255 }
	r, g, b := cube(bgr[2]), cube(bgr[1]), cube(bgr[0])
	return 16 + 36*r + 6*g + b
}
