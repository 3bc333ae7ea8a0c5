package sdlhost

import "github.com/8bitgopher/coco6809/host"

// frameBuffer is an RGBA8888 pixel buffer vdg.Render paints into through
// SetPixel, uploaded to the SDL texture by Host.Present.
type frameBuffer struct {
	w, h   int
	pixels []byte
}

func newFrameBuffer(w, h int) *frameBuffer {
	return &frameBuffer{w: w, h: h, pixels: make([]byte, w*h*4)}
}

func (f *frameBuffer) Width() int  { return f.w }
func (f *frameBuffer) Height() int { return f.h }

func (f *frameBuffer) SetPixel(x, y int, colorIndex uint8) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	bgr := host.Palette[colorIndex&0x0f]
	i := (y*f.w + x) * 4
	f.pixels[i+0] = bgr[2] // R
	f.pixels[i+1] = bgr[1] // G
	f.pixels[i+2] = bgr[0] // B
	f.pixels[i+3] = 0xff   // A
}

func (f *frameBuffer) stride() int { return f.w * 4 }
