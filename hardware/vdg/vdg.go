// Package vdg implements the MC6847 Video Display Generator: the mode
// composition logic that turns SAM and PIA1 register bits into one of
// sixteen alphanumeric/semigraphic/graphic display modes, and the render
// pass that paints video RAM into a host-provided indexed framebuffer.
//
// Grounded on original_source/vdg.c. The device-plus-Render(bus) shape
// mirrors hardware/memory.Memory's consumers elsewhere in this tree and
// _examples/JetSetIlly-Gopher2600/hardware/tia's frame-composition loop.
package vdg

import (
	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/hardware/memory"
	"github.com/8bitgopher/coco6809/host"
	"github.com/8bitgopher/coco6809/logger"
)

// Mode enumerates the sixteen display modes original_source/vdg.c's
// video_mode_t names, in the same order.
type Mode int

const (
	AlphaInternal Mode = iota
	AlphaExternal
	SemiGraphics4
	SemiGraphics6
	SemiGraphics8
	SemiGraphics12
	SemiGraphics24
	Graphics1C
	Graphics1R
	Graphics2C
	Graphics2R
	Graphics3C
	Graphics3R
	Graphics6C
	Graphics6R
	DMA
)

func (m Mode) String() string {
	names := [...]string{
		"ALPHA_INTERNAL", "ALPHA_EXTERNAL", "SEMI_GRAPHICS_4", "SEMI_GRAPHICS_6",
		"SEMI_GRAPHICS_8", "SEMI_GRAPHICS_12", "SEMI_GRAPHICS_24",
		"GRAPHICS_1C", "GRAPHICS_1R", "GRAPHICS_2C", "GRAPHICS_2R",
		"GRAPHICS_3C", "GRAPHICS_3R", "GRAPHICS_6C", "GRAPHICS_6R", "DMA",
	}
	if int(m) < 0 || int(m) >= len(names) {
		return "UNKNOWN"
	}
	return names[m]
}

type resolution struct {
	w, h, bytes int
}

var resolutions = [...]resolution{
	AlphaInternal:  {256, 192, 512},
	AlphaExternal:  {256, 192, 512},
	SemiGraphics4:  {256, 192, 512},
	SemiGraphics6:  {256, 192, 512},
	SemiGraphics8:  {64, 64, 2048},
	SemiGraphics12: {64, 96, 3072},
	SemiGraphics24: {64, 192, 6144},
	Graphics1C:     {64, 64, 1024},
	Graphics1R:     {128, 64, 1024},
	Graphics2C:     {128, 64, 1536},
	Graphics2R:     {128, 96, 1536},
	Graphics3C:     {128, 96, 3072},
	Graphics3R:     {256, 192, 3072},
	Graphics6C:     {256, 192, 6144},
	Graphics6R:     {256, 192, 6144},
	DMA:            {256, 192, 6144},
}

// semigraphicForeground is the 8-entry palette semigraphic cells index
// their 3-bit foreground color field into, per original_source/vdg.c's
// "colors" table (green, yellow, blue, red, white/buff, cyan, magenta,
// brown).
var semigraphicForeground = [8]uint8{10, 14, 9, 12, 15, 3, 13, 6}

// VDG owns the composed display-mode state. It has no back-references to
// the SAM or PIA1 that feed it: they call SetMode/SetDisplayOffset/
// SetPIAMode on it directly, keeping the dependency one-directional.
type VDG struct {
	samMode       uint8 // 3-bit sam_video_mode
	displayOffset uint8 // 7-bit SAM display offset
	piaMode       uint8 // 5-bit pia_video_mode: G/^A, GM2, GM1, GM0/^INT, CSS

	current  Mode
	previous Mode
	fb       host.FrameBuffer
}

// New constructs a VDG in the power-up default mode: alphanumeric
// internal, text page at video RAM offset 0x0400 (sam display_offset=2).
func New() *VDG {
	return &VDG{displayOffset: 2, current: AlphaInternal, previous: AlphaInternal}
}

// SetMode implements sam.VDGController: the SAM pushes its 3-bit
// vdg_mode field on every register write.
func (v *VDG) SetMode(mode uint8) { v.samMode = mode & 0x07 }

// SetDisplayOffset implements sam.VDGController.
func (v *VDG) SetDisplayOffset(offset uint8) { v.displayOffset = offset & 0x7F }

// SetPIAMode is called by hardware/pia's PIA1 with PB bits 3..7 shifted
// right 3: bit 0 of the result is CSS, bit 4 is G/^A.
func (v *VDG) SetPIAMode(mode uint8) { v.piaMode = mode & 0x1F }

// ComposedMode returns the display mode the current SAM/PIA register bits
// resolve to, without rendering. Exposed for debuggers and tests.
func (v *VDG) ComposedMode() Mode { return v.deriveMode() }

// VideoBase returns the video RAM address the current display offset
// selects: the 7-bit offset shifted left 9, per the SAM's 512-byte
// addressing granularity.
func (v *VDG) VideoBase() uint16 {
	return uint16(v.displayOffset) << 9
}

// deriveMode implements the SAM/PIA mode composition table of
// SPEC_FULL.md §4.4, resolving the Open Question over the source's
// unreachable second SEMI_GRAPHICS_12/24 branch by keying SEMI_GRAPHICS_24
// off sam_video_mode==6.
func (v *VDG) deriveMode() Mode {
	if v.samMode == 7 {
		return DMA
	}

	piaG := v.piaMode&0x10 != 0  // G/^A, graphics-mode select
	piaInt := v.piaMode&0x02 != 0 // GM0/^INT, alpha internal/external when G is clear

	if piaG {
		gm := (v.piaMode >> 1) & 0x07
		return Graphics1C + Mode(gm)
	}

	switch {
	case v.samMode == 0 && !piaInt:
		return AlphaInternal
	case v.samMode == 0 && piaInt:
		return AlphaExternal
	case v.samMode == 2 && !piaInt:
		return SemiGraphics8
	case v.samMode == 4 && !piaInt:
		return SemiGraphics12
	case v.samMode == 6 && !piaInt:
		return SemiGraphics24
	default:
		return AlphaInternal
	}
}

// unsupported reports whether mode is excluded from rendering per
// SPEC_FULL.md §7 (ALPHA_EXTERNAL and DMA remain fatal; SEMI_GRAPHICS_24
// is supported per the Open Question decision).
func unsupported(m Mode) bool {
	return m == AlphaExternal || m == DMA
}

// Render repaints fb from mem using the currently composed mode,
// allocating or resizing fb through h's FramebufferAlloc/FramebufferResize
// whenever the composed mode changed since the previous call. It returns an UnsupportedVideoMode
// error for ALPHA_EXTERNAL or DMA, which the caller (machine.Machine)
// treats as fatal.
func (v *VDG) Render(mem *memory.Memory, h host.Host) error {
	mode := v.deriveMode()
	if unsupported(mode) {
		logf(errors.UnsupportedVideoMode, mode)
		return errors.New(errors.UnsupportedVideoMode, mode)
	}

	if mode != v.current || v.fb == nil {
		res := resolutions[mode]
		var err error
		if v.fb == nil {
			v.fb, err = h.FramebufferAlloc(res.w, res.h)
		} else {
			v.fb, err = h.FramebufferResize(res.w, res.h)
		}
		if err != nil {
			return err
		}
		v.previous = v.current
		v.current = mode
	}

	base := v.VideoBase()

	switch mode {
	case AlphaInternal, SemiGraphics4, SemiGraphics6:
		v.renderText(mem, base)
	case SemiGraphics8, SemiGraphics12, SemiGraphics24:
		v.renderSemigraphicsFull(mem, base, mode)
	default:
		v.renderGraphics(mem, base, mode)
	}
	return nil
}

const (
	textCols = 32
	textRows = 16
)

func (v *VDG) renderText(mem *memory.Memory, base uint16) {
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			cellAddr := base + uint16(row*textCols+col)
			cell := mem.Peek(cellAddr)
			if cell&0x80 != 0 {
				v.paintSemigraphic4Cell(cell, col, row)
			} else {
				v.paintGlyph(cell, col, row)
			}
		}
	}
}

func (v *VDG) paintGlyph(cell uint8, col, row int) {
	inverse := cell&0x40 != 0
	code := cell & 0x3F

	fg := semigraphicForeground[0]
	if v.piaMode&0x01 != 0 {
		fg = semigraphicForeground[4]
	}
	bg := uint8(0)
	if inverse {
		fg, bg = bg, fg
	}

	glyph := fontROM[code]
	for gy := 0; gy < 7; gy++ {
		bits := glyph[gy]
		for gx := 0; gx < 5; gx++ {
			color := bg
			if bits&(1<<(4-gx)) != 0 {
				color = fg
			}
			v.putCellPixel(col, row, gx, gy, color)
		}
	}
}

// paintSemigraphic4Cell paints a SEMI_GRAPHICS_4 cell: a 3-bit foreground
// color (bits 4..6) and a 2x2 block pattern (bits 0..3, one bit per
// quadrant).
func (v *VDG) paintSemigraphic4Cell(cell uint8, col, row int) {
	fg := semigraphicForeground[(cell>>4)&0x07]
	pattern := cell & 0x0F

	quadrants := [4]bool{
		pattern&0x08 != 0, // top-left
		pattern&0x04 != 0, // top-right
		pattern&0x02 != 0, // bottom-left
		pattern&0x01 != 0, // bottom-right
	}

	for gy := 0; gy < 8; gy++ {
		for gx := 0; gx < 8; gx++ {
			q := 0
			if gx >= 4 {
				q++
			}
			if gy >= 4 {
				q += 2
			}
			color := uint8(0)
			if quadrants[q] {
				color = fg
			}
			v.putCellPixel8(col, row, gx, gy, color)
		}
	}
}

// putCellPixel maps a 5x7 glyph-local coordinate within text cell
// (col,row) to absolute framebuffer pixels, each glyph pixel doubled to
// fill the 8x12-ish cell the MC6847 allocates per character.
func (v *VDG) putCellPixel(col, row, gx, gy int, color uint8) {
	baseX := col*8 + gx
	baseY := row*12 + gy
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			v.fb.SetPixel(baseX*1+dx, baseY*1+dy, color)
		}
	}
}

func (v *VDG) putCellPixel8(col, row, gx, gy int, color uint8) {
	x := col*8 + gx
	y := row*12 + gy
	v.fb.SetPixel(x, y, color)
}

// renderSemigraphicsFull handles SEMI_GRAPHICS_8/12/24: dense pixel grids
// where every byte of video RAM is itself a cell's color+pattern in the
// same encoding as SEMI_GRAPHICS_4, just at a finer resolution.
func (v *VDG) renderSemigraphicsFull(mem *memory.Memory, base uint16, mode Mode) {
	res := resolutions[mode]
	cols := res.w / 8
	rows := res.h / 8
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			addr := base + uint16(row*cols+col)
			v.paintSemigraphic4Cell(mem.Peek(addr), col, row)
		}
	}
}

// renderGraphics handles the GRAPHICS_*C/*R raster modes: C variants pack
// four 2-bit pixels per byte, R variants pack eight 1-bit pixels per
// byte. Pixels are written through a single flat counter exactly as
// original_source/vdg.c's fb_offset walks the framebuffer, so GRAPHICS_6C
// and GRAPHICS_3R's horizontal doubling falls out of the same loop as
// every other raster mode instead of needing a special-cased stride.
func (v *VDG) renderGraphics(mem *memory.Memory, base uint16, mode Mode) {
	res := resolutions[mode]
	isC := mode == Graphics1C || mode == Graphics2C || mode == Graphics3C || mode == Graphics6C
	css := 0
	if v.piaMode&0x01 != 0 {
		css = 1
	}

	offset := 0
	put := func(color uint8) {
		x, y := offset%res.w, offset/res.w
		if y < res.h {
			v.fb.SetPixel(x, y, color)
		}
		offset++
	}

	for memOffset := 0; memOffset < res.bytes; memOffset++ {
		data := mem.Peek(base + uint16(memOffset))
		if isC {
			for e := 0; e < 4; e++ {
				bits := (data >> uint(2*(3-e))) & 0x03
				color := semigraphicForeground[int(bits)+4*css]
				put(color)
				if mode == Graphics6C {
					put(color)
				}
			}
		} else {
			for e := 0; e < 8; e++ {
				color := uint8(0)
				if (data>>uint(7-e))&0x01 != 0 {
					color = semigraphicForeground[4*css]
				}
				put(color)
				if mode == Graphics3R {
					put(color)
				}
			}
		}
	}
}

func logf(errno errors.Errno, v interface{}) {
	logger.Logf(logger.Allow, "vdg", "%v", errors.New(errno, v))
}
