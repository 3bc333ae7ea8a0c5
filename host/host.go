// Package host declares the environment contract the emulator core
// consumes: framebuffer allocation, keyboard/joystick/reset polling, and
// audio output. hardware/ packages depend only on this interface, never
// on a concrete implementation — host/sdlhost and host/termhost are
// reference implementations that live outside the core and are wired up
// by cmd/coco6809.
package host

// ResetPress classifies how long the host's reset control has been held,
// matching the distilled main loop's short-press/long-press distinction.
type ResetPress int

const (
	ResetNone ResetPress = iota
	ResetShort
	ResetLong
)

// FrameBuffer is an 8-bit indexed surface the VDG paints into every
// render. Index values are palette slots 0..15; Palette is fixed for the
// life of the process.
type FrameBuffer interface {
	Width() int
	Height() int
	SetPixel(x, y int, colorIndex uint8)
}

// Host is every operation the core requires from its environment. A
// machine.Machine holds exactly one Host and never reaches outside it.
type Host interface {
	// FramebufferAlloc requests a fresh indexed framebuffer at w x h.
	FramebufferAlloc(w, h int) (FrameBuffer, error)
	// FramebufferResize changes the active framebuffer's resolution,
	// possibly reallocating it.
	FramebufferResize(w, h int) (FrameBuffer, error)

	// SystemTimeUs returns a monotonically increasing microsecond counter.
	SystemTimeUs() uint32

	// KeyboardRead returns the next pending keyboard event (bit 7 =
	// break/make, bits 0..6 = AT-style scan code), or 0 if none pending.
	KeyboardRead() uint8

	JoystickComparator() bool
	JoystickButton() bool
	ResetButton() ResetPress

	// AudioMuxSet updates the two audio-multiplexer select bits.
	AudioMuxSet(sel uint8)
	// WriteDAC writes a 6-bit sample to the host's audio DAC.
	WriteDAC(v6 uint8)

	// PumpEvents drains whatever event queue the host's display backend
	// maintains (window-system events, raw terminal input) into the
	// keyboard/reset state the other methods above report. machine.Machine
	// calls it once per field-sync tick, before vdg.Render and Present.
	PumpEvents()
	// Present pushes the framebuffer vdg.Render just painted into to the
	// host's actual display.
	Present() error
}

// Palette is the MC6847-era 16-color BGR palette every FrameBuffer
// implementation is expected to render indices 0..15 against.
var Palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // Black
	{0xFF, 0x00, 0x00}, // Blue
	{0x00, 0xFF, 0x00}, // Green
	{0xFF, 0xFF, 0x00}, // Cyan
	{0x00, 0x00, 0xFF}, // Red
	{0xFF, 0x00, 0xFF}, // Magenta
	{0x00, 0x80, 0xA0}, // Brown
	{0xC0, 0xC0, 0xC0}, // Gray
	{0x60, 0x60, 0x60}, // DarkGray
	{0xFF, 0x60, 0x60}, // LightBlue
	{0x60, 0xFF, 0x60}, // LightGreen
	{0xFF, 0xFF, 0x80}, // LightCyan
	{0x60, 0x60, 0xFF}, // LightRed
	{0xFF, 0x80, 0xFF}, // LightMagenta
	{0x00, 0xFF, 0xFF}, // Yellow
	{0xFF, 0xFF, 0xFF}, // White
}
