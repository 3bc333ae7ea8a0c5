// Package sdlhost is a go-sdl2 backed host.Host: a window with a streamed
// ABGR8888 texture, SDL keyboard polling translated to the AT-style scan
// codes hardware/pia expects, and queued audio output.
//
// Grounded on _examples/JetSetIlly-Gopher2600/gui/sdldebug's window/texture
// setup and _examples/JetSetIlly-Gopher2600/gui/sdlaudio's queued-audio
// pattern. hardware/ packages never import this package; cmd/coco6809
// wires it in as one of the host.Host implementations config.Backend can
// select.
package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/8bitgopher/coco6809/assert"
	"github.com/8bitgopher/coco6809/host"
)

// mainGoroutineID is the goroutine ID New() is expected to run on. SDL's
// window and event APIs must only be touched from the thread that called
// sdl.Init, matching the constraint every SDL GUI in this codebase's
// ancestry documents on its entry points.
var mainGoroutineID = assert.GetGoRoutineID()

const (
	audioSampleFreq = 15700 // matches PIA1's DAC write rate under normal program execution
	audioBufferLen  = 512
)

// Host is an SDL2 window, renderer, and audio device implementing
// host.Host.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int32

	fb *frameBuffer

	audioID   sdl.AudioDeviceID
	audioSpec sdl.AudioSpec
	audioBuf  []uint8

	keyEvents   []uint8
	resetButton host.ResetPress

	lastComparator bool
	lastButton     bool
}

// New opens an SDL window scaled by scale (1 = one host pixel per VDG
// pixel) and an audio device for PIA1's DAC output.
func New(scale int) (*Host, error) {
	if id := assert.GetGoRoutineID(); id != mainGoroutineID {
		return nil, fmt.Errorf("sdlhost: New called from goroutine %d, must run on the main goroutine (%d)", id, mainGoroutineID)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h := &Host{scale: int32(scale)}

	window, err := sdl.CreateWindow("coco6809",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		256*h.scale, 192*h.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}
	h.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create renderer: %w", err)
	}
	h.renderer = renderer

	if _, err := h.FramebufferAlloc(256, 192); err != nil {
		return nil, err
	}

	spec := &sdl.AudioSpec{
		Freq:     audioSampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(audioBufferLen),
	}
	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: open audio device: %w", err)
	}
	h.audioID = id
	h.audioSpec = actual
	h.audioBuf = make([]uint8, 0, audioBufferLen)
	sdl.PauseAudioDevice(h.audioID, false)

	return h, nil
}

// Close releases the window, renderer, texture, and audio device.
func (h *Host) Close() {
	sdl.CloseAudioDevice(h.audioID)
	if h.texture != nil {
		h.texture.Destroy()
	}
	h.renderer.Destroy()
	h.window.Destroy()
}

// PumpEvents drains SDL's event queue, updating the keyboard, joystick,
// and reset-button state Host reports. Call once per main-loop tick.
func (h *Host) PumpEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			h.keyEvents = append(h.keyEvents, f1ScanCode)

		case *sdl.KeyboardEvent:
			code, ok := scancodeTable[ev.Keysym.Scancode]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Repeat == 0 {
					h.keyEvents = append(h.keyEvents, code)
				}
			case sdl.KEYUP:
				h.keyEvents = append(h.keyEvents, breakCode(code))
			}
		}
	}

	keys := sdl.GetKeyboardState()
	h.lastComparator = keys[sdl.SCANCODE_UP] != 0 || keys[sdl.SCANCODE_RIGHT] != 0
	h.lastButton = keys[sdl.SCANCODE_LCTRL] != 0 || keys[sdl.SCANCODE_RCTRL] != 0

	switch {
	case keys[sdl.SCANCODE_F12] != 0:
		h.resetButton = host.ResetLong
	case keys[sdl.SCANCODE_F11] != 0:
		h.resetButton = host.ResetShort
	default:
		h.resetButton = host.ResetNone
	}
}

// f1ScanCode is the AT scan code hardware/pia.PIA0 latches as function
// key 1, the escape-to-loader request. A window close is treated as a
// request to drop back to the loader rather than killing the process
// outright, since the core has no concept of its own process lifetime.
const f1ScanCode = 59

func breakCode(makeCode uint8) uint8 { return makeCode | 0x80 }

// FramebufferAlloc implements host.Host.
func (h *Host) FramebufferAlloc(w, h2 int) (host.FrameBuffer, error) {
	if h.texture != nil {
		h.texture.Destroy()
	}
	texture, err := h.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h2))
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create texture: %w", err)
	}
	h.texture = texture
	h.fb = newFrameBuffer(w, h2)
	h.window.SetSize(int32(w)*h.scale, int32(h2)*h.scale)
	return h.fb, nil
}

// FramebufferResize implements host.Host.
func (h *Host) FramebufferResize(w, h2 int) (host.FrameBuffer, error) {
	return h.FramebufferAlloc(w, h2)
}

// Present uploads the current framebuffer to the texture and draws it.
// Call once per rendered frame, after vdg.Render returns.
func (h *Host) Present() error {
	if err := h.texture.Update(nil, h.fb.pixels, h.fb.stride()); err != nil {
		return fmt.Errorf("sdlhost: update texture: %w", err)
	}
	if err := h.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlhost: clear: %w", err)
	}
	if err := h.renderer.Copy(h.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlhost: copy: %w", err)
	}
	h.renderer.Present()
	return nil
}

// SystemTimeUs implements host.Host.
func (h *Host) SystemTimeUs() uint32 {
	return uint32(sdl.GetTicks64() * 1000)
}

// KeyboardRead implements host.Host.
func (h *Host) KeyboardRead() uint8 {
	if len(h.keyEvents) == 0 {
		return 0
	}
	e := h.keyEvents[0]
	h.keyEvents = h.keyEvents[1:]
	return e
}

func (h *Host) JoystickComparator() bool { return h.lastComparator }
func (h *Host) JoystickButton() bool     { return h.lastButton }
func (h *Host) ResetButton() host.ResetPress { return h.resetButton }

// AudioMuxSet implements host.Host. The multiplexer selector itself has no
// audible effect on this host: sdlhost only renders PIA1's DAC channel.
func (h *Host) AudioMuxSet(sel uint8) {}

// WriteDAC implements host.Host, queueing a 6-bit sample (scaled to 8
// bits) for SDL's audio device.
func (h *Host) WriteDAC(v6 uint8) {
	sample := v6<<2 + h.audioSpec.Silence
	h.audioBuf = append(h.audioBuf, sample)
	if len(h.audioBuf) >= audioBufferLen {
		_ = sdl.QueueAudio(h.audioID, h.audioBuf)
		h.audioBuf = h.audioBuf[:0]
	}
}
