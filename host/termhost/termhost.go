// Package termhost is a host.Host that renders through ANSI 256-color
// half-block characters in a terminal, and reads keyboard input from raw
// mode, using the same github.com/pkg/term/termios plumbing
// _examples/JetSetIlly-Gopher2600/debugger/colorterm/easyterm wraps for its
// own debugger console.
package termhost

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/8bitgopher/coco6809/host"
)

// Host renders the VDG's framebuffer as half-block characters (each
// terminal row covers two VDG scanlines) using ANSI 256-color escapes,
// and polls stdin in raw mode for single-byte keyboard input.
type Host struct {
	out *bufio.Writer
	in  *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	fb *frameBuffer

	mu          sync.Mutex
	pendingKeys []uint8
	resetButton host.ResetPress

	start time.Time
}

// New puts stdin into raw mode and returns a termhost.Host rendering to
// stdout. Close restores the terminal's canonical mode.
func New() (*Host, error) {
	h := &Host{
		out:   bufio.NewWriter(os.Stdout),
		in:    os.Stdin,
		start: time.Now(),
	}

	termios.Tcgetattr(h.in.Fd(), &h.canAttr)
	h.rawAttr = h.canAttr
	termios.Cfmakeraw(&h.rawAttr)
	termios.Tcsetattr(h.in.Fd(), termios.TCIFLUSH, &h.rawAttr)

	go h.readKeys()

	if _, err := h.FramebufferAlloc(256, 192); err != nil {
		return nil, err
	}

	return h, nil
}

// Close restores the terminal's canonical mode.
func (h *Host) Close() {
	termios.Tcsetattr(h.in.Fd(), termios.TCIFLUSH, &h.canAttr)
}

// readKeys runs on its own goroutine, translating raw stdin bytes into AT
// scan codes and reset-button presses. Terminal input has no natural
// key-up event, so every key is synthesized as an immediate make/break
// pair.
func (h *Host) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := h.in.Read(buf)
		if err != nil || n == 0 {
			return
		}

		h.mu.Lock()
		switch buf[0] {
		case 0x1b: // Ctrl sequences and plain Escape both start with 0x1b
			h.pendingKeys = append(h.pendingKeys, 1, 0x81)
		case 0x0c: // Ctrl-L: long reset, matching original_source/dragon.c's
			// distinction between a short and long hardware reset press
			h.resetButton = host.ResetLong
		case 0x12: // Ctrl-R: short reset
			h.resetButton = host.ResetShort
		default:
			if code, ok := asciiScanCodes[buf[0]]; ok {
				h.pendingKeys = append(h.pendingKeys, code, code|0x80)
			}
		}
		h.mu.Unlock()
	}
}

// FramebufferAlloc implements host.Host.
func (h *Host) FramebufferAlloc(w, h2 int) (host.FrameBuffer, error) {
	h.fb = newFrameBuffer(w, h2)
	return h.fb, nil
}

// FramebufferResize implements host.Host.
func (h *Host) FramebufferResize(w, h2 int) (host.FrameBuffer, error) {
	return h.FramebufferAlloc(w, h2)
}

// Present draws the current framebuffer using half-block characters: two
// VDG scanlines (top as foreground, bottom as background) per terminal
// row, via the unicode upper-half-block glyph and ANSI 256-color escapes.
func (h *Host) Present() error {
	h.out.WriteString("\x1b[H") // cursor home, avoids a full clear's flicker

	var row strings.Builder
	for y := 0; y+1 < h.fb.h; y += 2 {
		row.Reset()
		for x := 0; x < h.fb.w; x++ {
			top := ansi256(h.fb.at(x, y))
			bottom := ansi256(h.fb.at(x, y+1))
			fmt.Fprintf(&row, "\x1b[38;5;%d;48;5;%dm▀", top, bottom)
		}
		row.WriteString("\x1b[0m\r\n")
		h.out.WriteString(row.String())
	}

	return h.out.Flush()
}

// SystemTimeUs implements host.Host.
func (h *Host) SystemTimeUs() uint32 {
	return uint32(time.Since(h.start).Microseconds())
}

// KeyboardRead implements host.Host.
func (h *Host) KeyboardRead() uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pendingKeys) == 0 {
		return 0
	}
	e := h.pendingKeys[0]
	h.pendingKeys = h.pendingKeys[1:]
	return e
}

// JoystickComparator and JoystickButton are always idle: a terminal has
// no analogue input device to poll.
func (h *Host) JoystickComparator() bool { return false }
func (h *Host) JoystickButton() bool     { return false }

func (h *Host) ResetButton() host.ResetPress {
	h.mu.Lock()
	defer h.mu.Unlock()
	rb := h.resetButton
	h.resetButton = host.ResetNone
	return rb
}

// AudioMuxSet and WriteDAC are no-ops: a terminal has no audio output.
func (h *Host) AudioMuxSet(sel uint8) {}
func (h *Host) WriteDAC(v6 uint8)     {}

// PumpEvents is a no-op: readKeys already drains stdin on its own
// goroutine as bytes arrive.
func (h *Host) PumpEvents() {}
