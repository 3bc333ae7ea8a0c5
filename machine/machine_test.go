package machine_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/cassette"
	"github.com/8bitgopher/coco6809/config"
	"github.com/8bitgopher/coco6809/host"
	"github.com/8bitgopher/coco6809/machine"
)

// fakeFrameBuffer satisfies host.FrameBuffer with no backing storage.
type fakeFrameBuffer struct{ w, h int }

func (f *fakeFrameBuffer) Width() int                          { return f.w }
func (f *fakeFrameBuffer) Height() int                         { return f.h }
func (f *fakeFrameBuffer) SetPixel(x, y int, colorIndex uint8) {}

// fakeHost is a minimal host.Host usable from a test without any SDL or
// terminal dependency.
type fakeHost struct {
	fb          *fakeFrameBuffer
	nowUs       uint32
	resetButton host.ResetPress
	dacWrites   []uint8
	muxWrites   []uint8
}

func (h *fakeHost) FramebufferAlloc(w, h2 int) (host.FrameBuffer, error) {
	h.fb = &fakeFrameBuffer{w: w, h: h2}
	return h.fb, nil
}
func (h *fakeHost) FramebufferResize(w, h2 int) (host.FrameBuffer, error) {
	return h.FramebufferAlloc(w, h2)
}
func (h *fakeHost) SystemTimeUs() uint32 {
	h.nowUs += 20000
	return h.nowUs
}
func (h *fakeHost) KeyboardRead() uint8        { return 0 }
func (h *fakeHost) JoystickComparator() bool   { return false }
func (h *fakeHost) JoystickButton() bool       { return false }
func (h *fakeHost) ResetButton() host.ResetPress { return h.resetButton }
func (h *fakeHost) AudioMuxSet(sel uint8)      { h.muxWrites = append(h.muxWrites, sel) }
func (h *fakeHost) WriteDAC(v6 uint8)          { h.dacWrites = append(h.dacWrites, v6) }
func (h *fakeHost) PumpEvents()                {}
func (h *fakeHost) Present() error             { return nil }

type seekableBytes struct {
	data []byte
	pos  int
}

func newSeekableBytes(data []byte) *seekableBytes { return &seekableBytes{data: data} }

func (s *seekableBytes) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}

func (s *seekableBytes) Seek(offset int64, whence int) (int64, error) {
	s.pos = int(offset)
	return int64(s.pos), nil
}

func minimalROM() []byte {
	rom := make([]byte, 0x7F00)
	// the SAM serves the reset vector at 0xFFFE from 0xBFFE, which is
	// offset 0x3FFE from ROM start 0x8000.
	rom[0x3FFE] = 0x80
	rom[0x3FFF] = 0x00
	// one instruction at 0x8000: BRA $8000 (infinite self-loop), opcode 0x20, offset 0xFE.
	rom[0x0000] = 0x20
	rom[0x0001] = 0xFE
	return rom
}

func TestNewRejectsOversizedROM(t *testing.T) {
	is := is.New(t)
	_, err := machine.New(config.Default(), &fakeHost{}, make([]byte, 0x8000), nil, nil)
	is.True(err != nil)
}

func TestNewRejectsOversizedCartridge(t *testing.T) {
	is := is.New(t)
	_, err := machine.New(config.Default(), &fakeHost{}, minimalROM(), make([]byte, 0x4000), nil)
	is.True(err != nil)
}

func TestRunHonoursContextCancellation(t *testing.T) {
	is := is.New(t)
	h := &fakeHost{}
	cfg := config.Default()
	cfg.Speed = 1000 // run as fast as possible so the test doesn't stall

	m, err := machine.New(cfg, h, minimalROM(), nil, nil)
	is.NoErr(err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = m.Run(ctx)
	is.NoErr(err)

	stats := m.Stats()
	is.True(stats.CyclesExecuted > 0)
	is.True(stats.FramesRendered > 0)
}

func TestRunDoesNotInvokeEscapeLoaderWithoutFunctionKey(t *testing.T) {
	is := is.New(t)
	h := &fakeHost{}
	cfg := config.Default()
	cfg.Speed = 1000

	m, err := machine.New(cfg, h, minimalROM(), nil, nil)
	is.NoErr(err)

	escaped := make(chan struct{}, 1)
	m.EscapeLoader = func() {
		select {
		case escaped <- struct{}{}:
		default:
		}
	}

	// There is no public hook to inject a raw keyboard scan code from
	// outside the host interface, so this scenario is exercised through
	// hardware/pia's own tests; here we only confirm wiring compiles and
	// a cancelled run with no key pressed never fires EscapeLoader.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	is.NoErr(m.Run(ctx))

	select {
	case <-escaped:
		t.Fatal("EscapeLoader fired with no function key pressed")
	default:
	}
}

func TestRunWithMountedCassetteStopsOnCancel(t *testing.T) {
	is := is.New(t)
	h := &fakeHost{}
	cfg := config.Default()
	cfg.Speed = 1000

	tape := cassette.NewRawFile(newSeekableBytes([]byte{0x55, 0x55, 0x55}))
	m, err := machine.New(cfg, h, minimalROM(), nil, tape)
	is.NoErr(err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	is.NoErr(m.Run(ctx))
}
