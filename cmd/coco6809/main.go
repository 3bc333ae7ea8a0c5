// coco6809 is the command-line entry point: it parses flags with kong,
// loads the ROM/cartridge/cassette images through loader.Loader, builds a
// machine.Machine, and runs it against whichever host.Host config.Backend
// selects, following _examples/davecheney-pdp11/pdp11.go's
// kong.Parse/ctx.Run/FatalIfErrorf shape.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/8bitgopher/coco6809/cassette"
	"github.com/8bitgopher/coco6809/config"
	"github.com/8bitgopher/coco6809/debug/stats"
	"github.com/8bitgopher/coco6809/host"
	"github.com/8bitgopher/coco6809/host/sdlhost"
	"github.com/8bitgopher/coco6809/host/termhost"
	"github.com/8bitgopher/coco6809/loader"
	"github.com/8bitgopher/coco6809/machine"
)

type runCmd struct {
	ROM       string  `arg:"" type:"existingfile" help:"path to the system ROM image"`
	Cartridge string  `name:"cartridge" type:"existingfile" optional:"" help:"path to an optional cartridge ROM image"`
	Cassette  string  `name:"cassette" type:"existingfile" optional:"" help:"path to a cassette image (raw or .wav)"`
	Backend   string  `name:"backend" default:"term" enum:"sdl,term,headless" help:"display backend"`
	Speed     float64 `name:"speed" default:"1.0" help:"clock speed multiplier"`
	Stats     string  `name:"stats" optional:"" help:"address to serve the stats dashboard on, e.g. localhost:6809"`
	Scale     int     `name:"scale" default:"2" help:"sdl backend window scale"`
}

func (r *runCmd) Run(*kong.Context) error {
	cfg := config.Default()
	cfg.ROMPath = r.ROM
	cfg.CartridgePath = r.Cartridge
	cfg.CassettePath = r.Cassette
	cfg.Backend = config.Backend(r.Backend)
	cfg.Speed = r.Speed
	cfg.StatsAddr = r.Stats

	l := loader.New()

	rom, err := l.LoadROM(cfg.ROMPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	var cartridge []byte
	if cfg.CartridgePath != "" {
		cartridge, err = l.LoadCartridge(cfg.CartridgePath)
		if err != nil {
			return fmt.Errorf("loading cartridge: %w", err)
		}
	}

	var tape cassette.Image
	if cfg.CassettePath != "" {
		tape, err = l.MountCassette(cfg.CassettePath)
		if err != nil {
			return fmt.Errorf("mounting cassette: %w", err)
		}
	}

	h, closeHost, err := newHost(cfg, r.Scale)
	if err != nil {
		return fmt.Errorf("setting up %s backend: %w", cfg.Backend, err)
	}
	defer closeHost()

	m, err := machine.New(cfg, h, rom, cartridge, tape)
	if err != nil {
		return fmt.Errorf("constructing machine: %w", err)
	}

	if cfg.StatsAddr != "" {
		srv := stats.New(m.Stats)
		go func() {
			if err := srv.ListenAndServe(cfg.StatsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "stats server: %v\n", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return m.Run(ctx)
}

// headlessHost satisfies host.Host with no display and no input, for
// Backend=headless runs (automated testing, stats-only monitoring).
type headlessHost struct {
	fb *headlessFrameBuffer
}

type headlessFrameBuffer struct{ w, h int }

func (f *headlessFrameBuffer) Width() int                          { return f.w }
func (f *headlessFrameBuffer) Height() int                         { return f.h }
func (f *headlessFrameBuffer) SetPixel(x, y int, colorIndex uint8) {}

func (h *headlessHost) FramebufferAlloc(w, h2 int) (host.FrameBuffer, error) {
	h.fb = &headlessFrameBuffer{w: w, h: h2}
	return h.fb, nil
}
func (h *headlessHost) FramebufferResize(w, h2 int) (host.FrameBuffer, error) {
	return h.FramebufferAlloc(w, h2)
}
func (h *headlessHost) SystemTimeUs() uint32          { return 0 }
func (h *headlessHost) KeyboardRead() uint8           { return 0 }
func (h *headlessHost) JoystickComparator() bool      { return false }
func (h *headlessHost) JoystickButton() bool          { return false }
func (h *headlessHost) ResetButton() host.ResetPress  { return host.ResetNone }
func (h *headlessHost) AudioMuxSet(sel uint8)         {}
func (h *headlessHost) WriteDAC(v6 uint8)             {}
func (h *headlessHost) PumpEvents()                   {}
func (h *headlessHost) Present() error                { return nil }

// newHost constructs the host.Host config.Backend selects, plus a
// cleanup function to release it on exit.
func newHost(cfg config.Config, scale int) (host.Host, func(), error) {
	switch cfg.Backend {
	case config.BackendSDL:
		h, err := sdlhost.New(scale)
		if err != nil {
			return nil, nil, err
		}
		return h, h.Close, nil

	case config.BackendTerminal:
		h, err := termhost.New()
		if err != nil {
			return nil, nil, err
		}
		return h, h.Close, nil

	case config.BackendHeadless:
		return &headlessHost{}, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"run a coco6809 machine"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}
