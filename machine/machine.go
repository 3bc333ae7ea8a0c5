// Package machine wires the CPU, memory fabric, SAM, VDG, and both PIAs
// into the single top-level emulation loop, grounded on original_source/
// dragon.c's main(): ROM load, device construction, a cold cpu_reset(1),
// then an endless loop of cpu_run() / reset-button poll / function-key
// escape / vdg_render() / pia_vsync_irq(). Run adds a context.Context
// check the bare-metal original never needed, so a library consumer can
// shut the loop down cleanly.
package machine

import (
	"context"
	"fmt"
	"time"

	"github.com/8bitgopher/coco6809/cassette"
	"github.com/8bitgopher/coco6809/config"
	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/hardware/cpu"
	"github.com/8bitgopher/coco6809/hardware/memory"
	"github.com/8bitgopher/coco6809/hardware/pia"
	"github.com/8bitgopher/coco6809/hardware/sam"
	"github.com/8bitgopher/coco6809/hardware/vdg"
	"github.com/8bitgopher/coco6809/host"
	"github.com/8bitgopher/coco6809/logger"
)

// romStart/romEnd/cartStart/cartEnd mirror SPEC_FULL.md §6's memory map.
const (
	romStart  = 0x8000
	romEnd    = 0xFEFF
	cartStart = 0xC000
	cartEnd   = 0xFEEF

	pia0Base = 0xFF00
	pia1Base = 0xFF20

	escapeLoader = 1 // F1, per original_source/dragon.c's ESCAPE_LOADER

	// clockHz is the MC6809E's nominal clock rate in this class of
	// machine, used only for pacing; Non-goals excludes cycle-exact bus
	// timing, so this is an approximation, not a hardware constant.
	clockHz = 894886
	// framesPerSecond is the field-sync cadence the main loop drives
	// vdg.Render and pia0.VsyncIRQ at.
	framesPerSecond = 50
)

// Stats is a snapshot of run-time counters published for debug/stats; the
// core never reads them back, they exist purely for observation.
type Stats struct {
	CyclesExecuted    uint64
	FramesRendered    uint64
	IRQServiced       uint64
	CassetteBytesRead uint64
	VDGMode           string
}

// Machine owns every emulated component and the host it renders to.
type Machine struct {
	mem  *memory.Memory
	cpu  *cpu.CPU
	sam  *sam.SAM
	vdg  *vdg.VDG
	pia0 *pia.PIA0
	pia1 *pia.PIA1

	host host.Host
	cfg  config.Config

	cyclesPerFrame uint64
	cycleAccum     uint64
	irqLine        bool

	stats Stats

	// EscapeLoader is invoked when the user presses F1 (PIA0's
	// function-key escape). Left nil it is a no-op, matching a
	// configuration with no host-side loader UI wired up.
	EscapeLoader func()
}

// irqCounter wraps the CPU's SetIRQ so Machine can count rising-edge
// assertions for Stats without PIA0 needing to know about it.
type irqCounter struct {
	cpu *cpu.CPU
	m   *Machine
}

func (c irqCounter) SetIRQ(v bool) {
	if v && !c.m.irqLine {
		c.m.stats.IRQServiced++
	}
	c.m.irqLine = v
	c.cpu.SetIRQ(v)
}

// countingTape wraps a mounted cassette.Image so Machine can count bytes
// consumed for Stats.
type countingTape struct {
	cassette.Image
	m *Machine
}

func (t countingTape) ReadByte() (byte, error) {
	b, err := t.Image.ReadByte()
	if err == nil {
		t.m.stats.CassetteBytesRead++
	}
	return b, err
}

// New constructs a Machine from a decoded ROM image, an optional
// cartridge image, an optional mounted cassette, and the host it will
// drive. rom is installed at 0x8000 and marked read-only; cartridge, if
// non-nil, is installed at 0xC000 over the top of it, matching
// SPEC_FULL.md §6's memory map.
func New(cfg config.Config, h host.Host, rom []byte, cartridge []byte, tape cassette.Image) (*Machine, error) {
	if len(rom) > romEnd-romStart+1 {
		return nil, fmt.Errorf("ROM image is %d bytes, exceeds %#04x-%#04x window", len(rom), romStart, romEnd)
	}
	if len(cartridge) > cartEnd-cartStart+1 {
		return nil, fmt.Errorf("cartridge image is %d bytes, exceeds %#04x-%#04x window", len(cartridge), cartStart, cartEnd)
	}

	m := &Machine{host: h, cfg: cfg}

	m.mem = memory.New()
	m.mem.Load(romStart, rom)
	m.mem.DefineROM(romStart, romEnd)

	if cartridge != nil {
		m.mem.Load(cartStart, cartridge)
		m.mem.DefineROM(cartStart, cartEnd)
	}

	m.cpu = cpu.NewCPU(m.mem)
	m.vdg = vdg.New()
	m.sam = sam.New(m.mem, m.vdg)

	mux := pia.NewAudioMuxState(h)
	m.pia0 = pia.NewPIA0(m.mem, pia0Base, irqCounter{cpu: m.cpu, m: m}, h, mux)
	m.pia1 = pia.NewPIA1(m.mem, pia1Base, h, m.vdg, mux)

	if tape != nil {
		m.pia1.LoaderMountCassette(countingTape{Image: tape, m: m})
	}

	// cyclesPerFrame is a hardware constant: the VDG's field-sync cadence
	// never changes. cfg.Speed instead scales how fast paceClock lets
	// those cycles elapse in real time.
	m.cyclesPerFrame = clockHz / framesPerSecond

	return m, nil
}

// Run drives the main loop until ctx is cancelled, the CPU enters the
// EXCEPTION run-state from an illegal opcode or unresolvable addressing
// mode, or the VDG reports an unsupported video mode; in the last two
// cases it returns a non-nil error so cmd/coco6809 can exit non-zero
// instead of spinning forever.
func (m *Machine) Run(ctx context.Context) error {
	m.cpu.SetReset(true)
	m.cpu.Step() // perform the cold reset, loading PC from the reset vector
	m.cpu.SetReset(false)

	frameStart := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		state := m.cpu.Step()
		if state == cpu.EXCEPTION {
			return fmt.Errorf("cpu halted in EXCEPTION state at %#04x", m.cpu.State().LastPC)
		}

		m.stats.CyclesExecuted += uint64(m.cpu.State().LastCycleCount)
		m.cycleAccum += uint64(m.cpu.State().LastCycleCount)

		switch m.host.ResetButton() {
		case host.ResetShort:
			m.cpu.SetReset(true)
		case host.ResetLong:
			m.mem.Write(0x0071, 0)
			m.cpu.SetReset(true)
		default:
			m.cpu.SetReset(false)
		}

		if m.pia0.FunctionKey() == escapeLoader {
			if m.EscapeLoader != nil {
				m.EscapeLoader()
			} else {
				logger.Logf(logger.Allow, "machine", "escape-to-loader requested, no loader wired up")
			}
		}

		if m.cycleAccum >= m.cyclesPerFrame {
			m.cycleAccum -= m.cyclesPerFrame
			m.host.PumpEvents()
			if err := m.vdg.Render(m.mem, m.host); err != nil {
				logger.Logf(logger.Allow, "machine", "%v", err)
				if me, ok := err.(errors.MachineError); ok && me.Errno == errors.UnsupportedVideoMode {
					return err
				}
			}
			if err := m.host.Present(); err != nil {
				logger.Logf(logger.Allow, "machine", "%v", err)
			}
			m.pia0.VsyncIRQ(m.host.SystemTimeUs())
			m.stats.FramesRendered++
			m.stats.VDGMode = m.vdg.ComposedMode().String()
		}

		m.paceClock(frameStart)
	}
}

// paceClock sleeps just enough to keep the accumulated cycle count
// tracking real time at config.Speed, rather than the distilled source's
// fixed busy-delay tuned to one specific host CPU.
func (m *Machine) paceClock(frameStart time.Time) {
	if m.cfg.Speed <= 0 {
		return
	}

	targetCyclesPerSecond := float64(clockHz) * m.cfg.Speed
	wantElapsed := time.Duration(float64(m.stats.CyclesExecuted) / targetCyclesPerSecond * float64(time.Second))
	actualElapsed := time.Since(frameStart)
	if wantElapsed > actualElapsed {
		time.Sleep(wantElapsed - actualElapsed)
	}
}

// Stats returns a snapshot of the run-time counters debug/stats publishes.
func (m *Machine) Stats() Stats { return m.stats }
