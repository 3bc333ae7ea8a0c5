// Package config captures everything the distilled source took as
// compile-time constants or command-line switches: ROM/cartridge/cassette
// paths, host backend selection, speed multiplier, and the debug-stats
// listen address. Built by cmd/coco6809 from kong-parsed flags; nothing in
// this package reads the environment implicitly.
package config

// Backend selects which host.Host implementation cmd/coco6809 wires in.
type Backend string

const (
	BackendSDL      Backend = "sdl"
	BackendTerminal Backend = "term"
	BackendHeadless Backend = "headless"
)

// Config is the complete set of knobs a coco6809 process is started with.
type Config struct {
	ROMPath       string
	CartridgePath string
	CassettePath  string

	Backend Backend

	// Speed is the CPU clock multiplier; 1.0 runs at the original MC6809E
	// rate, 0 (or negative) disables pacing entirely (run as fast as
	// possible, useful for headless batch jobs and tests).
	Speed float64

	// StatsAddr is the listen address for the debug-stats dashboard.
	// Empty disables it.
	StatsAddr string
}

// Default returns the configuration cmd/coco6809 starts from before
// applying parsed flags: terminal backend, original clock rate, stats
// disabled.
func Default() Config {
	return Config{
		Backend: BackendTerminal,
		Speed:   1.0,
	}
}
