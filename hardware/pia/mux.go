package pia

// AudioHost receives the composed two-bit audio multiplexer selector.
// host.Host.AudioMuxSet satisfies it.
type AudioHost interface {
	AudioMuxSet(sel uint8)
}

// AudioMuxState is the single 2-bit audio_mux_select register original_
// source/pia.c shares between PIA0-CRA (bit 0) and PIA1-CRB (bit 1).
// machine.Machine constructs exactly one and hands a pointer to both
// PIA0 and PIA1.
type AudioMuxState struct {
	sel  uint8
	host AudioHost
}

// NewAudioMuxState constructs the shared register, publishing every
// change to host.
func NewAudioMuxState(host AudioHost) *AudioMuxState {
	return &AudioMuxState{host: host}
}

// setBit sets bit of the selector and publishes the new value.
func (m *AudioMuxState) setBit(bit uint) {
	m.sel |= 1 << bit
	if m.host != nil {
		m.host.AudioMuxSet(m.sel)
	}
}

// Value returns the current two-bit selector.
func (m *AudioMuxState) Value() uint8 { return m.sel }
