package main

import (
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/config"
	"github.com/8bitgopher/coco6809/host"
)

func TestNewHostHeadlessNeedsNoDisplay(t *testing.T) {
	is := is.New(t)

	cfg := config.Default()
	cfg.Backend = config.BackendHeadless

	h, closeHost, err := newHost(cfg, 1)
	is.NoErr(err)
	defer closeHost()

	is.Equal(h.KeyboardRead(), uint8(0))
	is.Equal(h.ResetButton(), host.ResetNone)

	fb, err := h.FramebufferAlloc(256, 192)
	is.NoErr(err)
	is.Equal(fb.Width(), 256)
	is.Equal(fb.Height(), 192)
}

func TestNewHostRejectsUnknownBackend(t *testing.T) {
	is := is.New(t)

	cfg := config.Default()
	cfg.Backend = config.Backend("nonsense")

	_, _, err := newHost(cfg, 1)
	is.True(err != nil)
}
