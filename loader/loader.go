// Package loader is the host-side counterpart to original_source/loader.c
// — but deliberately not a reimplementation of that file's in-machine
// SD-card menu UI (out of scope per the distilled spec's non-goals). It
// supplies the three file operations cmd/coco6809 needs before it can
// construct a machine.Machine: reading a ROM image, reading an optional
// cartridge image, and mounting a cassette image (raw or WAV).
package loader

import (
	"os"
	"strings"

	"github.com/8bitgopher/coco6809/cassette"
	"github.com/8bitgopher/coco6809/errors"
)

// Loader reads image files from the local filesystem.
type Loader struct{}

// New constructs a Loader.
func New() *Loader {
	return &Loader{}
}

// LoadROM reads the system ROM image at path.
func (l *Loader) LoadROM(path string) ([]byte, error) {
	return l.readFile(path)
}

// LoadCartridge reads an optional cartridge ROM image at path.
func (l *Loader) LoadCartridge(path string) ([]byte, error) {
	return l.readFile(path)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.LoaderFileCannotOpen, path)
	}
	if err != nil {
		return nil, errors.New(errors.LoaderFileError, path)
	}
	return data, nil
}

// MountCassette opens path and wraps it as a cassette.Image. Files named
// *.wav are decoded as WAV recordings; everything else is treated as a
// raw byte stream, matching original_source/pia.c's fat32_fread
// contract.
func (l *Loader) MountCassette(path string) (cassette.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.LoaderFileCannotOpen, path)
	}

	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		img, err := cassette.OpenWAV(f)
		if err != nil {
			f.Close()
			return nil, errors.New(errors.LoaderImageUnrecognised, path)
		}
		return img, nil
	}

	return cassette.NewRawFile(f), nil
}
