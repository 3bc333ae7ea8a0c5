// Package cassette supplies the byte-stream backing store PIA1's bit-stream
// generator pulls from. original_source/pia.c treats a mounted cassette as
// an opaque byte sequence read with fat32_fread; cassette.Image reproduces
// exactly that contract so hardware/pia never needs to know whether the
// bytes came from a raw image or were decoded out of a WAV file.
package cassette

import "io"

// Image is the byte-at-a-time source hardware/pia.PIA1 consumes. ReadByte
// returns io.EOF once the image is exhausted; PIA1 treats that as the
// errors.CassetteEOF condition and pads with 0x55 rather than closing.
type Image interface {
	io.ByteReader
	// Rewind seeks the image back to its first byte, for re-running a
	// program without re-mounting.
	Rewind() error
}

// RawFile wraps an io.ReadSeeker holding the byte stream verbatim, the
// format original_source/pia.c's fat32_fread loop actually reads.
type RawFile struct {
	r io.ReadSeeker
}

// NewRawFile constructs a RawFile over r, positioned at its current offset.
func NewRawFile(r io.ReadSeeker) *RawFile {
	return &RawFile{r: r}
}

// ReadByte implements io.ByteReader.
func (f *RawFile) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(f.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Rewind implements Image.
func (f *RawFile) Rewind() error {
	_, err := f.r.Seek(0, io.SeekStart)
	return err
}
