package cassette

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/logger"
)

// WAVFile mounts a cassette image distributed as a WAV recording — a
// common transport format for real cassette dumps of this class of
// machine. It decodes the whole file up front with go-audio/wav, then
// downsamples the PCM stream back into the 8-bit-per-byte form PIA1's
// generator expects: one output byte per 8 samples, threshold-sliced at
// the buffer's midpoint amplitude, MSB first, mirroring the bit order a
// RawFile would have produced from the same program.
type WAVFile struct {
	bytes  []byte
	offset int
}

// OpenWAV decodes r as a WAV file and reconstructs the byte stream PIA1
// expects. The decode happens once, eagerly, since a cassette image is
// small enough to hold in memory and the generator needs random seek
// (Rewind) that a streaming decode would complicate for no benefit.
func OpenWAV(r io.Reader) (*WAVFile, error) {
	dec := wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.New(errors.LoaderFileError, err)
	}
	if !dec.WasPCMAccessed() {
		return nil, errors.New(errors.LoaderImageUnrecognised, "not a PCM WAV file")
	}

	return &WAVFile{bytes: downsample(buf)}, nil
}

// downsample folds 8 PCM samples into one byte, one bit per sample sliced
// against the buffer's midpoint amplitude, MSB first.
func downsample(buf *audio.IntBuffer) []byte {
	mid := midpoint(buf)

	n := len(buf.Data) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for bit := 0; bit < 8; bit++ {
			b <<= 1
			if buf.Data[i*8+bit] >= mid {
				b |= 1
			}
		}
		out[i] = b
	}
	return out
}

func midpoint(buf *audio.IntBuffer) int {
	if len(buf.Data) == 0 {
		return 0
	}
	min, max := buf.Data[0], buf.Data[0]
	for _, v := range buf.Data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return (min + max) / 2
}

// ReadByte implements io.ByteReader.
func (f *WAVFile) ReadByte() (byte, error) {
	if f.offset >= len(f.bytes) {
		logger.Logf(logger.Allow, "cassette", "%v", errors.New(errors.CassetteEOF))
		return 0, io.EOF
	}
	b := f.bytes[f.offset]
	f.offset++
	return b, nil
}

// Rewind implements Image.
func (f *WAVFile) Rewind() error {
	f.offset = 0
	return nil
}
