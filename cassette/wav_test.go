package cassette_test

import (
	"bytes"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/cassette"
)

// samplesForByte expands b into 8 signed PCM samples, MSB first, one
// sample per bit: negative for a 0 bit, positive for a 1, matching the
// threshold WAVFile's downsampler slices against.
func samplesForByte(b byte) []int {
	out := make([]int, 8)
	for i := 0; i < 8; i++ {
		bit := (b >> (7 - i)) & 0x01
		if bit == 1 {
			out[i] = 1000
		} else {
			out[i] = -1000
		}
	}
	return out
}

func encodeSyntheticWAV(t *testing.T, payload []byte) []byte {
	t.Helper()

	var data []int
	for _, b := range payload {
		data = append(data, samplesForByte(b)...)
	}

	buf := &bytes.Buffer{}
	enc := wav.NewEncoder(buf, 44100, 16, 1, 1)
	ibuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(ibuf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestWAVFileRoundTripsRawBytes(t *testing.T) {
	is := is.New(t)

	want := []byte{0x00, 0xFF, 0x55}
	raw := encodeSyntheticWAV(t, want)

	img, err := cassette.OpenWAV(bytes.NewReader(raw))
	is.NoErr(err)

	for _, b := range want {
		got, err := img.ReadByte()
		is.NoErr(err)
		is.Equal(got, b)
	}
}
