package cassette_test

import (
	"io"
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/cassette"
)

type memSeeker struct {
	data []byte
	pos  int
}

func (m *memSeeker) Read(p []byte) (int, error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func (m *memSeeker) Seek(offset int64, whence int) (int64, error) {
	m.pos = int(offset)
	return int64(m.pos), nil
}

func TestRawFileReadsInOrder(t *testing.T) {
	is := is.New(t)
	img := cassette.NewRawFile(&memSeeker{data: []byte{0x00, 0xFF, 0x55}})

	for _, want := range []byte{0x00, 0xFF, 0x55} {
		b, err := img.ReadByte()
		is.NoErr(err)
		is.Equal(b, want)
	}

	_, err := img.ReadByte()
	is.Equal(err, io.EOF)
}

func TestRawFileRewind(t *testing.T) {
	is := is.New(t)
	img := cassette.NewRawFile(&memSeeker{data: []byte{0x11, 0x22}})

	first, _ := img.ReadByte()
	is.NoErr(img.Rewind())
	second, err := img.ReadByte()
	is.NoErr(err)
	is.Equal(first, second)
}
