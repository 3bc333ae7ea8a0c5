package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/loader"
)

func TestLoadROMMissingFile(t *testing.T) {
	is := is.New(t)
	l := loader.New()

	_, err := l.LoadROM(filepath.Join(t.TempDir(), "does-not-exist.rom"))
	is.True(err != nil)
}

func TestLoadROMReadsBytes(t *testing.T) {
	is := is.New(t)
	l := loader.New()

	path := filepath.Join(t.TempDir(), "dragon.rom")
	is.NoErr(os.WriteFile(path, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0o644))

	data, err := l.LoadROM(path)
	is.NoErr(err)
	is.Equal(data, []byte{0xDE, 0xAD, 0xBE, 0xEF})
}

func TestMountCassetteRawByExtension(t *testing.T) {
	is := is.New(t)
	l := loader.New()

	path := filepath.Join(t.TempDir(), "program.cas")
	is.NoErr(os.WriteFile(path, []byte{0x00, 0xFF, 0x55}, 0o644))

	img, err := l.MountCassette(path)
	is.NoErr(err)

	b, err := img.ReadByte()
	is.NoErr(err)
	is.Equal(b, byte(0x00))
}
