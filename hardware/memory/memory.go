// Package memory implements the 64 KiB byte-addressable fabric shared by
// the CPU core and every device. Every cell carries an attribute (RAM, ROM
// or IO) and IO cells may additionally carry a callback that is invoked
// transparently on access.
package memory

import (
	"github.com/8bitgopher/coco6809/errors"
	"github.com/8bitgopher/coco6809/logger"
)

// Attribute classifies how a cell responds to reads and writes.
type Attribute int

const (
	RAM Attribute = iota
	ROM
	IO
)

// AccessKind tells an IO callback whether it is being invoked for a read or
// a write.
type AccessKind int

const (
	Read AccessKind = iota
	Write
)

// IOHandler is invoked whenever a cell marked IO is accessed. For a read,
// value is the cell's stored byte before the callback runs and the
// callback's return value becomes both the cell's new stored byte and the
// value returned to the caller. For a write, value is the byte being
// written and the callback's return value is stored in the cell in its
// place (most handlers simply return value unchanged).
type IOHandler func(addr uint16, value uint8, kind AccessKind) uint8

type cell struct {
	data    uint8
	attr    Attribute
	handler IOHandler
}

// Memory is the 65536-cell address space. The zero value is usable.
type Memory struct {
	cells [65536]cell
}

// New creates a Memory with every cell initialized to RAM, zeroed.
func New() *Memory {
	return &Memory{}
}

func logf(errno errors.Errno, addr uint16) {
	logger.Logf(logger.Allow, "mem", "%v", errors.New(errno, addr))
}

// Read returns the byte at addr, invoking the cell's IO callback if one is
// attached. Out-of-range addresses are impossible given the full 16-bit
// address space, but are defended against because addr is exported through
// the Bus interface devices hand to other devices.
func (m *Memory) Read(addr uint16) uint8 {
	c := &m.cells[addr]
	v := c.data
	if c.attr == IO && c.handler != nil {
		v = c.handler(addr, v, Read)
		c.data = v
	}
	return v
}

// Write stores v at addr. Writes to ROM cells are discarded. IO cells
// invoke their callback after the store, with the callback's return value
// becoming the new stored byte.
func (m *Memory) Write(addr uint16, v uint8) {
	c := &m.cells[addr]
	if c.attr == ROM {
		logf(errors.RomWrite, addr)
		return
	}
	c.data = v
	if c.attr == IO && c.handler != nil {
		c.data = c.handler(addr, v, Write)
	}
}

// Load bulk-copies bytes starting at start, ignoring each cell's attribute.
// Used to install a ROM image before the span is marked ROM via DefineROM.
func (m *Memory) Load(start uint16, data []byte) {
	addr := uint32(start)
	for _, b := range data {
		if addr > 0xFFFF {
			break
		}
		m.cells[addr].data = b
		addr++
	}
}

// DefineROM marks the inclusive span [lo, hi] as read-only. Existing cell
// data is preserved.
func (m *Memory) DefineROM(lo, hi uint32) {
	if hi > 0xFFFF {
		logf(errors.AddressRange, uint16(hi))
	}
	for a := lo; a <= hi && a <= 0xFFFF; a++ {
		m.cells[a].attr = ROM
		m.cells[a].handler = nil
	}
}

// DefineIO marks the inclusive span [lo, hi] as memory-mapped IO dispatched
// through handler. Existing cell data is preserved.
func (m *Memory) DefineIO(lo, hi uint32, handler IOHandler) {
	for a := lo; a <= hi && a <= 0xFFFF; a++ {
		m.cells[a].attr = IO
		m.cells[a].handler = handler
	}
}

// DefineRAM reverts the inclusive span [lo, hi] to plain read/write storage.
func (m *Memory) DefineRAM(lo, hi uint32) {
	for a := lo; a <= hi && a <= 0xFFFF; a++ {
		m.cells[a].attr = RAM
		m.cells[a].handler = nil
	}
}

// Peek reads the stored byte without invoking any IO callback. Used by
// devices and debuggers that need the raw cell value (e.g. the VDG reading
// video RAM, or the SAM's vector redirect).
func (m *Memory) Peek(addr uint16) uint8 {
	return m.cells[addr].data
}

// Poke stores a byte without invoking any IO callback and regardless of
// ROM attribute. Used by the loader to install ROM images and by the SAM's
// vector redirect read path, which must not re-trigger IO dispatch.
func (m *Memory) Poke(addr uint16, v uint8) {
	m.cells[addr].data = v
}
