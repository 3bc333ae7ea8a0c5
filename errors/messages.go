package errors

var messages = map[Errno]string{
	AddressRange: "address out of range (%#04x)",
	RomWrite:     "write to read-only memory ignored (%#04x)",

	IllegalOpcode:     "illegal opcode (%#02x) at (%#04x)",
	UnresolvableMode:  "unresolvable addressing mode for opcode (%#02x) at (%#04x)",

	CassetteEOF: "cassette image exhausted, padding with 0x55",

	UnsupportedVideoMode: "unsupported video mode (%s)",

	HostIOFailure: "host I/O failure: %s",

	LoaderFileCannotOpen:    "cannot open image file (%s)",
	LoaderFileError:         "error reading image file (%s)",
	LoaderImageUnrecognised: "image format not recognised (%s)",
}
