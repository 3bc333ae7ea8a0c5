package errors

// list of error numbers
const (
	// memory fabric. these are surfaced only for logging purposes; the
	// memory layer itself never raises them to the CPU.
	AddressRange Errno = iota
	RomWrite

	// CPU core. these move the CPU into the EXCEPTION run-state rather than
	// returning through a normal call stack.
	IllegalOpcode
	UnresolvableMode

	// cassette interface. CassetteEOF is not really an error condition, it
	// exists here so that it can be logged and dropped using the same
	// mechanism as everything else.
	CassetteEOF

	// VDG. raised for display modes that the emulated hardware defines but
	// that this implementation does not render.
	UnsupportedVideoMode

	// host layer failures (framebuffer allocation, storage device
	// initialisation, image parsing). these are non-fatal unless the main
	// loop decides otherwise.
	HostIOFailure

	// loader / disk image handling
	LoaderFileCannotOpen
	LoaderFileError
	LoaderImageUnrecognised
)
