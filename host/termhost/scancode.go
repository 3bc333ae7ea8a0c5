package termhost

// asciiScanCodes translates a raw stdin byte into the AT scan code
// hardware/pia.PIA0's scanTable expects. Only printable ASCII and a few
// control keys are covered; a terminal has no natural way to report the
// make/break pair SDL or a real keyboard matrix would, so readKeys
// synthesizes both halves back to back for every byte it sees here.
var asciiScanCodes = map[byte]uint8{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6,
	'6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'-': 12, ';': 13,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20,
	'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'\r': 28, '\n': 28,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34,
	'h': 35, 'j': 36, 'k': 37, 'l': 38,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48,
	'n': 49, 'm': 50, ',': 51, '.': 52, '/': 53,
	' ': 57,
}
