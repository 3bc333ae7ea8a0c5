package pia

// scanEntry is one row of the AT-scan-code-to-keyboard-matrix table: the
// column bitmask to clear (make) or set (break) within the matched row.
type scanEntry struct {
	columns uint8
	row     uint8 // 0..6, or noRow if the scan code has no matrix position
}

const noRow = 255

// scanTable mirrors original_source/pia.c's 81-entry scan_code_table,
// transcribed verbatim: index is the AT scan code with bit 7 (make/break)
// masked off.
var scanTable = [81]scanEntry{
	0:  {0xff, noRow},
	1:  {0b11111011, 6}, // Break (ESC)
	2:  {0b11111101, 0}, // 1
	3:  {0b11111011, 0}, // 2
	4:  {0b11110111, 0}, // 3
	5:  {0b11101111, 0}, // 4
	6:  {0b11011111, 0}, // 5
	7:  {0b10111111, 0}, // 6
	8:  {0b01111111, 0}, // 7
	9:  {0b11111110, 1}, // 8
	10: {0b11111101, 1}, // 9
	11: {0b11111110, 0}, // 0
	12: {0b11011111, 1}, // -
	13: {0b11111011, 1}, // :
	14: {0b11111101, 6}, // CLEAR
	15: {0xff, noRow},
	16: {0b11111101, 4}, // Q
	17: {0b01111111, 4}, // W
	18: {0b11011111, 2}, // E
	19: {0b11111011, 4}, // R
	20: {0b11101111, 4}, // T
	21: {0b11111101, 5}, // Y
	22: {0b11011111, 4}, // U
	23: {0b11111101, 3}, // I
	24: {0b01111111, 3}, // O
	25: {0b11111110, 4}, // P
	26: {0b11111110, 2}, // @
	27: {0xff, noRow},
	28: {0b11111110, 6}, // Enter
	29: {0xff, noRow},
	30: {0b11111101, 2}, // A
	31: {0b11110111, 4}, // S
	32: {0b11101111, 2}, // D
	33: {0b10111111, 2}, // F
	34: {0b01111111, 2}, // G
	35: {0b11111110, 3}, // H
	36: {0b11111011, 3}, // J
	37: {0b11110111, 3}, // K
	38: {0b11101111, 3}, // L
	39: {0b11110111, 1}, // ;
	40: {0xff, noRow},
	41: {0xff, noRow},
	42: {0b01111111, 6}, // Shift
	43: {0xff, noRow},
	44: {0b11111011, 5}, // Z
	45: {0b11111110, 5}, // X
	46: {0b11110111, 2}, // C
	47: {0b10111111, 4}, // V
	48: {0b11111011, 2}, // B
	49: {0b10111111, 3}, // N
	50: {0b11011111, 3}, // M
	51: {0b11101111, 1}, // ,
	52: {0b10111111, 1}, // .
	53: {0b01111111, 1}, // /
	54: {0xff, noRow},
	55: {0xff, noRow},
	56: {0xff, noRow},
	57: {0b01111111, 5}, // Space
	58: {0xff, noRow},
	59: {0xff, noRow}, // F1
	60: {0xff, noRow}, // F2
	61: {0xff, noRow}, // F3
	62: {0xff, noRow}, // F4
	63: {0xff, noRow}, // F5
	64: {0xff, noRow}, // F6
	65: {0xff, noRow}, // F7
	66: {0xff, noRow}, // F8
	67: {0xff, noRow}, // F9
	68: {0xff, noRow}, // F10
	69: {0xff, noRow},
	70: {0xff, noRow},
	71: {0xff, noRow},
	72: {0b11110111, 5}, // Up
	73: {0xff, noRow},
	74: {0xff, noRow},
	75: {0b11011111, 5}, // Left
	76: {0xff, noRow},
	77: {0b10111111, 5}, // Right
	78: {0xff, noRow},
	79: {0xff, noRow},
	80: {0b11101111, 5}, // Down
}
