package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// scancodeTable translates SDL scancodes to the AT-style scan codes
// hardware/pia.PIA0's scanTable expects, covering every matrix position
// original_source/pia.c's scan_code_table assigns plus the function keys.
var scancodeTable = map[sdl.Scancode]uint8{
	sdl.SCANCODE_ESCAPE: 1,
	sdl.SCANCODE_1:      2,
	sdl.SCANCODE_2:      3,
	sdl.SCANCODE_3:      4,
	sdl.SCANCODE_4:      5,
	sdl.SCANCODE_5:      6,
	sdl.SCANCODE_6:      7,
	sdl.SCANCODE_7:      8,
	sdl.SCANCODE_8:      9,
	sdl.SCANCODE_9:      10,
	sdl.SCANCODE_0:      11,
	sdl.SCANCODE_MINUS:  12,
	sdl.SCANCODE_SEMICOLON: 13,
	sdl.SCANCODE_HOME:   14, // CLEAR
	sdl.SCANCODE_Q:      16,
	sdl.SCANCODE_W:      17,
	sdl.SCANCODE_E:      18,
	sdl.SCANCODE_R:      19,
	sdl.SCANCODE_T:      20,
	sdl.SCANCODE_Y:      21,
	sdl.SCANCODE_U:      22,
	sdl.SCANCODE_I:      23,
	sdl.SCANCODE_O:      24,
	sdl.SCANCODE_P:      25,
	sdl.SCANCODE_LEFTBRACKET: 26, // @
	sdl.SCANCODE_RETURN: 28,
	sdl.SCANCODE_A:      30,
	sdl.SCANCODE_S:      31,
	sdl.SCANCODE_D:      32,
	sdl.SCANCODE_F:      33,
	sdl.SCANCODE_G:      34,
	sdl.SCANCODE_H:      35,
	sdl.SCANCODE_J:      36,
	sdl.SCANCODE_K:      37,
	sdl.SCANCODE_L:      38,
	sdl.SCANCODE_APOSTROPHE: 39, // ;
	sdl.SCANCODE_LSHIFT: 42,
	sdl.SCANCODE_RSHIFT: 42,
	sdl.SCANCODE_Z:      44,
	sdl.SCANCODE_X:      45,
	sdl.SCANCODE_C:      46,
	sdl.SCANCODE_V:      47,
	sdl.SCANCODE_B:      48,
	sdl.SCANCODE_N:      49,
	sdl.SCANCODE_M:      50,
	sdl.SCANCODE_COMMA:  51,
	sdl.SCANCODE_PERIOD: 52,
	sdl.SCANCODE_SLASH:  53,
	sdl.SCANCODE_SPACE:  57,
	sdl.SCANCODE_F1:     59,
	sdl.SCANCODE_F2:     60,
	sdl.SCANCODE_F3:     61,
	sdl.SCANCODE_F4:     62,
	sdl.SCANCODE_F5:     63,
	sdl.SCANCODE_F6:     64,
	sdl.SCANCODE_F7:     65,
	sdl.SCANCODE_F8:     66,
	sdl.SCANCODE_F9:     67,
	sdl.SCANCODE_F10:    68,
	sdl.SCANCODE_UP:     72,
	sdl.SCANCODE_LEFT:   75,
	sdl.SCANCODE_RIGHT:  77,
	sdl.SCANCODE_DOWN:   80,
}
