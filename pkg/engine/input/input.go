// Package input turns key presses into high-level intents.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// DecodeKey names the key in one raw-mode read.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC is escape.
func DecodeKey(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	switch b := buf[0]; {
	case b == 0x1b:
		if len(buf) == 1 {
			return "escape"
		}
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			switch buf[2] {
			case 'A':
				return "arrow_up"
			case 'B':
				return "arrow_down"
			case 'C':
				return "arrow_right"
			case 'D':
				return "arrow_left"
			}
		}
		// Unknown escape sequence - discard it
		return ""
	case b == 3:
		return "ctrl_c"
	case b == ' ':
		return "space"
	case b == '\r' || b == '\n':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	default:
		return ""
	}
}

// ReadKey puts the terminal into raw mode, reads one key press and restores it.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 8)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return DecodeKey(buf[:n]), nil
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
