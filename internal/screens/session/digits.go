package session

import "strings"

// A 5-row block font for the timer. Only digits and the colon; anything
// else renders as a blank column.
var digitFont = map[rune][5]string{
	'0': {"█▀▀█", "█  █", "█  █", "█  █", "█▄▄█"},
	'1': {" ▀█ ", "  █ ", "  █ ", "  █ ", " ▄█▄"},
	'2': {"█▀▀█", "   █", "█▀▀▀", "█   ", "█▄▄█"},
	'3': {"█▀▀█", "   █", " ▀▀█", "   █", "█▄▄█"},
	'4': {"█  █", "█  █", "▀▀▀█", "   █", "   █"},
	'5': {"█▀▀▀", "█   ", "▀▀▀█", "   █", "█▄▄█"},
	'6': {"█▀▀▀", "█   ", "█▀▀█", "█  █", "█▄▄█"},
	'7': {"█▀▀█", "   █", "  █ ", "  █ ", "  █ "},
	'8': {"█▀▀█", "█  █", "█▀▀█", "█  █", "█▄▄█"},
	'9': {"█▀▀█", "█  █", "▀▀▀█", "   █", "█▄▄█"},
	':': {"    ", " ▀  ", "    ", " ▀  ", "    "},
}

// bigDigits renders a clock string in the block font.
func bigDigits(s string) string {
	var rows [5]strings.Builder
	for _, r := range s {
		glyph, ok := digitFont[r]
		if !ok {
			glyph = [5]string{"    ", "    ", "    ", "    ", "    "}
		}
		for i := 0; i < 5; i++ {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}
	lines := make([]string, 5)
	for i := 0; i < 5; i++ {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}
