package ttt

import (
	"strings"

	"github.com/muesli/termenv"
)

const _rowSeparator = "---+---+---"

// Plain 3x3 grid with separators, empty squares are blank
func (p *Position) String() string {
	builder := strings.Builder{}

	for row := range 3 {
		if row > 0 {
			builder.WriteString(_rowSeparator)
			builder.WriteByte('\n')
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteByte('|')
			}
			builder.WriteByte(' ')
			builder.WriteString(p.board[row*3+col].String())
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

// Same grid as String, with the marks styled for terminals,
// crosses red and circles blue
func (p *Position) Pretty() string {
	builder := strings.Builder{}

	for row := range 3 {
		if row > 0 {
			builder.WriteString(_rowSeparator)
			builder.WriteByte('\n')
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteByte('|')
			}
			builder.WriteByte(' ')
			builder.WriteString(styledMark(p.board[row*3+col]))
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func styledMark(player PlayerType) string {
	style := termenv.String(player.String())
	switch player {
	case Cross:
		style = style.Foreground(termenv.ANSIBrightRed).Bold()
	case Circle:
		style = style.Foreground(termenv.ANSIBrightBlue).Bold()
	}
	return style.String()
}
