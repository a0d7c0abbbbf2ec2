package asciitable

import "strings"

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSquare: {
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

func glyphs(style BorderStyle) borderChars {
	if bc, ok := borderSets[style]; ok {
		return bc
	}
	return borderSets[BorderSquare]
}

func render(rows [][]Text, cfg Config) string {
	bc := glyphs(cfg.Border)
	l, ok := resolve(rows, cfg)
	if !ok {
		return renderEmpty(bc)
	}

	var sb strings.Builder
	drawHLine(&sb, l.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	if l.header {
		cells := make([]Text, len(l.columns))
		for i, c := range l.columns {
			cells[i] = renderCell(c.header, l.widths[i], AlignLeft)
		}
		drawRow(&sb, cells, bc.vertical)
		drawHLine(&sb, l.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	}
	for _, row := range l.rows {
		cells := make([]Text, len(row))
		for i, cell := range row {
			cells[i] = renderCell(cell, l.widths[i], l.columns[i].align)
		}
		drawRow(&sb, cells, bc.vertical)
	}
	drawHLine(&sb, l.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
	return sb.String()
}

// renderEmpty draws the fallback for input that cannot be laid out: a
// single zero-width column holding one empty row.
func renderEmpty(bc borderChars) string {
	var sb strings.Builder
	widths := []int{0}
	drawHLine(&sb, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	drawRow(&sb, []Text{{}}, bc.vertical)
	drawHLine(&sb, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
	return sb.String()
}

func drawHLine(sb *strings.Builder, widths []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func drawRow(sb *strings.Builder, cells []Text, vert string) {
	sb.WriteString(vert)
	for i, cell := range cells {
		sb.WriteByte(' ')
		sb.WriteString(cell.String())
		sb.WriteByte(' ')
		if i < len(cells)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	sb.WriteByte('\n')
}
