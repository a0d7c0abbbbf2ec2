package asciitable

// renderCell fits t to exactly width visible runes. Overlong text is cut
// and its last visible rune replaced by '+'; shorter text is padded with
// spaces according to align. t itself is left unchanged.
func renderCell(t Text, width int, align Alignment) Text {
	out := t.Clone()
	if out.Len() > width {
		for out.Len() > width {
			out.Pop()
		}
		if _, ok := out.Pop(); ok {
			out.Push(truncMark)
		}
		return out
	}
	for out.Len() < width {
		switch align {
		case AlignRight:
			out.PushFront(padRune)
		case AlignCenter:
			out.Push(padRune)
			if out.Len() < width {
				out.PushFront(padRune)
			}
		default:
			out.Push(padRune)
		}
	}
	return out
}
