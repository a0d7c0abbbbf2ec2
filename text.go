package asciitable

import (
	"strings"
	"unicode/utf8"
)

const (
	escape    = '\x1b'
	csiOpen   = '['
	sgrFinal  = 'm'
	paramSep  = ';'
	truncMark = '+'
	padRune   = ' '
)

// segment is a run of text that is either printed (visible) or consumed by
// the terminal as a control sequence (invisible).
type segment struct {
	visible bool
	text    string
}

// Text is a displayable string that keeps embedded ANSI escape sequences
// apart from printable content. Length, padding, and truncation operate on
// the printable content only; escape sequences are reproduced verbatim by
// [Text.String].
//
// The zero value is an empty Text.
type Text struct {
	segs []segment
}

// ParseText splits s into visible runs and ESC [ ... m sequences.
//
// A sequence interrupted by a byte other than '[', ';', or a digit ends at
// that byte, which starts a new visible run. A sequence with no terminating
// 'm' stays invisible to the end of s.
func ParseText(s string) Text {
	var (
		t       Text
		buf     strings.Builder
		visible = true
	)
	flush := func() {
		if buf.Len() > 0 {
			t.segs = append(t.segs, segment{visible: visible, text: buf.String()})
			buf.Reset()
		}
	}
	for i, r := range s {
		if visible {
			if r == escape && i+1 < len(s) && s[i+1] == csiOpen {
				flush()
				visible = false
			}
			buf.WriteRune(r)
			continue
		}
		switch {
		case r == sgrFinal:
			buf.WriteRune(r)
			flush()
			visible = true
		case r == csiOpen, r == paramSep, r >= '0' && r <= '9':
			buf.WriteRune(r)
		default:
			flush()
			visible = true
			buf.WriteRune(r)
		}
	}
	flush()
	return t
}

// PlainText returns s as a single visible run without scanning it for
// escape sequences.
func PlainText(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{segs: []segment{{visible: true, text: s}}}
}

// Len returns the number of visible runes.
func (t Text) Len() int {
	n := 0
	for _, sg := range t.segs {
		if sg.visible {
			n += utf8.RuneCountInString(sg.text)
		}
	}
	return n
}

// IsEmpty reports whether t has no visible content. Escape sequences alone
// do not make a Text non-empty.
func (t Text) IsEmpty() bool {
	for _, sg := range t.segs {
		if sg.visible && sg.text != "" {
			return false
		}
	}
	return true
}

// Push appends r to the last visible run, or adds a trailing visible run
// when there is none.
func (t *Text) Push(r rune) {
	for i := len(t.segs) - 1; i >= 0; i-- {
		if t.segs[i].visible {
			t.segs[i].text += string(r)
			return
		}
	}
	t.segs = append(t.segs, segment{visible: true, text: string(r)})
}

// PushFront inserts r at the start of the first visible run, or adds a
// leading visible run when there is none.
func (t *Text) PushFront(r rune) {
	for i := range t.segs {
		if t.segs[i].visible {
			t.segs[i].text = string(r) + t.segs[i].text
			return
		}
	}
	t.segs = append([]segment{{visible: true, text: string(r)}}, t.segs...)
}

// Pop removes and returns the last visible rune. It reports false when t
// has no visible content.
func (t *Text) Pop() (rune, bool) {
	for i := len(t.segs) - 1; i >= 0; i-- {
		sg := &t.segs[i]
		if !sg.visible || sg.text == "" {
			continue
		}
		r, size := utf8.DecodeLastRuneInString(sg.text)
		sg.text = sg.text[:len(sg.text)-size]
		return r, true
	}
	return 0, false
}

// Clone returns a copy of t that can be mutated independently.
func (t Text) Clone() Text {
	if t.segs == nil {
		return Text{}
	}
	segs := make([]segment, len(t.segs))
	copy(segs, t.segs)
	return Text{segs: segs}
}

// Visible returns the printable content with escape sequences removed.
func (t Text) Visible() string {
	var sb strings.Builder
	for _, sg := range t.segs {
		if sg.visible {
			sb.WriteString(sg.text)
		}
	}
	return sb.String()
}

// String returns the text with all escape sequences in place.
func (t Text) String() string {
	var sb strings.Builder
	for _, sg := range t.segs {
		sb.WriteString(sg.text)
	}
	return sb.String()
}
