// Package asciitable renders rows of values as a bordered, fixed-width text
// table for terminal display.
//
//	rows := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
//	fmt.Print(asciitable.Format(rows, asciitable.DefaultConfig()))
//	// ┌───┬───┬───┐
//	// │ 1 │ 2 │ 3 │
//	// │ 4 │ 5 │ 6 │
//	// │ 7 │ 8 │ 9 │
//	// └───┴───┴───┘
//
// # Styled Cells
//
// Cells and headers may carry ANSI SGR escape sequences (ESC [ ... m). They
// take no room in the layout and are copied to the output unchanged, so a
// colored cell stays colored after it is padded or cut. Widths count runes,
// not terminal columns: double-width glyphs are counted as one.
//
// # Layout
//
// Each column is as wide as its widest cell or header, capped by
// Column.MaxWidth. When the table would exceed Config.MaxWidth, the
// widest column is narrowed one character at a time, rightmost first,
// until it fits. Cells that no longer fit end in '+'.
//
// Rows may have different lengths; short rows are padded with empty cells.
// Input that cannot be laid out at all (no rows, no columns, or a width
// budget below the borders themselves) renders as an empty minimal frame
// rather than an error:
//
//	┌──┐
//	│  │
//	└──┘
//
// # Configuration
//
// [Config] holds the width budget, default alignment, border style, and a
// sparse map of [Column] settings keyed by column index. [LoadConfig] reads
// the same settings from YAML:
//
//	max_width: 60
//	default_align: right
//	border: rounded
//	columns:
//	  0: {header: name, align: left, max_width: 12}
//
// # Rows From Types
//
// [Write] renders items implementing [Rower]. [Headed], [Aligned],
// [Truncated], and [Bordered] fill in whatever the config leaves unset.
//
// # Errors
//
//   - [ErrMissingInterface]: items passed to [Write] don't implement [Rower]
//   - [ErrInvalidConfig]: a config that fails [Config.Validate] or YAML decoding
//   - [ErrUnsupportedAlignment], [ErrUnsupportedBorder]: unknown names
package asciitable
