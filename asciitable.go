package asciitable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingInterface     = errors.New("missing required interface")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrUnsupportedAlignment = errors.New("unsupported alignment")
	ErrUnsupportedBorder    = errors.New("unsupported border style")
)

// DefaultMaxWidth is the table width budget used by [DefaultConfig].
const DefaultMaxWidth = 80

// --- Value Types ---

// Alignment controls how data cells are padded within their column.
type Alignment int

const (
	AlignDefault Alignment = iota // inherit the table default, left at table level
	AlignLeft
	AlignCenter
	AlignRight
)

// BorderStyle selects the glyphs used to draw the frame.
type BorderStyle int

const (
	BorderSquare  BorderStyle = iota // ┌─┐└┘│┬┴├┤┼
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderASCII                      // +-+|
)

// Column configures a single column. Header may carry ANSI escape
// sequences. A zero MaxWidth means the column is not capped, so a column
// cannot be capped at zero width; only the shrink pass narrows a column
// that far.
type Column struct {
	Header   string    `yaml:"header,omitempty"`
	Align    Alignment `yaml:"align,omitempty"`
	MaxWidth int       `yaml:"max_width,omitempty"`
}

// Config configures a table. Columns is sparse: indices without an entry
// get an empty header, the default alignment, and no width cap. Entries
// beyond the widest row are ignored.
type Config struct {
	MaxWidth     int            `yaml:"max_width"`
	DefaultAlign Alignment      `yaml:"default_align,omitempty"`
	Border       BorderStyle    `yaml:"border,omitempty"`
	Columns      map[int]Column `yaml:"columns,omitempty"`
}

// DefaultConfig returns an 80 column, left aligned, square bordered config.
func DefaultConfig() Config {
	return Config{MaxWidth: DefaultMaxWidth}
}

// --- Row Interfaces ---

// Rower provides row data. Required by [Write].
type Rower interface {
	Row() []string
}

// Headed provides column headers.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
type Aligned interface {
	Alignments() []Alignment
}

// Truncated sets per-column maximum widths. A zero value means no limit
// for that column.
type Truncated interface {
	MaxWidths() []int
}

// Bordered selects the border style. It only applies while the config
// border is [BorderSquare], the zero value, so an item also overrides an
// explicitly requested square border.
type Bordered interface {
	Border() BorderStyle
}

// Format renders rows as a bordered table. Each value is converted with
// fmt.Sprint, so [fmt.Stringer] implementations and strings carrying ANSI
// escape sequences are both accepted. Format never fails: input that
// cannot be laid out renders as an empty minimal frame.
func Format[T any](rows [][]T, cfg Config) string {
	return render(stringify(rows), cfg)
}

// Fprint renders rows and writes the table to w.
func Fprint[T any](w io.Writer, rows [][]T, cfg Config) error {
	_, err := io.WriteString(w, Format(rows, cfg))
	return err
}

// Print renders rows and writes the table to standard output.
func Print[T any](rows [][]T, cfg Config) error {
	return Fprint(os.Stdout, rows, cfg)
}

// Write renders items, which must implement [Rower], and writes the table
// to w. [Headed], [Aligned], [Truncated], and [Bordered] on the first item
// fill in whatever cfg leaves at its zero value. Since [BorderSquare] is
// the zero border, a [Bordered] item replaces it even when set explicitly.
func Write[T any](w io.Writer, cfg Config, items ...T) error {
	if len(items) == 0 {
		_, err := io.WriteString(w, render(nil, cfg))
		return err
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return fmt.Errorf("%w: table requires Rower, not implemented by %T", ErrMissingInterface, items[0])
	}
	rows := make([][]Text, len(items))
	for i, item := range items {
		cells := any(item).(Rower).Row()
		rows[i] = make([]Text, len(cells))
		for j, cell := range cells {
			rows[i][j] = ParseText(cell)
		}
	}
	_, err := io.WriteString(w, render(rows, withItemDefaults(cfg, first)))
	return err
}

// Marshal renders items like [Write] and returns the bytes.
func Marshal[T any](cfg Config, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cfg, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stringify[T any](rows [][]T) [][]Text {
	out := make([][]Text, len(rows))
	for i, row := range rows {
		out[i] = make([]Text, len(row))
		for j, v := range row {
			out[i][j] = ParseText(fmt.Sprint(v))
		}
	}
	return out
}

// withItemDefaults returns a copy of cfg completed from the optional
// interfaces implemented by item. The caller's Columns map is not touched.
func withItemDefaults(cfg Config, item any) Config {
	cols := make(map[int]Column, len(cfg.Columns))
	maps.Copy(cols, cfg.Columns)
	cfg.Columns = cols

	update := func(i int, fn func(*Column)) {
		c := cols[i]
		fn(&c)
		cols[i] = c
	}
	if h, ok := item.(Headed); ok {
		for i, hdr := range h.Header() {
			update(i, func(c *Column) {
				if c.Header == "" {
					c.Header = hdr
				}
			})
		}
	}
	if a, ok := item.(Aligned); ok {
		for i, align := range a.Alignments() {
			update(i, func(c *Column) {
				if c.Align == AlignDefault {
					c.Align = align
				}
			})
		}
	}
	if tr, ok := item.(Truncated); ok {
		for i, max := range tr.MaxWidths() {
			update(i, func(c *Column) {
				if c.MaxWidth == 0 {
					c.MaxWidth = max
				}
			})
		}
	}
	if b, ok := item.(Bordered); ok && cfg.Border == BorderSquare {
		cfg.Border = b.Border()
	}
	return cfg
}
