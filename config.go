package asciitable

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var alignNames = map[Alignment]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
}

var borderNames = map[BorderStyle]string{
	BorderSquare:  "square",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
	BorderASCII:   "ascii",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// String returns the border style name.
func (b BorderStyle) String() string {
	if s, ok := borderNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseAlignment parses an alignment name. Matching is case-insensitive;
// the empty string means [AlignDefault].
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlignDefault, nil
	}
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return AlignDefault, fmt.Errorf("%w: %q", ErrUnsupportedAlignment, s)
}

// ParseBorder parses a border style name. Matching is case-insensitive;
// the empty string means [BorderSquare].
func ParseBorder(s string) (BorderStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BorderSquare, nil
	}
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return BorderSquare, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// MarshalYAML encodes the alignment by name.
func (a Alignment) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML decodes an alignment name.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML encodes the border style by name.
func (b BorderStyle) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a border style name.
func (b *BorderStyle) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBorder(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Validate reports configuration values no table could honour. A width
// budget too small for the data is not an error; such tables render as
// the empty fallback frame.
func (c Config) Validate() error {
	var errs []error
	if c.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("max_width must not be negative, got %d", c.MaxWidth))
	}
	if _, ok := alignNames[c.DefaultAlign]; !ok {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedAlignment, int(c.DefaultAlign)))
	}
	if _, ok := borderSets[c.Border]; !ok {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedBorder, int(c.Border)))
	}
	for _, i := range slices.Sorted(maps.Keys(c.Columns)) {
		col := c.Columns[i]
		if i < 0 {
			errs = append(errs, fmt.Errorf("column index must not be negative, got %d", i))
		}
		if col.MaxWidth < 0 {
			errs = append(errs, fmt.Errorf("column %d: max_width must not be negative, got %d", i, col.MaxWidth))
		}
		if _, ok := alignNames[col.Align]; !ok {
			errs = append(errs, fmt.Errorf("column %d: %w: %d", i, ErrUnsupportedAlignment, int(col.Align)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// LoadConfig decodes a YAML config from r on top of [DefaultConfig] and
// validates it. Keys absent from the document keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML to w.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
