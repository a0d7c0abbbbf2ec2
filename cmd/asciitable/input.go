package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var errUnsupportedInput = errors.New("unsupported input format")

const (
	inputYAML = "yaml"
	inputJSON = "json"
	inputCSV  = "csv"
	inputTSV  = "tsv"
)

// table is decoded input: optional headers plus ragged rows.
type table struct {
	header []string
	rows   [][]string
}

// inferFormat picks an input format from a file name, defaulting to YAML.
func inferFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return inputJSON
	case ".csv":
		return inputCSV
	case ".tsv", ".tab":
		return inputTSV
	default:
		return inputYAML
	}
}

func readTable(r io.Reader, format string) (table, error) {
	switch strings.ToLower(format) {
	case inputYAML, "yml", inputJSON:
		// JSON documents are valid YAML, so one decoder serves both.
		return readYAML(r)
	case inputCSV:
		return readDelimited(r, ',')
	case inputTSV:
		return readDelimited(r, '\t')
	default:
		return table{}, fmt.Errorf("%w: %q", errUnsupportedInput, format)
	}
}

func readDelimited(r io.Reader, comma rune) (table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = comma == '\t'
	rows, err := cr.ReadAll()
	if err != nil {
		return table{}, err
	}
	return table{rows: rows}, nil
}

// readYAML accepts a sequence of sequences (plain rows) or a sequence of
// mappings. For mappings the keys become headers, in first-seen order.
func readYAML(r io.Reader) (table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return table{}, nil
		}
		return table{}, err
	}
	if len(doc.Content) == 0 {
		return table{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return table{}, fmt.Errorf("line %d: expected a list of rows", root.Line)
	}

	var (
		t      table
		keys   []string
		keyIdx = map[string]int{}
	)
	for _, item := range root.Content {
		switch item.Kind {
		case yaml.SequenceNode:
			row := make([]string, len(item.Content))
			for i, cell := range item.Content {
				s, err := scalarText(cell)
				if err != nil {
					return table{}, err
				}
				row[i] = s
			}
			t.rows = append(t.rows, row)
		case yaml.MappingNode:
			row := make([]string, len(keys))
			for i := 0; i+1 < len(item.Content); i += 2 {
				key := item.Content[i].Value
				idx, ok := keyIdx[key]
				if !ok {
					idx = len(keys)
					keyIdx[key] = idx
					keys = append(keys, key)
				}
				for len(row) <= idx {
					row = append(row, "")
				}
				s, err := scalarText(item.Content[i+1])
				if err != nil {
					return table{}, err
				}
				row[idx] = s
			}
			t.rows = append(t.rows, row)
		default:
			s, err := scalarText(item)
			if err != nil {
				return table{}, err
			}
			t.rows = append(t.rows, []string{s})
		}
	}
	t.header = keys
	return t, nil
}

func scalarText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: cells must be scalar values", n.Line)
	}
	if n.ShortTag() == "!!null" {
		return "", nil
	}
	return n.Value, nil
}
