package asciitable

import (
	"io"
	"iter"
)

// WriteIter collects items from seq and renders them like [Write]. The
// layout needs every row before the first line can be drawn, so nothing is
// written until seq is exhausted.
func WriteIter[T any](w io.Writer, cfg Config, seq iter.Seq[T]) error {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return Write(w, cfg, items...)
}

// WriteChan collects items from ch until it is closed and renders them.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, cfg Config, ch <-chan T) error {
	return WriteIter(w, cfg, chanToIter(ch))
}

// FormatIter collects rows from seq and renders them like [Format].
func FormatIter[T any](seq iter.Seq[[]T], cfg Config) string {
	var rows [][]T
	for row := range seq {
		rows = append(rows, row)
	}
	return Format(rows, cfg)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
