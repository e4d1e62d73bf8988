// Package report renders sweep and query results for the ivtree CLI as
// go-pretty tables or YAML documents.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ivtree/interval"
	"github.com/katalvlaran/ivtree/sweep"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatTable renders a box-drawn table with a total footer.
	FormatTable Format = "table"
	// FormatYAML renders a YAML document.
	FormatYAML Format = "yaml"
)

// yamlIndent is the indentation used by the YAML encoder.
const yamlIndent = 2

// ErrUnknownFormat indicates an output format other than table or yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// pairDoc is the YAML shape of a pair listing.
type pairDoc struct {
	Total     int        `yaml:"total"`
	Truncated bool       `yaml:"truncated,omitempty"`
	Pairs     []pairItem `yaml:"pairs"`
}

type pairItem struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// entryDoc is the YAML shape of an interval listing.
type entryDoc struct {
	Total     int         `yaml:"total"`
	Truncated bool        `yaml:"truncated,omitempty"`
	Entries   []entryItem `yaml:"entries"`
}

type entryItem struct {
	Lo    int    `yaml:"lo"`
	Hi    int    `yaml:"hi"`
	Label string `yaml:"label"`
}

// Pairs writes pairs to w. maxRows > 0 limits the listed rows; the total
// always reflects every pair.
func Pairs(w io.Writer, pairs []sweep.Pair, format Format, maxRows int) error {
	shown := limit(pairs, maxRows)

	switch format {
	case FormatTable:
		tbl := newTable(w)
		tbl.AppendHeader(table.Row{"#", "A", "B"})
		for i, p := range shown {
			tbl.AppendRow(table.Row{i + 1, p.A, p.B})
		}
		tbl.AppendFooter(table.Row{"", "", totalLabel(len(pairs), len(shown))})
		tbl.Render()

		return nil
	case FormatYAML:
		doc := pairDoc{Total: len(pairs), Truncated: len(shown) < len(pairs), Pairs: make([]pairItem, 0, len(shown))}
		for _, p := range shown {
			doc.Pairs = append(doc.Pairs, pairItem{A: p.A, B: p.B})
		}

		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Entries writes labelled intervals to w with the same row limit as Pairs.
func Entries(w io.Writer, entries []interval.Entry[int, string], format Format, maxRows int) error {
	shown := limit(entries, maxRows)

	switch format {
	case FormatTable:
		tbl := newTable(w)
		tbl.AppendHeader(table.Row{"#", "Interval", "Label"})
		for i, e := range shown {
			tbl.AppendRow(table.Row{i + 1, e.Interval.String(), e.Value})
		}
		tbl.AppendFooter(table.Row{"", "", totalLabel(len(entries), len(shown))})
		tbl.Render()

		return nil
	case FormatYAML:
		doc := entryDoc{Total: len(entries), Truncated: len(shown) < len(entries), Entries: make([]entryItem, 0, len(shown))}
		for _, e := range shown {
			doc.Entries = append(doc.Entries, entryItem{Lo: e.Interval.Lo, Hi: e.Interval.Hi, Label: e.Value})
		}

		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}

func totalLabel(total, shown int) string {
	if shown < total {
		return fmt.Sprintf("Total: %d (showing %d)", total, shown)
	}

	return fmt.Sprintf("Total: %d", total)
}

func encodeYAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

func limit[T any](items []T, maxRows int) []T {
	if maxRows > 0 && len(items) > maxRows {
		return items[:maxRows]
	}

	return items
}
