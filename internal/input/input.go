// Package input decodes ivtree YAML documents into sweep shapes and
// labelled interval trees.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ivtree/interval"
	"github.com/katalvlaran/ivtree/sweep"
)

// Sentinel errors for document decoding.
var (
	// ErrEmptyDocument indicates input with no YAML document at all.
	ErrEmptyDocument = errors.New("input: empty document")

	// ErrInvalidInterval indicates an interval entry with lo > hi.
	ErrInvalidInterval = errors.New("input: interval lo must not exceed hi")
)

// Document is the on-disk input format. Any section may be omitted.
type Document struct {
	Rectangles []Rectangle `yaml:"rectangles"`
	Segments   []Segment   `yaml:"segments"`
	Intervals  []Interval  `yaml:"intervals"`
}

// Point is an (x, y) pair.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rectangle is an axis-aligned rectangle with an ID.
type Rectangle struct {
	ID  int   `yaml:"id"`
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// Segment is a horizontal or vertical segment with an ID.
type Segment struct {
	ID   int   `yaml:"id"`
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Interval is a closed interval with a free-form label.
type Interval struct {
	Lo    int    `yaml:"lo"`
	Hi    int    `yaml:"hi"`
	Label string `yaml:"label"`
}

// Decode reads a single document from r, rejecting unknown fields.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("input: decode: %w", err)
	}

	for i, iv := range doc.Intervals {
		if iv.Lo > iv.Hi {
			return nil, fmt.Errorf("%w: intervals[%d] = [%d, %d]", ErrInvalidInterval, i, iv.Lo, iv.Hi)
		}
	}

	return &doc, nil
}

// LoadFile opens path and decodes it.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// SweepRectangles converts the rectangles section for sweep.RectangleIntersections.
func (d *Document) SweepRectangles() []sweep.Rectangle {
	out := make([]sweep.Rectangle, 0, len(d.Rectangles))
	for _, r := range d.Rectangles {
		out = append(out, sweep.Rectangle{
			ID:  r.ID,
			Min: sweep.Point{X: r.Min.X, Y: r.Min.Y},
			Max: sweep.Point{X: r.Max.X, Y: r.Max.Y},
		})
	}

	return out
}

// SweepSegments converts the segments section for sweep.OrthogonalIntersections.
func (d *Document) SweepSegments() []sweep.Segment {
	out := make([]sweep.Segment, 0, len(d.Segments))
	for _, s := range d.Segments {
		out = append(out, sweep.Segment{
			ID:   s.ID,
			From: sweep.Point{X: s.From.X, Y: s.From.Y},
			To:   sweep.Point{X: s.To.X, Y: s.To.Y},
		})
	}

	return out
}

// IntervalTree loads the intervals section into a tree keyed by [lo, hi].
// A later entry with the same bounds replaces the label of an earlier one.
func (d *Document) IntervalTree() (*interval.Tree[int, string], error) {
	t := interval.New[int, string]()
	for i, iv := range d.Intervals {
		if err := t.Put(iv.Lo, iv.Hi, iv.Label); err != nil {
			return nil, fmt.Errorf("%w: intervals[%d]: %w", ErrInvalidInterval, i, err)
		}
	}

	return t, nil
}
