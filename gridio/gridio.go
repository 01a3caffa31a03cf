package gridio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

var (
	// ErrNoCells indicates a document with neither rows nor cells.
	ErrNoCells = errors.New("gridio: document has no rows or cells")
	// ErrBothForms indicates a document that sets both rows and cells.
	ErrBothForms = errors.New("gridio: document sets both rows and cells")
	// ErrBadSymbol indicates a rows character other than 1 . 0 #.
	ErrBadSymbol = errors.New("gridio: unknown cell symbol")
	// ErrBadStart indicates a start that is not a [row, col] pair.
	ErrBadStart = errors.New("gridio: start must be [row, col]")
)

// Document is the on-disk form of a grid and its traversal start.
type Document struct {
	Name  string   `yaml:"name,omitempty"`
	Start []int    `yaml:"start,omitempty,flow"`
	Rows  []string `yaml:"rows,omitempty"`
	Cells [][]int  `yaml:"cells,omitempty"`
}

// NewDocument captures g in rows form with the given start.
func NewDocument(name string, g *gridgraph.Grid, start gridgraph.Coordinate) *Document {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	return &Document{
		Name:  name,
		Start: []int{start.Row, start.Col},
		Rows:  rows,
	}
}

// Decode parses and validates a YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCells
		}
		return nil, fmt.Errorf("gridio: failed to parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gridio: failed to encode document: %w", err)
	}
	return enc.Close()
}

// Save writes doc to path, creating or truncating the file.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: failed to create %s: %w", path, err)
	}
	if err := Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Validate checks the document shape without building the grid.
func (d *Document) Validate() error {
	switch {
	case len(d.Rows) == 0 && len(d.Cells) == 0:
		return ErrNoCells
	case len(d.Rows) > 0 && len(d.Cells) > 0:
		return ErrBothForms
	case len(d.Start) != 0 && len(d.Start) != 2:
		return fmt.Errorf("%w: got %v", ErrBadStart, d.Start)
	}
	return nil
}

// StartCoordinate returns the start cell, (0, 0) when omitted.
func (d *Document) StartCoordinate() gridgraph.Coordinate {
	if len(d.Start) != 2 {
		return gridgraph.Coordinate{}
	}
	return gridgraph.At(d.Start[0], d.Start[1])
}

// Grid builds the immutable grid described by the document.
func (d *Document) Grid() (*gridgraph.Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(d.Cells) > 0 {
		return gridgraph.From2D(d.Cells)
	}

	values := make([][]int, len(d.Rows))
	for r, line := range d.Rows {
		values[r] = make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '1', '.':
				values[r] = append(values[r], 1)
			case '0', '#':
				values[r] = append(values[r], 0)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadSymbol, ch, r, c)
			}
		}
	}
	return gridgraph.From2D(values)
}
