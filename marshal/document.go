// SPDX-License-Identifier: MIT

package marshal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densecalc/matrix"
)

// Format selects a document encoding.
type Format string

const (
	// FormatText is the fixed-point row rendering of matrix.Dense.Format.
	// It is write-only.
	FormatText Format = "text"
	// FormatYAML encodes a Document as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes a Document as JSON.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for format names other than text, yaml and json.
var ErrUnknownFormat = errors.New("marshal: unknown format")

// ParseFormat maps a user-supplied name ("yml" included) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks JSON for *.json and YAML for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Document is the self-describing matrix form:
//
//	rows: 2
//	cols: 2
//	data:
//	  - [1, 2]
//	  - [3, 4]
//
// Rows and Cols are optional on input; when present they must agree with Data.
// In JSON, NaN and ±Inf cells are written as the strings "NaN", "+Inf" and
// "-Inf"; YAML uses its native .nan and .inf.
type Document struct {
	Rows int         `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols int         `yaml:"cols,omitempty" json:"cols,omitempty"`
	Data [][]float64 `yaml:"data" json:"data"`
}

// DocumentOf captures m as a Document with explicit shape.
func DocumentOf(m *matrix.Dense) Document {
	return Document{Rows: m.Rows(), Cols: m.Cols(), Data: m.RowSlices()}
}

// Matrix builds a Dense from the document, checking declared shape against Data.
func (d Document) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(d.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal: document: %w", err)
	}
	if (d.Rows != 0 && d.Rows != m.Rows()) || (d.Cols != 0 && d.Cols != m.Cols()) {
		return nil, fmt.Errorf("marshal: document declares %dx%d, data is %s: %w",
			d.Rows, d.Cols, DimsOf(m), matrix.ErrBadShape)
	}

	return m, nil
}

// jsonCell is a float64 whose JSON form is a number, or one of the strings
// "NaN", "+Inf" and "-Inf" for values JSON numbers cannot express.
type jsonCell float64

// MarshalJSON implements json.Marshaler.
func (c jsonCell) MarshalJSON() ([]byte, error) {
	v := float64(c)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))), nil
	}

	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler. Quoted cells accept anything
// strconv.ParseFloat does ("NaN", "Inf", "-inf", "1.5").
func (c *jsonCell) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w %q", ErrSyntax, s)
		}
		*c = jsonCell(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = jsonCell(v)

	return nil
}

// jsonDocument is Document with cells that survive NaN and ±Inf.
type jsonDocument struct {
	Rows int          `json:"rows,omitempty"`
	Cols int          `json:"cols,omitempty"`
	Data [][]jsonCell `json:"data"`
}

func toJSON(d Document) jsonDocument {
	out := jsonDocument{Rows: d.Rows, Cols: d.Cols, Data: make([][]jsonCell, len(d.Data))}
	for i, row := range d.Data {
		cells := make([]jsonCell, len(row))
		for j, v := range row {
			cells[j] = jsonCell(v)
		}
		out.Data[i] = cells
	}

	return out
}

func (j jsonDocument) document() Document {
	out := Document{Rows: j.Rows, Cols: j.Cols, Data: make([][]float64, len(j.Data))}
	for i, row := range j.Data {
		vals := make([]float64, len(row))
		for k, c := range row {
			vals[k] = float64(c)
		}
		out.Data[i] = vals
	}

	return out
}

// ReadDocument decodes a single YAML or JSON document from r.
func ReadDocument(r io.Reader, f Format) (*matrix.Dense, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("marshal: read yaml: %w", err)
		}
	case FormatJSON:
		var jd jsonDocument
		if err := json.NewDecoder(r).Decode(&jd); err != nil {
			return nil, fmt.Errorf("marshal: read json: %w", err)
		}
		doc = jd.document()
	default:
		return nil, fmt.Errorf("%w: cannot read %q", ErrUnknownFormat, f)
	}

	return doc.Matrix()
}

// WriteDocument writes m to w in the requested format.
// Text output uses m.Format(prec); prec is ignored for YAML and JSON.
func WriteDocument(w io.Writer, m *matrix.Dense, f Format, prec int) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintln(w, m.Format(prec))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(DocumentOf(m)); err != nil {
			return fmt.Errorf("marshal: write yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSON(DocumentOf(m))); err != nil {
			return fmt.Errorf("marshal: write json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot write %q", ErrUnknownFormat, f)
	}
}
