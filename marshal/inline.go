// SPDX-License-Identifier: MIT

package marshal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/densecalc/matrix"
)

// ErrSyntax is returned when an inline literal contains a token that is not a number.
var ErrSyntax = errors.New("marshal: invalid number")

const (
	rowSeparators  = ";\n"
	cellSeparators = ", \t\r"
)

// ParseInline parses a literal such as "1,2;3,4" (rows split by ';' or a
// newline, cells by ',' or whitespace) into a Dense.
// Blank rows are skipped; jagged rows fail with matrix.ErrBadShape and an
// empty literal with matrix.ErrInvalidDimensions.
func ParseInline(s string) (*matrix.Dense, error) {
	rawRows := strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(rowSeparators, r) })
	rows := make([][]float64, 0, len(rawRows))
	for _, raw := range rawRows {
		cells := strings.FieldsFunc(raw, func(r rune) bool { return strings.ContainsRune(cellSeparators, r) })
		if len(cells) == 0 {
			continue
		}
		row := make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q in row %d", ErrSyntax, cell, len(rows))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal: parse inline: %w", err)
	}

	return m, nil
}
