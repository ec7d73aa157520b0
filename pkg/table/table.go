// SPDX-License-Identifier: MPL-2.0

// Package table renders rows of text in aligned columns through a Prompt.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"conch/pkg/prompt"
)

const (
	// WrapTruncate cuts cell values that exceed the column width.
	WrapTruncate WrapPolicy = iota
	// WrapWrap flows cell values that exceed the column width onto
	// additional lines.
	WrapWrap
)

const (
	// AlignLeft pads cell values on the right.
	AlignLeft Alignment = iota
	// AlignRight pads cell values on the left.
	AlignRight
	// AlignCenter pads cell values on both sides.
	AlignCenter
)

// ErrInvalidSettings is the sentinel error wrapped by InvalidSettingsError.
var ErrInvalidSettings = errors.New("invalid table settings")

// All type declarations consolidated in a single block.
type (
	// WrapPolicy controls what happens to cell values wider than their
	// column.
	WrapPolicy int

	// Alignment controls how cell values are padded within their column.
	Alignment int

	// InvalidSettingsError is returned by Render when the table's settings
	// are inconsistent.
	InvalidSettingsError struct {
		Reason string
	}

	// Table renders rows of cells through a prompt. Configure the exported
	// fields before calling Render; zero values give a left-aligned,
	// truncating table sized to the terminal with evenly split columns.
	Table struct {
		NumCols int

		// ColWidths fixes each column's width. When nil the table width,
		// separators deducted, is split evenly and the remainder dropped.
		ColWidths []int

		// TableWidth fixes the overall width; zero means the terminal
		// width.
		TableWidth int

		WrapPolicy       WrapPolicy
		ColSeparator     string
		ColAlignments    []Alignment
		HeaderAlignments []Alignment

		// HeaderDividerTick is repeated across the table width below the
		// header row.
		HeaderDividerTick string

		HeaderStyle *lipgloss.Style
		RowStyles   []lipgloss.Style

		// ColorSeparators styles the separators along with the cell text.
		ColorSeparators bool

		prompt *prompt.Prompt
	}

	// cell holds one cell's lines after the wrap policy has been applied.
	cell []string
)

// Error implements the error interface.
func (e *InvalidSettingsError) Error() string {
	return "invalid table settings: " + e.Reason
}

// Unwrap returns ErrInvalidSettings so callers can use errors.Is for programmatic detection.
func (e *InvalidSettingsError) Unwrap() error { return ErrInvalidSettings }

// New creates a table with the given number of columns writing through p.
func New(p *prompt.Prompt, numCols int) *Table {
	return &Table{
		NumCols:           numCols,
		ColSeparator:      " ",
		HeaderDividerTick: "=",
		ColorSeparators:   true,
		prompt:            p,
	}
}

// Render writes the rows, preceded by the headers and a divider when
// headers is non-nil. Settings are validated on every call since the
// exported fields may have changed.
func (t *Table) Render(rows [][]string, headers []string) error {
	tableWidth, colWidths := t.calculateWidths()
	if err := t.validate(tableWidth, colWidths); err != nil {
		return err
	}

	if headers != nil {
		t.renderRow(t.parseCells(headers, colWidths), colWidths, t.HeaderStyle, t.HeaderAlignments)
		t.prompt.Write(strings.Repeat(t.HeaderDividerTick, tableWidth), prompt.SkipWrap())
	}

	for i, row := range rows {
		var style *lipgloss.Style
		if len(t.RowStyles) > 0 {
			style = &t.RowStyles[i%len(t.RowStyles)]
		}
		t.renderRow(t.parseCells(row, colWidths), colWidths, style, t.ColAlignments)
	}
	return nil
}

func (t *Table) validate(tableWidth int, colWidths []int) error {
	if t.NumCols < 1 {
		return &InvalidSettingsError{Reason: "number of columns must be greater than 0"}
	}
	if t.WrapPolicy != WrapTruncate && t.WrapPolicy != WrapWrap {
		return &InvalidSettingsError{Reason: "unknown wrap policy"}
	}
	if t.ColAlignments != nil && len(t.ColAlignments) != t.NumCols {
		return &InvalidSettingsError{Reason: "one column alignment must be specified for each column"}
	}
	if t.HeaderAlignments != nil && len(t.HeaderAlignments) != t.NumCols {
		return &InvalidSettingsError{Reason: "one header alignment must be specified for each column"}
	}
	if len(colWidths) != t.NumCols {
		return &InvalidSettingsError{
			Reason: fmt.Sprintf("number of columns [%d] must equal the number of column widths specified [%d]", t.NumCols, len(colWidths)),
		}
	}

	total := 0
	for _, w := range colWidths {
		total += w
	}
	if total > tableWidth {
		return &InvalidSettingsError{Reason: "sum of column widths must not exceed the table width"}
	}
	return nil
}

// calculateWidths resolves the table width and the width of each column.
func (t *Table) calculateWidths() (int, []int) {
	tableWidth := t.TableWidth
	if tableWidth == 0 {
		tableWidth, _ = t.prompt.TerminalSize()
	}

	colWidths := t.ColWidths
	if colWidths == nil {
		minusSeparators := tableWidth - (t.NumCols-1)*len(t.ColSeparator)
		colWidths = make([]int, t.NumCols)
		for i := range colWidths {
			colWidths[i] = minusSeparators / t.NumCols
		}
	}

	// Shrink the table width to the columns it actually holds.
	total := len(t.ColSeparator) * (len(colWidths) - 1)
	for _, w := range colWidths {
		total += w
	}
	return min(tableWidth, total), colWidths
}

// parseCells applies the wrap policy to each value of a row. Cells beyond
// the declared columns are ignored.
func (t *Table) parseCells(row []string, colWidths []int) []cell {
	if len(row) > len(colWidths) {
		row = row[:len(colWidths)]
	}
	cells := make([]cell, len(row))
	for i, text := range row {
		width := colWidths[i]
		if t.WrapPolicy == WrapTruncate {
			if runes := []rune(text); len(runes) > width {
				text = string(runes[:width])
			}
			cells[i] = cell{text}
			continue
		}
		cells[i] = strings.Split(t.prompt.Wrap(text, width, 0), "\n")
	}
	return cells
}

// renderRow writes a row of cells line by line until every cell's content
// is exhausted; cells with fewer lines pad out with spaces.
func (t *Table) renderRow(cells []cell, colWidths []int, style *lipgloss.Style, alignments []Alignment) {
	for line := 0; ; line++ {
		more := false
		for _, c := range cells {
			if line < len(c) {
				more = true
				break
			}
		}
		if !more {
			break
		}

		for i, c := range cells {
			width := colWidths[i]

			var text string
			if line >= len(c) {
				text = strings.Repeat(" ", width)
			} else {
				alignment := AlignLeft
				if alignments != nil {
					alignment = alignments[i]
				}
				text = align(c[line], width, alignment)
				if style != nil && !t.ColorSeparators {
					text = t.prompt.Color(text, *style)
				}
			}

			if i < len(cells)-1 {
				text += t.ColSeparator
			}
			if style != nil && t.ColorSeparators {
				text = t.prompt.Color(text, *style)
			}
			t.prompt.Write(text, prompt.NoNewline(), prompt.SkipWrap())
		}
		t.prompt.Write("", prompt.SkipWrap())
	}
}

func align(text string, width int, alignment Alignment) string {
	padding := width - ansi.PrintableRuneWidth(text)
	if padding <= 0 {
		return text
	}
	switch alignment {
	case AlignRight:
		return strings.Repeat(" ", padding) + text
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
