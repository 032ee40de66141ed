// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"strings"

	"github.com/jeranaias/memoex/internal/util"
)

// Column describes one table column: its header label and fixed width
// in terminal cells. Truncate marks path columns, whose values switch
// to a "..." tail once they come within three cells of the width.
type Column struct {
	Name     string
	Width    int
	Truncate bool
}

// Columns is the static column layout, immutable for the process
// lifetime. Widths match the rendered cell content exactly; borders and
// padding are added around them.
var Columns = [5]Column{
	{Name: "Date", Width: 19},
	{Name: "Duration", Width: 11},
	{Name: "Old Path", Width: 32, Truncate: true},
	{Name: "New Path", Width: 60, Truncate: true},
	{Name: "Status", Width: 12},
}

// NumColumns is the number of cells expected by Row.
const NumColumns = len(Columns)

// Renderer produces the header, body and footer lines of the export
// table as strings. It holds no mutable state and is safe to share.
type Renderer struct {
	cols [NumColumns]Column
}

// NewRenderer returns a Renderer over the static column layout.
func NewRenderer() *Renderer {
	return &Renderer{cols: Columns}
}

// Top renders the top border line.
func (r *Renderer) Top() string {
	return r.border("┌─", "─┬─", "─┐")
}

// Header renders the column-name row.
func (r *Renderer) Header() string {
	var cells [NumColumns]string
	for i, c := range r.cols {
		cells[i] = c.Name
	}
	return r.Row(cells)
}

// Separator renders the line between the header and the body.
func (r *Renderer) Separator() string {
	return r.border("├─", "─┼─", "─┤")
}

// Bottom renders the bottom border line.
func (r *Renderer) Bottom() string {
	return r.border("└─", "─┴─", "─┘")
}

// Row renders one body row from five cell values. Each cell is
// normalized to its column width: padded when it fits, left-truncated
// with a "..." prefix otherwise. Path columns force the tail form as
// soon as the value nears the column width.
func (r *Renderer) Row(cells [NumColumns]string) string {
	out := make([]string, NumColumns)
	for i, c := range r.cols {
		out[i] = cell(cells[i], c)
	}
	return "│ " + strings.Join(out, " │ ") + " │"
}

// Width returns the total display width of a rendered line.
func (r *Renderer) Width() int {
	w := 4 // outer "│ " and " │"
	for i, c := range r.cols {
		if i > 0 {
			w += 3 // " │ "
		}
		w += c.Width
	}
	return w
}

func (r *Renderer) border(left, mid, right string) string {
	parts := make([]string, NumColumns)
	for i, c := range r.cols {
		parts[i] = strings.Repeat("─", c.Width)
	}
	return left + strings.Join(parts, mid) + right
}

// cell normalizes a value to exactly the column width. Truncate
// columns keep the rightmost Width-3 cells behind a "..." prefix once
// the value reaches that length, so a path never fills the cell edge
// to edge without its tail marker.
func cell(s string, c Column) string {
	if c.Truncate && util.StringWidth(s) >= c.Width-3 {
		return util.TailEllipsis(s, c.Width-3)
	}
	if util.StringWidth(s) <= c.Width {
		return util.PadRight(s, c.Width)
	}
	return util.TruncateLeft(s, c.Width)
}
