// Package dlx implements Knuth's Algorithm X over a sparse toroidal
// doubly-linked matrix ("dancing links") for the exact cover problem: given a
// 0/1 matrix, find a set of rows such that every column has exactly one 1
// among the selected rows.
package dlx

// Node is one cell of the sparse matrix: a 1 at (RowIndex, Column.Index).
// Root and column header nodes reuse this same struct via ColumnHeader's
// embedding, so the four links always point at a *Node regardless of
// whether the neighbour is a plain cell or a header.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnHeader
	RowIndex              int
}

// ColumnHeader anchors a column's vertical ring of cells and sits in the
// root's horizontal ring of headers.
type ColumnHeader struct {
	Node
	Size  int
	Index int
}

// newHeader returns a column header whose own ring pointers make it a
// self-contained circular list of one (required before it is linked to any
// neighbour).
func newHeader(index int) *ColumnHeader {
	h := &ColumnHeader{Index: index}
	h.Left = &h.Node
	h.Right = &h.Node
	h.Up = &h.Node
	h.Down = &h.Node
	h.Column = h
	return h
}

// linkRight inserts h immediately to the left of the root, i.e. at the right
// end of the header ring (spec §4.1 append_column).
func (h *ColumnHeader) linkRight(root *ColumnHeader) {
	last := root.Left
	h.Left = last
	h.Right = &root.Node
	last.Right = &h.Node
	root.Left = &h.Node
}

// appendCell links a new cell at the bottom of h's vertical ring, i.e.
// immediately above the head, so the head remains the earliest-added cell
// (spec §4.1 append_row).
func (h *ColumnHeader) appendCell(n *Node) {
	n.Column = h
	n.Down = &h.Node
	n.Up = h.Up
	h.Up.Down = n
	h.Up = n
	h.Size++
}
