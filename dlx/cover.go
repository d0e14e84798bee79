package dlx

// cover removes column h from the header ring and removes every row that
// intersects h from all other columns' vertical rings. Matched by exactly
// one uncover(h) per spec §4.1/§4.5.
func cover(h *ColumnHeader) {
	h.Right.Left = h.Left
	h.Left.Right = h.Right

	for i := h.Down; i != &h.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

// uncover is the exact inverse of cover: it must walk cells in the reverse
// order cover used, or the rings are not restored bit-identically (spec
// §4.1 "Ordering requirement").
func uncover(h *ColumnHeader) {
	for i := h.Up; i != &h.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	h.Right.Left = &h.Node
	h.Left.Right = &h.Node
}
