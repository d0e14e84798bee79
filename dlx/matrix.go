package dlx

// Matrix is a sparse toroidal doubly-linked matrix: the "dancing links"
// representation of a 0/1 exact-cover instance (spec §3).
type Matrix struct {
	root    *ColumnHeader
	columns []*ColumnHeader // construction order, for ToMatrix and column count
	rows    [][]*Node       // rows[r] holds r's cells in column order; nil/empty for an all-zero row
}

// NewMatrix creates an empty matrix with no columns and no rows.
func NewMatrix() *Matrix {
	root := newHeader(-1)
	return &Matrix{root: root}
}

// NumColumns reports the number of columns appended so far (live or
// currently covered).
func (m *Matrix) NumColumns() int {
	return len(m.columns)
}

// NumRows reports the number of rows appended so far.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// AppendColumn inserts a new column header at the right end of the header
// ring (spec §4.1).
func (m *Matrix) AppendColumn() {
	h := newHeader(len(m.columns))
	h.linkRight(m.root)
	m.columns = append(m.columns, h)
}

// AppendRow appends one 0/1 row. len(row) must equal NumColumns(); a
// wrong-length row is rejected with ErrShapeMismatch and the matrix is left
// unchanged.
func (m *Matrix) AppendRow(row []int) error {
	if len(row) != len(m.columns) {
		return ErrShapeMismatch
	}

	rowIndex := len(m.rows)
	var cells []*Node
	for col, v := range row {
		if v == 0 {
			continue
		}
		n := &Node{RowIndex: rowIndex}
		m.columns[col].appendCell(n)
		cells = append(cells, n)
	}
	linkRowRing(cells)
	m.rows = append(m.rows, cells)
	return nil
}

// linkRowRing links cells into one circular horizontal ring in column order.
// The first cell starts self-looped; every subsequent cell is inserted to
// its left (spec §9's resolved ambiguity).
func linkRowRing(cells []*Node) {
	if len(cells) == 0 {
		return
	}
	first := cells[0]
	first.Left = first
	first.Right = first
	for _, n := range cells[1:] {
		last := first.Left
		n.Left = last
		n.Right = first
		last.Right = n
		first.Left = n
	}
}

// FromMatrix builds a Matrix from a dense 0/1 matrix with nCols columns. It
// fails with ErrShapeMismatch if any row's length differs from nCols.
func FromMatrix(rows [][]int, nCols int) (*Matrix, error) {
	m := NewMatrix()
	for range nCols {
		m.AppendColumn()
	}
	for _, row := range rows {
		if err := m.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ToMatrix reconstructs the current *live* matrix as a dense 0/1 matrix:
// covered columns contribute no 1s, and rows whose cells were all covered
// away read as all-zero. Column order always matches the original column
// indices regardless of the current header-ring order.
func (m *Matrix) ToMatrix() [][]int {
	out := make([][]int, len(m.rows))
	for i := range out {
		out[i] = make([]int, len(m.columns))
	}

	for col := m.root.Right; col != &m.root.Node; col = col.Right {
		h := col.Column
		for n := h.Down; n != &h.Node; n = n.Down {
			out[n.RowIndex][h.Index] = 1
		}
	}
	return out
}
