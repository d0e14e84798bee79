package polyomino

import (
	"errors"
	"fmt"

	"github.com/kokoro-a/polyomino-tiling/geometry"
)

// ErrDecode is returned when a solver row references a piece-id column with
// no 1 in its one-hot prefix — corruption, since every encoded row has
// exactly one (spec §7 DecodeError).
var ErrDecode = errors.New("polyomino: decode error: row has no piece id")

// encode reduces the tiling problem to an exact-cover matrix: P + W*H
// columns (P piece-selection constraints, W*H board-cell constraints), one
// row per (piece, placement) pair. The first P entries of a row are a
// one-hot encoding of the piece id; the next W*H are the flattened
// placement in row-major order (spec §4.4).
func (t *Tiling) encode() [][]int {
	nPieces := len(t.Pieces)
	var rows [][]int

	for pieceID, piece := range t.Pieces {
		for _, placement := range geometry.AllPlacements(piece, t.Width, t.Height) {
			row := make([]int, nPieces+t.Width*t.Height)
			row[pieceID] = 1
			copy(row[nPieces:], flatten(placement))
			rows = append(rows, row)
		}
	}
	return rows
}

func flatten(m [][]int) []int {
	var out []int
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}

// decode maps solver row indices back to (piece-id, placement) pairs: for
// each selected row it recovers the piece id from the row's one-hot prefix
// via DecodeOneHot and reshapes the remainder into an H×W placement (spec
// §4.4). A prefix with no 1 set is corruption and fails with ErrDecode.
func decode(rowIndices []int, rows [][]int, nPieces, width, height int) ([]PlacedPiece, error) {
	placed := make([]PlacedPiece, 0, len(rowIndices))
	for _, idx := range rowIndices {
		if idx < 0 || idx >= len(rows) {
			return nil, fmt.Errorf("%w: row index %d out of range", ErrDecode, idx)
		}
		row := rows[idx]

		pieceID, err := DecodeOneHot(row[:nPieces])
		if err != nil {
			return nil, err
		}

		placement := make(Placement, height)
		suffix := row[nPieces:]
		for i := range height {
			placement[i] = append([]int(nil), suffix[i*width:(i+1)*width]...)
		}

		placed = append(placed, PlacedPiece{PieceID: pieceID, Placement: placement})
	}
	return placed, nil
}

// DecodeOneHot returns the index of the single 1 in a one-hot-encoded
// prefix, or ErrDecode if none is set. Exported so a caller decoding a raw
// exact-cover row (rather than going through Tiling.Solve) can reuse the
// same check spec §4.4 describes.
func DecodeOneHot(prefix []int) (int, error) {
	for i, v := range prefix {
		if v == 1 {
			return i, nil
		}
	}
	return 0, ErrDecode
}
