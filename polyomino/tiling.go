// Package polyomino reduces 2-D tiling of a rectangular board by a bag of
// polyomino pieces to an exact-cover instance, solves it via dlx, and
// decodes the result back into piece placements (spec §4.4).
package polyomino

import "github.com/kokoro-a/polyomino-tiling/dlx"

// Piece is a small rectangular 0/1 matrix; 1 marks an occupied cell.
type Piece = [][]int

// Placement is an H×W board-sized 0/1 matrix containing one rotated/mirrored
// copy of a piece at some position, with zeros elsewhere.
type Placement = [][]int

// PlacedPiece pairs a piece id with the placement chosen for it in a
// solution.
type PlacedPiece struct {
	PieceID   int
	Placement Placement
}

// Tiling describes a board-tiling problem: a W×H board and a bag of pieces,
// each of which must be placed exactly once such that every cell is covered
// exactly once.
type Tiling struct {
	Width, Height int
	Pieces        []Piece
}

// New constructs a Tiling for the given board dimensions and piece bag.
func New(width, height int, pieces []Piece) *Tiling {
	return &Tiling{Width: width, Height: height, Pieces: pieces}
}

// Solve finds one exact tiling of the board, or reports that none exists.
// It never raises: "no solution" is a normal result (spec §7). As a
// soundness-preserving optimization, Solve first checks that the pieces'
// total cell count equals the board's cell count (tilings conserve cells,
// so a mismatch can never have a solution) and short-circuits without
// building the exact-cover matrix at all (spec §4.4 "Preflight").
func (t *Tiling) Solve() ([]PlacedPiece, bool) {
	if t.totalPieceCells() != t.Width*t.Height {
		return nil, false
	}

	rows := t.encode()
	if len(rows) == 0 {
		// No pieces, or no orientation of any piece fits the board: an
		// empty board with no pieces is vacuously solved by zero placements;
		// anything else with nonzero area and no candidate rows cannot be
		// covered.
		if len(t.Pieces) == 0 && t.Width*t.Height == 0 {
			return nil, true
		}
		return nil, false
	}

	matrix, err := dlx.FromMatrix(rows, len(t.Pieces)+t.Width*t.Height)
	if err != nil {
		// rows are constructed internally with a uniform width; a mismatch
		// here is a programmer bug, not a caller-facing condition.
		panic(err)
	}

	rowIndices, ok := matrix.Solve()
	if !ok {
		return nil, false
	}

	placed, err := decode(rowIndices, rows, len(t.Pieces), t.Width, t.Height)
	if err != nil {
		panic(err)
	}
	return placed, true
}

func (t *Tiling) totalPieceCells() int {
	total := 0
	for _, piece := range t.Pieces {
		for _, row := range piece {
			for _, v := range row {
				total += v
			}
		}
	}
	return total
}
