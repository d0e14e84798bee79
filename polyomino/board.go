package polyomino

import (
	"errors"
	"fmt"
)

// ErrOverlap indicates two placements in a purported solution cover the same
// board cell. A correct dlx solution can never trigger this — composing a
// Board from Solve's own output is a post-condition check, not a path a
// caller-supplied bag of pieces can reach (spec §7 InvariantViolation).
var ErrOverlap = errors.New("polyomino: placements overlap")

// Board is the H×W "derived view" of a solved Tiling: each cell holds the
// piece id that covers it, or -1 if (in principle) uncovered.
type Board [][]int

// NewBoard overlays a list of placed pieces onto a width×height grid. It
// fails with ErrOverlap if two placements claim the same cell, which would
// mean the exact-cover solution was not actually exact.
func NewBoard(width, height int, placed []PlacedPiece) (Board, error) {
	board := make(Board, height)
	for i := range board {
		row := make([]int, width)
		for j := range row {
			row[j] = -1
		}
		board[i] = row
	}

	for _, p := range placed {
		for i, row := range p.Placement {
			for j, v := range row {
				if v == 0 {
					continue
				}
				if board[i][j] != -1 {
					return nil, fmt.Errorf("%w: cell (%d,%d) claimed by pieces %d and %d",
						ErrOverlap, i, j, board[i][j], p.PieceID)
				}
				board[i][j] = p.PieceID
			}
		}
	}
	return board, nil
}
