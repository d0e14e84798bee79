// Package geometry enumerates the symmetry orientations of a polyomino piece
// and all board positions where each orientation fits (spec §4.3).
package geometry

// Rotate returns M rotated 90° clockwise. For an R×C input the output is
// C×R, following out[j][R-1-i] = M[i][j] (spec §9's resolved formula).
func Rotate(m [][]int) [][]int {
	r := len(m)
	if r == 0 {
		return nil
	}
	c := len(m[0])

	out := make([][]int, c)
	for j := range out {
		out[j] = make([]int, r)
	}
	for i := range r {
		for j := range c {
			out[j][r-1-i] = m[i][j]
		}
	}
	return out
}

// Mirror reflects M horizontally: each row is reversed.
func Mirror(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		mirrored := make([]int, len(row))
		for j, v := range row {
			mirrored[len(row)-1-j] = v
		}
		out[i] = mirrored
	}
	return out
}

// AllOrientations returns the 8 images of piece under the dihedral group of
// order 8: the 4 rotations of piece, and the same 4 rotations of its mirror.
// Duplicates among symmetric pieces are not deduplicated here — exact-cover
// constraints handle the redundancy correctly regardless (spec §4.3).
func AllOrientations(piece [][]int) [][][]int {
	rot1 := Rotate(piece)
	rot2 := Rotate(rot1)
	rot3 := Rotate(rot2)

	mirrored := Mirror(piece)
	mirrorRot1 := Rotate(mirrored)
	mirrorRot2 := Rotate(mirrorRot1)
	mirrorRot3 := Rotate(mirrorRot2)

	return [][][]int{
		piece, rot1, rot2, rot3,
		mirrored, mirrorRot1, mirrorRot2, mirrorRot3,
	}
}

// AllPlacements returns one H×W placement matrix for every fitting
// orientation of piece and every top-left offset at which that orientation
// lies on a W×H board. An empty
// piece yields a single all-zero placement; orientations that don't fit in
// any offset contribute nothing (spec §4.3).
func AllPlacements(piece [][]int, width, height int) [][][]int {
	if isEmpty(piece) {
		return [][][]int{newBoard(width, height)}
	}

	var placements [][][]int
	for _, orientation := range AllOrientations(piece) {
		placements = append(placements, placementsForOrientation(orientation, width, height)...)
	}
	return placements
}

func placementsForOrientation(orientation [][]int, width, height int) [][][]int {
	pieceHeight := len(orientation)
	pieceWidth := len(orientation[0])
	if pieceHeight > height || pieceWidth > width {
		return nil
	}

	var placements [][][]int
	for i := 0; i <= height-pieceHeight; i++ {
		for j := 0; j <= width-pieceWidth; j++ {
			board := newBoard(width, height)
			for r := range pieceHeight {
				for c := range pieceWidth {
					board[i+r][j+c] = orientation[r][c]
				}
			}
			placements = append(placements, board)
		}
	}
	return placements
}

func isEmpty(m [][]int) bool {
	return len(m) == 0 || len(m[0]) == 0
}

func newBoard(width, height int) [][]int {
	board := make([][]int, height)
	for i := range board {
		board[i] = make([]int, width)
	}
	return board
}
