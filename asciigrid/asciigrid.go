// Package asciigrid converts between the ASCII board/piece notation used by
// CLI collaborators and the 0/1 matrices the core library operates on (spec
// §6). polyomino's named-piece registry also uses it to parse the
// predefined polyominoes' ASCII shapes.
package asciigrid

import "strings"

// ToMatrix converts an array of equal-length strings into a 0/1 matrix:
// '#' becomes 1, any other character becomes 0.
func ToMatrix(lines []string) [][]int {
	out := make([][]int, len(lines))
	for i, line := range lines {
		row := make([]int, len(line))
		for j, r := range line {
			if r == '#' {
				row[j] = 1
			}
		}
		out[i] = row
	}
	return out
}

// FromMatrix renders a 0/1 matrix as '#'/'.' rows, one string per row, with
// no trailing newline (the caller joins/prints as needed).
func FromMatrix(m [][]int) []string {
	out := make([]string, len(m))
	for i, row := range m {
		var b strings.Builder
		b.Grow(len(row))
		for _, v := range row {
			if v != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		out[i] = b.String()
	}
	return out
}
