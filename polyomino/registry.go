package polyomino

import (
	"fmt"

	"github.com/kokoro-a/polyomino-tiling/asciigrid"
)

// ErrUnknownPiece is returned by Named for a name not in the predefined
// registry (spec §7 UnknownPiece).
var ErrUnknownPiece = fmt.Errorf("polyomino: unknown piece name")

var predefined = map[string][]string{
	"L": {"###", "#..", "#.."},
	"l": {"####", "#..."},
	"I": {"#####"},
	"C": {"##", "#.", "##"},
	"S": {".##", ".#.", "##."},
	"s": {".###", "##.."},
	"X": {".#.", "###", ".#."},
	"F": {"##.", ".##", ".#."},
	"T": {"###", ".#.", ".#."},
	"t": {"####", ".#.."},
	"M": {".##", "##.", "#.."},
	"b": {"#.", "##", "##"},
}

// Named looks up one of the predefined polyominoes by its single-letter
// name, returning ErrUnknownPiece for anything not in the table.
func Named(name string) (Piece, error) {
	lines, ok := predefined[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, name)
	}
	return asciigrid.ToMatrix(lines), nil
}

// NamedNames returns the registry's piece names in a stable order, for
// collaborators that enumerate the catalog (e.g. the prompt of
// cmd/polyomino).
func NamedNames() []string {
	return []string{"L", "l", "I", "C", "S", "s", "X", "F", "T", "t", "M", "b"}
}
