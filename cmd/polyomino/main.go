// Command polyomino reads a board width/height and a bag of named
// polyomino pieces, solves the tiling, and prints the result. Exit codes
// follow spec §6: 0 solution printed, 1 no solution, 2 invalid input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kokoro-a/polyomino-tiling/asciigrid"
	"github.com/kokoro-a/polyomino-tiling/polyomino"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(in *os.File, out *os.File) int {
	if isTerminal(in) {
		fmt.Fprintln(out, "Enter: width height, then one piece name per remaining line.")
		fmt.Fprintf(out, "Known pieces: %s\n", strings.Join(polyomino.NamedNames(), " "))
		fmt.Fprintln(out, "(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	width, height, pieceNames, err := readProblem(in)
	if err != nil {
		color.New(color.FgHiRed).Fprintf(out, "invalid input: %v\n", err)
		return 2
	}

	pieces := make([]polyomino.Piece, 0, len(pieceNames))
	for _, name := range pieceNames {
		piece, err := polyomino.Named(name)
		if err != nil {
			color.New(color.FgHiRed).Fprintf(out, "invalid input: %v\n", err)
			return 2
		}
		pieces = append(pieces, piece)
	}

	tiling := polyomino.New(width, height, pieces)
	placed, ok := tiling.Solve()
	if !ok {
		color.New(color.FgHiRed).Fprintln(out, "No solution.")
		return 1
	}

	board, err := polyomino.NewBoard(width, height, placed)
	if err != nil {
		color.New(color.FgHiRed).Fprintf(out, "invalid input: %v\n", err)
		return 2
	}

	color.New(color.FgHiWhite).Fprintln(out, "Solution:")
	printBoard(out, board, len(pieces))
	return 0
}

func readProblem(in *os.File) (width, height int, pieceNames []string, err error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return 0, 0, nil, fmt.Errorf("missing dimensions line")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return 0, 0, nil, fmt.Errorf("dimensions line must be \"width height\"")
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("bad width: %w", err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("bad height: %w", err)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pieceNames = append(pieceNames, line)
	}
	return width, height, pieceNames, scanner.Err()
}

// printBoard colors each cell by piece id, cycling through the palette
// for boards with more pieces than colors.
func printBoard(out *os.File, board polyomino.Board, nPieces int) {
	palette := []color.Attribute{
		color.FgHiRed, color.FgHiGreen, color.FgHiYellow,
		color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan,
	}
	m := make([][]int, len(board))
	for i, row := range board {
		m[i] = make([]int, len(row))
		for j, v := range row {
			if v >= 0 {
				m[i][j] = 1
			}
		}
	}
	lines := asciigrid.FromMatrix(m)
	for i, line := range lines {
		for j, ch := range line {
			id := board[i][j]
			if id < 0 {
				fmt.Fprint(out, ".")
				continue
			}
			c := color.New(palette[id%len(palette)])
			c.Fprintf(out, "%c", ch)
		}
		fmt.Fprintln(out)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
