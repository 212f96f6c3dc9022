// Package gridio formats and parses the fixed-size grid representations
// used by the N-Queens and Sudoku examples: Sudoku's digit-string puzzle
// format and both examples' Unicode box-drawing board renderings.
//
// Neither concern belongs in pkg/csp — the engine only ever sees integer
// variable/value indices — but both examples need the same two box-
// drawing conventions, so the formatting lives here once instead of
// twice.
package gridio

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SudokuSize is the fixed board dimension every Sudoku grid in this
// package assumes.
const SudokuSize = 9

// ParseSudokuLine parses an 81-character digit string into a row-major
// grid, where '0' means an unknown cell and '1'..'9' are givens. That
// encoding — 0 as unknown, 1..9 as given — holds everywhere a grid
// crosses an I/O boundary in this repository.
func ParseSudokuLine(s string) ([SudokuSize * SudokuSize]int, error) {
	var grid [SudokuSize * SudokuSize]int
	s = strings.TrimSpace(s)
	if len(s) != len(grid) {
		return grid, fmt.Errorf("gridio: sudoku line must be %d characters, got %d", len(grid), len(s))
	}
	for i, r := range s {
		if r < '0' || r > '9' {
			return grid, fmt.Errorf("gridio: invalid character %q at position %d", r, i)
		}
		grid[i] = int(r - '0')
	}
	return grid, nil
}

// FormatSudokuLine is the inverse of ParseSudokuLine.
func FormatSudokuLine(grid [SudokuSize * SudokuSize]int) string {
	var b strings.Builder
	for _, v := range grid {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// WriteSudokuBinary writes a grid in the binary puzzle format: 81
// consecutive little-endian 64-bit words, row-major, 0 for unknown
// cells and 1..9 for givens.
func WriteSudokuBinary(w io.Writer, grid [SudokuSize * SudokuSize]int) error {
	var buf [8 * SudokuSize * SudokuSize]byte
	for i, v := range grid {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	_, err := w.Write(buf[:])
	return err
}

// ReadSudokuBinary is the inverse of WriteSudokuBinary.
func ReadSudokuBinary(r io.Reader) ([SudokuSize * SudokuSize]int, error) {
	var grid [SudokuSize * SudokuSize]int
	var buf [8 * SudokuSize * SudokuSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return grid, fmt.Errorf("gridio: reading binary sudoku: %w", err)
	}
	for i := range grid {
		v := binary.LittleEndian.Uint64(buf[i*8:])
		if v > 9 {
			return grid, fmt.Errorf("gridio: invalid cell value %d at position %d", v, i)
		}
		grid[i] = int(v)
	}
	return grid, nil
}

// FormatSudokuBoard renders a grid as a boxed 9x9 table, blank cells for
// 0.
func FormatSudokuBoard(grid [SudokuSize * SudokuSize]int) string {
	var b strings.Builder
	b.WriteString("┌─────────┬─────────┬─────────┐\n")
	for row := 0; row < SudokuSize; row++ {
		b.WriteString("│")
		for col := 0; col < SudokuSize; col++ {
			v := grid[row*SudokuSize+col]
			if v == 0 {
				b.WriteString("  ")
			} else {
				fmt.Fprintf(&b, " %d", v)
			}
			if col%3 == 2 {
				b.WriteString(" │")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
		if row%3 == 2 && row != SudokuSize-1 {
			b.WriteString("├─────────┼─────────┼─────────┤\n")
		}
	}
	b.WriteString("└─────────┴─────────┴─────────┘\n")
	return b.String()
}

// FormatQueensBoard renders an n-queens placement (queens[col] = row) as
// a boxed n×n table.
func FormatQueensBoard(queens []int) string {
	n := len(queens)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	writeRule := func(left, mid, right string) {
		b.WriteString(left)
		for i := 0; i < n-1; i++ {
			b.WriteString("───")
			b.WriteString(mid)
		}
		b.WriteString("───")
		b.WriteString(right)
		b.WriteString("\n")
	}
	writeRule("┌", "┬", "┐")
	for row := 0; row < n; row++ {
		b.WriteString("│")
		for col := 0; col < n; col++ {
			if queens[col] == row {
				b.WriteString(" ♛ │")
			} else {
				b.WriteString("   │")
			}
		}
		b.WriteString("\n")
		if row != n-1 {
			writeRule("├", "┼", "┤")
		}
	}
	writeRule("└", "┴", "┘")
	return b.String()
}
