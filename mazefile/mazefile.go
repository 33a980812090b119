// Package mazefile reads and writes mazes in the plain text format:
//
//	3 4
//	0111
//	0000
//	1110
//	0 0
//	2 3
//
// The first line holds the number of rows and columns. One line per row
// follows, with '0' for a free cell and '1' for a wall. The last two pairs
// are the start and exit coordinates, counted from zero.
package mazefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

const (
	freeChar = '0'
	wallChar = '1'

	maxPreallocRows = 256
)

var (
	ErrMalformedHeader = errors.New("malformed size header")
	ErrTooLarge        = errors.New("maze is too large")
	ErrMissingRow      = errors.New("missing maze row")
	ErrRaggedRow       = errors.New("maze row has the wrong length")
	ErrBadCell         = errors.New("invalid maze cell")
	ErrMalformedCoord  = errors.New("malformed coordinate")
)

// ReadOptions tunes how strictly a maze file is read.
type ReadOptions struct {
	// MaxDimension rejects files declaring more rows or columns. Zero means no limit.
	MaxDimension int
}

// Grid is the read-only view of a maze needed to write it back out.
type Grid interface {
	NumRows() int
	NumCols() int
	HasWallAt(maze.Coord) (bool, error)
	EntryLoc() maze.Coord
	ExitLoc() maze.Coord
}

// ReadFile uses Read to load a maze from the named file.
func ReadFile(path string, opts ReadOptions) (*maze.Maze, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file: %w", err)
	}
	return Read(bytes.NewReader(bs), opts)
}

// Parse uses Read to load a maze held in a string.
func Parse(raw string, opts ReadOptions) (*maze.Maze, error) {
	return Read(strings.NewReader(raw), opts)
}

// Read parses a maze description from r and builds the maze. Every problem
// with the input is reported as an error naming the offending line.
func Read(r io.Reader, opts ReadOptions) (*maze.Maze, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	rows, cols, err := readHeader(lr, opts)
	if err != nil {
		return nil, err
	}

	// rows come from untrusted input, so the grid grows as rows are read
	grid := make([][]bool, 0, min(rows, maxPreallocRows))
	for i := 0; i < rows; i++ {
		line, ok := lr.next()
		if !ok {
			if err := lr.err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrMissingRow, i, rows)
		}
		row, err := parseRow(line, cols, lr.lineNo)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	coords, err := readCoords(lr)
	if err != nil {
		return nil, err
	}

	return maze.New(grid, coords[0], coords[1])
}

func readHeader(lr *lineReader, opts ReadOptions) (int, int, error) {
	line, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d: want \"rows cols\", got %q", ErrMalformedHeader, lr.lineNo, line)
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: line %d: invalid row count %q", ErrMalformedHeader, lr.lineNo, fields[0])
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: line %d: invalid column count %q", ErrMalformedHeader, lr.lineNo, fields[1])
	}
	if opts.MaxDimension > 0 && max(rows, cols) > opts.MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, rows, cols, opts.MaxDimension)
	}

	return rows, cols, nil
}

func parseRow(line string, cols, lineNo int) ([]bool, error) {
	if len(line) != cols {
		return nil, fmt.Errorf("%w: line %d: got %d cells, want %d", ErrRaggedRow, lineNo, len(line), cols)
	}

	row := make([]bool, cols)
	for j := 0; j < len(line); j++ {
		switch line[j] {
		case freeChar:
			row[j] = maze.Free
		case wallChar:
			row[j] = maze.Wall
		default:
			return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadCell, lineNo, j+1, line[j])
		}
	}
	return row, nil
}

// readCoords reads the start and exit pairs, which may share a line.
func readCoords(lr *lineReader) ([2]maze.Coord, error) {
	var nums []int
	for len(nums) < 4 {
		line, ok := lr.next()
		if !ok {
			if err := lr.err(); err != nil {
				return [2]maze.Coord{}, err
			}
			return [2]maze.Coord{}, fmt.Errorf("%w: want start and exit coordinates, got %d numbers", ErrMalformedCoord, len(nums))
		}
		for _, f := range strings.Fields(line) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return [2]maze.Coord{}, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedCoord, lr.lineNo, f)
			}
			nums = append(nums, n)
		}
	}
	if len(nums) > 4 {
		return [2]maze.Coord{}, fmt.Errorf("%w: line %d: too many numbers", ErrMalformedCoord, lr.lineNo)
	}
	if line, ok := lr.next(); ok {
		return [2]maze.Coord{}, fmt.Errorf("%w: line %d: unexpected trailing content %q", ErrMalformedCoord, lr.lineNo, line)
	}

	return [2]maze.Coord{maze.NewCoord(nums[0], nums[1]), maze.NewCoord(nums[2], nums[3])}, nil
}

// Write writes g in the same format Read accepts.
func Write(w io.Writer, g Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.NumRows(), g.NumCols())

	line := make([]byte, g.NumCols())
	for r := 0; r < g.NumRows(); r++ {
		for c := range line {
			wall, err := g.HasWallAt(maze.NewCoord(r, c))
			if err != nil {
				return err
			}
			line[c] = freeChar
			if wall {
				line[c] = wallChar
			}
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}

	start, exit := g.EntryLoc(), g.ExitLoc()
	fmt.Fprintf(bw, "%d %d\n%d %d\n", start.Row(), start.Col(), exit.Row(), exit.Col())
	return bw.Flush()
}

// Format returns the text form of g.
func Format(g Grid) (string, error) {
	var b strings.Builder
	if err := Write(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

// lineReader hands out trimmed, non-blank lines and tracks line numbers.
type lineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(lr.sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}
