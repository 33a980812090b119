package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/maze/wilson"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
	"github.com/urfave/cli/v2"
)

func (r *runner) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write a random perfect maze in maze file format",
		Description: `Carves a maze of ROWS x COLS rooms with Wilson's algorithm. Rooms sit on
even coordinates of the written grid, so the file has 2*ROWS-1 rows and
2*COLS-1 columns. The start is the top-left cell and the exit the
bottom-right one.`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Usage: "Number of room rows", Required: true},
			&cli.IntFlag{Name: "cols", Usage: "Number of room columns", Required: true},
			&cli.Int64Flag{Name: "seed", Usage: "Random seed, 0 for a random maze"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file, standard output when empty"},
		},
		Action: r.generate,
	}
}

func (r *runner) generate(c *cli.Context) error {
	var rng *rand.Rand
	if seed := c.Int64("seed"); seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	layout, err := wilson.Generate(c.Int("rows"), c.Int("cols"), rng)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%v: rows and cols must be between 1 and %d", err, wilson.MaxDimension), ExitBadInput)
	}
	m, err := maze.New(layout.Grid, layout.Start, layout.Exit)
	if err != nil {
		return err
	}

	r.log.Debug(fmt.Sprintf("Generated %dx%d maze", m.NumRows(), m.NumCols()))

	dst := c.String("out")
	if dst == "" {
		return mazefile.Write(c.App.Writer, m)
	}
	return writeFile(dst, func(w io.Writer) error {
		return mazefile.Write(w, m)
	})
}
