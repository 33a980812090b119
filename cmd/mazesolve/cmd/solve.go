package cmd

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
	"github.com/beka-birhanu/vinom-pathfinder/render"
	"github.com/urfave/cli/v2"
)

func (r *runner) solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Search a maze file for a path from start to exit",
		ArgsUsage: "FILE",
		Description: `Prints the maze with the path marked ('S' start, 'E' exit, '*' path,
'#' wall) followed by the path coordinates.

Exits with status 1 when the file cannot be loaded and 2 when no path exists.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "png", Usage: "Also draw the solved maze to this PNG file"},
			&cli.StringFlag{Name: "gif", Usage: "Also animate the path into this GIF file"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Do not print the maze"},
			&cli.IntFlag{Name: "max-dimension", Usage: "Reject files with more rows or columns (0 for no limit)"},
		},
		Action: r.solve,
	}
}

func (r *runner) solve(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("solve needs exactly one maze FILE", ExitBadInput)
	}
	path := c.Args().First()

	m, err := mazefile.ReadFile(path, mazefile.ReadOptions{MaxDimension: c.Int("max-dimension")})
	if err != nil {
		return cli.Exit(err.Error(), ExitBadInput)
	}
	r.log.Debug(fmt.Sprintf("Loaded %dx%d maze from %s", m.NumRows(), m.NumCols(), path))

	found := m.Search()
	out := c.App.Writer
	if !c.Bool("quiet") {
		fmt.Fprint(out, m.String())
	}
	if found {
		fmt.Fprintf(out, "path (%d cells): %s\n", len(m.Path()), formatPath(m.Path()))
	} else {
		fmt.Fprintln(out, "no path")
	}

	if dst := c.String("png"); dst != "" {
		if err := writeFile(dst, imageWriter(m, render.PNG)); err != nil {
			return err
		}
		r.log.Info("Wrote " + dst)
	}
	if dst := c.String("gif"); dst != "" {
		if err := writeFile(dst, imageWriter(m, render.GIF)); err != nil {
			return err
		}
		r.log.Info("Wrote " + dst)
	}

	if !found {
		return cli.Exit("", ExitNoPath)
	}
	return nil
}

func formatPath(path []maze.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
