// Package cmd provides the commands of the mazesolve CLI.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/render"
	"github.com/urfave/cli/v2"
)

// Exit codes of the solve command.
const (
	ExitBadInput = 1
	ExitNoPath   = 2
)

// runner carries state shared by the commands once the global flags are parsed.
type runner struct {
	log *logger.Logger
}

// NewApp returns the mazesolve application.
func NewApp() *cli.App {
	r := &runner{}
	return &cli.App{
		Name:  "mazesolve",
		Usage: "Find a path through a maze file, or generate one",
		Description: `Maze files are plain text: a "ROWS COLS" header, one line of 0 (free) and
1 (wall) per row, then the start and exit coordinates as "ROW COL" pairs.

Examples:
  mazesolve solve maze.txt --png maze.png
  mazesolve generate --rows 10 --cols 20 --seed 7 --out maze.txt`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Minimum level of diagnostic messages (debug, info, warning, error)",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "warning",
			},
		},
		Before: r.setup,
		Commands: []*cli.Command{
			r.solveCommand(),
			r.generateCommand(),
		},
	}
}

func (r *runner) setup(c *cli.Context) error {
	l, err := logger.New("MAZESOLVE", config.ColorCyan, c.App.ErrWriter)
	if err != nil {
		return err
	}
	if err := l.SetLevel(c.String("log-level")); err != nil {
		return cli.Exit(err.Error(), ExitBadInput)
	}
	r.log = l
	return nil
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// imageWriter adapts a renderer to writeFile.
func imageWriter(g render.Grid, draw func(io.Writer, render.Grid, render.Options) error) func(io.Writer) error {
	return func(w io.Writer) error {
		return draw(w, g, render.Options{})
	}
}
