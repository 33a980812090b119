// Package render draws a maze and the path found through it.
//
// It only relies on the read-only queries of a maze: dimensions, wall
// lookup, entry, exit and path. Walls are black boxes, the entry and exit are
// inset yellow and green boxes, and the path is a blue line through the
// centres of consecutive cells.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Grid is the view of a maze the renderer draws from.
type Grid interface {
	NumRows() int
	NumCols() int
	HasWallAt(maze.Coord) (bool, error)
	EntryLoc() maze.Coord
	ExitLoc() maze.Coord
	Path() []maze.Coord
}

const (
	defaultOffset     = 10
	defaultBoxSize    = 20
	defaultInset      = 2
	defaultLineWidth  = 3
	defaultFrameDelay = 10 // hundredths of a second
	captionHeight     = 20
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	StartColor      = color.RGBA{255, 255, 0, 255}
	ExitColor       = color.RGBA{0, 255, 0, 255}
	WallColor       = color.RGBA{0, 0, 0, 255}
	PathColor       = color.RGBA{0, 0, 255, 255}
	CaptionColor    = color.RGBA{66, 66, 66, 255}
)

// Options controls the geometry of the drawing. Zero fields take defaults.
type Options struct {
	Offset     int  // margin around the maze, in pixels
	BoxSize    int  // width and height of one cell
	Inset      int  // how much smaller the entry and exit boxes are on each side
	LineWidth  int  // width of the path line
	FrameDelay int  // GIF frame delay in hundredths of a second
	NoCaption  bool // skip the path summary under the maze
}

func (o Options) withDefaults() Options {
	if o.Offset <= 0 {
		o.Offset = defaultOffset
	}
	if o.BoxSize <= 0 {
		o.BoxSize = defaultBoxSize
	}
	if o.Inset < 0 || 2*o.Inset >= o.BoxSize {
		o.Inset = defaultInset
	}
	if o.LineWidth <= 0 {
		o.LineWidth = defaultLineWidth
	}
	if o.FrameDelay <= 0 {
		o.FrameDelay = defaultFrameDelay
	}
	return o
}

// Image draws g and its full path.
func Image(g Grid, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()
	path := g.Path()

	img, err := drawBoard(g, opts)
	if err != nil {
		return nil, err
	}
	drawPath(img, path, opts)
	if !opts.NoCaption {
		drawCaption(img, caption(path), opts)
	}
	return img, nil
}

// PNG writes the drawing of g to w as a PNG image.
func PNG(w io.Writer, g Grid, opts Options) error {
	img, err := Image(g, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// drawBoard draws everything except the path and caption.
func drawBoard(g Grid, opts Options) (*image.RGBA, error) {
	rows, cols := g.NumRows(), g.NumCols()
	width := 2*opts.Offset + cols*opts.BoxSize
	height := 2*opts.Offset + rows*opts.BoxSize
	if !opts.NoCaption {
		height += captionHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	fillRect(img, insetBox(g.EntryLoc(), opts), StartColor)
	fillRect(img, insetBox(g.ExitLoc(), opts), ExitColor)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			loc := maze.NewCoord(r, c)
			wall, err := g.HasWallAt(loc)
			if err != nil {
				return nil, err
			}
			if wall {
				fillRect(img, cellBox(loc, opts), WallColor)
			}
		}
	}

	border := image.Rect(opts.Offset, opts.Offset, opts.Offset+cols*opts.BoxSize, opts.Offset+rows*opts.BoxSize)
	strokeRect(img, border, WallColor)

	return img, nil
}

// drawPath joins the centres of consecutive path cells.
func drawPath(img *image.RGBA, path []maze.Coord, opts Options) {
	for i := 1; i < len(path); i++ {
		from, to := cellCenter(path[i-1], opts), cellCenter(path[i], opts)
		drawLine(img, from, to, PathColor, opts.LineWidth)
	}
}

func caption(path []maze.Coord) string {
	if len(path) == 0 {
		return "no path"
	}
	return fmt.Sprintf("path: %d cells", len(path))
}

func drawCaption(img *image.RGBA, text string, opts Options) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(CaptionColor),
		Face: basicfont.Face7x13,
	}
	baseline := img.Bounds().Max.Y - opts.Offset/2 - 4
	d.Dot = fixed.P(opts.Offset, baseline)
	d.DrawString(text)
}

func cellBox(loc maze.Coord, opts Options) image.Rectangle {
	x := opts.Offset + loc.Col()*opts.BoxSize
	y := opts.Offset + loc.Row()*opts.BoxSize
	return image.Rect(x, y, x+opts.BoxSize, y+opts.BoxSize)
}

func insetBox(loc maze.Coord, opts Options) image.Rectangle {
	return cellBox(loc, opts).Inset(opts.Inset)
}

func cellCenter(loc maze.Coord, opts Options) image.Point {
	box := cellBox(loc, opts)
	return image.Pt(box.Min.X+opts.BoxSize/2, box.Min.Y+opts.BoxSize/2)
}
