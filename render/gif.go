package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// GIF writes an animation of g to w: the empty board first, then one frame
// per step along the path. Without a path the animation is a single frame.
func GIF(w io.Writer, g Grid, opts Options) error {
	opts = opts.withDefaults()
	path := g.Path()

	board, err := drawBoard(g, opts)
	if err != nil {
		return err
	}

	frames := make([]*image.Paletted, 0, len(path)+1)
	frames = append(frames, toPaletted(board))
	for i := 2; i <= len(path); i++ {
		frame := cloneRGBA(board)
		drawPath(frame, path[:i], opts)
		frames = append(frames, toPaletted(frame))
	}

	if !opts.NoCaption {
		last := cloneRGBA(board)
		drawPath(last, path, opts)
		drawCaption(last, caption(path), opts)
		frames[len(frames)-1] = toPaletted(last)
	}

	delays := make([]int, len(frames))
	for i := range delays {
		delays[i] = opts.FrameDelay
	}

	if err := gif.EncodeAll(w, &gif.GIF{Image: frames, Delay: delays}); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

func toPaletted(img image.Image) *image.Paletted {
	opts := gif.Options{
		NumColors: 256,
		Drawer:    draw.FloydSteinberg,
	}

	res := image.NewPaletted(img.Bounds(), palette.Plan9[:opts.NumColors])
	opts.Drawer.Draw(res, img.Bounds(), img, image.Point{})
	return res
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	clone := *src
	clone.Pix = make([]uint8, len(src.Pix))
	copy(clone.Pix, src.Pix)
	return &clone
}
