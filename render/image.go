// Package render draws trained maps.
//
// Lattice paints every cell as a square block of one color, the way the
// classic color-organizing demo shows a map. UMatrixPlot and SweepPlot
// build gonum plots of map smoothness and of parameter sweeps.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/hupe1980/kohonen/lattice"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/vector"
)

// ColorFunc maps a cell vector to a color.
type ColorFunc[T vector.Number] func(v vector.Vector[T]) color.Color

// RGB reads the first three components as red, green and blue, each
// clamped to [0, 255]. Missing components are 0.
func RGB[T vector.Number](v vector.Vector[T]) color.Color {
	var rgb [3]uint8
	for i := range rgb {
		c, err := v.At(i)
		if err != nil {
			break
		}
		rgb[i] = clamp8(float64(c))
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

// UnitRGB is RGB for components in [0, 1].
func UnitRGB[T vector.Number](v vector.Vector[T]) color.Color {
	var rgb [3]uint8
	for i := range rgb {
		c, err := v.At(i)
		if err != nil {
			break
		}
		rgb[i] = clamp8(float64(c) * 255)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

func clamp8(f float64) uint8 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// Lattice paints l as a (cols·cellSize) × (rows·cellSize) image. Cell
// (r, c) fills the block whose top-left pixel is (c·cellSize, r·cellSize).
// A nil fn uses RGB.
func Lattice[T vector.Number](l *lattice.Lattice[T], cellSize int, fn ColorFunc[T]) (*image.RGBA, error) {
	if cellSize < 1 {
		return nil, somerr.Parameters("cellSize must be at least 1, got %d", cellSize)
	}
	if fn == nil {
		fn = RGB[T]
	}

	img := image.NewRGBA(image.Rect(0, 0, l.Cols()*cellSize, l.Rows()*cellSize))
	for i := range l.Len() {
		p := l.Position(i)
		cell, err := l.At(p.Row, p.Col)
		if err != nil {
			return nil, err
		}
		block := image.Rect(p.Col*cellSize, p.Row*cellSize, (p.Col+1)*cellSize, (p.Row+1)*cellSize)
		draw.Draw(img, block, image.NewUniform(fn(cell)), image.Point{}, draw.Src)
	}

	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}
