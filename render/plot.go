package render

import (
	"fmt"
	"image/color"

	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/sweep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotWidth and PlotHeight are the sizes SavePlot uses.
const (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 6 * vg.Inch
)

// umatrixGrid adapts a U-matrix to plotter.GridXYZ. Row 0 is drawn at the
// top so the plot matches the orientation of Lattice images.
type umatrixGrid [][]float64

func (g umatrixGrid) Dims() (c, r int)   { return len(g[0]), len(g) }
func (g umatrixGrid) Z(c, r int) float64 { return g[len(g)-1-r][c] }
func (g umatrixGrid) X(c int) float64    { return float64(c) }
func (g umatrixGrid) Y(r int) float64    { return float64(r) }

// UMatrixPlot draws a U-matrix (see evaluate.UMatrix) as a heat map.
// Bright cells separate clusters.
func UMatrixPlot(u [][]float64) (*plot.Plot, error) {
	if len(u) == 0 || len(u[0]) == 0 {
		return nil, fmt.Errorf("render: u-matrix: %w", somerr.ErrEmpty)
	}
	for r, row := range u {
		if len(row) != len(u[0]) {
			return nil, fmt.Errorf("render: u-matrix row %d: %w", r, somerr.ErrRaggedLattice)
		}
	}

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(umatrixGrid(u), pal)

	p := plot.New()
	p.Title.Text = "U-matrix"
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row (inverted)"
	p.Add(hm)

	return p, nil
}

// SweepPlot draws the mean score of every result as a line and every
// trial score as a point, against the parameter x picks from the config.
func SweepPlot(results []sweep.Result, x func(sweep.Config) float64, xLabel string) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("render: sweep: %w", somerr.ErrEmpty)
	}

	means := make(plotter.XYs, 0, len(results))
	var trials plotter.XYs
	for _, r := range results {
		xv := x(r.Config)
		means = append(means, plotter.XY{X: xv, Y: r.MeanScore})
		for _, t := range r.Trials {
			trials = append(trials, plotter.XY{X: xv, Y: t.Score.Sum})
		}
	}

	p := plot.New()
	p.Title.Text = xLabel + " vs quantization error"
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "quantization error"

	line, err := plotter.NewLine(means)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("mean", line)

	if len(trials) > 0 {
		scatter, err := plotter.NewScatter(trials)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Radius = vg.Length(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Color = color.RGBA{R: 0xcc, A: 0xff}
		p.Add(scatter)
		p.Legend.Add("trial", scatter)
	}

	return p, nil
}

// Alpha0 selects the initial learning rate as the sweep axis.
func Alpha0(c sweep.Config) float64 { return c.Alpha0 }

// Sigma0 selects the initial radius as the sweep axis.
func Sigma0(c sweep.Config) float64 { return c.Sigma0 }

// SavePlot saves p at PlotWidth × PlotHeight; the format follows the
// file extension.
func SavePlot(p *plot.Plot, path string) error {
	return p.Save(PlotWidth, PlotHeight, path)
}
