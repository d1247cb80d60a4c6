// Command colorsom organizes random RGB colors on a map and writes the
// trained map as a PNG, optionally with intermediate frames and a U-matrix
// plot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/evaluate"
	"github.com/hupe1980/kohonen/render"
	"github.com/hupe1980/kohonen/testutil"
)

var (
	rows       = flag.Int("rows", 40, "Lattice rows")
	cols       = flag.Int("cols", 40, "Lattice columns")
	samples    = flag.Int("samples", 100, "Number of random colors")
	iterations = flag.Int("iterations", 10000, "Training steps")
	alpha0     = flag.Float64("alpha0", 0.1, "Initial learning rate")
	sigma0     = flag.Float64("sigma0", 20, "Initial neighborhood radius")
	seed       = flag.Int64("seed", 42, "Seed for colors, initial lattice and sampling")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "Goroutines per training step")
	cellSize   = flag.Int("cell", 10, "Pixel size of one lattice cell")
	out        = flag.String("out", "colorsom.png", "Output PNG")
	frames     = flag.Int("frames", 0, "Write a frame every N steps into -frame-dir (0 disables)")
	frameDir   = flag.String("frame-dir", "frames", "Directory for frames")
	umatrix    = flag.String("umatrix", "", "Optional U-matrix plot (png, svg or pdf)")
	verbose    = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := kohonen.NewTextLogger(level)

	rng := testutil.NewRNG(*seed)
	src := rng.ColorVectors(*samples)
	cells := testutil.SampleLattice(rng, src, *rows, *cols)

	tr, err := kohonen.New(src, cells, *iterations, *alpha0, *sigma0,
		kohonen.WithSeed(*seed),
		kohonen.WithWorkers(*workers),
		kohonen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if *frames > 0 {
		if err := os.MkdirAll(*frameDir, 0o755); err != nil {
			return err
		}
		if err := stepWithFrames(ctx, tr); err != nil {
			return err
		}
	} else if err := tr.Run(ctx); err != nil {
		return err
	}

	l := tr.Lattice()
	img, err := render.Lattice(l, *cellSize, render.RGB[int])
	if err != nil {
		return err
	}
	if err := render.SavePNG(*out, img); err != nil {
		return err
	}

	qe, err := evaluate.QuantizationError(src, l.Cells())
	if err != nil {
		return err
	}
	te, err := evaluate.TopologicalError(src, l.Cells())
	if err != nil {
		return err
	}
	hits, err := evaluate.Utilization(src, l.Cells())
	if err != nil {
		return err
	}

	fmt.Printf("Trained %dx%d map in %d steps\n", l.Rows(), l.Cols(), tr.Iteration())
	fmt.Printf("Quantization error: %.3f (mean %.3f)\n", qe.Sum, qe.Mean)
	fmt.Printf("Topological error: %.3f (mean %.3f)\n", te.Sum, te.Mean)
	fmt.Printf("Unit utilization: %.1f%% (%d dead)\n", hits.Rate()*100, len(hits.DeadUnits()))
	fmt.Printf("Map written to %s\n", *out)

	if *umatrix != "" {
		u, err := evaluate.UMatrix(l.Cells())
		if err != nil {
			return err
		}
		p, err := render.UMatrixPlot(u)
		if err != nil {
			return err
		}
		if err := render.SavePlot(p, *umatrix); err != nil {
			return err
		}
		fmt.Printf("U-matrix written to %s\n", *umatrix)
	}

	return nil
}

// stepWithFrames drives the trainer step by step and renders a frame every
// -frames steps.
func stepWithFrames(ctx context.Context, tr *kohonen.Trainer[int]) error {
	frame := 0
	for tr.Step() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tr.Iteration()%*frames != 0 && !tr.Done() {
			continue
		}
		img, err := render.Lattice(tr.Lattice(), *cellSize, render.RGB[int])
		if err != nil {
			return err
		}
		path := filepath.Join(*frameDir, fmt.Sprintf("frame-%05d.png", frame))
		if err := render.SavePNG(path, img); err != nil {
			return err
		}
		frame++
	}
	return nil
}
