// Command somsweep compares initial learning rates or radii on the color
// organizing task. It prints a table, can plot the sweep, and can dump
// training metrics in the Prometheus text format.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/promcollector"
	"github.com/hupe1980/kohonen/render"
	"github.com/hupe1980/kohonen/sweep"
	"github.com/hupe1980/kohonen/testutil"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mode        = flag.String("mode", "sigma0", "Swept parameter: alpha0 or sigma0")
	size        = flag.Int("size", 40, "Lattice rows and columns")
	samples     = flag.Int("samples", 1600, "Number of random colors")
	iterations  = flag.Int("iterations", 10000, "Training steps per trial")
	alpha0      = flag.Float64("alpha0", 0.8, "Fixed learning rate when sweeping sigma0")
	sigma0      = flag.Float64("sigma0", 20, "Fixed radius when sweeping alpha0")
	alphaStep   = flag.Float64("alpha-step", 0.1, "alpha0 step; the sweep runs step..1.0")
	sigmaStep   = flag.Float64("sigma-step", 5, "sigma0 step; the sweep runs size..step")
	repeat      = flag.Int("repeat", 1, "Trials per configuration")
	parallelism = flag.Int("parallel", 0, "Concurrent trainers (0 = GOMAXPROCS)")
	seed        = flag.Int64("seed", 1, "Base seed")
	plotPath    = flag.String("plot", "", "Optional sweep plot (png, svg or pdf)")
	metricsPath = flag.String("metrics", "", "Optional Prometheus text file with training metrics")
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
	logger := kohonen.NewTextLogger(slog.LevelInfo)

	rng := testutil.NewRNG(*seed)
	src := rng.ColorVectors(*samples)
	cells := testutil.SampleLattice(rng, src, *size, *size)

	var (
		configs []sweep.Config
		axis    func(sweep.Config) float64
	)
	switch *mode {
	case "alpha0":
		configs = sweep.Grid(sweep.Alpha0Range(*alphaStep, 1.0), []float64{*sigma0})
		axis = render.Alpha0
	case "sigma0":
		configs = sweep.Grid([]float64{*alpha0}, sweep.Sigma0Range(float64(*size), *sigmaStep))
		axis = render.Sigma0
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	reg := prometheus.NewRegistry()
	collector := promcollector.New(reg)

	opts := []sweep.Option{
		sweep.WithMaxIterate(*iterations),
		sweep.WithRepeat(*repeat),
		sweep.WithSeed(*seed),
		sweep.WithLogger(logger),
		sweep.WithTrainerOptions(
			kohonen.WithMetricsCollector(collector),
			kohonen.WithProgressInterval(0),
		),
		sweep.WithOnTrial(func(c sweep.Config, t sweep.Trial) {
			fmt.Printf("%v #%d: %.3f in %v\n", c, t.Repeat, t.Score.Sum, t.Duration)
		}),
	}
	if *parallelism > 0 {
		opts = append(opts, sweep.WithParallelism(*parallelism))
	}

	results, err := sweep.Run(ctx, src, cells, configs, opts...)
	if err != nil {
		return err
	}

	fmt.Println()
	if err := sweep.WriteTable(os.Stdout, results); err != nil {
		return err
	}
	if best, ok := sweep.Best(results); ok {
		fmt.Printf("\nBest: %v (mean score %.3f)\n", best.Config, best.MeanScore)
	}

	if *plotPath != "" {
		p, err := render.SweepPlot(results, axis, *mode)
		if err != nil {
			return err
		}
		if err := render.SavePlot(p, *plotPath); err != nil {
			return err
		}
		fmt.Printf("Plot written to %s\n", *plotPath)
	}

	if *metricsPath != "" {
		if err := prometheus.WriteToTextfile(*metricsPath, reg); err != nil {
			return err
		}
		fmt.Printf("Metrics written to %s\n", *metricsPath)
	}

	return nil
}
