package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"go.dw1.io/memocache/memo"
	"go.dw1.io/memocache/stats/promstats"
)

// config holds the command line settings.
type config struct {
	inputs   int
	capacity int
	sigma    float64
	delay    time.Duration
	seed     uint64
	verbose  bool
	metrics  bool
}

var cfg config

var rootCmd = &cobra.Command{
	Use:   "memodemo",
	Short: "Compare unbounded and fixed-capacity memoization",
	Long: `memodemo feeds normally distributed inputs to a fake expensive
calculation and times four variants of it:

  1. a regular (non-memoized) call,
  2. a call memoized with a map,
  3. a call memoized with a memocache.Cache (Get and Set, then
     GetOrInsertWith),
  4. a call memoized with a memo.Func.

The map performs best but its memory grows with every distinct input.
The memocache variants use a fixed amount of memory and perform at best
as well as the map and at worst as badly as the regular call.

Examples:
  # Default run: 100 inputs, capacity 32, sigma 30, 20ms per calculation
  memodemo

  # Wider input spread, larger cache
  memodemo --sigma 100 --capacity 128 --metrics`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&cfg.inputs, "inputs", "n", 100, "number of inputs to feed each variant")
	flags.IntVarP(&cfg.capacity, "capacity", "c", 32, "memocache capacity")
	flags.Float64Var(&cfg.sigma, "sigma", 30, "standard deviation of the input distribution")
	flags.DurationVar(&cfg.delay, "delay", 20*time.Millisecond, "duration of one fake calculation")
	flags.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 picks a random one)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&cfg.metrics, "metrics", false, "print collected metrics after the run")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// sampleInputs draws n integer inputs from a normal distribution centered
// on zero.
func sampleInputs(n int, sigma float64, seed uint64) []int {
	if seed == 0 {
		seed = rand.Uint64()
	}
	normal := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed>>1|1),
	}

	inputs := make([]int, n)
	for i := range inputs {
		inputs[i] = int(normal.Rand())
	}

	return inputs
}

func run(w io.Writer, cfg config) error {
	if cfg.inputs <= 0 {
		return fmt.Errorf("inputs must be greater than 0; got %d", cfg.inputs)
	}
	if cfg.capacity <= 0 {
		return fmt.Errorf("capacity must be greater than 0; got %d", cfg.capacity)
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	registry := prometheus.NewRegistry()
	p := newProcess(cfg.capacity, fakeCalculation(cfg.delay),
		memo.WithName("fake-calculation"),
		memo.WithLogger(logger),
		memo.WithStats(promstats.New(registry)),
	)

	inputs := sampleInputs(cfg.inputs, cfg.sigma, cfg.seed)

	fmt.Fprintln(w, "Running tests..")

	dRegular := timed(inputs, p.regular)
	dMap := timed(inputs, p.memoizedMap)
	dGetSet := timed(inputs, p.memoizedGetSet)
	p.bounded.Reset()
	dGetOrInsert := timed(inputs, p.memoizedGetOrInsert)
	dFunc := timed(inputs, p.memoizedFunc)

	fmt.Fprintln(w, "Done. Timing results:")
	fmt.Fprintf(w, "Regular:                     %d ms\n", dRegular.Milliseconds())
	fmt.Fprintf(w, "Memoized (map):              %d ms\n", dMap.Milliseconds())
	fmt.Fprintf(w, "Memoized (Get/Set):          %d ms\n", dGetSet.Milliseconds())
	fmt.Fprintf(w, "Memoized (GetOrInsertWith):  %d ms\n", dGetOrInsert.Milliseconds())
	fmt.Fprintf(w, "Memoized (memo.Func):        %d ms\n", dFunc.Milliseconds())

	// Map buckets add overhead on top of this; only the payload is counted.
	payload := int(unsafe.Sizeof(int(0)) + unsafe.Sizeof(float32(0)))
	fmt.Fprintln(w, "Post-test cache sizes:")
	fmt.Fprintf(w, "  Map:       %d entries, >= %d payload bytes\n", len(p.unbounded), len(p.unbounded)*payload)
	fmt.Fprintf(w, "  memocache: %d entries, %d bytes reserved\n", p.bounded.Len(), p.bounded.Size())

	if cfg.metrics {
		if err := printMetrics(w, registry); err != nil {
			return fmt.Errorf("gathering metrics: %w", err)
		}
	}

	return nil
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Metrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "  %s %g\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Fprintf(w, "  %s %g\n", mf.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "  %s count=%d sum=%gs\n", mf.GetName(), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}

	return nil
}
