// Package bench times the bubble sort over growing random inputs so the
// quadratic growth shows up in wall-clock seconds.
package bench

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"quadratic/src/sort"
	"quadratic/src/utils"
)

var logger = utils.GetLogger("bench")

// Config describes one demonstration run.
type Config struct {
	Sizes     []int
	MaxValue  int // inclusive upper bound of generated values
	Seed      int64
	EarlyExit bool
}

// Result is the measurement for a single input size.
type Result struct {
	Size    int
	Elapsed time.Duration
	Stats   sort.Stats
}

func DefaultConfig() Config {
	return Config{
		Sizes:    []int{100, 500, 1000},
		MaxValue: 1000,
	}
}

// Generate returns n values drawn uniformly from [0, max].
func Generate(r *rand.Rand, n, max int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(max + 1)
	}
	return data
}

// Run sorts one random input per configured size and times each sort.
// A zero Seed seeds from the clock.
func Run(cfg Config) ([]Result, error) {
	if cfg.MaxValue < 0 || cfg.MaxValue == math.MaxInt {
		return nil, errors.Errorf("invalid max value %d", cfg.MaxValue)
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return nil, errors.Errorf("invalid input size %d", n)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	logger.Debugf("seed %d, sizes %v", seed, cfg.Sizes)

	results := make([]Result, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		data := sort.IntArray(Generate(r, n, cfg.MaxValue))

		start := time.Now()
		st := sort.Run(data, sort.Options{EarlyExit: cfg.EarlyExit})
		elapsed := time.Since(start)

		logger.WithFields(logrus.Fields{
			"size":        n,
			"elapsed":     elapsed,
			"passes":      st.Passes,
			"comparisons": st.Comparisons,
			"swaps":       st.Swaps,
		}).Debug("sorted")

		results = append(results, Result{Size: n, Elapsed: elapsed, Stats: st})
	}
	return results, nil
}
