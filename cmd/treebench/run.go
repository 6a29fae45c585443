package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	Go_Index "github.com/g-m-twostay/go-index"
	"github.com/g-m-twostay/go-index/Trees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Config of a workload.
type Config struct {
	Ops         int64
	Seed        int64
	Range       int
	RemoveRatio float64
	CheckEvery  int64
}

func (c Config) validate() error {
	if c.Ops < 0 {
		return fmt.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.Range <= 0 {
		return fmt.Errorf("range must be positive, got %d", c.Range)
	}
	if c.RemoveRatio < 0 || c.RemoveRatio > 1 {
		return fmt.Errorf("remove-ratio must be in [0,1], got %f", c.RemoveRatio)
	}
	if c.CheckEvery < 0 {
		return fmt.Errorf("check-every must not be negative, got %d", c.CheckEvery)
	}
	return nil
}

// Result of a workload.
type Result struct {
	Size, Height uint
	Took         time.Duration
}

type Metrics struct {
	Size     prometheus.Gauge
	Height   prometheus.Gauge
	Inserted prometheus.Counter
	Removed  prometheus.Counter
	Ignored  prometheus.Counter
}

// NewMetrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Size:     prometheus.NewGauge(prometheus.GaugeOpts{Name: "treebench_tree_size", Help: "Number of values in the tree."}),
		Height:   prometheus.NewGauge(prometheus.GaugeOpts{Name: "treebench_tree_height", Help: "Height of the tree."}),
		Inserted: prometheus.NewCounter(prometheus.CounterOpts{Name: "treebench_inserted_total", Help: "Values added to the tree."}),
		Removed:  prometheus.NewCounter(prometheus.CounterOpts{Name: "treebench_removed_total", Help: "Values removed from the tree."}),
		Ignored:  prometheus.NewCounter(prometheus.CounterOpts{Name: "treebench_ignored_total", Help: "Duplicate inserts and removals of absent values."}),
	}
	reg.MustRegister(m.Size, m.Height, m.Inserted, m.Removed, m.Ignored)
	return m
}

// maxHeight an AVL tree of n values can have.
func maxHeight(n uint) uint {
	return uint(1.4405*math.Log2(float64(n)+2) - 0.32)
}

// cancelEvery is how many operations apply between two looks at the context.
const cancelEvery = 1024

// opsPerSec of n operations taking d, 0 when d didn't register on the clock.
func opsPerSec(n int64, d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(float64(n) / d.Seconds())
}

// Run the workload of cfg on a fresh tree, checking its invariants along the way.
func Run(ctx context.Context, cfg Config, log zerolog.Logger, m *Metrics) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	tree := Trees.New(Go_Index.Compare[int])
	check := func(op int64) error {
		if tree.Corrupt() {
			return fmt.Errorf("tree is corrupt after %d operations", op)
		}
		if h, lim := tree.Height(), maxHeight(tree.Size()); h > lim {
			return fmt.Errorf("tree height %d exceeds %d after %d operations", h, lim, op)
		}
		return nil
	}

	start, since := time.Now(), time.Now()
	for op := int64(1); op <= cfg.Ops; op++ {
		if op%cancelEvery == 1 {
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			default:
			}
		}
		v := rnd.Intn(cfg.Range)
		var changed bool
		if rnd.Float64() < cfg.RemoveRatio {
			if changed = tree.Remove(v); changed {
				m.Removed.Inc()
			}
		} else if changed = tree.Insert(v); changed {
			m.Inserted.Inc()
		}
		if !changed {
			m.Ignored.Inc()
		}
		m.Size.Set(float64(tree.Size()))
		m.Height.Set(float64(tree.Height()))

		if cfg.CheckEvery > 0 && op%cfg.CheckEvery == 0 {
			if err := check(op); err != nil {
				return Result{}, err
			}
			log.Info().Msgf("applied %s ops; size %s; height %d; %s ops/s",
				humanize.Comma(op),
				humanize.Comma(int64(tree.Size())),
				tree.Height(),
				humanize.Comma(opsPerSec(cfg.CheckEvery, time.Since(since))))
			since = time.Now()
		}
	}
	if err := check(cfg.Ops); err != nil {
		return Result{}, err
	}
	log.Debug().Str("values", humanize.Comma(int64(tree.Size()))).Msg("final check passed")
	return Result{Size: tree.Size(), Height: tree.Height(), Took: time.Since(start)}, nil
}
