package pow

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/nanoshift/nanogo/internal/metrics"
	"github.com/nanoshift/nanogo/nanoerr"
)

// pollMask makes workers check the found/cancel flags every 4096
// iterations: nonce&pollMask == 0.
const pollMask = 0xFFF

// Options configures a Search call.
type Options struct {
	// Workers is the number of goroutines to partition the nonce space
	// across. 0 means auto (runtime.GOMAXPROCS(0)).
	Workers int

	// Cancel, if non-nil, is polled by every worker every 4096 iterations;
	// closing it (or it becoming non-nil and closed) stops the search.
	Cancel <-chan struct{}

	// Logger receives search start/outcome logs. Nil discards them.
	Logger *zap.Logger
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Search finds a 64-bit nonce satisfying Difficulty(work, root) >=
// threshold, partitioning [0, 2^64) into contiguous ranges scanned in
// parallel by Options.workers() goroutines. The first worker to find a
// satisfying nonce wins; the others observe the shared found-flag within
// 4096 iterations and stop.
func Search(root [32]byte, threshold uint64, opts Options) (uint64, error) {
	start := time.Now()
	w := opts.workers()
	if w < 1 {
		w = 1
	}
	logger := opts.logger()
	logger.Debug("work search started", zap.Int("workers", w), zap.Uint64("threshold", threshold))

	var found atomic.Bool
	var result atomic.Uint64
	var scanned atomic.Uint64
	var wg sync.WaitGroup

	rangeSize := (^uint64(0) / uint64(w)) + 1

	for i := 0; i < w; i++ {
		lo := uint64(i) * rangeSize
		var hi uint64
		if i == w-1 {
			hi = ^uint64(0)
		} else {
			hi = lo + rangeSize - 1
		}

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			var local uint64
			for nonce := lo; ; nonce++ {
				local++
				if nonce&pollMask == 0 {
					if found.Load() {
						scanned.Add(local)
						return
					}
					if opts.Cancel != nil {
						select {
						case <-opts.Cancel:
							scanned.Add(local)
							return
						default:
						}
					}
				}
				if Difficulty(nonce, root) >= threshold {
					if found.CompareAndSwap(false, true) {
						result.Store(nonce)
					}
					scanned.Add(local)
					return
				}
				if nonce == hi {
					scanned.Add(local)
					return
				}
			}
		}(lo, hi)
	}

	wg.Wait()

	metrics.WorkSearchDuration.Observe(time.Since(start).Seconds())
	metrics.WorkNoncesScanned.Add(float64(scanned.Load()))

	if found.Load() {
		logger.Debug("work search found", zap.Uint64("nonce", result.Load()), zap.Uint64("scanned", scanned.Load()), zap.Duration("elapsed", time.Since(start)))
		return result.Load(), nil
	}
	if opts.Cancel != nil {
		select {
		case <-opts.Cancel:
			metrics.WorkSearchesCancelled.Inc()
			logger.Info("work search cancelled", zap.Uint64("scanned", scanned.Load()))
			return 0, nanoerr.New(nanoerr.WorkCancelled)
		default:
		}
	}
	logger.Warn("work search exhausted nonce space without success")
	return 0, nanoerr.New(nanoerr.WorkMaxIterations)
}
