// Package parallel splits index loops over worker goroutines for the array engine.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool `yaml:"enabled" json:"enabled"`     // Whether parallel execution is enabled.
	NumWorkers   int  `yaml:"workers" json:"workers"`     // Number of worker goroutines to use.
	MinChunkSize int  `yaml:"min_chunk" json:"min_chunk"` // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that never starts goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// Validate checks an enabled config for usable worker and chunk counts.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.NumWorkers < 1 {
		return fmt.Errorf("parallel: workers must be >= 1, got %d", c.NumWorkers)
	}
	if c.MinChunkSize < 1 {
		return fmt.Errorf("parallel: min_chunk must be >= 1, got %d", c.MinChunkSize)
	}
	return nil
}

// Split partitions [0, n) into contiguous [lo, hi) ranges, one per worker,
// none shorter than MinChunkSize except possibly the last. A config that
// cannot run in parallel yields the single range [0, n).
func (c Config) Split(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	if !c.Enabled || c.Validate() != nil || c.NumWorkers == 1 || n < 2*c.MinChunkSize {
		return [][2]int{{0, n}}
	}

	size := max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
	chunks := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		chunks = append(chunks, [2]int{lo, min(lo+size, n)})
	}
	return chunks
}

// Chunks calls f once per range returned by cfg.Split(n), concurrently when
// there is more than one, and returns after every call has finished.
func Chunks(n int, f func(lo, hi int), cfg Config) {
	chunks := cfg.Split(n)
	if len(chunks) == 1 {
		f(chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Go(func() { f(c[0], c[1]) })
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n). Each index is visited exactly once;
// without parallelism the visits are in increasing order.
func For(n int, f func(i int), cfg Config) {
	Chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	}, cfg)
}
