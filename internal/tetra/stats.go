package tetra

import (
	"fmt"
	"sync/atomic"
)

type marchOutcome uint8

const (
	outcomeHit       marchOutcome = iota // converged below epsilon
	outcomeMiss                          // left the march distance bound
	outcomeExhausted                     // ran out of steps (renders as sky)
)

// Aggregate march counters, collected only when Debug is set. Updates are
// atomic because every worker records into the same counters.
type marchStats struct {
	hits      int64
	misses    int64
	exhausted int64
	steps     int64
}

var stats marchStats

func recordMarch(o marchOutcome, steps int) {
	switch o {
	case outcomeHit:
		atomic.AddInt64(&stats.hits, 1)
	case outcomeMiss:
		atomic.AddInt64(&stats.misses, 1)
	case outcomeExhausted:
		atomic.AddInt64(&stats.exhausted, 1)
	}
	atomic.AddInt64(&stats.steps, int64(steps))
}

func resetMarchStats() {
	atomic.StoreInt64(&stats.hits, 0)
	atomic.StoreInt64(&stats.misses, 0)
	atomic.StoreInt64(&stats.exhausted, 0)
	atomic.StoreInt64(&stats.steps, 0)
}

// DumpMarchStats prints the accumulated counters.
func DumpMarchStats() {
	hits := atomic.LoadInt64(&stats.hits)
	misses := atomic.LoadInt64(&stats.misses)
	exhausted := atomic.LoadInt64(&stats.exhausted)
	steps := atomic.LoadInt64(&stats.steps)
	total := hits + misses + exhausted
	if total == 0 {
		fmt.Println("[STATS] no rays marched")
		return
	}
	fmt.Printf("[STATS] rays=%d hit=%.2f%% miss=%.2f%% exhausted=%.2f%% avgSteps=%.1f\n",
		total,
		float64(hits)*100/float64(total),
		float64(misses)*100/float64(total),
		float64(exhausted)*100/float64(total),
		float64(steps)/float64(total))
}
