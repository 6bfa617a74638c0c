package control

import (
	"sync"

	"github.com/montanaflynn/stats"
)

type filter interface {
	Reset()
	Next(x float64) (float64, bool)
}

var (
	_ = filter(&MovingMedianFilter{})
	_ = filter(&MovingAverageFilter{})
)

// movingWindow keeps the last window samples, oldest first.
type movingWindow struct {
	window int
	values []float64
}

func (w *movingWindow) push(x float64) {
	w.values = append(w.values, x)
	if len(w.values) > w.window {
		w.values = w.values[1:]
	}
}

func (w *movingWindow) full() bool {
	return len(w.values) == w.window
}

// MovingMedianFilter outputs the median of the last window samples. It removes occasional
// outliers from the input stream. Since filters have memory, use a separate instance for every
// input stream.
//
// Called periodically, period times window is the time frame of the filter: dynamics shorter
// than it are mostly cancelled out, and it is also the approximate phase lag.
type MovingMedianFilter struct {
	mu sync.Mutex
	movingWindow
}

// NewMovingMedianFilter returns a median filter over window samples.
func NewMovingMedianFilter(window int) (*MovingMedianFilter, error) {
	if window <= 0 {
		return nil, NewInvalidWindowError(window)
	}
	return &MovingMedianFilter{movingWindow: movingWindow{window: window}}, nil
}

// Next adds x and returns the median of the stored samples. The bool is false while fewer
// than window samples have been seen.
func (f *MovingMedianFilter) Next(x float64) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.push(x)
	// never empty after a push
	median, err := stats.Median(f.values)
	if err != nil {
		return x, false
	}
	return median, f.full()
}

// Reset drops every stored sample.
func (f *MovingMedianFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = nil
}

// MovingAverageFilter outputs the mean of the last window samples.
type MovingAverageFilter struct {
	mu sync.Mutex
	movingWindow
}

// NewMovingAverageFilter returns an averaging filter over window samples.
func NewMovingAverageFilter(window int) (*MovingAverageFilter, error) {
	if window <= 0 {
		return nil, NewInvalidWindowError(window)
	}
	return &MovingAverageFilter{movingWindow: movingWindow{window: window}}, nil
}

// Next adds x and returns the mean of the stored samples. The bool is false while fewer than
// window samples have been seen.
func (f *MovingAverageFilter) Next(x float64) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.push(x)
	mean, err := stats.Mean(f.values)
	if err != nil {
		return x, false
	}
	return mean, f.full()
}

// Reset drops every stored sample.
func (f *MovingAverageFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = nil
}
