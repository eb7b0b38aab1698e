package core

import "sync"

// AVG_COUNT is the number of passes kept in the rolling average.
const AVG_COUNT uint8 = 30

// MetricsState tracks the duration of culling passes. Each pass plays the
// role a frame plays in a render loop.
type MetricsState struct {
	PassAVGCounter    uint8
	MStimes           [AVG_COUNT]float64
	MSavg             float64
	Passes            int32
	AccumulatedPassMS float64
	PPS               float64
	Total             uint64
}

var (
	metricsMutex sync.Mutex
	metricsState = &MetricsState{}
)

// MetricsReset clears every counter.
func MetricsReset() {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	metricsState = &MetricsState{}
}

// MetricsUpdate records one pass that took passElapsedTime seconds.
func MetricsUpdate(passElapsedTime float64) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	passMS := passElapsedTime * 1000.0
	metricsState.MStimes[metricsState.PassAVGCounter] = passMS
	metricsState.Total++

	// Average over the samples collected so far until the window is full.
	samples := uint64(AVG_COUNT)
	if metricsState.Total < samples {
		samples = metricsState.Total
	}
	sum := 0.0
	for i := uint64(0); i < samples; i++ {
		sum += metricsState.MStimes[i]
	}
	metricsState.MSavg = sum / float64(samples)

	metricsState.PassAVGCounter++
	metricsState.PassAVGCounter %= AVG_COUNT

	// Passes per second.
	metricsState.AccumulatedPassMS += passMS
	metricsState.Passes++
	if metricsState.AccumulatedPassMS > 1000 {
		metricsState.PPS = float64(metricsState.Passes)
		metricsState.AccumulatedPassMS -= 1000
		metricsState.Passes = 0
	}
}

// MetricsPassesPerSecond returns the number of passes completed in the last
// full second of accumulated pass time.
func MetricsPassesPerSecond() float64 {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return metricsState.PPS
}

// MetricsPassTime returns the rolling average pass time in milliseconds.
func MetricsPassTime() float64 {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return metricsState.MSavg
}

// MetricsTotal returns how many passes were recorded since the last reset.
func MetricsTotal() uint64 {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return metricsState.Total
}
