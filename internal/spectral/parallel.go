package spectral

import (
	"runtime"
	"sync"

	"github.com/mjibson/go-dsp/fft"
)

// Grids below this size run elementwise loops serially; goroutine startup
// costs more than the work saved.
const minParallelRows = 128

// SetWorkers bounds the FFT worker pool. n < 1 resets to the library
// default (one worker per CPU).
func SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	fft.SetWorkerPoolSize(n)
}

// eachRow runs fn over disjoint row ranges [start, end), in parallel for
// large grids and serially otherwise. fn must only touch its own rows.
func eachRow(m int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if m < minParallelRows || workers <= 1 {
		fn(0, m)
		return
	}

	chunk := (m + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= m {
			break
		}
		if end > m {
			end = m
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}
