package assets

import (
	"runtime"
	"sync"
)

// decodeJob is one record's raw compressed bytes and its slot index in the
// section's output list.
type decodeJob struct {
	index int
	data  []byte
}

// decodeResult is the outcome of decoding one job, returned to its slot.
type decodeResult[T any] struct {
	index   int
	present bool
	value   T
	err     error
}

// runPool decodes jobs with decode, fanned out across a bounded worker pool
// when multithread is set (§4.7 Parallelism: fork-join per section, order
// preserved by index regardless of completion order).
func runPool[T any](jobs []decodeJob, multithread bool, decode func([]byte) (bool, T, error)) ([]decodeResult[T], error) {
	results := make([]decodeResult[T], len(jobs))

	if !multithread || len(jobs) < 2 {
		for _, job := range jobs {
			present, value, err := decode(job.data)
			results[job.index] = decodeResult[T]{index: job.index, present: present, value: value, err: err}
		}
		return results, nil
	}

	workers := runtime.NumCPU()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan decodeJob)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range jobCh {
				present, value, err := decode(job.data)
				results[job.index] = decodeResult[T]{index: job.index, present: present, value: value, err: err}
			}
		}()
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	return results, nil
}
