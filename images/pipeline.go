package images

import (
	"sync"

	"tradelog/journal"
)

// Result is one completed (or failed) compression, tagged with the trade it
// belongs to. A failed image simply never contributes; the trade keeps its
// other images.
type Result struct {
	TradeID string
	Image   journal.Image
	Err     error
}

type job struct {
	tradeID string
	name    string
	data    []byte
}

// Pipeline compresses screenshots concurrently. Completions arrive on
// Results in no guaranteed order relative to submission; the single consumer
// appends each one to its owning trade, so interleaved completions cannot
// overwrite each other.
type Pipeline struct {
	jobs    chan job
	results chan Result
	wg      sync.WaitGroup
}

// NewPipeline starts workers goroutines draining submissions.
func NewPipeline(workers int) *Pipeline {
	if workers <= 0 {
		workers = 4
	}
	p := &Pipeline{
		jobs:    make(chan job),
		results: make(chan Result, workers),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
	return p
}

// Submit queues one raw image for compression. Must not be called after
// CloseSubmit.
func (p *Pipeline) Submit(tradeID, name string, data []byte) {
	p.jobs <- job{tradeID: tradeID, name: name, data: data}
}

// CloseSubmit signals that no more images are coming; Results closes once
// every submitted image has completed.
func (p *Pipeline) CloseSubmit() {
	close(p.jobs)
}

// Results delivers completions until CloseSubmit drains.
func (p *Pipeline) Results() <-chan Result {
	return p.results
}

func (p *Pipeline) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		img, err := Compress(j.name, j.data)
		p.results <- Result{TradeID: j.tradeID, Image: img, Err: err}
	}
}
