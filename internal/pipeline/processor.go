package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/kvtree"
)

// Processor runs independent documents through their own pipelines with
// bounded concurrency. Each document's working structure stays owned by a
// single pipeline instance.
type Processor struct {
	workers int
	log     *slog.Logger
	stats   *Stats
}

// NewProcessor creates a processor with the given worker count.
func NewProcessor(workers int, log *slog.Logger) *Processor {
	if workers <= 0 {
		workers = 4
	}
	return &Processor{workers: workers, log: log, stats: NewStats()}
}

// Stats returns the processor's counters.
func (p *Processor) Stats() *Stats {
	return p.stats
}

// Input is one document in a batch.
type Input struct {
	Name   string
	Data   []byte
	Preset config.Preset
}

// Result pairs an input with its outcome.
type Result struct {
	Name string
	Data *kvtree.Dict
	Err  error
}

// Process transforms a single document and records the outcome.
func (p *Processor) Process(in Input) Result {
	data, err := Run(bytes.NewReader(in.Data), in.Preset)
	if err != nil {
		p.log.Error("process document", "name", in.Name, "error", err)
		p.stats.RecordFailure()
		return Result{Name: in.Name, Err: err}
	}
	p.stats.RecordDocument()
	return Result{Name: in.Name, Data: data}
}

// ProcessAll transforms every input, preserving input order in the results.
// Inputs not yet dispatched when ctx is cancelled fail with ctx.Err().
func (p *Processor) ProcessAll(ctx context.Context, inputs []Input) []Result {
	results := make([]Result, len(inputs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.Process(inputs[i])
			}
		}()
	}

dispatch:
	for i := range inputs {
		select {
		case <-ctx.Done():
			for j := i; j < len(inputs); j++ {
				results[j] = Result{Name: inputs[j].Name, Err: ctx.Err()}
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
