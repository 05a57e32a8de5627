package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mkrol/cvsift/internal/analyze"
	"github.com/mkrol/cvsift/internal/config"
	"github.com/mkrol/cvsift/internal/section"
	"github.com/mkrol/cvsift/internal/store"
	"github.com/mkrol/cvsift/internal/webhook"
)

// Orchestrator manages the CV analysis pipeline.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	detector *section.Detector
	analyzer *analyze.Analyzer
	results  *store.Store
	hook     *webhook.Client
	log      *slog.Logger
	cfg      config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator wires the pipeline together.
func NewOrchestrator(cfg config.Config, detector *section.Detector, analyzer *analyze.Analyzer, results *store.Store, hook *webhook.Client, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		detector: detector,
		analyzer: analyzer,
		results:  results,
		hook:     hook,
		log:      log,
		cfg:      cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.detector, o.analyzer, o.results, o.hook, o.log)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Evict expired jobs and results.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
				o.results.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Results returns the result store for direct use by API handlers.
func (o *Orchestrator) Results() *store.Store {
	return o.results
}

// Detector returns the section detector for direct use by API handlers.
func (o *Orchestrator) Detector() *section.Detector {
	return o.detector
}
