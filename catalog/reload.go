package catalog

import (
	"context"
	"sync"

	"github.com/gofish-bot/appstore/models"
)

// ReloadResult is the outcome of one reload.
type ReloadResult struct {
	Generation uint64
	Apps       []models.App
	Err        error
}

// Reloader runs loads so that a newer reload supersedes an older one: starting
// a reload cancels the one in flight, and results carry a generation that
// Current reports as stale once a newer reload has started.
type Reloader struct {
	source Source

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewReloader(source Source) *Reloader {
	return &Reloader{source: source}
}

// Start cancels any reload in flight and starts a new one. The returned
// channel receives exactly one result.
func (r *Reloader) Start(ctx context.Context) (uint64, <-chan ReloadResult) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	gen := r.gen
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	results := make(chan ReloadResult, 1)
	go func() {
		defer cancel()
		apps, err := r.source.Load(ctx)
		results <- ReloadResult{Generation: gen, Apps: apps, Err: err}
	}()
	return gen, results
}

// Current reports whether gen belongs to the most recently started reload.
func (r *Reloader) Current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen == r.gen
}

// Stop cancels the reload in flight, if any.
func (r *Reloader) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
