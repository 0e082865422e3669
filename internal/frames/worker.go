package frames

import (
	"context"

	"golang.org/x/time/rate"
)

// ModelWorker serializes all model invocations through a single goroutine.
// The inference backend may be single-threaded or GPU-bound; concurrent
// selection requests must not reach it directly. The rate limiter caps how
// hard sustained load can drive the backend.
type ModelWorker struct {
	model    Model
	requests chan inferRequest
	limiter  *rate.Limiter
}

type inferRequest struct {
	ctx      context.Context
	frames   [][]byte
	response chan inferResponse
}

type inferResponse struct {
	rows [][]float32
	err  error
}

func NewModelWorker(model Model, ratePerSec float64, burst, queueSize int) *ModelWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	w := &ModelWorker{
		model:    model,
		requests: make(chan inferRequest, queueSize),
		limiter:  rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
	go w.run()
	return w
}

func (w *ModelWorker) run() {
	for req := range w.requests {
		if err := w.limiter.Wait(req.ctx); err != nil {
			req.response <- inferResponse{err: err}
			continue
		}
		rows, err := w.model.Infer(req.ctx, req.frames)
		req.response <- inferResponse{rows: rows, err: err}
	}
}

func (w *ModelWorker) infer(ctx context.Context, batch [][]byte) ([][]float32, error) {
	response := make(chan inferResponse, 1)
	select {
	case w.requests <- inferRequest{ctx: ctx, frames: batch, response: response}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case resp := <-response:
		return resp.rows, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
