// Package schedule coalesces layout passes.
//
// Layout changes request a fit or an update on a Target instead of running
// the pass immediately. Requests made before the next Flush are merged, so a
// burst of structural edits costs one fit and one update per target:
//
//	s := schedule.New()
//	s.RequestFit(panel)
//	s.RequestFit(panel) // coalesced
//	s.Flush()           // panel.Fit() runs once
//
// Batch defers flushing until the outermost batch returns.
package schedule

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/metrics"
)

// Target runs layout passes.
type Target interface {
	Fit()
	Update()
}

// queue is an insertion-ordered set of targets.
type queue struct {
	pending map[Target]struct{}
	order   []Target
}

func (q *queue) push(t Target) bool {
	if q.pending == nil {
		q.pending = make(map[Target]struct{})
	}
	if _, ok := q.pending[t]; ok {
		return false
	}
	q.pending[t] = struct{}{}
	q.order = append(q.order, t)
	return true
}

func (q *queue) pop() (Target, bool) {
	if len(q.order) == 0 {
		return nil, false
	}
	t := q.order[0]
	q.order = q.order[1:]
	delete(q.pending, t)
	return t, true
}

func (q *queue) len() int {
	return len(q.order)
}

// Scheduler queues fit and update passes per target.
type Scheduler struct {
	mu       sync.Mutex
	depth    int // nesting depth of Batch (0 = not batching)
	flushing bool
	fits     queue
	updates  queue

	dirty atomic.Bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// RequestFit queues a fit pass for t. It reports whether the request was
// queued; false means a fit for t was already pending.
func (s *Scheduler) RequestFit(t Target) bool {
	return s.request(t, &s.fits, metrics.PassFit)
}

// RequestUpdate queues an update pass for t. It reports whether the request
// was queued; false means an update for t was already pending.
func (s *Scheduler) RequestUpdate(t Target) bool {
	return s.request(t, &s.updates, metrics.PassUpdate)
}

func (s *Scheduler) request(t Target, q *queue, pass string) bool {
	if s == nil {
		panic("schedule: nil scheduler in request")
	}
	s.mu.Lock()
	queued := q.push(t)
	s.mu.Unlock()

	metrics.ObserveRequest(pass, !queued)
	if !queued {
		debug.Logger().Debug("schedule: coalesced request", "pass", pass)
		return false
	}
	s.dirty.Store(true)
	return true
}

// Pending returns the number of queued fit and update passes.
func (s *Scheduler) Pending() (fits, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fits.len(), s.updates.len()
}

// Flush runs queued passes until none are left. Fits run before updates, and
// passes requested while flushing run in the same flush. Flush is a no-op
// inside a Batch or when called from a pass that is being flushed.
func (s *Scheduler) Flush() {
	if !s.dirty.Swap(false) {
		return
	}

	s.mu.Lock()
	if s.depth > 0 || s.flushing {
		s.mu.Unlock()
		s.dirty.Store(true)
		return
	}
	s.flushing = true
	s.mu.Unlock()

	start := time.Now()
	var fits, updates int
	defer func() {
		s.mu.Lock()
		s.flushing = false
		s.mu.Unlock()
		metrics.ObserveFlush(time.Since(start))
		debug.Logger().Debug("schedule: flushed", "fits", fits, "updates", updates)
	}()

	for {
		s.mu.Lock()
		if t, ok := s.fits.pop(); ok {
			s.mu.Unlock()
			t.Fit()
			fits++
			continue
		}
		if t, ok := s.updates.pop(); ok {
			s.mu.Unlock()
			t.Update()
			updates++
			continue
		}
		s.dirty.Store(false)
		s.mu.Unlock()
		return
	}
}

// Batch runs fn and flushes once the outermost Batch returns. Nested Batch
// calls are supported. If fn panics the batch depth is restored before the
// panic propagates and nothing is flushed.
func (s *Scheduler) Batch(fn func()) {
	if s == nil {
		panic("schedule: nil scheduler in Batch")
	}
	s.mu.Lock()
	s.depth++
	s.mu.Unlock()

	completed := false
	defer func() {
		s.mu.Lock()
		s.depth--
		outermost := s.depth == 0
		s.mu.Unlock()
		if completed && outermost {
			s.Flush()
		}
	}()

	fn()
	completed = true
}
