package dom

// FrameScheduler defers work to the next rendered frame.
type FrameScheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// FrameQueue is a FrameScheduler flushed explicitly by its owner, typically
// once per UI update.
type FrameQueue struct {
	pending []*frame
}

type frame struct {
	fn        func()
	cancelled bool
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) func() {
	f := &frame{fn: fn}
	q.pending = append(q.pending, f)
	return func() { f.cancelled = true }
}

// Flush runs the queued callbacks. Frames requested while flushing run on the
// next Flush. It returns the number of callbacks run.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	ran := 0
	for _, f := range batch {
		if f.cancelled {
			continue
		}
		f.fn()
		ran++
	}
	return ran
}

// Pending reports the number of live queued frames.
func (q *FrameQueue) Pending() int {
	n := 0
	for _, f := range q.pending {
		if !f.cancelled {
			n++
		}
	}
	return n
}
