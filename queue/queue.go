// Package queue implements the time-ordered envelope buffer the
// simulator pumps: push appends an in-flight envelope, Pop removes and
// returns the one with the smallest delivery time, breaking ties by
// insertion order.
package queue

import (
	"container/heap"

	"github.com/quorumgen/idgen"
)

// Queue is a time-ordered buffer of envelopes. The zero value is an
// empty queue ready for use; New returns one.
type Queue struct {
	h   envelopeHeap
	seq uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push appends an envelope to the queue.
func (q *Queue) Push(e idgen.Envelope) {
	heap.Push(&q.h, entry{envelope: e, seq: q.seq})
	q.seq++
}

// Pop removes and returns the envelope with the smallest Time, breaking
// ties by insertion order (the envelope pushed earlier is returned
// first). Pop panics if the queue is empty; callers must check Empty
// first.
func (q *Queue) Pop() idgen.Envelope {
	item := heap.Pop(&q.h).(entry)
	return item.envelope
}

// Empty reports whether the queue has no envelopes left.
func (q *Queue) Empty() bool {
	return q.h.Len() == 0
}

// Len returns the number of envelopes currently buffered.
func (q *Queue) Len() int {
	return q.h.Len()
}

type entry struct {
	envelope idgen.Envelope
	seq      uint64
}

// envelopeHeap implements container/heap.Interface, ordering entries by
// (Time, seq) so that the smallest Time pops first and ties resolve in
// insertion order.
type envelopeHeap []entry

func (h envelopeHeap) Len() int { return len(h) }

func (h envelopeHeap) Less(i, j int) bool {
	if h[i].envelope.Time != h[j].envelope.Time {
		return h[i].envelope.Time < h[j].envelope.Time
	}
	return h[i].seq < h[j].seq
}

func (h envelopeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *envelopeHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

func (h *envelopeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
