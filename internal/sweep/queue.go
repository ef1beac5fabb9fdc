package sweep

import "container/heap"

// eventQueue is the sweep's pending-event priority queue, ordered so
// that Pop always returns the next event the sweep-line must process:
// leftmost point first, right endpoints before left endpoints at a
// shared point (so a segment ending exactly where another begins closes
// out before the new one opens), ties broken to keep a stable order.
type eventQueue struct {
	items []*sweepEvent
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(q)
	return q
}

func (q *eventQueue) push(e *sweepEvent) { heap.Push(q, e) }

func (q *eventQueue) pop() *sweepEvent {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*sweepEvent)
}

func queueLess(a, b *sweepEvent) bool {
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	if a.point.Y != b.point.Y {
		return a.point.Y < b.point.Y
	}
	if a.left != b.left {
		// Right (closing) endpoints are processed before left (opening)
		// endpoints sharing the same point.
		return !a.left
	}
	return a.seq < b.seq
}

// container/heap.Interface implementation.

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool { return queueLess(q.items[i], q.items[j]) }

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x any) { q.items = append(q.items, x.(*sweepEvent)) }

func (q *eventQueue) Pop() any {
	n := len(q.items)
	item := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return item
}
