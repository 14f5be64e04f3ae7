package FIFOqueue

import (
	"sync/atomic"

	"github.com/antigloss/go/concurrent/container/queue"

	"attachmentCrawler/domain/models"
)

type FIFOQueue struct {
	queue *queue.LockfreeQueue
	size  uint64
}

func New() *FIFOQueue {
	return &FIFOQueue{
		queue: queue.NewLockfreeQueue(),
		size:  0,
	}
}

func (q *FIFOQueue) Push(link models.Link) error {
	q.queue.Push(link)
	// counted only once the link can be popped.
	atomic.AddUint64(&q.size, 1)
	return nil
}

// Pop returns false once the queue is drained. Safe for concurrent workers.
func (q *FIFOQueue) Pop() (models.Link, bool) {
	for {
		n := atomic.LoadUint64(&q.size)
		if n == 0 {
			return models.Link{}, false
		}
		if atomic.CompareAndSwapUint64(&q.size, n, n-1) {
			return q.queue.Pop().(models.Link), true
		}
	}
}

func (q *FIFOQueue) Len() int {
	return int(atomic.LoadUint64(&q.size))
}
