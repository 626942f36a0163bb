// Package notifier fans out live-reload events to connected clients.
package notifier

import "sync"

// ReloadEvent tells clients that the navigation tree changed on disk.
const ReloadEvent = "reload"

// Notifier delivers named events to every subscriber.
// Delivery never blocks: a subscriber that has not consumed its previous
// event misses the new one, and picks up the latest state on its next read.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan string]struct{}
}

// New creates a Notifier with no subscribers.
func New() *Notifier {
	return &Notifier{subs: make(map[chan string]struct{})}
}

// Subscribe registers a listener. The returned cancel function removes it
// and closes the channel; calling it more than once is safe.
func (n *Notifier) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast sends event to all subscribers and returns how many received it.
func (n *Notifier) Broadcast(event string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	delivered := 0
	for ch := range n.subs {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Len returns the number of subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
