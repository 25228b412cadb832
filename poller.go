package uniauth

import (
	"sync"
	"time"
)

// Poller repeatedly evaluates a predicate on a fixed interval and fires a
// callback exactly once when it first passes. There is no backoff and no
// retry bound: a provider may take arbitrarily long to finish loading, and
// waiting it out is the accepted trade-off.
//
// Stop guarantees that onReady does not begin after Stop returns. Stop must
// not be called from inside onReady.
type Poller struct {
	interval  time.Duration
	predicate func() bool
	onReady   func()

	mu      sync.Mutex
	stopped bool
	fired   bool
	done    chan struct{}
	once    sync.Once
}

// NewPoller builds a poller; Start begins polling.
func NewPoller(interval time.Duration, predicate func() bool, onReady func()) *Poller {
	return &Poller{
		interval:  interval,
		predicate: predicate,
		onReady:   onReady,
		done:      make(chan struct{}),
	}
}

// Start launches the polling loop. Calling Start more than once is undefined.
func (p *Poller) Start() {
	go p.run()
}

// Stop cancels the poller. After Stop returns, onReady will not be invoked.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.once.Do(func() { close(p.done) })
}

func (p *Poller) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if !p.predicate() {
				continue
			}
			// Fire under the lock so Stop can't return while a callback
			// is about to start.
			p.mu.Lock()
			if p.stopped || p.fired {
				p.mu.Unlock()
				return
			}
			p.fired = true
			p.onReady()
			p.mu.Unlock()
			return
		}
	}
}
