// Package usecounter implements the reference-counted activation token
// described in spec §4.2: a UseCounter tracks how many Permits are
// currently Active, and notifies watchers only on zero-crossings (count
// rising above zero, or falling back to zero) so a flapping set of
// interested parties never produces a missed wake-up.
package usecounter

import "sync"

// Counter is a shared activation counter. The zero value is ready to use.
type Counter struct {
	mu       sync.Mutex
	count    uint32
	watchers []chan uint32
}

// NewCounter returns a ready-to-use Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Subscribe returns a new Permit bound to this counter, starting Inactive.
func (c *Counter) Subscribe() *Permit {
	return &Permit{counter: c}
}

// Value returns the current count.
func (c *Counter) Value() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Watch returns a latest-value channel that receives the current count
// on subscription and every time it crosses zero (rises to 1 or falls to
// 0). The channel is buffered (depth 1) and coalesces: a slow reader only
// ever sees the newest value, never a backlog.
func (c *Counter) Watch() <-chan uint32 {
	ch := make(chan uint32, 1)
	c.mu.Lock()
	ch <- c.count
	c.watchers = append(c.watchers, ch)
	c.mu.Unlock()
	return ch
}

func (c *Counter) inc() {
	c.mu.Lock()
	c.count++
	if c.count == 1 {
		c.broadcastLocked(c.count)
	}
	c.mu.Unlock()
}

func (c *Counter) dec() {
	c.mu.Lock()
	if c.count == 0 {
		c.mu.Unlock()
		return
	}
	c.count--
	if c.count == 0 {
		c.broadcastLocked(c.count)
	}
	c.mu.Unlock()
}

// broadcastLocked must be called with mu held. It pushes the new value to
// every watcher, dropping the previous unread value first so watchers
// never block the activate/deactivate fast path.
func (c *Counter) broadcastLocked(v uint32) {
	for _, ch := range c.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Permit is a handle that, while Active, counts as one against its
// Counter. The zero value is not usable; obtain one via Counter.Subscribe.
// Dropping a Permit without calling Release leaks nothing fatal (the
// counter simply overcounts until Release/Deactivate is called) — callers
// are expected to defer Release.
type Permit struct {
	counter *Counter
	mu      sync.Mutex
	active  bool
}

// Activate is idempotent: activating an already-Active permit is a no-op.
func (p *Permit) Activate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		return
	}
	p.active = true
	p.counter.inc()
}

// Deactivate is idempotent: deactivating an already-Inactive permit is a
// no-op.
func (p *Permit) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	p.active = false
	p.counter.dec()
}

// Active reports the permit's current state.
func (p *Permit) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Release is equivalent to Deactivate, named to mirror "dropping a Permit
// deactivates it" in spec §4.2 for call sites that model Permit lifetime
// with an explicit release rather than relying on garbage collection.
func (p *Permit) Release() { p.Deactivate() }

// Counter exposes the counter a Permit is bound to, primarily so callers
// can obtain additional permits or watch the aggregate count.
func (p *Permit) Counter() *Counter { return p.counter }
