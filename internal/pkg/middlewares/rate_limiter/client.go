package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// ClientLimiter держит token bucket на каждый ключ (заказ или адрес клиента).
// Ключи без запросов дольше idle удаляются при очередном обращении.
type ClientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	clients   map[string]*clientEntry
	lastSweep time.Time
	now       func() time.Time
}

type ClientOption func(*ClientLimiter)

func WithClock(now func() time.Time) ClientOption {
	return func(c *ClientLimiter) {
		c.now = now
	}
}

func NewClientLimiter(qps float64, burst int, idle time.Duration, opts ...ClientOption) *ClientLimiter {
	c := &ClientLimiter{
		limit:   rate.Limit(qps),
		burst:   burst,
		idle:    idle,
		clients: make(map[string]*clientEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastSweep = c.now()
	return c
}

func (c *ClientLimiter) Allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= c.idle {
		c.sweep(now)
	}

	entry, ok := c.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[key] = entry
		ClientLimiters.Inc()
	}
	entry.seen = now

	return entry.limiter.AllowN(now, 1)
}

// Len - число отслеживаемых ключей.
func (c *ClientLimiter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

func (c *ClientLimiter) sweep(now time.Time) {
	for key, entry := range c.clients {
		if now.Sub(entry.seen) >= c.idle {
			delete(c.clients, key)
			ClientLimiters.Dec()
		}
	}
	c.lastSweep = now
}
