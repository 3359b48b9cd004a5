// Package memoryguard - in-process idempotency guard для одного инстанса сервиса.
package memoryguard

import (
	"context"
	"sync"
	"time"
)

type lease struct {
	expiresAt time.Time
}

type Option func(*Guard)

// WithClock подменяет часы, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

type Guard struct {
	leases sync.Map // key -> *lease
	now    func() time.Time
}

func New(opts ...Option) *Guard {
	g := &Guard{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func key(orderID, token string) string {
	return orderID + "\x00" + token
}

// TryAcquire атомарно занимает lease. Истекший lease перехватывается через CompareAndSwap.
func (g *Guard) TryAcquire(_ context.Context, orderID, token string, ttl time.Duration) (bool, error) {
	k := key(orderID, token)
	now := g.now()
	fresh := &lease{expiresAt: now.Add(ttl)}

	for {
		actual, loaded := g.leases.LoadOrStore(k, fresh)
		if !loaded {
			return true, nil
		}

		existing := actual.(*lease)
		if now.Before(existing.expiresAt) {
			return false, nil
		}
		if g.leases.CompareAndSwap(k, existing, fresh) {
			return true, nil
		}
		// lease поменялся между Load и CAS, пробуем снова
	}
}

func (g *Guard) Release(_ context.Context, orderID, token string) error {
	g.leases.Delete(key(orderID, token))
	return nil
}

// Sweep удаляет истекшие lease и возвращает их количество.
func (g *Guard) Sweep(_ context.Context) (int64, error) {
	now := g.now()
	var removed int64

	g.leases.Range(func(k, v any) bool {
		if !now.Before(v.(*lease).expiresAt) && g.leases.CompareAndDelete(k, v) {
			removed++
		}
		return true
	})

	return removed, nil
}

func (g *Guard) Len() int {
	n := 0
	g.leases.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
