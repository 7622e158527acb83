package ratelimit

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// mockClock implements Clock for deterministic tests.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(clock Clock) *Limiter {
	return New(&Config{
		Cooldown:   2 * time.Second,
		MaxPerHour: 3,
		Clock:      clock,
	})
}

func TestCheckAllowsFirstRequest(t *testing.T) {
	l := newTestLimiter(newMockClock())
	defer l.Close()

	if res := l.Check("203.0.113.9"); !res.Allowed {
		t.Fatalf("first request denied: %+v", res)
	}
}

func TestCooldownBetweenRequests(t *testing.T) {
	clock := newMockClock()
	l := newTestLimiter(clock)
	defer l.Close()

	l.Record("203.0.113.9")
	res := l.Check("203.0.113.9")
	if res.Allowed {
		t.Fatal("expected cooldown denial")
	}
	if res.Reason != "cooldown" {
		t.Fatalf("reason = %q", res.Reason)
	}
	if res.RetryAfter <= 0 || res.RetryAfter > 2*time.Second {
		t.Fatalf("retry after = %v", res.RetryAfter)
	}

	clock.Advance(3 * time.Second)
	if res := l.Check("203.0.113.9"); !res.Allowed {
		t.Fatalf("denied after cooldown: %+v", res)
	}
}

func TestHourlyLimit(t *testing.T) {
	clock := newMockClock()
	l := newTestLimiter(clock)
	defer l.Close()

	for i := 0; i < 3; i++ {
		if res := l.Check("203.0.113.9"); !res.Allowed {
			t.Fatalf("request %d denied: %+v", i, res)
		}
		l.Record("203.0.113.9")
		clock.Advance(5 * time.Second)
	}

	res := l.Check("203.0.113.9")
	if res.Allowed {
		t.Fatal("expected hourly limit denial")
	}
	if res.Reason != "hourly_limit" {
		t.Fatalf("reason = %q", res.Reason)
	}

	// A different IP is unaffected
	if res := l.Check("198.51.100.4"); !res.Allowed {
		t.Fatalf("other ip denied: %+v", res)
	}

	// Window expires after an hour
	clock.Advance(time.Hour)
	if res := l.Check("203.0.113.9"); !res.Allowed {
		t.Fatalf("denied after window expiry: %+v", res)
	}
}

func TestCleanupRemovesStaleEntries(t *testing.T) {
	clock := newMockClock()
	l := newTestLimiter(clock)
	defer l.Close()

	l.Record("203.0.113.9")
	clock.Advance(2 * time.Hour)
	l.cleanup()

	l.mu.RLock()
	n := len(l.byIP)
	l.mu.RUnlock()
	if n != 0 {
		t.Fatalf("entries remaining = %d", n)
	}
}

func TestGetClientIPDirect(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/analyze", nil)
	r.RemoteAddr = "203.0.113.9:51234"
	if ip := GetClientIP(r, false); ip != "203.0.113.9" {
		t.Fatalf("ip = %q", ip)
	}
}

func TestGetClientIPIgnoresSpoofedHeader(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/analyze", nil)
	r.RemoteAddr = "203.0.113.9:51234"
	r.Header.Set("X-Forwarded-For", "198.51.100.4")
	if ip := GetClientIP(r, false); ip != "203.0.113.9" {
		t.Fatalf("ip = %q", ip)
	}
}

func TestGetClientIPTrustedProxy(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/analyze", nil)
	r.RemoteAddr = "10.0.0.1:443"
	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
	if ip := GetClientIP(r, true); ip != "198.51.100.4" {
		t.Fatalf("ip = %q", ip)
	}
}
