// Package guard decides whether a form submission should be accepted before
// any field validation runs. It checks a honeypot field, how quickly the form
// was submitted after rendering, and a per-route sliding-window rate limit
// keyed by client IP.
package guard

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the trailing period over which attempts are counted.
	DefaultWindow = 10 * time.Minute
	// DefaultMaxAttempts is the number of attempts allowed per key per window.
	DefaultMaxAttempts = 6
	// DefaultMinSubmitDuration is the minimum believable time between the form
	// rendering and a human submitting it.
	DefaultMinSubmitDuration = 1500 * time.Millisecond
)

// Decision is the outcome of running the guards for one request.
// When OK is false, Status and Message are the HTTP response to send.
// Message is deliberately generic so callers cannot probe which heuristic
// fired.
type Decision struct {
	OK      bool
	Status  int
	Message string
}

func accept() Decision {
	return Decision{OK: true}
}

// Guard runs the pre-validation submission checks. Zero-value fields fall
// back to the package defaults in New.
type Guard struct {
	store             AttemptStore
	window            time.Duration
	maxAttempts       int
	minSubmitDuration time.Duration
	trustedProxyCount int
	now               func() time.Time
}

// New creates a Guard with the default window, attempt limit, and submit
// duration, backed by the given attempt store.
func New(store AttemptStore) *Guard {
	return &Guard{
		store:             store,
		window:            DefaultWindow,
		maxAttempts:       DefaultMaxAttempts,
		minSubmitDuration: DefaultMinSubmitDuration,
		trustedProxyCount: 1,
		now:               time.Now,
	}
}

// Check runs honeypot → timing → rate limit in that order and returns the
// first rejection. Rate-limit bookkeeping only happens once the first two
// checks pass, so a honeypot hit does not consume an attempt.
//
// startedAt is the form render time as epoch milliseconds. Values that do not
// parse as a number are treated as unknown and skip the timing check.
func (g *Guard) Check(ctx context.Context, routeKey string, r *http.Request, honeypot, startedAt string) Decision {
	now := g.now()

	if strings.TrimSpace(honeypot) != "" {
		return Decision{Status: http.StatusBadRequest, Message: "Submission rejected."}
	}

	if startedAt != "" {
		if startedAtMs, err := strconv.ParseFloat(strings.TrimSpace(startedAt), 64); err == nil {
			elapsed := now.Sub(time.UnixMilli(int64(startedAtMs)))
			if elapsed < g.minSubmitDuration {
				return Decision{Status: http.StatusBadRequest, Message: "Submission rejected."}
			}
		}
	}

	key := routeKey + ":" + g.ClientIP(r)
	count, err := g.store.RecordAndCount(ctx, key, now, g.window)
	if err != nil {
		// The limiter is best-effort. A store outage must not block every
		// legitimate submission, so fail open.
		slog.Warn("attempt store unavailable, allowing submission", "route", routeKey, "error", err)
		return accept()
	}
	if count > g.maxAttempts {
		return Decision{Status: http.StatusTooManyRequests, Message: "Too many submissions. Please wait and try again."}
	}

	return accept()
}

// ClientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (g *Guard) ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && g.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - g.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			if ip := strings.TrimSpace(parts[idx]); ip != "" {
				return ip
			}
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
