package services

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LoginAttemptTracker counts consecutive failed logins per email and blocks
// further attempts once the limit is hit. Entries expire on their own, so a
// blocked account frees itself after the block window.
type LoginAttemptTracker struct {
	attempts    *gocache.Cache
	maxAttempts int
}

func NewLoginAttemptTracker(maxAttempts int, blockFor time.Duration) *LoginAttemptTracker {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if blockFor <= 0 {
		blockFor = 30 * time.Minute
	}
	return &LoginAttemptTracker{
		attempts:    gocache.New(blockFor, 10*time.Minute),
		maxAttempts: maxAttempts,
	}
}

func (t *LoginAttemptTracker) key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsBlocked reports whether the email has exhausted its attempts.
func (t *LoginAttemptTracker) IsBlocked(email string) bool {
	if count, found := t.attempts.Get(t.key(email)); found {
		return count.(int) >= t.maxAttempts
	}
	return false
}

// RecordFailure bumps the failure counter, refreshing the expiry window.
func (t *LoginAttemptTracker) RecordFailure(email string) {
	key := t.key(email)
	count := 0
	if v, found := t.attempts.Get(key); found {
		count = v.(int)
	}
	t.attempts.SetDefault(key, count+1)
}

// Reset clears the counter after a successful login.
func (t *LoginAttemptTracker) Reset(email string) {
	t.attempts.Delete(t.key(email))
}
