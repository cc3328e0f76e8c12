// Package otpstore keeps account verification codes outside the database.
// MemoryStore suits a single instance and needs an explicit sweep; RedisStore
// is shared between instances and lets Redis expire entries.
package otpstore

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is an in-process ports.OtpStore and ports.OtpSweeper.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Save replaces any code issued earlier for key.
func (s *MemoryStore) Save(_ context.Context, key, code string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{code: code, expiresAt: expiresAt}
	return nil
}

// Consume deletes the code on a match. An expired code is deleted as well.
func (s *MemoryStore) Consume(_ context.Context, key, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return otp.ErrCodeNotIssued
	}
	if now.After(e.expiresAt) {
		delete(s.entries, key)
		return otp.ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(e.code)) != 1 {
		return otp.ErrCodeMismatch
	}

	delete(s.entries, key)
	return nil
}

// Sweep removes entries expired at now.
func (s *MemoryStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored codes, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
