package otpstore_test

import (
	"testing"
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/otpstore"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Consume(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		save    bool
		code    string
		at      time.Time
		wantErr error
		wantLen int
	}{
		{name: "matching_code", save: true, code: "4821", at: now.Add(time.Minute), wantLen: 0},
		{name: "wrong_code_keeps_entry", save: true, code: "1111", at: now.Add(time.Minute), wantErr: otp.ErrCodeMismatch, wantLen: 1},
		{name: "expired_code_is_removed", save: true, code: "4821", at: now.Add(3 * time.Minute), wantErr: otp.ErrCodeExpired, wantLen: 0},
		{name: "never_issued", save: false, code: "4821", at: now, wantErr: otp.ErrCodeNotIssued, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			// Given
			store := otpstore.NewMemoryStore()
			if tt.save {
				require.NoError(t, store.Save(ctx, "account:asha@example.com", "4821", now.Add(2*time.Minute)))
			}

			// When
			err := store.Consume(ctx, "account:asha@example.com", tt.code, tt.at)

			// Then
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLen, store.Len())
		})
	}
}

func TestMemoryStore_ConsumeTwice_SecondFails(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	store := otpstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "k", "4821", now.Add(time.Minute)))

	require.NoError(t, store.Consume(ctx, "k", "4821", now))
	require.ErrorIs(t, store.Consume(ctx, "k", "4821", now), otp.ErrCodeNotIssued)
}

func TestMemoryStore_Save_ReplacesEarlierCode(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	store := otpstore.NewMemoryStore()

	require.NoError(t, store.Save(ctx, "k", "1111", now.Add(time.Minute)))
	require.NoError(t, store.Save(ctx, "k", "2222", now.Add(time.Minute)))

	require.ErrorIs(t, store.Consume(ctx, "k", "1111", now), otp.ErrCodeMismatch)
	require.NoError(t, store.Consume(ctx, "k", "2222", now))
}

func TestMemoryStore_Sweep_RemovesOnlyExpired(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Given
	store := otpstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "old", "1111", now.Add(-time.Second)))
	require.NoError(t, store.Save(ctx, "older", "2222", now.Add(-time.Hour)))
	require.NoError(t, store.Save(ctx, "fresh", "3333", now.Add(time.Minute)))

	// When
	removed, err := store.Sweep(ctx, now)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())
	require.NoError(t, store.Consume(ctx, "fresh", "3333", now))
}
