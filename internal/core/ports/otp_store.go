package ports

import (
	"context"
	"time"
)

// OtpStore keeps short-lived account verification codes keyed by buyer email.
// At most one code exists per key; saving replaces the previous one.
type OtpStore interface {
	// Save stores code for key until expiresAt.
	Save(ctx context.Context, key, code string, expiresAt time.Time) error

	// Consume checks code for key at now and deletes it on success. It fails with
	// otp.ErrCodeNotIssued, otp.ErrCodeExpired or otp.ErrCodeMismatch.
	Consume(ctx context.Context, key, code string, now time.Time) error
}

// OtpSweeper is implemented by stores that do not expire entries on their own.
type OtpSweeper interface {
	// Sweep removes entries expired at now and returns how many were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
