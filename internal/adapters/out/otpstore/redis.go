package otpstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "otp:"
	// expiredGrace is how long an entry outlives its expiry, so a late attempt
	// reports otp.ErrCodeExpired instead of otp.ErrCodeNotIssued.
	expiredGrace = time.Minute
)

// Script results.
const (
	consumed    = 1
	notIssued   = 0
	mismatch    = -1
	expiredCode = -2
)

// The value is "<code>|<expiry unix ms>". Comparison and deletion happen in one
// script so two concurrent attempts cannot both consume the same code.
var consumeScript = redis.NewScript(`
local value = redis.call('GET', KEYS[1])
if not value then
	return 0
end

local sep = string.find(value, '|', 1, true)
local code = string.sub(value, 1, sep - 1)
local expiresAt = tonumber(string.sub(value, sep + 1))

if tonumber(ARGV[2]) > expiresAt then
	redis.call('DEL', KEYS[1])
	return -2
end

if code ~= ARGV[1] then
	return -1
end

redis.call('DEL', KEYS[1])
return 1
`)

// RedisStore is a ports.OtpStore backed by Redis.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Save stores code for key. Redis drops the entry shortly after expiresAt.
func (s *RedisStore) Save(ctx context.Context, key, code string, expiresAt time.Time) error {
	if strings.Contains(code, "|") {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("contains %q", "|"))
	}

	ttl := time.Until(expiresAt) + expiredGrace
	if ttl <= 0 {
		ttl = expiredGrace
	}

	value := code + "|" + strconv.FormatInt(expiresAt.UnixMilli(), 10)
	return s.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Consume checks code for key at now and deletes it on success.
func (s *RedisStore) Consume(ctx context.Context, key, code string, now time.Time) error {
	result, err := consumeScript.Run(ctx, s.client, []string{keyPrefix + key}, code, now.UnixMilli()).Int()
	if err != nil {
		return err
	}

	switch result {
	case consumed:
		return nil
	case notIssued:
		return otp.ErrCodeNotIssued
	case mismatch:
		return otp.ErrCodeMismatch
	case expiredCode:
		return otp.ErrCodeExpired
	default:
		return fmt.Errorf("unexpected consume result %d", result)
	}
}
