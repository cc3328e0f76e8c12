package cmd

import (
	"fmt"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	JWTSecret      string
	AllowedOrigins []string

	// OtpStore selects where account verification codes live: "memory" or "redis".
	OtpStore  string
	RedisAddr string

	// NATSURL enables the NATS Streaming notifier; empty means log-only notifications.
	NATSURL       string
	NATSClusterID string
	NATSClientID  string
	NotifySubject string

	AccountOtpTTL     time.Duration
	OtpSweepSchedule  string
	ReconcileSchedule string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Validate reports configuration that would make the service unusable.
func (c Config) Validate() error {
	var missing []string
	for _, v := range []struct{ key, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
	} {
		if v.value == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	switch c.OtpStore {
	case "", "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("OTP_STORE=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown OTP_STORE %q", c.OtpStore)
	}
	return nil
}

// SplitList turns a comma separated value into its trimmed, non-empty parts.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
