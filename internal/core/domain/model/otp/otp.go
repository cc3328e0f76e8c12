// Package otp provides one-time numeric codes.
//
// Two policies use these codes and they deliberately differ:
//   - delivery completion codes live in the agent's single pending slot and never expire
//   - account verification codes live in a ports.OtpStore and expire after a fixed window
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Length is the number of digits of every code.
const Length = 4

var (
	// ErrCodeNotIssued is returned when no code exists for the key.
	ErrCodeNotIssued = errors.New("no code issued")
	// ErrCodeExpired is returned when the code's window has passed.
	ErrCodeExpired = errors.New("code expired")
	// ErrCodeMismatch is returned when the entered code differs from the issued one.
	ErrCodeMismatch = errors.New("code does not match")
)

// Generator produces uniformly distributed codes between 1000 and 9999.
type Generator struct {
	random io.Reader
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() Generator {
	return Generator{random: rand.Reader}
}

// NewGeneratorFrom creates a Generator reading entropy from r.
func NewGeneratorFrom(r io.Reader) Generator {
	return Generator{random: r}
}

var (
	codeFloor = big.NewInt(1000)
	codeSpan  = big.NewInt(9000)
)

// Generate returns a fresh four-digit code.
func (g Generator) Generate() (string, error) {
	src := g.random
	if src == nil {
		src = rand.Reader
	}
	n, err := rand.Int(src, codeSpan)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return n.Add(n, codeFloor).String(), nil
}
