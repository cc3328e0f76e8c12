package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var (
	ErrSendAccountOtpCommandIsNotConstructed = errors.New(
		"SendAccountOtpCommand must be created via NewSendAccountOtpCommand constructor",
	)
	ErrVerifyAccountOtpCommandIsNotConstructed = errors.New(
		"VerifyAccountOtpCommand must be created via NewVerifyAccountOtpCommand constructor",
	)
)

// SendAccountOtpCommand requests an account verification code for email.
type SendAccountOtpCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email
	guard guard.ConstructorGuard
}

// NewSendAccountOtpCommand creates a SendAccountOtpCommand.
func NewSendAccountOtpCommand(email kernel.Email) (SendAccountOtpCommand, error) {
	if err := email.Validate(); err != nil {
		return SendAccountOtpCommand{}, err
	}
	return SendAccountOtpCommand{email: email, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendAccountOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendAccountOtpCommandIsNotConstructed)
}

func (c SendAccountOtpCommand) Email() kernel.Email { return c.email }

// VerifyAccountOtpCommand checks an account verification code.
type VerifyAccountOtpCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email
	code  string
	guard guard.ConstructorGuard
}

// NewVerifyAccountOtpCommand creates a VerifyAccountOtpCommand.
func NewVerifyAccountOtpCommand(email kernel.Email, code string) (VerifyAccountOtpCommand, error) {
	code = strings.TrimSpace(code)

	var errList []error
	if err := email.Validate(); err != nil {
		errList = append(errList, err)
	}
	if code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return VerifyAccountOtpCommand{}, err
	}

	return VerifyAccountOtpCommand{email: email, code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAccountOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAccountOtpCommandIsNotConstructed)
}

func (c VerifyAccountOtpCommand) Email() kernel.Email { return c.email }
func (c VerifyAccountOtpCommand) Code() string        { return c.code }
