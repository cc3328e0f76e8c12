package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// DefaultAccountOtpTTL is how long an account verification code stays valid.
const DefaultAccountOtpTTL = 2 * time.Minute

func accountOtpKey(email kernel.Email) string {
	return "account:" + email.String()
}

// SendAccountOtpCommandHandler issues expiring account verification codes.
// Issuing a new code for the same email replaces the previous one.
type SendAccountOtpCommandHandler struct {
	store    ports.OtpStore
	codes    CodeGenerator
	notifier ports.Notifier
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewSendAccountOtpCommandHandler creates a SendAccountOtpCommandHandler.
// A non-positive ttl falls back to DefaultAccountOtpTTL.
func NewSendAccountOtpCommandHandler(
	store ports.OtpStore,
	codes CodeGenerator,
	notifier ports.Notifier,
	ttl time.Duration,
	logger *slog.Logger,
) SendAccountOtpCommandHandler {
	if ttl <= 0 {
		ttl = DefaultAccountOtpTTL
	}
	return SendAccountOtpCommandHandler{
		store:    store,
		codes:    codes,
		notifier: notifier,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.With("component", "account-otp"),
	}
}

// Handle stores a new code and sends it to the email address.
func (h SendAccountOtpCommandHandler) Handle(ctx context.Context, cmd SendAccountOtpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := h.codes.Generate()
	if err != nil {
		return err
	}

	if err = h.store.Save(ctx, accountOtpKey(cmd.Email()), code, h.now().Add(h.ttl)); err != nil {
		return err
	}

	notification := ports.Notification{
		Kind:    ports.AccountCodeNotification,
		To:      cmd.Email().String(),
		Subject: "Your Daily Drop verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %s.", code, h.ttl),
	}
	if notifyErr := h.notifier.Notify(ctx, notification); notifyErr != nil {
		h.logger.WarnContext(ctx, "account code not sent",
			"error", errs.NewExternalServiceError("notifier", notifyErr),
		)
	}
	return nil
}

// VerifyAccountOtpCommandHandler consumes account verification codes. A
// matching code can be used once; otp.ErrCodeExpired, otp.ErrCodeMismatch and
// otp.ErrCodeNotIssued report the failures.
type VerifyAccountOtpCommandHandler struct {
	store ports.OtpStore
	now   func() time.Time
}

// NewVerifyAccountOtpCommandHandler creates a VerifyAccountOtpCommandHandler.
func NewVerifyAccountOtpCommandHandler(store ports.OtpStore) VerifyAccountOtpCommandHandler {
	return VerifyAccountOtpCommandHandler{store: store, now: time.Now}
}

// Handle verifies the code.
func (h VerifyAccountOtpCommandHandler) Handle(ctx context.Context, cmd VerifyAccountOtpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.store.Consume(ctx, accountOtpKey(cmd.Email()), cmd.Code(), h.now())
}
