package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// SendCompletionOtpCommandHandler issues delivery completion codes.
//
// The code is stored on the agent as its single pending code, replacing any
// earlier one, and never expires. It is committed before the buyer is
// notified; a notifier failure is logged and does not fail the operation.
type SendCompletionOtpCommandHandler struct {
	uowFactory DeliveryUoWFactory
	codes      CodeGenerator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSendCompletionOtpCommandHandler creates a SendCompletionOtpCommandHandler.
func NewSendCompletionOtpCommandHandler(
	uowFactory DeliveryUoWFactory,
	codes CodeGenerator,
	notifier ports.Notifier,
	logger *slog.Logger,
) SendCompletionOtpCommandHandler {
	return SendCompletionOtpCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger.With("component", "completion-otp"),
	}
}

// Handle stores a fresh code on the agent and sends it to the buyer.
func (h SendCompletionOtpCommandHandler) Handle(ctx context.Context, cmd SendCompletionOtpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BuyerRepository().Get(ctx, cmd.Buyer()); err != nil {
		return err
	}

	agents := uow.AgentRepository()
	a, err := agents.GetByNameForUpdate(ctx, cmd.AgentName())
	if err != nil {
		return err
	}
	active := a.ActiveOrderID()
	if active == nil {
		return agent.ErrNoActiveDelivery
	}

	o, err := uow.OrderRepository().Get(ctx, *active)
	if err != nil {
		return err
	}
	if !o.Buyer().IsEqual(cmd.Buyer()) {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%s did not place order %s", cmd.Buyer(), o.ID()))
	}

	code, err := h.codes.Generate()
	if err != nil {
		return err
	}
	if err = a.IssueCode(code); err != nil {
		return err
	}
	if err = agents.Update(ctx, a); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		Kind:    ports.DeliveryCodeNotification,
		To:      cmd.Buyer().String(),
		Subject: "Your Daily Drop delivery code",
		Body:    fmt.Sprintf("Share code %s with your delivery agent to confirm order %s.", code, o.ID()),
	}
	if notifyErr := h.notifier.Notify(ctx, notification); notifyErr != nil {
		h.logger.WarnContext(ctx, "completion code not sent",
			"order_id", o.ID().String(),
			"error", errs.NewExternalServiceError("notifier", notifyErr),
		)
	}
	return nil
}
