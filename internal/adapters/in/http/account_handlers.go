package http

import (
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SendAccountOtp handles POST /account/otp.
func (s *Server) SendAccountOtp(ctx echo.Context) error {
	var req EmailRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSendAccountOtpCommand(email)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SendAccountOtp.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}

// VerifyAccountOtp handles POST /account/otp/verify.
func (s *Server) VerifyAccountOtp(ctx echo.Context) error {
	var req VerifyAccountOtpRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyAccountOtpCommand(email, req.Code)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.VerifyAccountOtp.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CodeResponse{Success: true})
}
