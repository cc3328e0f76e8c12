package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrSendCompletionOtpCommandIsNotConstructed = errors.New(
	"SendCompletionOtpCommand must be created via NewSendCompletionOtpCommand constructor",
)

// CodeGenerator produces one-time codes. otp.Generator is the production implementation.
type CodeGenerator interface {
	Generate() (string, error)
}

// SendCompletionOtpCommand asks for a completion code to be sent to the buyer.
type SendCompletionOtpCommand struct { //nolint:recvcheck //using for validation
	agentName string
	buyer     kernel.Email

	guard guard.ConstructorGuard
}

// NewSendCompletionOtpCommand creates a SendCompletionOtpCommand.
func NewSendCompletionOtpCommand(agentName string, buyer kernel.Email) (SendCompletionOtpCommand, error) {
	agentName = strings.TrimSpace(agentName)

	var errList []error
	if agentName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("agent name"))
	}
	if err := buyer.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return SendCompletionOtpCommand{}, err
	}

	return SendCompletionOtpCommand{agentName: agentName, buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendCompletionOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendCompletionOtpCommandIsNotConstructed)
}

func (c SendCompletionOtpCommand) AgentName() string   { return c.agentName }
func (c SendCompletionOtpCommand) Buyer() kernel.Email { return c.buyer }
