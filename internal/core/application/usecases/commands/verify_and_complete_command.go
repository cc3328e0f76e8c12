package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrVerifyAndCompleteCommandIsNotConstructed = errors.New(
	"VerifyAndCompleteCommand must be created via NewVerifyAndCompleteCommand constructor",
)

// VerifyAndCompleteCommand carries the code the buyer read out to the agent.
type VerifyAndCompleteCommand struct { //nolint:recvcheck //using for validation
	agentName string
	code      string

	guard guard.ConstructorGuard
}

// NewVerifyAndCompleteCommand creates a VerifyAndCompleteCommand. The code is
// only checked for presence; a malformed code simply fails verification.
func NewVerifyAndCompleteCommand(agentName, code string) (VerifyAndCompleteCommand, error) {
	agentName, code = strings.TrimSpace(agentName), strings.TrimSpace(code)

	var errList []error
	if agentName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("agent name"))
	}
	if code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return VerifyAndCompleteCommand{}, err
	}

	return VerifyAndCompleteCommand{agentName: agentName, code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAndCompleteCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAndCompleteCommandIsNotConstructed)
}

func (c VerifyAndCompleteCommand) AgentName() string { return c.agentName }
func (c VerifyAndCompleteCommand) Code() string      { return c.code }
