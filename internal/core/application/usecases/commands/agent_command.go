package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrAgentCommandIsNotConstructed = errors.New(
	"AgentCommand must be created via NewAgentCommand constructor",
)

// AgentCommand identifies the authenticated delivery agent an operation acts for.
// It is shared by the delivery operations that need nothing else.
type AgentCommand struct { //nolint:recvcheck //using for validation
	agentName string
	guard     guard.ConstructorGuard
}

// NewAgentCommand creates an AgentCommand.
func NewAgentCommand(agentName string) (AgentCommand, error) {
	agentName = strings.TrimSpace(agentName)
	if agentName == "" {
		return AgentCommand{}, errs.NewValueIsRequiredError("agent name")
	}
	return AgentCommand{agentName: agentName, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AgentCommand) Validate() error {
	return c.guard.Validate(ErrAgentCommandIsNotConstructed)
}

func (c AgentCommand) AgentName() string { return c.agentName }
