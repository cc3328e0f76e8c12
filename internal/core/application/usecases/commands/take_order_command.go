package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrAgentOrderCommandIsNotConstructed = errors.New(
	"AgentOrderCommand must be created via NewAgentOrderCommand constructor",
)

// AgentOrderCommand names an agent and the order it acts on. It is used by
// TakeOrder and StoreOrderSheet.
type AgentOrderCommand struct { //nolint:recvcheck //using for validation
	agentName string
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAgentOrderCommand creates an AgentOrderCommand.
func NewAgentOrderCommand(agentName string, orderID kernel.UUID) (AgentOrderCommand, error) {
	agentName = strings.TrimSpace(agentName)

	var errList []error
	if agentName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("agent name"))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return AgentOrderCommand{}, err
	}

	return AgentOrderCommand{agentName: agentName, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AgentOrderCommand) Validate() error {
	return c.guard.Validate(ErrAgentOrderCommandIsNotConstructed)
}

func (c AgentOrderCommand) AgentName() string    { return c.agentName }
func (c AgentOrderCommand) OrderID() kernel.UUID { return c.orderID }
