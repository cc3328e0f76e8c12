package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand registers the assignment record of a delivery agent.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a CreateAgentCommand.
func NewCreateAgentCommand(name, phone string) (CreateAgentCommand, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)

	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateAgentCommand{}, err
	}

	return CreateAgentCommand{name: name, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

func (c CreateAgentCommand) Name() string  { return c.name }
func (c CreateAgentCommand) Phone() string { return c.phone }

// CreateAgentCommandHandler creates ready agents. Names are unique; a duplicate
// is reported by the repository as a conflict.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a CreateAgentCommandHandler.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{uowFactory: uowFactory}
}

// Handle creates the agent and returns its ID.
func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	a, err := agent.NewAgent(kernel.NewUUID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return a.ID(), nil
}
