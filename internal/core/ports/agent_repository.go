package ports

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// AgentRepository persists delivery agents. Agents are addressed by their unique
// name, which is the subject of an agent's access token.
type AgentRepository interface {
	// Add inserts a new agent. A duplicate name fails with an errs.ConflictError.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// GetByName returns the agent or an errs.ObjectNotFoundError.
	GetByName(ctx context.Context, name string) (*agent.Agent, error)

	// GetByNameForUpdate is GetByName with a row lock held until the transaction ends,
	// so the assignment record is read and written as one unit.
	GetByNameForUpdate(ctx context.Context, name string) (*agent.Agent, error)

	// GetByActiveOrder returns the agent holding orderID, or an errs.ObjectNotFoundError.
	GetByActiveOrder(ctx context.Context, orderID kernel.UUID) (*agent.Agent, error)

	// Update writes the whole assignment record.
	Update(ctx context.Context, aggregate *agent.Agent) error
}
