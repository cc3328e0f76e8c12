package queries

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrGetOrderSheetQueryIsNotConstructed = errors.New(
	"GetOrderSheetQuery must be created via NewGetOrderSheetQuery constructor",
)

// GetOrderSheetQuery reads the order sheet cached on the agent.
type GetOrderSheetQuery struct {
	agentName string
	guard     guard.ConstructorGuard
}

// NewGetOrderSheetQuery creates a GetOrderSheetQuery.
func NewGetOrderSheetQuery(agentName string) (GetOrderSheetQuery, error) {
	agentName = strings.TrimSpace(agentName)
	if agentName == "" {
		return GetOrderSheetQuery{}, errs.NewValueIsRequiredError("agent name")
	}
	return GetOrderSheetQuery{agentName: agentName, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSheetQueryIsNotConstructed)
}

func (q GetOrderSheetQuery) AgentName() string { return q.agentName }
