package agent

import (
	"fmt"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// Status is the availability of a delivery agent.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Ready agents may claim an order.
	Ready
	// OnDelivery agents hold an active order.
	OnDelivery
)

// Validate rejects values that are neither Ready nor OnDelivery.
func (s Status) Validate() error {
	if s != Ready && s != OnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case OnDelivery:
		return "ondelivery"
	default:
		return "unknown"
	}
}
