package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a transition does not start from
// the immediate predecessor of the target status.
var ErrInvalidStatusTransition = errors.New("invalid delivery status transition")

// Status is the delivery lifecycle of an order and of each of its seller orders.
//
// State transitions:
//
//	Ready ──> OnDelivery ──> Delivered
//
// There are no backward or skipping transitions, and Delivered is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Ready orders are waiting for a delivery agent to claim them.
	Ready
	// OnDelivery orders are held by exactly one delivery agent.
	OnDelivery
	// Delivered is the terminal state.
	Delivered
)

var statusNames = map[Status]string{
	Ready:      "ready",
	OnDelivery: "ondelivery",
	Delivered:  "delivered",
}

// ParseStatus converts the wire form ("ready", "ondelivery", "delivered") to a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

// Validate rejects Unknown and out-of-range values read from storage.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the only status reachable from s.
func (s Status) Next() (Status, error) {
	switch s {
	case Ready:
		return OnDelivery, nil
	case OnDelivery:
		return Delivered, nil
	default:
		return Unknown, fmt.Errorf("%w: %s has no successor", ErrInvalidStatusTransition, s)
	}
}

// ValidateTransition checks that to is the immediate successor of s.
func (s Status) ValidateTransition(to Status) error {
	next, err := s.Next()
	if err != nil {
		return err
	}
	if next != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, to)
	}
	return nil
}

// Take transitions Ready to OnDelivery.
func (s Status) Take() (Status, error) {
	if err := s.ValidateTransition(OnDelivery); err != nil {
		return Unknown, err
	}
	return OnDelivery, nil
}

// Deliver transitions OnDelivery to Delivered.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateTransition(Delivered); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}
