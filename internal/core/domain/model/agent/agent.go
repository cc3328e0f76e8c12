package agent

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// CodeLength is the number of digits in a delivery completion code.
const CodeLength = otp.Length

var (
	// ErrAgentIsNotConstructed is returned by Validate for a struct literal.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrAgentIsBusy is returned when a claim is attempted by an agent that already holds an order.
	ErrAgentIsBusy = errors.New("agent already has an active delivery")
	// ErrNoActiveDelivery is returned when an operation needs an active order and the agent has none.
	ErrNoActiveDelivery = errors.New("agent has no active delivery")
	// ErrOrderIsNotActive is returned when an order sheet targets an order the agent does not hold.
	ErrOrderIsNotActive = errors.New("order is not the agent's active delivery")
	// ErrOrderSheetNotFound is returned when the agent has no cached order sheet.
	ErrOrderSheetNotFound = errors.New("no order sheet found")
	// ErrInvalidCode is returned when a completion code does not match the pending one.
	ErrInvalidCode = errors.New("invalid completion code")
)

// Agent is the DeliveryAgent aggregate root.
type Agent struct {
	id            kernel.UUID
	name          string
	phone         string
	status        Status
	activeOrderID *kernel.UUID
	sheet         *OrderSheet
	pendingCode   string
	guard         guard.ConstructorGuard
}

// NewAgent creates a ready agent with an empty assignment record.
func NewAgent(id kernel.UUID, name, phone string) (*Agent, error) {
	a := &Agent{
		status: Ready,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent rebuilds an agent from persistence. Inconsistent assignment
// records are accepted as stored so that they can be detected and healed.
func RestoreAgent(
	id kernel.UUID,
	name, phone string,
	status Status,
	activeOrderID *kernel.UUID,
	sheet *OrderSheet,
	pendingCode string,
) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}
	a.activeOrderID = activeOrderID
	a.sheet = sheet
	a.pendingCode = pendingCode

	return a, nil
}

// Validate ensures the agent was built by a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID { return a.id }
func (a *Agent) Name() string    { return a.name }
func (a *Agent) Phone() string   { return a.phone }
func (a *Agent) Status() Status  { return a.status }

// ActiveOrderID returns the claimed order, or nil.
func (a *Agent) ActiveOrderID() *kernel.UUID {
	return a.activeOrderID
}

// PendingCode returns the unconfirmed completion code, or "".
func (a *Agent) PendingCode() string {
	return a.pendingCode
}

// OrderSheet returns the cached sheet or ErrOrderSheetNotFound.
func (a *Agent) OrderSheet() (*OrderSheet, error) {
	if a.sheet == nil {
		return nil, ErrOrderSheetNotFound
	}
	return a.sheet, nil
}

// HasDeliveryInProgress reports whether the agent is OnDelivery with both an
// active order and an order sheet. Such an agent is sent back to its delivery
// view instead of being shown new orders.
func (a *Agent) HasDeliveryInProgress() bool {
	return a.status == OnDelivery && a.activeOrderID != nil && a.sheet != nil
}

// NeedsHealing reports whether the agent claims to be busy without the artifacts of an assignment.
func (a *Agent) NeedsHealing() bool {
	return a.status != Ready && !a.HasDeliveryInProgress()
}

// Claim records orderID as the agent's active delivery.
func (a *Agent) Claim(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if a.status != Ready {
		return ErrAgentIsBusy
	}

	a.status = OnDelivery
	a.activeOrderID = &orderID
	a.sheet = nil
	a.pendingCode = ""
	return nil
}

// StoreOrderSheet caches sheet for the active order, replacing any earlier copy.
func (a *Agent) StoreOrderSheet(sheet OrderSheet) error {
	if a.activeOrderID == nil {
		return ErrNoActiveDelivery
	}
	if !a.activeOrderID.IsEqual(sheet.OrderID) {
		return fmt.Errorf("%w: %s", ErrOrderIsNotActive, sheet.OrderID)
	}
	a.sheet = &sheet
	return nil
}

// IssueCode stores code as the single pending completion code.
func (a *Agent) IssueCode(code string) error {
	if a.status != OnDelivery || a.activeOrderID == nil {
		return ErrNoActiveDelivery
	}
	if !isCode(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("must be %d digits", CodeLength))
	}
	a.pendingCode = code
	return nil
}

// CompleteWithCode checks entered against the pending code. On a match the
// agent is reset and the ID of the order it was delivering is returned. On a
// mismatch nothing changes and ErrInvalidCode is returned.
func (a *Agent) CompleteWithCode(entered string) (kernel.UUID, error) {
	entered = strings.TrimSpace(entered)
	if a.pendingCode == "" || subtle.ConstantTimeCompare([]byte(entered), []byte(a.pendingCode)) != 1 {
		return kernel.UUID{}, ErrInvalidCode
	}
	if a.activeOrderID == nil {
		return kernel.UUID{}, ErrNoActiveDelivery
	}

	orderID := *a.activeOrderID
	a.Reset()
	return orderID, nil
}

// Reset returns the agent to Ready with an empty assignment record.
func (a *Agent) Reset() {
	a.status = Ready
	a.activeOrderID = nil
	a.sheet = nil
	a.pendingCode = ""
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Agent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func isCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
