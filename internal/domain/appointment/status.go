package appointment

import "github.com/Mmasetshaba28/haircut-booking/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Event string

const (
	EventConfirm  Event = "confirm"
	EventComplete Event = "complete"
	EventCancel   Event = "cancel"
)

// Rule describes a single lifecycle transition: its admissible source
// states, the resulting state, and the capability the actor must hold.
type Rule struct {
	From     []Status
	To       Status
	Requires Capability
}

var rules = map[Event]Rule{
	EventConfirm: {
		From:     []Status{StatusPending},
		To:       StatusConfirmed,
		Requires: CapabilityAdminOnly,
	},
	EventComplete: {
		From:     []Status{StatusConfirmed},
		To:       StatusCompleted,
		Requires: CapabilityAdminOnly,
	},
	EventCancel: {
		From:     []Status{StatusPending, StatusConfirmed},
		To:       StatusCancelled,
		Requires: CapabilityOwnerOrAdmin,
	},
}

func RuleFor(ev Event) (Rule, error) {
	r, ok := rules[ev]
	if !ok {
		return Rule{}, httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return r, nil
}

func (r Rule) Allows(current Status) bool {
	for _, s := range r.From {
		if s == current {
			return true
		}
	}
	return false
}

// Transition resolves the target status for ev from current. Re-applying an
// event to its own target state fails too: transitions are never idempotent.
func Transition(ev Event, current Status) (Status, error) {
	r, err := RuleFor(ev)
	if err != nil {
		return "", err
	}
	if !r.Allows(current) {
		return "", httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return r.To, nil
}

func InitialStatus() Status {
	return StatusPending
}
