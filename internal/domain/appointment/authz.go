package appointment

import (
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

// Actor is the authenticated caller, resolved from the identity assertion
// and passed explicitly into every guarded operation.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

type Capability int

const (
	CapabilityOwnerOrAdmin Capability = iota
	CapabilityAdminOnly
)

// Authorize is the single evaluator shared by all transitions: it checks the
// declared capability against the actor and the appointment owner.
func Authorize(actor Actor, ownerID uint, c Capability) error {
	switch c {
	case CapabilityAdminOnly:
		if !actor.IsAdmin() {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
	case CapabilityOwnerOrAdmin:
		if !actor.IsAdmin() && actor.UserID != ownerID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
	}
	return nil
}
