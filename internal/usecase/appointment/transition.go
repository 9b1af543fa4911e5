package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/Mmasetshaba28/haircut-booking/internal/audit"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
)

// TransitionAppointment drives every lifecycle event (confirm, complete,
// cancel) through the same path: load, authorize against the declared
// capability, validate the current state, then flip the status with a
// conditional update so a concurrent transition cannot also succeed.
type TransitionAppointment struct {
	repo  domain.Repository
	audit auditor
	now   func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit auditor,
	now func() time.Time,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	ev domain.Event,
	requestID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return err
	}

	rule, err := domain.RuleFor(ev)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, ap.UserID, rule.Requires); err != nil {
		return err
	}

	current := domain.Status(ap.Status)
	next, err := domain.Transition(ev, current)
	if err != nil {
		return err
	}

	if err := uc.repo.TransitionStatus(ctx, ap.ID, current, next, uc.now()); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actor.UserID,
		Action:    "appointment_" + string(rule.To),
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
	})

	return nil
}
