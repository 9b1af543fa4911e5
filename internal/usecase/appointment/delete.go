package appointment

import (
	"context"
	"errors"

	"github.com/Mmasetshaba28/haircut-booking/internal/audit"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
)

// DeleteAppointment removes the record entirely. Administrative only; not a
// status transition.
type DeleteAppointment struct {
	repo  domain.Repository
	audit auditor
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit auditor,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	requestID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return err
	}

	if err := domain.Authorize(actor, ap.UserID, domain.CapabilityAdminOnly); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actor.UserID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
		Metadata: map[string]any{
			"slot":     ap.AppointmentDate,
			"customer": ap.CustomerName,
		},
	})

	return nil
}
