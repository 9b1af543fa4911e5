package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/Mmasetshaba28/haircut-booking/internal/audit"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

// auditor is what use cases need from the audit dispatcher.
type auditor interface {
	Dispatch(ev audit.Event)
}

type CreateAppointmentInput struct {
	Actor domain.Actor

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID uint
	StartsAt  time.Time
	Notes     string

	RequestID string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit auditor
	hours domain.BusinessHours
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit auditor,
	now func() time.Time,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		hours: domain.DefaultBusinessHours,
		now:   now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
		}
		// store failure, not a bad request
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
	}

	if !uc.hours.OnGrid(in.StartsAt) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideBusinessHours)
	}

	ap := &models.Appointment{
		UserID:          in.Actor.UserID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		AppointmentDate: in.StartsAt,
		ServiceID:       svc.ID,
		Notes:           in.Notes,
		Status:          string(domain.InitialStatus()),
		CreatedAt:       uc.now(),
	}

	// The repository re-checks the slot inside a transaction; a concurrent
	// winner turns this into slot_taken, never a silent double booking.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.Actor.UserID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
		Metadata: map[string]any{
			"slot":       in.StartsAt,
			"service_id": svc.ID,
		},
	})

	return ap, nil
}
