package appointment

import (
	"context"

	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Mine returns the actor's own appointments, newest first.
func (uc *ListAppointments) Mine(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		OwnerID: &actor.UserID,
	})
}

// All returns every appointment, newest first. Route access is admin-gated.
func (uc *ListAppointments) All(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.ListFilter{})
}
