package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: domain.DefaultBusinessHours,
	}
}

// Execute returns the free slots on date's grid, ascending. The result is
// advisory: no hold is taken, and a concurrent booking may still win the
// slot before the caller submits.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]time.Time, error) {

	if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	candidates := uc.hours.SlotsForDay(date)

	from, to := uc.hours.DayBounds(date)
	booked, err := uc.repo.ListBookedTimes(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(candidates, booked), nil
}
