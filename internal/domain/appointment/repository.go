package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

// ErrNotFound is returned by repository lookups when the row is absent.
// Any other repository error is a store failure and must propagate
// untouched; callers map only ErrNotFound to business codes.
var ErrNotFound = errors.New("record not found")

// ListFilter narrows ListAppointments. A nil OwnerID means all owners.
type ListFilter struct {
	OwnerID       *uint
	ExcludeStatus Status
}

type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists ap after verifying, inside one
	// transaction, that no non-cancelled appointment occupies the same
	// timestamp. A lost race surfaces as the slot_taken business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ExistsNonCancelledAt(
		ctx context.Context,
		at time.Time,
	) (bool, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// ListBookedTimes returns the timestamps of non-cancelled
	// appointments within [from, to), ascending.
	ListBookedTimes(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]time.Time, error)

	// -------- Appointment (state change) --------

	// TransitionStatus flips id from the expected current status to the
	// target in one conditional update. When the row no longer matches
	// the expected status, the invalid_state business error is returned.
	TransitionStatus(
		ctx context.Context,
		id uint,
		from Status,
		to Status,
		at time.Time,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
