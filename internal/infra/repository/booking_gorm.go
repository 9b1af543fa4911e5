package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// notFoundOr keeps absence distinct from outage: missing rows become the
// domain sentinel, everything else passes through untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	// Emails compare exactly as stored.
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"appointment_date = ? AND status <> ?",
				ap.AppointmentDate, string(domain.StatusCancelled),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(ap).Error
	})

	// The partial unique index backstops anything the lock missed.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}
	return err
}

func (r *BookingGormRepository) ExistsNonCancelledAt(
	ctx context.Context,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"appointment_date = ? AND status <> ?",
			at, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User")

	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.ExcludeStatus != "" {
		q = q.Where("status <> ?", string(filter.ExcludeStatus))
	}

	var aps []models.Appointment
	if err := q.Order("appointment_date DESC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]time.Time, error) {

	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"status <> ? AND appointment_date >= ? AND appointment_date < ?",
			string(domain.StatusCancelled), from, to,
		).
		Order("appointment_date ASC").
		Pluck("appointment_date", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) TransitionStatus(
	ctx context.Context,
	id uint,
	from domain.Status,
	to domain.Status,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": at,
		})

	if res.Error != nil {
		return res.Error
	}

	// Zero rows means the status moved under us; the transition loses.
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	return nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
