package appointment

import (
	"context"
	"sort"
	"time"

	"github.com/Mmasetshaba28/haircut-booking/internal/audit"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

// repoStub is an in-memory domain.Repository honouring the same invariants
// the gorm implementation enforces: the live-slot uniqueness check on create,
// the conditional status flip on transition, and newest-first listing.
// The err fields, when set, make the corresponding lookups fail as if the
// store were unreachable.
type repoStub struct {
	services     map[uint]models.Service
	users        map[uint]models.User
	appointments map[uint]*models.Appointment
	nextID       uint

	serviceErr     error
	userErr        error
	appointmentErr error
}

func newRepoStub() *repoStub {
	return &repoStub{
		services:     map[uint]models.Service{},
		users:        map[uint]models.User{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (s *repoStub) addService(svc models.Service) {
	s.services[svc.ID] = svc
}

func (s *repoStub) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		s.nextID++
		ap.ID = s.nextID
	} else if ap.ID > s.nextID {
		s.nextID = ap.ID
	}
	cp := ap
	s.appointments[cp.ID] = &cp
	return &cp
}

func (s *repoStub) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (s *repoStub) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range s.services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *repoStub) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *repoStub) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *repoStub) CreateUser(ctx context.Context, u *models.User) error {
	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = *u
	return nil
}

func (s *repoStub) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	taken, err := s.ExistsNonCancelledAt(ctx, ap.AppointmentDate)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	s.nextID++
	ap.ID = s.nextID
	cp := *ap
	s.appointments[cp.ID] = &cp
	return nil
}

func (s *repoStub) ExistsNonCancelledAt(ctx context.Context, at time.Time) (bool, error) {
	for _, ap := range s.appointments {
		if ap.Status != string(domain.StatusCancelled) && ap.AppointmentDate.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (s *repoStub) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if s.appointmentErr != nil {
		return nil, s.appointmentErr
	}
	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (s *repoStub) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if filter.OwnerID != nil && ap.UserID != *filter.OwnerID {
			continue
		}
		if filter.ExcludeStatus != "" && ap.Status == string(filter.ExcludeStatus) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *repoStub) ListBookedTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, ap := range s.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.AppointmentDate.Before(from) || !ap.AppointmentDate.Before(to) {
			continue
		}
		out = append(out, ap.AppointmentDate)
	}
	return out, nil
}

func (s *repoStub) TransitionStatus(ctx context.Context, id uint, from, to domain.Status, at time.Time) error {
	ap, ok := s.appointments[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	if ap.Status != string(from) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	ap.Status = string(to)
	ap.UpdatedAt = at
	return nil
}

func (s *repoStub) DeleteAppointment(ctx context.Context, id uint) error {
	if _, ok := s.appointments[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	delete(s.appointments, id)
	return nil
}

var _ domain.Repository = (*repoStub)(nil)

// auditStub records dispatched events synchronously.
type auditStub struct {
	events []audit.Event
}

func (a *auditStub) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func (a *auditStub) lastAction() string {
	if len(a.events) == 0 {
		return ""
	}
	return a.events[len(a.events)-1].Action
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
