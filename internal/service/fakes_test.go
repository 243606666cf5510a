package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/events"
)

// In-memory repository fakes backing the service tests. They honor the same
// pgx.ErrNoRows signaling as the Postgres implementations.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	seq     int
	callLog *[]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeUserRepo) SetAdministrator(_ context.Context, id string, administrator bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Administrator = administrator
	return nil
}

func (r *fakeUserRepo) TouchLastSeen(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.LastSeen = time.Now()
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	if r.callLog != nil {
		*r.callLog = append(*r.callLog, "users.Delete")
	}
	return nil
}

type fakeDogRepo struct {
	mu   sync.Mutex
	dogs map[string]*domain.Dog
	seq  int
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{dogs: make(map[string]*domain.Dog)}
}

func (r *fakeDogRepo) Create(_ context.Context, dog *domain.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	dog.ID = fmt.Sprintf("dog-%d", r.seq)
	copied := *dog
	r.dogs[dog.ID] = &copied
	return nil
}

func (r *fakeDogRepo) Update(_ context.Context, dog *domain.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[dog.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *dog
	r.dogs[dog.ID] = &copied
	return nil
}

func (r *fakeDogRepo) GetByID(_ context.Context, id string) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dog, ok := r.dogs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dog
	return &copied, nil
}

func (r *fakeDogRepo) GetByOwnerAndName(_ context.Context, ownerID, name string) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dog := range r.dogs {
		if dog.OwnerID == ownerID && dog.Name == name {
			copied := *dog
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeDogRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Dog, int, error) {
	all, err := r.ListAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeDogRepo) ListAllByOwner(_ context.Context, ownerID string) ([]domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Dog
	for _, dog := range r.dogs {
		if dog.OwnerID == ownerID {
			out = append(out, *dog)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*domain.Service
	seq      int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	service.ID = fmt.Sprintf("service-%d", r.seq)
	copied := *service
	r.services[service.ID] = &copied
	return nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[service.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *service
	r.services[service.ID] = &copied
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *service
	return &copied, nil
}

func (r *fakeServiceRepo) GetByName(_ context.Context, name string) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, service := range r.services {
		if service.Name == name {
			copied := *service
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeServiceRepo) ListActive(ctx context.Context, limit, offset int) ([]domain.Service, int, error) {
	all, err := r.ListAllActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeServiceRepo) ListAllActive(_ context.Context) ([]domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Service
	for _, service := range r.services {
		if !service.Expired {
			out = append(out, *service)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) SetExpired(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[id]
	if !ok {
		return pgx.ErrNoRows
	}
	service.Expired = true
	return nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*domain.Appointment
	seq          int
	callLog      *[]string
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	appointment.ID = fmt.Sprintf("appointment-%d", r.seq)
	appointment.CreateTime = time.Now()
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) Reschedule(_ context.Context, id string, date time.Time, timeStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return pgx.ErrNoRows
	}
	appointment.Date = date
	appointment.Time = timeStr
	return nil
}

func (r *fakeAppointmentRepo) SetComplete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return pgx.ErrNoRows
	}
	appointment.Complete = true
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, appointment := range r.appointments {
		if appointment.UserID == userID {
			delete(r.appointments, id)
		}
	}
	if r.callLog != nil {
		*r.callLog = append(*r.callLog, "appointments.DeleteByUser")
	}
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) ListIncompleteByUser(_ context.Context, userID string, limit, offset int) ([]domain.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Appointment
	for _, appointment := range r.appointments {
		if appointment.UserID == userID && !appointment.Complete {
			out = append(out, *appointment)
		}
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeAppointmentRepo) ListIncomplete(_ context.Context, limit, offset int) ([]domain.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Appointment
	for _, appointment := range r.appointments {
		if !appointment.Complete {
			out = append(out, *appointment)
		}
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeAppointmentRepo) ListByDateTimeWindow(_ context.Context, date time.Time, fromTime, toTime string) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Appointment
	for _, appointment := range r.appointments {
		sameDay := appointment.Date.Year() == date.Year() && appointment.Date.YearDay() == date.YearDay()
		if sameDay && appointment.Time >= fromTime && appointment.Time < toTime {
			out = append(out, *appointment)
		}
	}
	return out, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}

// recordingMailer captures outbound mail.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
