package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// MemoryStore - хранилище в памяти для запуска без БД и для тестов.
// Реализует AppointmentRepository и DirectoryRepository.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments map[string]model.Appointment
	staff        []model.Staff
	services     []model.Service
	customers    []model.Customer
	now          func() time.Time
}

var (
	_ AppointmentRepository = (*MemoryStore)(nil)
	_ DirectoryRepository   = (*MemoryStore)(nil)
)

// NewMemoryStore создаёт пустое хранилище с заданным справочником
func NewMemoryStore(staff []model.Staff, services []model.Service, customers []model.Customer) *MemoryStore {
	return &MemoryStore{
		appointments: make(map[string]model.Appointment),
		staff:        staff,
		services:     services,
		customers:    customers,
		now:          time.Now,
	}
}

// NewDemoStore возвращает хранилище с демо справочником и записями вокруг now
func NewDemoStore(now time.Time) *MemoryStore {
	m := NewMemoryStore(DemoStaff(), DemoServices(), DemoCustomers())
	for _, a := range DemoAppointments(now) {
		m.appointments[a.ID] = a
	}
	return m
}

// Seed вставляет записи как есть, с их id
func (m *MemoryStore) Seed(appts ...model.Appointment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range appts {
		m.appointments[a.ID] = a
	}
}

func (m *MemoryStore) List(_ context.Context, filter model.AppointmentFilter) ([]model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Appointment
	for _, a := range m.appointments {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *MemoryStore) Create(_ context.Context, appt *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	appt.ID = NewAppointmentID()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	m.appointments[appt.ID] = *appt
	return nil
}

func (m *MemoryStore) Update(_ context.Context, id string, patch model.AppointmentPatch) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("update appointment %s: %w", id, model.ErrAppointmentNotFound)
	}
	next := patch.Apply(current)
	next.UpdatedAt = m.now()
	m.appointments[id] = next
	return &next, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.appointments[id]; !ok {
		return fmt.Errorf("delete appointment %s: %w", id, model.ErrAppointmentNotFound)
	}
	delete(m.appointments, id)
	return nil
}

func (m *MemoryStore) ListStaff(context.Context) ([]model.Staff, error) {
	return append([]model.Staff(nil), m.staff...), nil
}

func (m *MemoryStore) ListServices(context.Context) ([]model.Service, error) {
	return append([]model.Service(nil), m.services...), nil
}

func (m *MemoryStore) ListCustomers(context.Context) ([]model.Customer, error) {
	return append([]model.Customer(nil), m.customers...), nil
}

func (m *MemoryStore) GetStaffByID(_ context.Context, id string) (*model.Staff, error) {
	for _, s := range m.staff {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) GetServiceByID(_ context.Context, id string) (*model.Service, error) {
	for _, s := range m.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}
