// Package repository хранит записи и справочник сотрудников, услуг и клиентов.
// При заданном DSN используется Postgres, иначе MemoryStore.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// AppointmentRepository хранит записи
// Update и Delete неизвестного id возвращают ошибку с model.ErrAppointmentNotFound, GetByID возвращает nil, nil
type AppointmentRepository interface {
	List(ctx context.Context, filter model.AppointmentFilter) ([]model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	Create(ctx context.Context, appt *model.Appointment) error
	Update(ctx context.Context, id string, patch model.AppointmentPatch) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// DirectoryRepository - справочник сотрудников, услуг и клиентов только для чтения
type DirectoryRepository interface {
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetStaffByID(ctx context.Context, id string) (*model.Staff, error)
	GetServiceByID(ctx context.Context, id string) (*model.Service, error)
}

// NewAppointmentID возвращает постоянный ID записи
func NewAppointmentID() string {
	return "appt-" + uuid.NewString()
}
