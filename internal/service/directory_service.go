package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func (s *CalendarService) Staff(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.directory.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

func (s *CalendarService) Services(ctx context.Context) ([]model.Service, error) {
	services, err := s.directory.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *CalendarService) Customers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.directory.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// StaffByID возвращает сотрудника или ErrStaffNotFound
func (s *CalendarService) StaffByID(ctx context.Context, id string) (*model.Staff, error) {
	staff, err := s.directory.GetStaffByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return nil, fmt.Errorf("staff %s: %w", id, model.ErrStaffNotFound)
	}
	return staff, nil
}

// ServiceByID возвращает услугу или ErrServiceNotFound
func (s *CalendarService) ServiceByID(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.directory.GetServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", id, model.ErrServiceNotFound)
	}
	return svc, nil
}

// Directory возвращает справочники одним вызовом (для экспорта и рендера)
func (s *CalendarService) Directory(ctx context.Context) (model.Directory, error) {
	staff, err := s.Staff(ctx)
	if err != nil {
		return model.Directory{}, err
	}
	services, err := s.Services(ctx)
	if err != nil {
		return model.Directory{}, err
	}
	customers, err := s.Customers(ctx)
	if err != nil {
		return model.Directory{}, err
	}
	return model.NewDirectory(staff, services, customers), nil
}
