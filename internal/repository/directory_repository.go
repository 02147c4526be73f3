package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository/base"
)

type PostgresDirectoryRepository struct {
	*base.Repository
}

var _ DirectoryRepository = (*PostgresDirectoryRepository)(nil)

func NewPostgresDirectoryRepository(pool *pgxpool.Pool) *PostgresDirectoryRepository {
	return &PostgresDirectoryRepository{Repository: base.NewRepository(pool)}
}

// ListStaff возвращает сотрудников в порядке имени
func (r *PostgresDirectoryRepository) ListStaff(ctx context.Context) ([]model.Staff, error) {
	rows, err := r.Pool().Query(ctx, `SELECT id, name, color FROM staff ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staff []model.Staff
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Color); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	return staff, rows.Err()
}

// ListServices возвращает услуги; первая услуга - значение по умолчанию в новой записи
func (r *PostgresDirectoryRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.Pool().Query(ctx, `SELECT id, name, duration_minutes, color FROM services ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Duration, &s.Color); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *PostgresDirectoryRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.Pool().Query(ctx, `SELECT id, name, email FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// GetStaffByID получает сотрудника по ID (nil, nil если нет)
func (r *PostgresDirectoryRepository) GetStaffByID(ctx context.Context, id string) (*model.Staff, error) {
	var s model.Staff
	err := r.Pool().QueryRow(ctx, `SELECT id, name, color FROM staff WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Color)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by id: %w", err)
	}
	return &s, nil
}

// GetServiceByID получает услугу по ID (nil, nil если нет)
func (r *PostgresDirectoryRepository) GetServiceByID(ctx context.Context, id string) (*model.Service, error) {
	var s model.Service
	err := r.Pool().QueryRow(ctx, `SELECT id, name, duration_minutes, color FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Duration, &s.Color)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return &s, nil
}
