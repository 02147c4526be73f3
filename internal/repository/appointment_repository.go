package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository/base"
)

const appointmentColumns = `id, start_at, end_at, title, service_id, staff_id, customer_id, status, notes, tenant_id, created_at, updated_at`

type PostgresAppointmentRepository struct {
	*base.Repository
}

var _ AppointmentRepository = (*PostgresAppointmentRepository)(nil)

func NewPostgresAppointmentRepository(pool *pgxpool.Pool) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{Repository: base.NewRepository(pool)}
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.Start,
		&a.End,
		&a.Title,
		&a.ServiceID,
		&a.StaffID,
		&a.CustomerID,
		&a.Status,
		&a.Notes,
		&a.TenantID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List возвращает записи по фильтру, отсортированные по началу
func (r *PostgresAppointmentRepository) List(ctx context.Context, filter model.AppointmentFilter) ([]model.Appointment, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !filter.From.IsZero() {
		add("(end_at > $%[1]d OR start_at >= $%[1]d)", filter.From)
	}
	if !filter.To.IsZero() {
		add("start_at < $%d", filter.To)
	}
	if filter.StaffID != "" {
		add("staff_id = $%d", filter.StaffID)
	}
	if filter.ServiceID != "" {
		add("service_id = $%d", filter.ServiceID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_at ASC, id ASC`

	rows, err := r.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return appts, nil
}

// GetByID получает запись по ID
func (r *PostgresAppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	a, err := scanAppointment(r.Pool().QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return a, nil
}

// Create сохраняет новую запись, ID назначается здесь
func (r *PostgresAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, start_at, end_at, title, service_id, staff_id, customer_id, status, notes, tenant_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	id := NewAppointmentID()
	err := r.Pool().QueryRow(
		ctx, query,
		id,
		appt.Start,
		appt.End,
		appt.Title,
		appt.ServiceID,
		appt.StaffID,
		appt.CustomerID,
		appt.Status,
		appt.Notes,
		appt.TenantID,
	).Scan(&appt.CreatedAt, &appt.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	appt.ID = id
	return nil
}

// Update применяет patch к записи под блокировкой строки
func (r *PostgresAppointmentRepository) Update(ctx context.Context, id string, patch model.AppointmentPatch) (*model.Appointment, error) {
	var updated *model.Appointment

	err := r.InTx(ctx, func(tx pgx.Tx) error {
		current, err := scanAppointment(tx.QueryRow(ctx,
			`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if base.IsNotFound(err) {
				return model.ErrAppointmentNotFound
			}
			return err
		}

		next := patch.Apply(*current)
		next.UpdatedAt = time.Now()

		query := `
			UPDATE appointments
			SET start_at = $1, end_at = $2, title = $3, service_id = $4, staff_id = $5,
			    customer_id = $6, status = $7, notes = $8, updated_at = $9
			WHERE id = $10
		`
		_, err = tx.Exec(ctx, query,
			next.Start,
			next.End,
			next.Title,
			next.ServiceID,
			next.StaffID,
			next.CustomerID,
			next.Status,
			next.Notes,
			next.UpdatedAt,
			id,
		)
		if err != nil {
			return err
		}

		updated = &next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update appointment %s: %w", id, err)
	}

	return updated, nil
}

// Delete удаляет запись
func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("delete appointment %s: %w", id, model.ErrAppointmentNotFound)
	}

	return nil
}
