package model

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// AllAppointmentStatuses возвращает статусы в порядке отображения
func AllAppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusConfirmed,
		AppointmentStatusPending,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusNoShow,
	}
}

// Valid - известен ли статус
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusConfirmed,
		AppointmentStatusPending,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

// ParseAppointmentStatus преобразует строку в статус
// Переходы между статусами не ограничены
func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	s := AppointmentStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown appointment status %q", raw)
	}
	return s, nil
}

type Appointment struct {
	ID         string            `json:"id"`
	Start      time.Time         `json:"start"`
	End        time.Time         `json:"end"`
	Title      string            `json:"title,omitempty"`
	ServiceID  string            `json:"service_id"`
	StaffID    string            `json:"staff_id"`
	CustomerID *string           `json:"customer_id,omitempty"` // nil - клиент не указан
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	TenantID   string            `json:"tenant_id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Duration возвращает End - Start
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// AppointmentPatch описывает частичное обновление записи (nil - поле не меняется)
type AppointmentPatch struct {
	Start      *time.Time
	End        *time.Time
	Title      *string
	ServiceID  *string
	StaffID    *string
	CustomerID **string
	Status     *AppointmentStatus
	Notes      *string
}

// Apply возвращает копию a с применёнными непустыми полями патча
func (p AppointmentPatch) Apply(a Appointment) Appointment {
	if p.Start != nil {
		a.Start = *p.Start
	}
	if p.End != nil {
		a.End = *p.End
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.ServiceID != nil {
		a.ServiceID = *p.ServiceID
	}
	if p.StaffID != nil {
		a.StaffID = *p.StaffID
	}
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

// AppointmentFilter - фильтры для выборки записей (пустое поле - без фильтра)
type AppointmentFilter struct {
	From      time.Time // end > From (или start >= From), если задано
	To        time.Time // start < To, если задано
	StaffID   string
	ServiceID string
	Status    AppointmentStatus
}

// Match проверяет запись по всем заданным фильтрам.
// Диапазон From/To отбирает записи, пересекающие его, а не только начинающиеся в нём.
func (f AppointmentFilter) Match(a Appointment) bool {
	if !f.From.IsZero() && !a.End.After(f.From) && a.Start.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !a.Start.Before(f.To) {
		return false
	}
	if f.StaffID != "" && a.StaffID != f.StaffID {
		return false
	}
	if f.ServiceID != "" && a.ServiceID != f.ServiceID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}
