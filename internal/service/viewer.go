package service

import "github.com/Freeeeeet/booking_calendar/internal/model"

// Viewer - кто смотрит календарь
type Viewer struct {
	Role    model.UserRole
	StaffID string // для роли staff - собственный ID сотрудника
}

// Admin возвращает зрителя без ограничений
func Admin() Viewer {
	return Viewer{Role: model.UserRoleAdmin}
}

// staffFilter возвращает id сотрудника, по которому фильтруются записи зрителя.
// Сотрудник видит только свою колонку, без id не видит ничего.
// Админ и владелец видят выбранного сотрудника или всех.
func (v Viewer) staffFilter(selected string) (staffID string, visible bool) {
	if v.Role == model.UserRoleStaff {
		return v.StaffID, v.StaffID != ""
	}
	return selected, true
}
