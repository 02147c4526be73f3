package model

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrStaffNotFound       = errors.New("staff not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrConflict            = errors.New("appointment conflicts with another appointment for this staff member")
	ErrInvalidDraft        = errors.New("invalid appointment draft")
)
