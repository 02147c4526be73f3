package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

// ValidationError - сообщения по полям отклонённого черновика
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Result.Errors))
	for f := range e.Result.Errors {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e.Result.Errors[validation.Field(f)]
	}
	return fmt.Sprintf("%s: %s", model.ErrInvalidDraft, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return model.ErrInvalidDraft }

// ConflictError - записи, с которыми пересекается черновик или перенос
type ConflictError struct {
	Conflicts []model.Appointment
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.Conflicts))
	for i, a := range e.Conflicts {
		ids[i] = a.ID
	}
	return fmt.Sprintf("%s: %s", model.ErrConflict, strings.Join(ids, ", "))
}

func (e *ConflictError) Unwrap() error { return model.ErrConflict }
