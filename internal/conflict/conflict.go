// Package conflict определяет, пересекается ли интервал записи с записями того же сотрудника.
//
// Интервалы полуоткрытые: [Start, End). Записи встык не конфликтуют,
// пустой интервал (End <= Start) ни с чем не пересекается.
package conflict

import (
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Candidate - часть записи, нужная для проверки
// Нулевые Start/End или пустой StaffID означают отсутствие значения
type Candidate struct {
	ID      string
	Start   time.Time
	End     time.Time
	StaffID string
}

// CandidateFor строит кандидата из записи (возможно несохранённой)
func CandidateFor(a model.Appointment) Candidate {
	return Candidate{ID: a.ID, Start: a.Start, End: a.End, StaffID: a.StaffID}
}

func (c Candidate) complete() bool {
	return !c.Start.IsZero() && !c.End.IsZero() && c.StaffID != ""
}

// Overlaps - есть ли у [startA, endA) и [startB, endB) общий момент
func Overlaps(startA, endA, startB, endB time.Time) bool {
	if !endA.After(startA) || !endB.After(startB) {
		return false
	}
	return startA.Before(endB) && endA.After(startB)
}

func relevant(c Candidate, a *model.Appointment) bool {
	return a.StaffID == c.StaffID && a.ID != c.ID
}

// HasConflict - пересекается ли c с записью того же сотрудника в existing.
// Сохранённая копия самой c (по ID) не учитывается.
// Без начала, конца или сотрудника возвращает false.
func HasConflict(c Candidate, existing []model.Appointment) bool {
	if !c.complete() {
		return false
	}
	for i := range existing {
		if !relevant(c, &existing[i]) {
			continue
		}
		if Overlaps(c.Start, c.End, existing[i].Start, existing[i].End) {
			return true
		}
	}
	return false
}

// FindConflicts возвращает все записи, которые нашёл бы HasConflict, в исходном порядке
func FindConflicts(c Candidate, existing []model.Appointment) []model.Appointment {
	if !c.complete() {
		return nil
	}
	var out []model.Appointment
	for i := range existing {
		if relevant(c, &existing[i]) && Overlaps(c.Start, c.End, existing[i].Start, existing[i].End) {
			out = append(out, existing[i])
		}
	}
	return out
}
