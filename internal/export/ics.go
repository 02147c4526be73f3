// Package export выгружает записи в iCalendar (RFC 5545).
package export

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

const productID = "-//Freeeeeet//booking_calendar//EN"

// icsStatus - соответствие статусов записи и VEVENT STATUS
// completed остаётся CONFIRMED, no-show уходит как CANCELLED
func icsStatus(s model.AppointmentStatus) ical.ObjectStatus {
	switch s {
	case model.AppointmentStatusPending:
		return ical.ObjectStatusTentative
	case model.AppointmentStatusCancelled, model.AppointmentStatusNoShow:
		return ical.ObjectStatusCancelled
	default:
		return ical.ObjectStatusConfirmed
	}
}

// ICS формирует по одному VEVENT на запись, UID = id записи
func ICS(appts []model.Appointment, dir model.Directory, loc locale.Locale, name string, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, a := range appts {
		if a.ID == "" {
			return nil, fmt.Errorf("export appointment starting %s: missing id", a.Start.Format(time.RFC3339))
		}

		ev := cal.AddEvent(a.ID)
		ev.SetDtStampTime(now)
		if !a.CreatedAt.IsZero() {
			ev.SetCreatedTime(a.CreatedAt)
		}
		if !a.UpdatedAt.IsZero() {
			ev.SetModifiedAt(a.UpdatedAt)
		}
		ev.SetStartAt(a.Start)
		ev.SetEndAt(a.End)
		ev.SetSummary(dir.Label(a))
		ev.SetDescription(description(a, dir, loc))
		ev.SetStatus(icsStatus(a.Status))
		ev.SetProperty(ical.ComponentPropertyCategories, loc.Status(a.Status))
	}

	return []byte(cal.Serialize()), nil
}

func description(a model.Appointment, dir model.Directory, loc locale.Locale) string {
	lines := []string{
		"Staff: " + dir.StaffName(a.StaffID),
	}
	if svc, ok := dir.Service(a.ServiceID); ok {
		lines = append(lines, "Service: "+svc.Name)
	}
	if customer := dir.CustomerName(a.CustomerID); customer != "" {
		lines = append(lines, "Customer: "+customer)
	}
	lines = append(lines, "Status: "+loc.Status(a.Status))
	if a.Notes != "" {
		lines = append(lines, a.Notes)
	}
	return strings.Join(lines, "\n")
}
