package repository

import (
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

const DemoTenantID = "tenant-123"

func DemoStaff() []model.Staff {
	return []model.Staff{
		{ID: "staff-1", Name: "Dr. Emily Carter", Color: "#6366f1"},
		{ID: "staff-2", Name: "John Davis", Color: "#10b981"},
		{ID: "staff-3", Name: "Sarah Miller", Color: "#8b5cf6"},
	}
}

func DemoServices() []model.Service {
	return []model.Service{
		{ID: "service-1", Name: "Consultation", Duration: 30, Color: "#a5b4fc"},
		{ID: "service-2", Name: "Check-up", Duration: 60, Color: "#f9a8d4"},
		{ID: "service-3", Name: "Therapy Session", Duration: 90, Color: "#fde047"},
	}
}

func DemoCustomers() []model.Customer {
	return []model.Customer{
		{ID: "cust-1", Name: "Alice Wonderland"},
		{ID: "cust-2", Name: "Bob The Builder"},
	}
}

// DemoAppointments - записи на вчера, сегодня и завтра относительно now
func DemoAppointments(now time.Time) []model.Appointment {
	day := func(offset, h, m int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day()+offset, h, m, 0, 0, now.Location())
	}
	alice, bob := "cust-1", "cust-2"

	return []model.Appointment{
		{
			ID: "appt-1", Start: day(0, 9, 0), End: day(0, 9, 30),
			ServiceID: "service-1", StaffID: "staff-1", CustomerID: &alice,
			Status: model.AppointmentStatusConfirmed, TenantID: DemoTenantID,
			Title: "Consultation with Alice", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "appt-2", Start: day(0, 10, 0), End: day(0, 11, 0),
			ServiceID: "service-2", StaffID: "staff-2", CustomerID: &bob,
			Status: model.AppointmentStatusPending, TenantID: DemoTenantID,
			Title: "Check-up for Bob", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "appt-3", Start: day(1, 14, 0), End: day(1, 15, 30),
			ServiceID: "service-3", StaffID: "staff-1",
			Status: model.AppointmentStatusConfirmed, TenantID: DemoTenantID,
			Title: "Therapy Session", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "appt-4", Start: day(-1, 11, 0), End: day(-1, 11, 30),
			ServiceID: "service-1", StaffID: "staff-3", CustomerID: &alice,
			Status: model.AppointmentStatusCompleted, TenantID: DemoTenantID,
			Title: "Follow-up with Alice", CreatedAt: now, UpdatedAt: now,
		},
	}
}
