package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/events"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/render"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

// Рисует демо-неделю в week.png: go run ./cmd/test_week_image [locale]
func main() {
	tag := "en"
	if len(os.Args) > 1 {
		tag = os.Args[1]
	}
	loc := locale.Resolve(tag)

	ctx := context.Background()
	now := time.Now()
	store := repository.NewDemoStore(now)

	// Пересечение с appt-1, чтобы увидеть красную рамку
	alice := "cust-1"
	store.Seed(model.Appointment{
		ID:         "appt-overlap",
		Start:      time.Date(now.Year(), now.Month(), now.Day(), 9, 15, 0, 0, now.Location()),
		End:        time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()),
		ServiceID:  "service-1",
		StaffID:    "staff-1",
		CustomerID: &alice,
		Status:     model.AppointmentStatusPending,
		TenantID:   repository.DemoTenantID,
	})

	calendar := service.NewCalendarService(store, store, events.NopPublisher{}, service.Settings{
		Locale:       loc,
		Location:     now.Location(),
		TenantID:     repository.DemoTenantID,
		DayStartHour: 8,
		DayEndHour:   18,
		SlotInterval: 60,
	}, zap.NewNop())

	page, err := calendar.Load(ctx, service.Admin(), service.CalendarQuery{Date: now, View: model.CalendarViewWeek})
	if err != nil {
		fmt.Printf("Ошибка загрузки календаря: %v\n", err)
		os.Exit(1)
	}
	dir, err := calendar.Directory(ctx)
	if err != nil {
		fmt.Printf("Ошибка загрузки справочников: %v\n", err)
		os.Exit(1)
	}

	// Генерируем изображение
	imageData, err := render.WeekImage(render.Week{
		Title:        page.Title,
		Days:         page.Days,
		Appointments: page.Appointments,
		Conflicting:  page.Conflicting,
	}, render.Options{Locale: loc, Directory: dir, Now: now, FirstHour: 8, LastHour: 18})
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "week.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Период: %s\n", page.Title)
	fmt.Printf("📊 Записей: %d, пересечений: %d\n", len(page.Appointments), len(page.Conflicting))
}
