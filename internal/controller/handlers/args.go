package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

const (
	usageNew    = "/new <yyyy-mm-dd> <HH:MM> <service-id> <staff-id> [title]"
	usageMove   = "/move <id> <yyyy-mm-dd> <HH:MM> [staff-id]"
	usageStatus = "/status <id> <status>"
	usageDelete = "/delete <id>"
)

// UsageError - неверные аргументы команды
type UsageError struct {
	Usage  string
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "usage: " + e.Usage
	}
	return e.Reason + "; usage: " + e.Usage
}

type newArgs struct {
	Start     time.Time
	ServiceID string
	StaffID   string
	Title     string
}

type moveArgs struct {
	ID      string
	Start   time.Time
	StaffID string // пусто - тот же сотрудник
}

// commandArgs отбрасывает саму команду ("/new@my_bot") и возвращает аргументы
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}

func parseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date/time %q %q", date, clock)
	}
	return t, nil
}

func parseNewArgs(text string, loc *time.Location) (newArgs, error) {
	args := commandArgs(text)
	if len(args) < 4 {
		return newArgs{}, &UsageError{Usage: usageNew}
	}

	start, err := parseDateTime(args[0], args[1], loc)
	if err != nil {
		return newArgs{}, &UsageError{Usage: usageNew, Reason: err.Error()}
	}

	return newArgs{
		Start:     start,
		ServiceID: args[2],
		StaffID:   args[3],
		Title:     strings.Join(args[4:], " "),
	}, nil
}

func parseMoveArgs(text string, loc *time.Location) (moveArgs, error) {
	args := commandArgs(text)
	if len(args) != 3 && len(args) != 4 {
		return moveArgs{}, &UsageError{Usage: usageMove}
	}

	start, err := parseDateTime(args[1], args[2], loc)
	if err != nil {
		return moveArgs{}, &UsageError{Usage: usageMove, Reason: err.Error()}
	}

	m := moveArgs{ID: args[0], Start: start}
	if len(args) == 4 {
		m.StaffID = args[3]
	}
	return m, nil
}

func parseStatusArgs(text string) (string, model.AppointmentStatus, error) {
	args := commandArgs(text)
	if len(args) != 2 {
		return "", "", &UsageError{Usage: usageStatus}
	}

	status, err := model.ParseAppointmentStatus(strings.ToLower(args[1]))
	if err != nil {
		return "", "", &UsageError{Usage: usageStatus, Reason: err.Error()}
	}
	return args[0], status, nil
}

func parseDeleteArgs(text string) (string, error) {
	args := commandArgs(text)
	if len(args) != 1 {
		return "", &UsageError{Usage: usageDelete}
	}
	return args[0], nil
}

// parseOptionalDate читает "/week [yyyy-mm-dd]", ok = false если дата не указана
func parseOptionalDate(text string, loc *time.Location) (date time.Time, ok bool, err error) {
	args := commandArgs(text)
	if len(args) == 0 {
		return time.Time{}, false, nil
	}

	date, err = time.ParseInLocation(dateLayout, args[0], loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("bad date %q, want yyyy-mm-dd", args[0])
	}
	return date, true, nil
}
