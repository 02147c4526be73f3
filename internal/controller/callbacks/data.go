package callbacks

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Формат callback data: "<kind>:<value>"
const (
	KindNav   = "nav"   // nav:prev, nav:today, nav:next
	KindView  = "view"  // view:week
	KindStaff = "staff" // staff:staff-1, staff: - все
	KindForce = "force" // force:save, force:cancel
	Noop      = "noop"
)

const (
	ForceSave   = "save"
	ForceCancel = "cancel"
)

// Telegram ограничивает callback_data 64 байтами
const maxDataLen = 64

// Callback - разобранные callback data
type Callback struct {
	Kind  string
	Value string
}

// Nav кодирует кнопку навигации
func Nav(action grid.NavAction) string {
	return KindNav + ":" + string(action)
}

// View кодирует переключение вида
func View(view model.CalendarView) string {
	return KindView + ":" + string(view)
}

// Staff кодирует выбор сотрудника
func Staff(staffID string) string {
	return KindStaff + ":" + staffID
}

// Force кодирует решение по конфликту
func Force(decision string) string {
	return KindForce + ":" + decision
}

// Parse разбирает callback data
func Parse(data string) (Callback, error) {
	if data == Noop {
		return Callback{Kind: Noop}, nil
	}
	if len(data) > maxDataLen {
		return Callback{}, fmt.Errorf("callback data too long: %d bytes", len(data))
	}

	kind, value, ok := strings.Cut(data, ":")
	if !ok {
		return Callback{}, fmt.Errorf("invalid callback data format %q", data)
	}

	switch kind {
	case KindNav:
		if _, err := grid.ParseNavAction(value); err != nil {
			return Callback{}, err
		}
	case KindView:
		if _, err := model.ParseCalendarView(value); err != nil {
			return Callback{}, err
		}
	case KindForce:
		if value != ForceSave && value != ForceCancel {
			return Callback{}, fmt.Errorf("unknown force decision %q", value)
		}
	case KindStaff:
	default:
		return Callback{}, fmt.Errorf("unknown callback kind %q", kind)
	}

	return Callback{Kind: kind, Value: value}, nil
}
