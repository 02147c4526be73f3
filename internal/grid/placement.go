package grid

import (
	"math"
	"time"
)

const (
	// HourHeightPx - высота строки часа в видах день и неделя
	HourHeightPx = 60.0
	// MinAppointmentDurationMinutes - минимальная длительность блока при отрисовке
	MinAppointmentDurationMinutes = 15
	// MinBlockHeightPx - минимальная высота блока
	MinBlockHeightPx = 15.0
)

// PlacementConfig задаёт вертикальный масштаб колонки дня
type PlacementConfig struct {
	HourHeight         float64
	MinDurationMinutes int
	MinHeight          float64
	DayStartHour       int // первая строка часов, блоки отсчитываются от неё
}

// DefaultPlacement - стандартная сетка дня и недели
func DefaultPlacement() PlacementConfig {
	return PlacementConfig{
		HourHeight:         HourHeightPx,
		MinDurationMinutes: MinAppointmentDurationMinutes,
		MinHeight:          MinBlockHeightPx,
	}
}

// Placement - положение блока записи внутри колонки дня
type Placement struct {
	Top    float64
	Height float64
}

// Bottom = Top + Height
func (p Placement) Bottom() float64 {
	return p.Top + p.Height
}

func minutesSinceMidnight(t time.Time) float64 {
	return float64(t.Hour()*minutesPerHour+t.Minute()) + float64(t.Second())/60
}

// Place размещает [start, end) в колонке: верх пропорционален минутам от полуночи,
// высота пропорциональна длительности.
// Длительность поднимается до MinDurationMinutes, высота до MinHeight. Это влияет только на отрисовку.
func (c PlacementConfig) Place(start, end time.Time) Placement {
	top := (minutesSinceMidnight(start) - float64(c.DayStartHour*minutesPerHour)) / minutesPerHour * c.HourHeight

	duration := end.Sub(start).Minutes()
	duration = math.Max(float64(c.MinDurationMinutes), duration)
	height := math.Max(c.MinHeight, duration/minutesPerHour*c.HourHeight)

	return Placement{Top: top, Height: height}
}

// Place использует DefaultPlacement
func Place(start, end time.Time) Placement {
	return DefaultPlacement().Place(start, end)
}
