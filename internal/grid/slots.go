package grid

import "fmt"

const minutesPerHour = 60

// TimeSlots возвращает подписи строк "HH:MM" с шагом intervalMinutes в [startHour, endHour).
// Часы ограничиваются [0, 24], неположительный шаг даёт пустой список.
func TimeSlots(startHour, endHour, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		return nil
	}
	startHour = clampHour(startHour)
	endHour = clampHour(endHour)

	var slots []string
	for m := startHour * minutesPerHour; m < endHour*minutesPerHour; m += intervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/minutesPerHour, m%minutesPerHour))
	}
	return slots
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 24 {
		return 24
	}
	return h
}
