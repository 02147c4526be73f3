package conflict

import (
	"sort"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Index отвечает на запросы о конфликтах по неизменному снимку за O(log n + k) на сотрудника.
// После NewIndex только для чтения, безопасен для конкурентного использования.
type Index struct {
	byStaff map[string]*staffIntervals
}

type staffIntervals struct {
	appts   []model.Appointment // по возрастанию Start
	longest time.Duration
}

// NewIndex раскладывает appts по сотрудникам, сортируя по началу
func NewIndex(appts []model.Appointment) *Index {
	idx := &Index{byStaff: make(map[string]*staffIntervals)}
	for _, a := range appts {
		si, ok := idx.byStaff[a.StaffID]
		if !ok {
			si = &staffIntervals{}
			idx.byStaff[a.StaffID] = si
		}
		si.appts = append(si.appts, a)
		if d := a.End.Sub(a.Start); d > si.longest {
			si.longest = d
		}
	}
	for _, si := range idx.byStaff {
		sort.SliceStable(si.appts, func(i, j int) bool {
			return si.appts[i].Start.Before(si.appts[j].Start)
		})
	}
	return idx
}

// window возвращает записи с началом в (c.Start-longest, c.End)
// Более ранние заканчиваются не позже c.Start, более поздние начинаются не раньше c.End
func (idx *Index) window(c Candidate) []model.Appointment {
	if !c.complete() {
		return nil
	}
	si, ok := idx.byStaff[c.StaffID]
	if !ok {
		return nil
	}
	earliest := c.Start.Add(-si.longest)
	lo := sort.Search(len(si.appts), func(i int) bool {
		return si.appts[i].Start.After(earliest)
	})
	hi := sort.Search(len(si.appts), func(i int) bool {
		return !si.appts[i].Start.Before(c.End)
	})
	if lo >= hi {
		return nil
	}
	return si.appts[lo:hi]
}

// HasConflict отвечает так же, как HasConflict пакета на том же снимке
func (idx *Index) HasConflict(c Candidate) bool {
	for _, a := range idx.window(c) {
		if a.ID != c.ID && Overlaps(c.Start, c.End, a.Start, a.End) {
			return true
		}
	}
	return false
}

// Conflicts возвращает пересекающиеся записи по началу
func (idx *Index) Conflicts(c Candidate) []model.Appointment {
	var out []model.Appointment
	for _, a := range idx.window(c) {
		if a.ID != c.ID && Overlaps(c.Start, c.End, a.Start, a.End) {
			out = append(out, a)
		}
	}
	return out
}

// Len - число записей в индексе
func (idx *Index) Len() int {
	n := 0
	for _, si := range idx.byStaff {
		n += len(si.appts)
	}
	return n
}
