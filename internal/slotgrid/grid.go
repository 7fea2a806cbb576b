package slotgrid

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ErrInvalidHours возвращается, когда часы работы не удовлетворяют 0 <= opensAt < closesAt <= 24
var ErrInvalidHours = errors.New("slotgrid: invalid opening hours")

// Cell ячейка сетки: календарная дата и время суток
type Cell struct {
	Date      time.Time
	TimeOfDay time.Time
}

// StartsAt возвращает момент начала слота: день из Date, часы/минуты из TimeOfDay
func (c Cell) StartsAt() time.Time {
	return time.Date(
		c.Date.Year(), c.Date.Month(), c.Date.Day(),
		c.TimeOfDay.Hour(), c.TimeOfDay.Minute(), c.TimeOfDay.Second(), c.TimeOfDay.Nanosecond(),
		c.Date.Location(),
	)
}

// Grid недельная сетка слотов: строки - время суток, столбцы - даты
type Grid struct {
	Times []time.Time
	Dates []time.Time
}

// Build строит сетку на неделю, начиная с дня reference
func Build(reference time.Time, opensAt, closesAt int) (Grid, error) {
	if err := ValidateHours(opensAt, closesAt); err != nil {
		return Grid{}, err
	}
	return Grid{
		Times: DailyTimeSlots(reference, opensAt, closesAt),
		Dates: WeeklyDateValues(reference),
	}, nil
}

// ValidateHours проверяет диапазон часов работы
func ValidateHours(opensAt, closesAt int) error {
	if opensAt < 0 || closesAt > 24 || opensAt >= closesAt {
		return fmt.Errorf("%w: %d..%d", ErrInvalidHours, opensAt, closesAt)
	}
	return nil
}

// DailyTimeSlots генерирует время начала слотов на день с шагом 30 минут
// Первый слот в opensAt:00, количество слотов (closesAt-opensAt)*2
// Секунды и наносекунды обнулены, дата берется из reference
// Время суток строится в фиксированной зоне со смещением reference на полночь:
// в день перехода на летнее время часы не сдвигаются и строки строго возрастают
func DailyTimeSlots(reference time.Time, opensAt, closesAt int) []time.Time {
	count := (closesAt - opensAt) * 60 / domain.SlotIntervalMinutes
	if count <= 0 {
		return []time.Time{}
	}

	y, m, d := reference.Date()
	zone, offset := time.Date(y, m, d, 0, 0, 0, 0, reference.Location()).Zone()
	wall := time.FixedZone(zone, offset)

	slots := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		minutes := opensAt*60 + i*domain.SlotIntervalMinutes
		slots = append(slots, time.Date(y, m, d, minutes/60, minutes%60, 0, 0, wall))
	}

	return slots
}

// WeeklyDateValues возвращает 7 последовательных дат, начиная с дня reference
// Каждая дата - полночь; прибавление через time.Date корректно проходит переход на летнее время
func WeeklyDateValues(reference time.Time) []time.Time {
	y, m, d := reference.Date()
	dates := make([]time.Time, domain.DaysPerWeek)
	for i := range dates {
		dates[i] = time.Date(y, m, d+i, 0, 0, 0, 0, reference.Location())
	}
	return dates
}

// Cell возвращает ячейку по индексам строки (время) и столбца (дата)
func (g Grid) Cell(row, col int) Cell {
	return Cell{Date: g.Dates[col], TimeOfDay: g.Times[row]}
}

// Rows возвращает декартово произведение времени и дат в хронологическом порядке
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, len(g.Times))
	for r := range g.Times {
		rows[r] = make([]Cell, len(g.Dates))
		for c := range g.Dates {
			rows[r][c] = g.Cell(r, c)
		}
	}
	return rows
}

// TimeLabel форматирует время суток, например "09:30"
func TimeLabel(t time.Time) string {
	return t.Format(domain.TimeFormat)
}

// DateLabel форматирует дату заголовка столбца, например "Sat 01"
func DateLabel(t time.Time) string {
	return t.Format(domain.ShortDateFormat)
}
