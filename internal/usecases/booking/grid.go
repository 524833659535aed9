package booking

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// bookedLayouts cobre os formatos que o banco devolve em JSON para timestamps com e sem fuso
var bookedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

type grid struct {
	opening time.Duration
	closing time.Duration
	step    time.Duration
}

func newGrid(opening, closing string, slotMinutes int) (grid, error) {
	open, err := parseClock(opening)
	if err != nil {
		return grid{}, fmt.Errorf("horário de abertura inválido: %w", err)
	}

	closeAt, err := parseClock(closing)
	if err != nil {
		return grid{}, fmt.Errorf("horário de fechamento inválido: %w", err)
	}

	if slotMinutes <= 0 {
		return grid{}, fmt.Errorf("intervalo de horários inválido: %d", slotMinutes)
	}

	if closeAt < open {
		return grid{}, fmt.Errorf("fechamento %s anterior à abertura %s", closing, opening)
	}

	return grid{
		opening: open,
		closing: closeAt,
		step:    time.Duration(slotMinutes) * time.Minute,
	}, nil
}

// starts lista os inícios dos horários do dia, incluindo o horário de fechamento
func (g grid) starts(day time.Time) []time.Time {
	starts := make([]time.Time, 0)
	for offset := g.opening; offset <= g.closing; offset += g.step {
		starts = append(starts, day.Add(offset))
	}
	return starts
}

func (g grid) contains(day, start time.Time) bool {
	offset := start.Sub(day)
	if offset < g.opening || offset > g.closing {
		return false
	}
	return (offset-g.opening)%g.step == 0
}

func parseClock(value string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// parseBooked interpreta valores sem fuso como horário local do estabelecimento
func parseBooked(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range bookedLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

func sameSlot(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay() &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute()
}
