package domain

import "time"

// Period é a janela [Start, End] selecionada para um relatório, inclusiva nas duas pontas
type Period struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// IsValid indica se as duas datas foram informadas e estão em ordem
func (p Period) IsValid() bool {
	if p.Start.IsZero() || p.End.IsZero() {
		return false
	}
	return !p.Start.After(p.End)
}

func (p Period) Length() time.Duration {
	return p.End.Sub(p.Start)
}

// Prior retorna a janela imediatamente anterior, de mesmo tamanho, terminando em Start
func (p Period) Prior() Period {
	length := p.Length()
	return Period{
		Start: p.Start.Add(-length),
		End:   p.Start,
	}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// SpansSingleMonth indica se início e fim caem no mesmo mês civil no fuso informado
func (p Period) SpansSingleMonth(loc *time.Location) bool {
	start := p.Start.In(loc)
	end := p.End.In(loc)
	return start.Year() == end.Year() && start.Month() == end.Month()
}

// StartMonth retorna mês e ano do início da janela no fuso informado
func (p Period) StartMonth(loc *time.Location) (int, int) {
	start := p.Start.In(loc)
	return int(start.Month()), start.Year()
}

// MonthPeriod cobre o mês civil inteiro, do dia 1 à meia-noite até o último nanossegundo do mês
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// DayPeriod cobre o dia civil de t no fuso informado
func DayPeriod(t time.Time, loc *time.Location) Period {
	start := StartOfDay(t, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DaysInMonth usa o dia 0 do mês seguinte para obter o último dia do mês
func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
