package calendar

import (
	"sort"
	"time"
)

// Holiday is one non-working calendar day.
type Holiday struct {
	Date Date   `json:"date" example:"2026-09-18"`
	Name string `json:"name" example:"Fiestas Patrias"`
}

// HolidaysPerYear is the number of public holidays HolidaysForYear yields.
const HolidaysPerYear = 16

// defaultSolsticeDay is used for years missing from solsticeDayOfJune.
const defaultSolsticeDay = 21

// solsticeDayOfJune maps a year to the day of June on which the winter
// solstice (Día Nacional de los Pueblos Indígenas) falls.
var solsticeDayOfJune = map[int]int{
	2024: 20,
	2025: 20,
	2026: 21,
	2027: 21,
	2028: 20,
	2029: 20,
	2030: 21,
	2031: 21,
	2032: 20,
	2033: 20,
	2034: 21,
	2035: 21,
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.May, 21, "Día de las Glorias Navales"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.July, 16, "Día de la Virgen del Carmen"},
	{time.August, 15, "Asunción de la Virgen"},
	{time.September, 18, "Fiestas Patrias"},
	{time.September, 19, "Día de las Glorias del Ejército"},
	{time.October, 12, "Encuentro de Dos Mundos"},
	{time.October, 31, "Día de las Iglesias Evangélicas y Protestantes"},
	{time.November, 1, "Día de Todos los Santos"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// HolidaysForYear returns the Chilean public holidays of year, sorted by date.
//
// The result always holds HolidaysPerYear entries: the fixed-date holidays,
// Good Friday and Holy Saturday (relative to Easter Sunday) and the
// indigenous peoples' day on the June solstice. Solstice days come from a
// table; years outside it fall back to June 21.
func HolidaysForYear(year int) []Holiday {
	out := make([]Holiday, 0, HolidaysPerYear)
	for _, f := range fixedHolidays {
		out = append(out, Holiday{Date: Date{Year: year, Month: f.month, Day: f.day}, Name: f.name})
	}

	easter := EasterSunday(year)
	out = append(out,
		Holiday{Date: easter.AddDays(-2), Name: "Viernes Santo"},
		Holiday{Date: easter.AddDays(-1), Name: "Sábado Santo"},
		Holiday{Date: Date{Year: year, Month: time.June, Day: solsticeDay(year)}, Name: "Día Nacional de los Pueblos Indígenas"},
	)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// HolidaysForYears concatenates HolidaysForYear for every year in [from, to].
func HolidaysForYears(from, to int) []Holiday {
	if from > to {
		return nil
	}
	out := make([]Holiday, 0, (to-from+1)*HolidaysPerYear)
	for y := from; y <= to; y++ {
		out = append(out, HolidaysForYear(y)...)
	}
	return out
}

func solsticeDay(year int) int {
	if d, ok := solsticeDayOfJune[year]; ok {
		return d
	}
	return defaultSolsticeDay
}

// EasterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm). The result is only meaningful for
// Gregorian years (1583 onwards); earlier or negative years yield a date
// inside the year with no liturgical meaning.
func EasterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}
}
