package cycle

import (
	"fmt"
	"time"
)

const (
	MinCycleLength     = 21
	MaxCycleLength     = 35
	DefaultCycleLength = 28

	// PeriodLength is the number of menstrual days assumed for predictions
	PeriodLength = 5
	// OvulationLength is the length of the predicted fertile window
	OvulationLength = 5
	// lutealDays is how long before the next period ovulation starts
	lutealDays = 14
)

// DateLayout is the format used for dates on the command line and in output
const DateLayout = "2006-01-02"

var ErrInvalidCycleLength = fmt.Errorf("cycle length must be between %d and %d days", MinCycleLength, MaxCycleLength)

type Phase string

const (
	PhaseMenstrual  Phase = "Menstrual Phase"
	PhaseFollicular Phase = "Follicular Phase"
	PhaseOvulation  Phase = "Ovulation Phase"
	PhaseLuteal     Phase = "Luteal Phase"
)

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " - " + r.End.Format(DateLayout)
}

// Contains reports whether day falls in the range, ignoring the time of day.
func (r DateRange) Contains(day time.Time) bool {
	d := civilDate(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Prediction holds the phase ranges of one cycle
type Prediction struct {
	Period     DateRange
	Follicular DateRange
	Ovulation  DateRange
	Luteal     DateRange
	NextPeriod time.Time
}

// ValidateCycleLength returns the length to use: zero means the default,
// anything else must lie within MinCycleLength..MaxCycleLength.
func ValidateCycleLength(cycleLength int) (int, error) {
	if cycleLength == 0 {
		return DefaultCycleLength, nil
	}
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCycleLength, cycleLength)
	}
	return cycleLength, nil
}

// PredictPhases lays out one cycle that begins on start. Ovulation is placed
// 14 days before the next period; the luteal phase runs to the cycle's last day.
func PredictPhases(start time.Time, cycleLength int) (Prediction, error) {
	cycleLength, err := ValidateCycleLength(cycleLength)
	if err != nil {
		return Prediction{}, err
	}

	first := civilDate(start)
	day := func(offset int) time.Time {
		return first.AddDate(0, 0, offset)
	}

	ovulationStart := cycleLength - lutealDays

	return Prediction{
		Period:     DateRange{Start: first, End: day(PeriodLength - 1)},
		Follicular: DateRange{Start: day(PeriodLength), End: day(ovulationStart - 1)},
		Ovulation:  DateRange{Start: day(ovulationStart), End: day(ovulationStart + OvulationLength - 1)},
		Luteal:     DateRange{Start: day(ovulationStart + OvulationLength), End: day(cycleLength - 1)},
		NextPeriod: day(cycleLength),
	}, nil
}

// DayInCycle returns the 1-based day of the cycle that today falls on. Days
// before start wrap backwards into the previous cycle.
func DayInCycle(start time.Time, cycleLength int, today time.Time) (int, error) {
	cycleLength, err := ValidateCycleLength(cycleLength)
	if err != nil {
		return 0, err
	}

	days := daysBetween(civilDate(start), civilDate(today))
	return ((days%cycleLength)+cycleLength)%cycleLength + 1, nil
}

// CurrentPhase names the phase today falls in: days 1-5 menstrual, 6-13
// follicular, 14-16 ovulation and 17 to the end of the cycle luteal.
func CurrentPhase(start time.Time, cycleLength int, today time.Time) (Phase, error) {
	dayInCycle, err := DayInCycle(start, cycleLength, today)
	if err != nil {
		return "", err
	}

	switch {
	case dayInCycle <= 5:
		return PhaseMenstrual, nil
	case dayInCycle >= 6 && dayInCycle <= 13:
		return PhaseFollicular, nil
	case dayInCycle >= 14 && dayInCycle <= 16:
		return PhaseOvulation, nil
	default:
		return PhaseLuteal, nil
	}
}

// ParseDate reads a YYYY-MM-DD date
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// civilDate drops the time of day and location, keeping the calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
