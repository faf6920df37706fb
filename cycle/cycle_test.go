package cycle

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", value, err)
	}
	return d
}

func TestValidateCycleLength(t *testing.T) {
	tests := []struct {
		length  int
		want    int
		wantErr bool
	}{
		{length: 0, want: DefaultCycleLength},
		{length: 21, want: 21},
		{length: 28, want: 28},
		{length: 35, want: 35},
		{length: 20, wantErr: true},
		{length: 36, wantErr: true},
		{length: -28, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ValidateCycleLength(tt.length)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCycleLength) {
				t.Errorf("length %d: expected ErrInvalidCycleLength, got %v", tt.length, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("length %d: unexpected error %v", tt.length, err)
		}
		if got != tt.want {
			t.Errorf("length %d: expected %d, got %d", tt.length, tt.want, got)
		}
	}
}

func TestPredictPhases28DayCycle(t *testing.T) {
	prediction, err := PredictPhases(date(t, "2024-03-01"), 28)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := map[string]string{
		"period":     "2024-03-01 - 2024-03-05",
		"follicular": "2024-03-06 - 2024-03-14",
		"ovulation":  "2024-03-15 - 2024-03-19",
		"luteal":     "2024-03-20 - 2024-03-28",
	}
	got := map[string]string{
		"period":     prediction.Period.String(),
		"follicular": prediction.Follicular.String(),
		"ovulation":  prediction.Ovulation.String(),
		"luteal":     prediction.Luteal.String(),
	}
	for phase, want := range expected {
		if got[phase] != want {
			t.Errorf("%s: expected %s, got %s", phase, want, got[phase])
		}
	}

	if next := prediction.NextPeriod.Format(DateLayout); next != "2024-03-29" {
		t.Errorf("Expected next period 2024-03-29, got %s", next)
	}
}

func TestPredictPhasesShortCycleAcrossMonthEnd(t *testing.T) {
	prediction, err := PredictPhases(date(t, "2024-02-20"), 21)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := prediction.Follicular.String(); got != "2024-02-25 - 2024-02-26" {
		t.Errorf("Expected follicular 2024-02-25 - 2024-02-26, got %s", got)
	}
	if got := prediction.Ovulation.String(); got != "2024-02-27 - 2024-03-02" {
		t.Errorf("Expected ovulation across leap day, got %s", got)
	}
	if got := prediction.Luteal.String(); got != "2024-03-03 - 2024-03-11" {
		t.Errorf("Expected luteal 2024-03-03 - 2024-03-11, got %s", got)
	}
}

func TestPredictPhasesIgnoresTimeOfDay(t *testing.T) {
	evening := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))
	prediction, err := PredictPhases(evening, 28)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := prediction.Period.Start.Format(DateLayout); got != "2024-03-01" {
		t.Errorf("Expected start on the local calendar date, got %s", got)
	}
	if !prediction.Period.Contains(time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)) {
		t.Error("Expected the last period day to be contained regardless of time")
	}
}

func TestPredictPhasesInvalidLength(t *testing.T) {
	if _, err := PredictPhases(date(t, "2024-03-01"), 40); !errors.Is(err, ErrInvalidCycleLength) {
		t.Errorf("Expected ErrInvalidCycleLength, got %v", err)
	}
}

func TestCurrentPhaseBoundaries(t *testing.T) {
	start := date(t, "2024-03-01")

	tests := []struct {
		name   string
		offset int
		length int
		day    int
		phase  Phase
	}{
		{name: "first day", offset: 0, length: 28, day: 1, phase: PhaseMenstrual},
		{name: "last menstrual day", offset: 4, length: 28, day: 5, phase: PhaseMenstrual},
		{name: "first follicular day", offset: 5, length: 28, day: 6, phase: PhaseFollicular},
		{name: "last follicular day", offset: 12, length: 28, day: 13, phase: PhaseFollicular},
		{name: "first ovulation day", offset: 13, length: 28, day: 14, phase: PhaseOvulation},
		{name: "last ovulation day", offset: 15, length: 28, day: 16, phase: PhaseOvulation},
		{name: "first luteal day", offset: 16, length: 28, day: 17, phase: PhaseLuteal},
		{name: "last day of cycle", offset: 27, length: 28, day: 28, phase: PhaseLuteal},
		{name: "next cycle wraps", offset: 28, length: 28, day: 1, phase: PhaseMenstrual},
		{name: "several cycles later", offset: 3*30 + 20, length: 30, day: 21, phase: PhaseLuteal},
		{name: "day before start", offset: -1, length: 28, day: 28, phase: PhaseLuteal},
		{name: "negative into ovulation", offset: -13, length: 28, day: 16, phase: PhaseOvulation},
		{name: "full cycle before start", offset: -28, length: 28, day: 1, phase: PhaseMenstrual},
		{name: "long cycle end", offset: 34, length: 35, day: 35, phase: PhaseLuteal},
		{name: "default length", offset: 27, length: 0, day: 28, phase: PhaseLuteal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := start.AddDate(0, 0, tt.offset)

			day, err := DayInCycle(start, tt.length, today)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if day != tt.day {
				t.Errorf("Expected day %d, got %d", tt.day, day)
			}

			phase, err := CurrentPhase(start, tt.length, today)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if phase != tt.phase {
				t.Errorf("Expected %s, got %s", tt.phase, phase)
			}
		})
	}
}

func TestCurrentPhaseInvalidLength(t *testing.T) {
	start := date(t, "2024-03-01")
	if _, err := CurrentPhase(start, 14, start); !errors.Is(err, ErrInvalidCycleLength) {
		t.Errorf("Expected ErrInvalidCycleLength, got %v", err)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Error("Expected error for non ISO date")
	}
}
