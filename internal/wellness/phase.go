package wellness

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/datemath"
)

const (
	MinCycleLength     = 10
	MaxCycleLength     = 50
	DefaultCycleLength = 28

	// phase band upper bounds (exclusive) over the day in cycle,
	// fixed so historical classifications stay reproducible
	recoveryBandEnd   = 5
	activationBandEnd = 13
	peakBandEnd       = 16
)

var ErrInvalidCycleLength = errors.New("invalid cycle length")

// Phase can be one of:
//   - recovery
//   - activation
//   - peak
//   - taper
type Phase string

const (
	PhaseRecovery   Phase = "recovery"
	PhaseActivation Phase = "activation"
	PhasePeak       Phase = "peak"
	PhaseTaper      Phase = "taper"
)

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseRecovery,
		PhaseActivation,
		PhasePeak,
		PhaseTaper:
		return true
	default:
		return false
	}
}

// CycleReference anchors the recurring cycle: the end date of the most recently
// completed cycle and the cycle length in days.
type CycleReference struct {
	ReferenceDate time.Time `json:"referenceDate"`
	CycleLength   int       `json:"cycleLength"`
}

// ValidateCycleLength is the data-entry check, stricter than what Classify accepts.
func ValidateCycleLength(cycleLength int) error {
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCycleLength, cycleLength, MinCycleLength, MaxCycleLength)
	}
	return nil
}

// DayInCycle returns the zero based position of evaluationDate within the cycle.
// Dates before the reference date wrap around, the result is always in [0, cycleLength).
func DayInCycle(cal *datemath.Calendar, referenceDate time.Time, cycleLength int, evaluationDate time.Time) (int, error) {
	if cycleLength <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCycleLength, cycleLength)
	}

	elapsed := cal.DaysBetween(referenceDate, evaluationDate)
	day := elapsed % cycleLength
	if day < 0 {
		day += cycleLength
	}
	return day, nil
}

// PhaseForDay maps a day in cycle to its phase band.
func PhaseForDay(dayInCycle int) Phase {
	switch {
	case dayInCycle < recoveryBandEnd:
		return PhaseRecovery
	case dayInCycle < activationBandEnd:
		return PhaseActivation
	case dayInCycle < peakBandEnd:
		return PhasePeak
	default:
		return PhaseTaper
	}
}

// Classify returns the phase evaluationDate falls into, together with the day in cycle.
func Classify(cal *datemath.Calendar, ref CycleReference, evaluationDate time.Time) (Phase, int, error) {
	day, err := DayInCycle(cal, ref.ReferenceDate, ref.CycleLength, evaluationDate)
	if err != nil {
		return "", 0, err
	}
	return PhaseForDay(day), day, nil
}
