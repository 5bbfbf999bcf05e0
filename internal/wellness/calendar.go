package wellness

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitquest/internal/datemath"
)

const (
	DefaultPeriodLength    = 5
	DefaultMonthsToPredict = 4

	// ovulation is projected this many days before the next cycle start
	lutealPhaseDays = 14
)

var ErrInvalidProjection = errors.New("invalid calendar projection params")

// Annotation is the category a calendar day is marked with.
type Annotation string

const (
	AnnotationPeriod    Annotation = "period"
	AnnotationOvulation Annotation = "ovulation"
	AnnotationReference Annotation = "reference"
)

// Annotations maps date keys (YYYY-MM-DD) to annotations.
// encoding/json writes map keys sorted, so equal inputs encode to identical bytes.
type Annotations map[string]Annotation

// Keys returns the annotated date keys in ascending order.
func (a Annotations) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type ProjectionParams struct {
	// CycleEndDate is the end of the most recently completed cycle,
	// the period start the projection counts from
	CycleEndDate    time.Time
	CycleLength     int
	PeriodLength    int
	MonthsToPredict int
}

func NewProjectionParams(cycleEndDate time.Time, cycleLength int) ProjectionParams {
	return ProjectionParams{
		CycleEndDate:    cycleEndDate,
		CycleLength:     cycleLength,
		PeriodLength:    DefaultPeriodLength,
		MonthsToPredict: DefaultMonthsToPredict,
	}
}

// ProjectCalendar annotates the period and ovulation days of the next MonthsToPredict
// cycles, and the cycle end date itself. The reference mark is applied last and
// overrides any other mark landing on the same day.
func ProjectCalendar(cal *datemath.Calendar, params ProjectionParams) (Annotations, error) {
	if params.CycleLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCycleLength, params.CycleLength)
	}
	if params.PeriodLength <= 0 {
		return nil, fmt.Errorf("%w: period length %d", ErrInvalidProjection, params.PeriodLength)
	}
	if params.MonthsToPredict < 0 {
		return nil, fmt.Errorf("%w: months to predict %d", ErrInvalidProjection, params.MonthsToPredict)
	}

	marked := make(Annotations, params.MonthsToPredict*(params.PeriodLength+1)+1)
	for i := 1; i <= params.MonthsToPredict; i++ {
		nextStart := cal.AddDays(params.CycleEndDate, i*params.CycleLength)
		for d := 0; d < params.PeriodLength; d++ {
			marked[cal.DateKey(cal.AddDays(nextStart, d))] = AnnotationPeriod
		}
		ovulationDay := cal.AddDays(nextStart, -lutealPhaseDays)
		marked[cal.DateKey(ovulationDay)] = AnnotationOvulation
	}

	marked[cal.DateKey(params.CycleEndDate)] = AnnotationReference

	return marked, nil
}
