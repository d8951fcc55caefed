package biorhythm

import (
	"fmt"
	"math"
)

// Cycle identifies one of the three classic biorhythm cycles.
type Cycle int

const (
	Physical Cycle = iota
	Emotional
	Intellectual
)

// Fixed cycle period lengths in days.
const (
	PhysicalPeriod     = 23.0
	EmotionalPeriod    = 28.0
	IntellectualPeriod = 33.0
)

// DefaultSampleCount is the chart window length in days, matching the
// longest cycle period so the intellectual cycle completes one full
// oscillation on screen.
const DefaultSampleCount = 33

// Cycles lists all cycles in rendering order.
var Cycles = []Cycle{Physical, Emotional, Intellectual}

// Period returns the cycle's fixed length in days.
func (c Cycle) Period() float64 {
	switch c {
	case Physical:
		return PhysicalPeriod
	case Emotional:
		return EmotionalPeriod
	case Intellectual:
		return IntellectualPeriod
	default:
		panic(fmt.Sprintf("biorhythm: unknown cycle %d", int(c)))
	}
}

// Name returns the cycle's display name.
func (c Cycle) Name() string {
	switch c {
	case Physical:
		return "Physical"
	case Emotional:
		return "Emotional"
	case Intellectual:
		return "Intellectual"
	default:
		panic(fmt.Sprintf("biorhythm: unknown cycle %d", int(c)))
	}
}

func (c Cycle) String() string {
	return c.Name()
}

// CycleValue computes the cycle amplitude for a given day offset as
// sin(2π·d/period). The result is always in [-1, 1]. A non-positive
// period is a programmer error, not an input condition, so it panics
// rather than silently producing NaN.
func CycleValue(daysSinceBirth int, periodDays float64) float64 {
	if periodDays <= 0 {
		panic(fmt.Sprintf("biorhythm: cycle period must be positive, got %v", periodDays))
	}
	angle := 2.0 * math.Pi * float64(daysSinceBirth) / periodDays
	return math.Sin(angle)
}

// Value computes the cycle amplitude for a day offset using the
// cycle's own period.
func (c Cycle) Value(daysSinceBirth int) float64 {
	return CycleValue(daysSinceBirth, c.Period())
}

// SamplePoint is one daily chart sample: the day offset within the
// chart window and the cycle value on that day.
type SamplePoint struct {
	Offset int
	Value  float64
}

// SampleSeries produces count consecutive daily samples starting at
// daysSinceBirth. Offsets run 0..count-1 in ascending order. The
// series is pure and restartable: identical inputs reproduce the
// identical sequence.
func SampleSeries(daysSinceBirth int, periodDays float64, count int) []SamplePoint {
	if count <= 0 {
		return nil
	}
	series := make([]SamplePoint, count)
	for i := 0; i < count; i++ {
		series[i] = SamplePoint{
			Offset: i,
			Value:  CycleValue(daysSinceBirth+i, periodDays),
		}
	}
	return series
}

// Series samples the cycle over a chart window using the cycle's own period.
func (c Cycle) Series(daysSinceBirth, count int) []SamplePoint {
	return SampleSeries(daysSinceBirth, c.Period(), count)
}
