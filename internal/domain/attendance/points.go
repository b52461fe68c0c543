package attendance

import (
	"math"

	"github.com/officehub/insights-gateway-go/internal/pkg/timeutil"
)

const (
	// StandardWorkHours is the reference full working day.
	StandardWorkHours = 8
	// PointsPerHour is awarded per completed whole hour of work.
	PointsPerHour = 40
	// MaxDailyPoints caps the daily score at a full standard day.
	MaxDailyPoints = StandardWorkHours * PointsPerHour
)

// WorkPercentage converts a duration into a 0..100 share of the standard
// working day, rounded to the nearest integer and capped at 100.
func WorkPercentage(d timeutil.WorkDuration) int {
	if d.TotalHours <= 0 {
		return 0
	}
	pct := int(math.Round(d.TotalHours / StandardWorkHours * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// WorkPoints converts a duration into a daily point score. Only completed
// whole hours count; the fractional remainder is deliberately discarded.
func WorkPoints(d timeutil.WorkDuration) int {
	points := int(math.Floor(d.TotalHours)) * PointsPerHour
	if points > MaxDailyPoints {
		return MaxDailyPoints
	}
	if points < 0 {
		return 0
	}
	return points
}
