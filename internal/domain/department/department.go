package department

import (
	"math"

	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
)

// Department is a master-data department as returned by the office API.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Score is one department's summed monthly points.
type Score struct {
	Name   string
	Points int
}

// Best selects the department with the strictly greatest summed monthly
// points across the given employees. Every known department starts at zero,
// so a department with no top performers still competes with 0 rather than
// being absent. When no department has any points, selection falls back to
// raw employee headcount so the result is never arbitrary.
//
// Employees are matched to departments by exact name equality on the
// employee's department field. That mirrors the upstream data model, which
// carries the department name rather than a foreign key; it silently breaks
// under department renames.
//
// Returns ok=false when there are no departments or no employees.
func Best(employees []ranking.RankedEmployee, departments []Department) (Score, bool) {
	if len(employees) == 0 || len(departments) == 0 {
		return Score{}, false
	}

	points := make(map[string]float64, len(departments))
	headcount := make(map[string]int, len(departments))
	for _, d := range departments {
		points[d.Name] = 0
		headcount[d.Name] = 0
	}

	for _, e := range employees {
		if e.Department == nil {
			continue
		}
		if _, known := points[*e.Department]; !known {
			continue
		}
		points[*e.Department] += e.MonthlyPoint
		headcount[*e.Department]++
	}

	anyPoints := false
	for _, p := range points {
		if p > 0 {
			anyPoints = true
			break
		}
	}

	// Iterate departments in input order so the winner is deterministic.
	best := departments[0].Name
	for _, d := range departments[1:] {
		if anyPoints {
			if points[d.Name] > points[best] {
				best = d.Name
			}
		} else if headcount[d.Name] > headcount[best] {
			best = d.Name
		}
	}

	return Score{
		Name:   best,
		Points: int(math.Round(points[best])),
	}, true
}
