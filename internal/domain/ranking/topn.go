package ranking

import (
	"sort"
	"strconv"
)

// TopN returns the n best-ranked employees ordered by ascending MonthlyRank.
// The sort is stable, so employees sharing a rank keep their source order;
// no secondary tie-break key is applied. The input slice is not mutated.
func TopN(employees []RankedEmployee, n int) []RankedEmployee {
	if n < 0 {
		n = 0
	}

	sorted := make([]RankedEmployee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MonthlyRank < sorted[j].MonthlyRank
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// OrdinalLabel formats a rank as an English ordinal: 1st, 2nd, 3rd, 4th...
// The teens (11th-13th) always take "th".
func OrdinalLabel(rank int) string {
	suffix := "th"
	if rank%100 < 11 || rank%100 > 13 {
		switch rank % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(rank) + suffix
}

// BadgeVariant maps a rank to the styling variant used by rank badges.
func BadgeVariant(rank int) string {
	switch rank {
	case 1:
		return "success"
	case 2:
		return "primary"
	case 3:
		return "warning"
	default:
		return "secondary"
	}
}
