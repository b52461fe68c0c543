package attendance

import "strings"

// Stats aggregates per-status counts over a set of attendance records.
type Stats struct {
	TotalPresent int64
	TotalAbsent  int64
	TotalLate    int64
	TotalLeave   int64
	TotalOnTime  int64
	TotalStaff   int64
}

// DisplayPresent is the single "present" figure shown to users: employees
// who arrived, whether on time or not.
func (s Stats) DisplayPresent() int64 {
	return s.TotalPresent + s.TotalOnTime
}

// Aggregate counts records into per-status buckets. Statuses are matched
// case-insensitively; a record with an unrecognized or missing status
// increments no bucket.
//
// TotalStaff depends on the period: Day queries return one row per employee,
// so staff is the number of distinct employee ids. Longer periods return one
// row per employee-day, so the paginated source's totalItems is used when
// available, falling back to the raw record count.
func Aggregate(records []Record, period Period, totalItems int64) Stats {
	var stats Stats

	for _, r := range records {
		switch strings.ToLower(r.Status) {
		case StatusPresent:
			stats.TotalPresent++
		case StatusAbsent:
			stats.TotalAbsent++
		case StatusLate:
			stats.TotalLate++
		case StatusLeave:
			stats.TotalLeave++
		case StatusOnTime:
			stats.TotalOnTime++
		}
	}

	if period == PeriodDay {
		seen := make(map[string]struct{}, len(records))
		for _, r := range records {
			seen[r.User.ID] = struct{}{}
		}
		stats.TotalStaff = int64(len(seen))
	} else if totalItems > 0 {
		stats.TotalStaff = totalItems
	} else {
		stats.TotalStaff = int64(len(records))
	}

	return stats
}
