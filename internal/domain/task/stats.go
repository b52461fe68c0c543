package task

// RawStats is the task statistics payload as returned by the office API.
// The backend omits buckets with no tasks, so status and priority arrive as
// sparse maps.
type RawStats struct {
	Total int64 `json:"total"`
	Stats struct {
		Status   map[string]int64 `json:"status"`
		Priority map[string]int64 `json:"priority"`
	} `json:"stats"`
}

// StatusCounts holds task counts for every status bucket.
type StatusCounts struct {
	InProgress  int64 `json:"in_progress"`
	Blocked     int64 `json:"blocked"`
	Completed   int64 `json:"completed"`
	UnderReview int64 `json:"under_review"`
	NotStarted  int64 `json:"not_started"`
	Overdue     int64 `json:"overdue"`
}

// PriorityCounts holds task counts for every priority bucket.
type PriorityCounts struct {
	Critical int64 `json:"critical"`
	High     int64 `json:"high"`
	Medium   int64 `json:"medium"`
	Low      int64 `json:"low"`
}

// Stats is the normalized task summary. Every bucket is always present,
// zero-filled when the source omitted it.
type Stats struct {
	Total    int64          `json:"total"`
	Status   StatusCounts   `json:"status"`
	Priority PriorityCounts `json:"priority"`
}

// Normalize fills every status and priority bucket from the sparse source
// maps, substituting zero for missing keys. Total is carried over verbatim;
// it is the source's authoritative figure and is not recomputed from the
// buckets, even when the two disagree.
func Normalize(raw RawStats) Stats {
	status := raw.Stats.Status
	priority := raw.Stats.Priority

	return Stats{
		Total: raw.Total,
		Status: StatusCounts{
			InProgress:  status["InProgress"],
			Blocked:     status["Blocked"],
			Completed:   status["Completed"],
			UnderReview: status["UnderReview"],
			NotStarted:  status["NotStarted"],
			Overdue:     status["Overdue"],
		},
		Priority: PriorityCounts{
			Critical: priority["Critical"],
			High:     priority["High"],
			Medium:   priority["Medium"],
			Low:      priority["Low"],
		},
	}
}
