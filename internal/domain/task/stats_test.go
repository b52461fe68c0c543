package task

import (
	"encoding/json"
	"testing"
)

func TestNormalize_EmptySource(t *testing.T) {
	got := Normalize(RawStats{})
	if got.Total != 0 {
		t.Errorf("Total = %d, want 0", got.Total)
	}
	if got.Status != (StatusCounts{}) {
		t.Errorf("Status = %+v, want all zero", got.Status)
	}
	if got.Priority != (PriorityCounts{}) {
		t.Errorf("Priority = %+v, want all zero", got.Priority)
	}
}

func TestNormalize_PartialSource(t *testing.T) {
	var raw RawStats
	payload := `{"total": 12, "stats": {"status": {"Completed": 7, "Overdue": 2}, "priority": {"High": 4}}}`
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := Normalize(raw)
	if got.Total != 12 {
		t.Errorf("Total = %d, want 12", got.Total)
	}
	if got.Status.Completed != 7 || got.Status.Overdue != 2 {
		t.Errorf("Status = %+v, want Completed=7 Overdue=2", got.Status)
	}
	if got.Status.InProgress != 0 || got.Status.Blocked != 0 || got.Status.UnderReview != 0 || got.Status.NotStarted != 0 {
		t.Errorf("missing status buckets not zero-filled: %+v", got.Status)
	}
	if got.Priority.High != 4 || got.Priority.Critical != 0 || got.Priority.Medium != 0 || got.Priority.Low != 0 {
		t.Errorf("Priority = %+v, want High=4 and zero elsewhere", got.Priority)
	}
}

func TestNormalize_TotalNotRecomputed(t *testing.T) {
	raw := RawStats{Total: 100}
	raw.Stats.Status = map[string]int64{"Completed": 3}

	got := Normalize(raw)
	if got.Total != 100 {
		t.Errorf("Total = %d, want 100 (source figure passed through, not the bucket sum)", got.Total)
	}
}
