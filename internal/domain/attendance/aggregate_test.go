package attendance

import "testing"

func TestAggregate_EmptyRecords(t *testing.T) {
	stats := Aggregate(nil, PeriodDay, 0)
	if stats != (Stats{}) {
		t.Errorf("Aggregate(nil) = %+v, want all zero", stats)
	}
}

func TestAggregate_StatusBuckets(t *testing.T) {
	records := []Record{
		{Status: "Present", User: RecordUser{ID: "a"}},
		{Status: "Late", User: RecordUser{ID: "b"}},
		{Status: "Present", User: RecordUser{ID: "c"}},
		{Status: "Unknown", User: RecordUser{ID: "d"}},
	}
	stats := Aggregate(records, PeriodDay, 0)

	if stats.TotalPresent != 2 {
		t.Errorf("TotalPresent = %d, want 2", stats.TotalPresent)
	}
	if stats.TotalLate != 1 {
		t.Errorf("TotalLate = %d, want 1", stats.TotalLate)
	}
	if stats.TotalAbsent != 0 || stats.TotalLeave != 0 || stats.TotalOnTime != 0 {
		t.Errorf("unexpected counts in other buckets: %+v", stats)
	}
	// the Unknown record still counts toward staff, just not any status bucket
	if stats.TotalStaff != 4 {
		t.Errorf("TotalStaff = %d, want 4", stats.TotalStaff)
	}
}

func TestAggregate_StatusCaseInsensitive(t *testing.T) {
	records := []Record{
		{Status: "ONTIME", User: RecordUser{ID: "a"}},
		{Status: "OnTime", User: RecordUser{ID: "b"}},
		{Status: "leave", User: RecordUser{ID: "c"}},
	}
	stats := Aggregate(records, PeriodDay, 0)
	if stats.TotalOnTime != 2 {
		t.Errorf("TotalOnTime = %d, want 2", stats.TotalOnTime)
	}
	if stats.TotalLeave != 1 {
		t.Errorf("TotalLeave = %d, want 1", stats.TotalLeave)
	}
}

func TestAggregate_DayDeduplicatesStaff(t *testing.T) {
	records := []Record{
		{Status: "present", User: RecordUser{ID: "emp-1"}},
		{Status: "late", User: RecordUser{ID: "emp-1"}},
	}
	stats := Aggregate(records, PeriodDay, 0)
	if stats.TotalStaff != 1 {
		t.Errorf("TotalStaff = %d, want 1 (deduplicated by employee id)", stats.TotalStaff)
	}
}

func TestAggregate_LongerPeriodsUseTotalItems(t *testing.T) {
	records := []Record{
		{Status: "present", User: RecordUser{ID: "emp-1"}},
		{Status: "present", User: RecordUser{ID: "emp-1"}},
	}

	stats := Aggregate(records, PeriodMonth, 42)
	if stats.TotalStaff != 42 {
		t.Errorf("TotalStaff with totalItems = %d, want 42", stats.TotalStaff)
	}

	stats = Aggregate(records, PeriodMonth, 0)
	if stats.TotalStaff != 2 {
		t.Errorf("TotalStaff without totalItems = %d, want 2 (raw record count)", stats.TotalStaff)
	}
}

func TestStats_DisplayPresent(t *testing.T) {
	stats := Stats{TotalPresent: 3, TotalOnTime: 2}
	if got := stats.DisplayPresent(); got != 5 {
		t.Errorf("DisplayPresent() = %d, want 5", got)
	}
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		input string
		want  Period
		ok    bool
	}{
		{"", PeriodDay, true},
		{"Day", PeriodDay, true},
		{"day", PeriodDay, true},
		{"QUARTER", PeriodQuarter, true},
		{"Year", PeriodYear, true},
		{"Fortnight", "", false},
	}
	for _, c := range cases {
		got, ok := ParsePeriod(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParsePeriod(%q) = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}
