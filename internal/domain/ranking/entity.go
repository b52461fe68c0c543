package ranking

// RankedEmployee is an employee's point and rank standing as returned by the
// office API. Rank is 1-based; lower is better. Point and rank fields absent
// from the source decode to zero.
type RankedEmployee struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Department   *string `json:"department"`
	MonthlyPoint float64 `json:"monthlyPoint"`
	MonthlyRank  int     `json:"monthlyRank"`
	DailyPoint   float64 `json:"dailyPoint"`
	DailyRank    int     `json:"dailyRank"`
}

// FullName joins the employee's name parts for display.
func (e RankedEmployee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
