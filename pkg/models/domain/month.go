package domain

// MonthBucket is one selectable month of a MonthIndex.
type MonthBucket struct {
	Title     string    `json:"title"`
	RawTitle  string    `json:"rawTitle"`
	IsCurrent bool      `json:"isCurrent"`
	Value     DateRange `json:"value"`
}

// MonthIndex is the rolling list of months offered by a month picker.
//
// Buckets are keyed both by lower-cased month name and by zero-based month
// number. Both keys repeat every year, so the index is only meaningful while it
// spans twelve months or fewer.
type MonthIndex struct {
	ByName  map[string]MonthBucket `json:"byName"`
	ByMonth map[int]MonthBucket    `json:"byMonth"`
	Current MonthBucket            `json:"current"`
	// List is ordered most recent first; List[0] is the current month.
	List []MonthBucket `json:"list"`
}
