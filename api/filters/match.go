package filters

// Query params for the player match history.
type MatchHistoryParams struct {
	Start int `form:"start,default=0" binding:"omitempty,min=0"`
	Count int `form:"count,default=10" binding:"omitempty,min=1"`
	Queue int `form:"queue"`
}

// Normalize caps the page size the same way the site consumes it.
func (q *MatchHistoryParams) Normalize() {
	if q.Count > 20 {
		q.Count = 20
	}
	if q.Count <= 0 {
		q.Count = 10
	}
	if q.Start < 0 {
		q.Start = 0
	}
}
