package filters

import "strings"

// Query parameters for the tierlist.
type TierlistParams struct {
	Rank string `form:"rank,default=all"`
}

// Bracket returns the normalized rank bracket.
func (q *TierlistParams) Bracket() string {
	return strings.ToLower(q.Rank)
}
