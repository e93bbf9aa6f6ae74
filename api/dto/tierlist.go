package dto

import "legendstats/pkg/tierlist"

// Tierlist is the synthesized tier list for one rank bracket.
type Tierlist struct {
	Bracket string           `json:"bracket"`
	Entries []tierlist.Entry `json:"entries"`
}
