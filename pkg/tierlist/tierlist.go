package tierlist

import (
	"math"
	"sort"
)

// Role is one of the five lanes.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleAdc     Role = "adc"
	RoleSupport Role = "support"
)

// AllRoles in display order.
var AllRoles = []Role{RoleTop, RoleJungle, RoleMid, RoleAdc, RoleSupport}

// Competitive tier labels, S is the strongest.
const (
	TierS = "S"
	TierA = "A"
	TierB = "B"
	TierC = "C"
	TierD = "D"
)

var tierOrder = map[string]int{TierS: 0, TierA: 1, TierB: 2, TierC: 3, TierD: 4}

// Source tells whether the win rates are real measurements or the
// rank bracket simulation.
type Source string

const (
	SourceMeasured  Source = "measured"
	SourceSimulated Source = "simulated"
)

// Brackets accepted by the synthesizer, "all" meaning no bracket filter.
var ValidBrackets = []string{"all", "iron", "bronze", "silver", "gold", "platinum", "emerald", "diamond", "master", "grandmaster", "challenger"}

// Champion keys that differ between the analytics source and the game data.
var championAliases = map[string]string{
	"MonkeyKing": "Wukong",
}

// AnalyticsEntry is the raw per champion, per role play rate from the
// analytics source. The win rate may be a placeholder zero.
type AnalyticsEntry struct {
	ChampionId   string
	ChampionName string
	Role         Role
	PickRate     float64
	WinRate      float64
	Games        int
}

// WinLoss is a live computed win and loss count.
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Aggregate maps champion key and role to the sampled win/loss counts.
type Aggregate map[string]map[Role]WinLoss

// Entry is one row of the synthesized tier list.
type Entry struct {
	ChampionId   string  `json:"championId"`
	ChampionName string  `json:"championName"`
	Role         Role    `json:"role"`
	Tier         string  `json:"tier"`
	WinRate      float64 `json:"winRate"`
	PickRate     float64 `json:"pickRate"`
	Games        int     `json:"games"`
	Source       Source  `json:"source"`
}

// IsValidBracket verifies a requested rank bracket.
func IsValidBracket(bracket string) bool {
	return bracketIndex(bracket) >= 0
}

func bracketIndex(bracket string) int {
	for i, b := range ValidBrackets {
		if b == bracket {
			return i
		}
	}
	return -1
}

// Synthesize merges the analytics play rates with the live win/loss
// aggregate and buckets every champion into a tier per role by percentile.
//
// When a specific rank bracket is requested there is no real per bracket
// source, so the win rates are perturbed by a deterministic hash of the
// bracket and champion, clamped to [44,56], and the tiers recomputed over
// them. Those entries are tagged SourceSimulated: it is a presentation
// heuristic, not a measurement.
func Synthesize(analytics []AnalyticsEntry, aggregate Aggregate, bracket string) []Entry {
	entries := make([]Entry, 0, len(analytics))
	for _, raw := range analytics {
		if raw.PickRate <= 0 {
			continue
		}
		entries = append(entries, Entry{
			ChampionId:   raw.ChampionId,
			ChampionName: raw.ChampionName,
			Role:         raw.Role,
			WinRate:      raw.WinRate,
			PickRate:     raw.PickRate,
			Games:        raw.Games,
			Source:       SourceMeasured,
		})
	}

	assignTiers(entries, func(e *Entry) float64 { return e.PickRate })

	// Override the placeholder win rates with the sampled aggregate.
	for i := range entries {
		lookupKey := entries[i].ChampionId
		if alias, exists := championAliases[lookupKey]; exists {
			lookupKey = alias
		}
		counts, exists := aggregate[lookupKey][entries[i].Role]
		if !exists || counts.Wins+counts.Losses == 0 {
			continue
		}
		entries[i].WinRate = computeWinRate(counts.Wins, counts.Losses)
		entries[i].Games = counts.Wins + counts.Losses
	}

	if bracket != "" && bracket != "all" && IsValidBracket(bracket) {
		simulateBracket(entries, bracket)
		assignTiers(entries, func(e *Entry) float64 { return e.WinRate })
		sortEntries(entries, func(e *Entry) float64 { return e.WinRate })
		return entries
	}

	sortEntries(entries, func(e *Entry) float64 { return e.PickRate })
	return entries
}

// computeWinRate returns the percentage rounded to one decimal.
func computeWinRate(wins int, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}

// assignTiers buckets the entries of each role by percentile of the sort key:
// top 10% S, up to 25% A, up to 50% B, up to 75% C, the rest D.
func assignTiers(entries []Entry, key func(*Entry) float64) {
	for _, role := range AllRoles {
		byRole := make([]*Entry, 0, len(entries))
		for i := range entries {
			if entries[i].Role == role {
				byRole = append(byRole, &entries[i])
			}
		}
		sort.SliceStable(byRole, func(i, j int) bool {
			return key(byRole[i]) > key(byRole[j])
		})

		total := len(byRole)
		for index, entry := range byRole {
			percentile := float64(index) / float64(total)
			switch {
			case percentile < 0.10:
				entry.Tier = TierS
			case percentile < 0.25:
				entry.Tier = TierA
			case percentile < 0.50:
				entry.Tier = TierB
			case percentile < 0.75:
				entry.Tier = TierC
			default:
				entry.Tier = TierD
			}
		}
	}
}

// sortEntries orders by tier S to D, then by the active key descending.
func sortEntries(entries []Entry, key func(*Entry) float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		if tierOrder[entries[i].Tier] != tierOrder[entries[j].Tier] {
			return tierOrder[entries[i].Tier] < tierOrder[entries[j].Tier]
		}
		return key(&entries[i]) > key(&entries[j])
	})
}

// simulateBracket perturbs the win rates with a deterministic hash so a given
// bracket always renders the same synthetic list. The perturbation widens for
// higher brackets and the result is clamped into [44,56].
func simulateBracket(entries []Entry, bracket string) {
	rankSeed := hashString(0, bracket)
	rankIdx := bracketIndex(bracket)
	spread := 0.7 + float64(rankIdx)/float64(len(ValidBrackets))*0.6

	for i := range entries {
		h := hashString(rankSeed, entries[i].ChampionId+string(entries[i].Role))
		delta := float64(abs(h)%40-20) / 10

		perturbed := math.Round((entries[i].WinRate+delta*spread)*10) / 10
		entries[i].WinRate = math.Max(44, math.Min(56, perturbed))
		entries[i].Source = SourceSimulated
	}
}

// hashString is the classic 31 multiplier string hash over wrapping int32.
func hashString(seed int32, s string) int32 {
	h := seed
	for _, c := range s {
		h = (h << 5) - h + int32(c)
	}
	return h
}

func abs(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}
