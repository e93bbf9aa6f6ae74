package lp

import (
	"math"
	"sort"
	"time"

	queuevalues "legendstats/pkg/riotvalues/queue"
	tiervalues "legendstats/pkg/riotvalues/tier"
)

// MatchFact is the minimal view of a played match needed for the reconstruction.
type MatchFact struct {
	MatchId          string
	QueueId          int
	Win              bool
	GameEndTimestamp int64 // Epoch milliseconds.
}

// Snapshot is a single point in time observation of a player rank.
type Snapshot struct {
	QueueType    string
	Tier         string
	Division     string
	LeaguePoints int
	Wins         int
	Losses       int
	FetchedAt    time.Time
}

// CurrentRank is the live rank fetched alongside the profile view.
type CurrentRank struct {
	Tier         string
	Division     string
	LeaguePoints int
	Wins         int
	Losses       int
}

// ComputeDeltas estimates the LP change caused by each ranked match.
//
// The snapshots are only opportunistic samples, so the exact per match change
// is usually not observable. For each match the closest snapshot before and
// after its end timestamp form an attribution window, and the observed total
// delta is distributed across every ranked match inside that window:
//
//   - A single match receives the full delta.
//   - Multiple matches with the same outcome split the delta evenly.
//   - Mixed outcomes split the magnitude evenly, signed by outcome relative
//     to the net change. This is a documented heuristic, not an exact ledger.
//
// When no snapshot exists after a match, the player's current live rank acts
// as a virtual "after" anchor, as long as a real "before" snapshot exists.
// Matches whose delta can't be determined are simply absent from the result.
func ComputeDeltas(matches []MatchFact, snapshots []Snapshot, currentByQueue map[string]CurrentRank) map[string]int {
	result := make(map[string]int)

	ranked := make([]MatchFact, 0, len(matches))
	for _, match := range matches {
		if queuevalues.IsRanked(match.QueueId) && match.GameEndTimestamp > 0 {
			ranked = append(ranked, match)
		}
	}
	if len(ranked) == 0 {
		return result
	}

	// Group and order the snapshots per queue.
	// The store returns them ordered, but fire and forget writes don't guarantee it.
	byQueue := make(map[string][]Snapshot)
	for _, snapshot := range snapshots {
		byQueue[snapshot.QueueType] = append(byQueue[snapshot.QueueType], snapshot)
	}
	for queueType := range byQueue {
		sort.SliceStable(byQueue[queueType], func(i, j int) bool {
			return byQueue[queueType][i].FetchedAt.Before(byQueue[queueType][j].FetchedAt)
		})
	}

	for _, match := range ranked {
		// Every match in a window is assigned together, so skip resolved ones.
		if _, done := result[match.MatchId]; done {
			continue
		}

		queueType := queuevalues.RankedQueueType[match.QueueId]
		forQueue := byQueue[queueType]
		before, after := findAnchors(forQueue, match.GameEndTimestamp)

		switch {
		case before != nil && after != nil:
			totalDelta := snapshotScalar(*after) - snapshotScalar(*before)
			window := matchesBetween(ranked, queueType, before.FetchedAt.UnixMilli(), after.FetchedAt.UnixMilli())
			distribute(result, window, totalDelta)
		case before != nil:
			current, exists := currentByQueue[queueType]
			if !exists {
				continue
			}
			totalDelta := currentScalar(current) - snapshotScalar(*before)
			window := matchesBetween(ranked, queueType, before.FetchedAt.UnixMilli(), math.MaxInt64)
			distribute(result, window, totalDelta)
		}
	}

	return result
}

// findAnchors returns the latest snapshot strictly before and the earliest
// strictly after the given timestamp. Either may be nil.
func findAnchors(snapshots []Snapshot, endMs int64) (before *Snapshot, after *Snapshot) {
	for i := range snapshots {
		fetchedMs := snapshots[i].FetchedAt.UnixMilli()
		if fetchedMs < endMs {
			before = &snapshots[i]
		} else if fetchedMs > endMs && after == nil {
			after = &snapshots[i]
		}
	}
	return before, after
}

// matchesBetween returns the ranked matches of the queue whose end falls
// strictly inside the window.
func matchesBetween(ranked []MatchFact, queueType string, startMs int64, endMs int64) []MatchFact {
	window := make([]MatchFact, 0, len(ranked))
	for _, match := range ranked {
		if queuevalues.RankedQueueType[match.QueueId] != queueType {
			continue
		}
		if match.GameEndTimestamp > startMs && match.GameEndTimestamp < endMs {
			window = append(window, match)
		}
	}
	return window
}

// distribute applies the attribution policy over the window.
func distribute(result map[string]int, window []MatchFact, totalDelta int) {
	if len(window) == 0 {
		return
	}

	if len(window) == 1 {
		result[window[0].MatchId] = totalDelta
		return
	}

	wins := 0
	for _, match := range window {
		if match.Win {
			wins++
		}
	}
	losses := len(window) - wins

	switch {
	case losses == 0:
		perWin := roundHalfAway(float64(totalDelta) / float64(wins))
		for _, match := range window {
			result[match.MatchId] = perWin
		}
	case wins == 0:
		perLoss := roundHalfAway(float64(totalDelta) / float64(losses))
		for _, match := range window {
			result[match.MatchId] = perLoss
		}
	default:
		// Mixed outcomes: split the magnitude evenly, wins and losses get
		// opposite signs following the net direction of the window.
		magnitude := roundHalfAway(math.Abs(float64(totalDelta)) / float64(len(window)))
		winValue, lossValue := magnitude, -magnitude
		if totalDelta < 0 {
			winValue, lossValue = -magnitude, magnitude
		}
		for _, match := range window {
			if match.Win {
				result[match.MatchId] = winValue
			} else {
				result[match.MatchId] = lossValue
			}
		}
	}
}

// roundHalfAway rounds half away from zero.
func roundHalfAway(value float64) int {
	return int(math.Round(value))
}

func snapshotScalar(snapshot Snapshot) int {
	return tiervalues.CalculateRank(snapshot.Tier, divisionOrDefault(snapshot.Division), snapshot.LeaguePoints)
}

func currentScalar(current CurrentRank) int {
	return tiervalues.CalculateRank(current.Tier, divisionOrDefault(current.Division), current.LeaguePoints)
}

// Apex entries come without a division.
func divisionOrDefault(division string) string {
	if division == "" {
		return "I"
	}
	return division
}
