package queuevalues

// Ranked queue ids mapped to their league queue type.
var RankedQueueType = map[int]string{
	420: "RANKED_SOLO_5x5",
	440: "RANKED_FLEX_SR",
}

// Display names for the queues shown on the match history.
var QueueNames = map[int]string{
	400: "Normal (Reclutamiento)",
	420: "Clasificatoria Solo/Dúo",
	430: "Normal (A ciegas)",
	440: "Clasificatoria Flexible",
	450: "ARAM",
	490: "Normal (Rápida)",
	700: "Clash",
	900: "URF",
	1700: "Arena",
}

// QueueName returns the display name, falling back to a generic label.
func QueueName(queueId int) string {
	if name, exists := QueueNames[queueId]; exists {
		return name
	}
	return "Otro modo"
}

// IsRanked verifies if the queue counts towards the ranked ladder.
func IsRanked(queueId int) bool {
	_, exists := RankedQueueType[queueId]
	return exists
}
