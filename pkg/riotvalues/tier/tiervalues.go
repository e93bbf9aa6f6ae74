package tiervalues

import (
	"fmt"
	"slices"
	"strings"
)

// Each tier spans 4 divisions of 100 LP each.
var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      400,
	"SILVER":      800,
	"GOLD":        1200,
	"PLATINUM":    1600,
	"EMERALD":     2000,
	"DIAMOND":     2400,
	"MASTER":      2800,
	"GRANDMASTER": 3200,
	"CHALLENGER":  3600,
}

var divisionValues = map[string]int{
	"IV":  0,
	"III": 100,
	"II":  200,
	"I":   300,
}

// Pre-sorted slices for better lookup.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}
var divisionNames = []string{"IV", "III", "II", "I"}

// Apex tiers don't have divisions.
var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// Spanish display names used across the site.
var spanishNames = map[string]string{
	"IRON":        "Hierro",
	"BRONZE":      "Bronce",
	"SILVER":      "Plata",
	"GOLD":        "Oro",
	"PLATINUM":    "Platino",
	"EMERALD":     "Esmeralda",
	"DIAMOND":     "Diamante",
	"MASTER":      "Maestro",
	"GRANDMASTER": "Gran Maestro",
	"CHALLENGER":  "Desafiante",
}

// CalculateRank converts a (tier, division, lp) triple into a single
// totally ordered scalar. Subtracting two scalars yields a LP delta, even
// across tier and division boundaries.
func CalculateRank(tier string, division string, lp int) int {
	tier = strings.ToUpper(strings.TrimSpace(tier))

	baseValue, exists := tierValues[tier]
	if !exists {
		return 0 // Unknown tier
	}

	division = strings.ToUpper(strings.TrimSpace(division))

	divisionValue, exists := divisionValues[division]
	if !exists {
		divisionValue = 0
	}

	// Don't add the division value on apex tiers.
	if slices.Contains(apexTiers, tier) {
		divisionValue = 0
	}

	return baseValue + divisionValue + lp
}

// CalculateInverseRank takes a numeric value and returns the closest tier and division.
func CalculateInverseRank(value int) string {
	if value < 0 {
		return "IRON IV"
	}

	// Go through each tier, if the value is greater, then it's the right one.
	tierIndex := 0
	for i := len(tierNames) - 1; i >= 0; i-- {
		if value >= tierValues[tierNames[i]] {
			tierIndex = i
			break
		}
	}

	tier := tierNames[tierIndex]

	// Early return if it's a elo without division.
	if slices.Contains(apexTiers, tier) {
		return tier
	}

	remainingValue := value - tierValues[tier]

	// Apply same logic for divisions.
	divisionIndex := 0
	for i := len(divisionNames) - 1; i >= 0; i-- {
		if remainingValue >= divisionValues[divisionNames[i]] {
			divisionIndex = i
			break
		}
	}

	return fmt.Sprintf("%s %s", tier, divisionNames[divisionIndex])
}

// SpanishName returns the localized tier name.
func SpanishName(tier string) string {
	if name, exists := spanishNames[strings.ToUpper(strings.TrimSpace(tier))]; exists {
		return name
	}
	return tier
}
