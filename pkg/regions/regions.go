package regions

// Simple package containing the region routing values.
// Separated from the fetcher to avoid import cycles.
// Create the types for clarity.
type (
	Cluster  string
	Platform string
)

// Routing clusters for the regional endpoints.
const (
	Americas Cluster = "americas"
	Asia     Cluster = "asia"
	Europe   Cluster = "europe"
	Sea      Cluster = "sea"
)

// Platform to cluster routing.
var clusterByPlatform = map[Platform]Cluster{
	"br1":  Americas,
	"la1":  Americas,
	"la2":  Americas,
	"na1":  Americas,
	"eun1": Europe,
	"euw1": Europe,
	"tr1":  Europe,
	"ru":   Europe,
	"jp1":  Asia,
	"kr":   Asia,
	"oc1":  Sea,
}

// ClusterFromPlatform returns the routing cluster of a given platform.
// Unknown platforms default to the americas, since the site is LATAM focused.
func ClusterFromPlatform(platform Platform) Cluster {
	if cluster, exists := clusterByPlatform[platform]; exists {
		return cluster
	}
	return Americas
}

// IsValid verifies if the platform is a known one.
func IsValid(platform Platform) bool {
	_, exists := clusterByPlatform[platform]
	return exists
}
