package services

import (
	"legendstats/api/dto"
	"legendstats/api/repositories"
)

// Search service over the summoner index.
type SearchService struct {
	summoners repositories.SummonerRepository
}

// SearchServiceDeps is the dependency list for the search service.
type SearchServiceDeps struct {
	Summoners repositories.SummonerRepository
}

// NewSearchService creates a search service.
func NewSearchService(deps *SearchServiceDeps) *SearchService {
	return &SearchService{
		summoners: deps.Summoners,
	}
}

// Search returns the indexed players matching a Riot ID prefix.
func (ss *SearchService) Search(query string) ([]dto.SearchResult, error) {
	summoners, err := ss.summoners.SearchByRiotId(query)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchResult, 0, len(summoners))
	for _, summoner := range summoners {
		results = append(results, dto.SearchResult{
			Puuid:       summoner.Puuid,
			Region:      string(summoner.Region),
			RiotId:      summoner.RiotId,
			ProfileIcon: summoner.ProfileIcon,
		})
	}
	return results, nil
}
