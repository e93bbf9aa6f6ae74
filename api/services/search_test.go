package services

import (
	"errors"
	"testing"

	"legendstats/api/services/testutil"
	"legendstats/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchService() (*SearchService, *testutil.MockSummonerRepository) {
	mockSummoners := new(testutil.MockSummonerRepository)
	service := NewSearchService(&SearchServiceDeps{Summoners: mockSummoners})
	return service, mockSummoners
}

func TestSearch(t *testing.T) {
	service, mockSummoners := setupSearchService()

	mockSummoners.On("SearchByRiotId", "elmago").Return([]models.SummonerIndex{
		{Puuid: testPuuid, Region: testPlatform, RiotId: "ElMago#LAN", ProfileIcon: 4567},
	}, nil)

	results, err := service.Search("elmago")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ElMago#LAN", results[0].RiotId)
	assert.Equal(t, "la1", results[0].Region)
}

func TestSearchError(t *testing.T) {
	service, mockSummoners := setupSearchService()

	mockSummoners.On("SearchByRiotId", "x").Return([]models.SummonerIndex(nil), errors.New(testutil.DatabaseError))

	results, err := service.Search("x")
	assert.Nil(t, results)
	assert.Error(t, err)
}
