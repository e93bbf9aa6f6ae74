package repositories

import (
	"testing"
	"time"

	"legendstats/api/repositories/testutil"
	"legendstats/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewRepositories(t *testing.T) {
	db := &gorm.DB{}
	assert.NotNil(t, NewSnapshotRepository(db))
	assert.NotNil(t, NewMatchCacheRepository(db))
	assert.NotNil(t, NewBlobCacheRepository(db))
	assert.NotNil(t, NewSummonerRepository(db))
	assert.NotNil(t, NewPatchNoteRepository(db))
}

func TestSnapshotRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewSnapshotRepository(db)

	puuid := testPuuid("a")
	first := &models.RankSnapshot{
		Puuid:        puuid,
		Region:       "la1",
		QueueType:    "RANKED_SOLO_5x5",
		Tier:         "GOLD",
		Division:     "II",
		LeaguePoints: 40,
		Wins:         100,
		Losses:       95,
		FetchedAt:    time.Now().Add(-time.Hour),
	}
	second := &models.RankSnapshot{
		Puuid:        puuid,
		Region:       "la1",
		QueueType:    "RANKED_SOLO_5x5",
		Tier:         "GOLD",
		Division:     "II",
		LeaguePoints: 55,
		Wins:         101,
		Losses:       95,
		FetchedAt:    time.Now(),
	}

	// Insert out of order to exercise the ordering.
	require.NoError(t, repository.Create(second))
	require.NoError(t, repository.Create(first))

	snapshots, err := repository.ListByPlayer(puuid, "la1")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 40, snapshots[0].LeaguePoints)
	assert.Equal(t, 55, snapshots[1].LeaguePoints)

	other, err := repository.ListByPlayer(testPuuid("b"), "la1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMatchCacheRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMatchCacheRepository(db)

	payload := []byte(`{"metadata":{"matchId":"LA1_123"}}`)
	require.NoError(t, repository.SetMatch("LA1_123", "la1", payload))

	data, err := repository.GetMatch("LA1_123")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(data))

	// Missing matches come back as nil without error.
	data, err = repository.GetMatch("LA1_999")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Upsert replaces the payload.
	updated := []byte(`{"metadata":{"matchId":"LA1_123"},"info":{}}`)
	require.NoError(t, repository.SetMatch("LA1_123", "la1", updated))
	data, err = repository.GetMatch("LA1_123")
	require.NoError(t, err)
	assert.JSONEq(t, string(updated), string(data))
}

func TestBlobCacheRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewBlobCacheRepository(db)

	require.NoError(t, repository.SetKey(WinrateAggregateKey, []byte(`{"Aatrox":{"top":{"wins":3,"losses":1}}}`)))

	data, err := repository.GetKey(WinrateAggregateKey, time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, data)

	// A zero max age disables the TTL check.
	data, err = repository.GetKey(WinrateAggregateKey, 0)
	require.NoError(t, err)
	assert.NotNil(t, data)

	// Stale entries behave as a miss.
	db.Model(&models.BlobCache{}).
		Where("cache_key = ?", WinrateAggregateKey).
		Update("cached_at", time.Now().Add(-2*time.Hour))
	data, err = repository.GetKey(WinrateAggregateKey, time.Hour)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSummonerRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewSummonerRepository(db)

	summoner := &models.SummonerIndex{
		Puuid:       testPuuid("c"),
		Region:      "la1",
		RiotId:      "ElMago#LAN",
		ProfileIcon: 1234,
	}
	require.NoError(t, repository.Upsert(summoner))

	// A second upsert refreshes instead of duplicating.
	summoner.ProfileIcon = 4321
	require.NoError(t, repository.Upsert(summoner))

	results, err := repository.SearchByRiotId("elmago")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4321, results[0].ProfileIcon)

	results, err = repository.SearchByRiotId("nadie")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPatchNoteRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewPatchNoteRepository(db)

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&models.PatchNote{
		Version:     "15.16",
		Title:       "Notas de la versión 15.16",
		PublishedAt: &older,
	}).Error)
	require.NoError(t, db.Create(&models.PatchNote{
		Version:     "15.17",
		Title:       "Notas de la versión 15.17",
		PublishedAt: &newer,
	}).Error)

	notes, err := repository.List(10)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "15.17", notes[0].Version)

	note, err := repository.GetByVersion("15.16")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "Notas de la versión 15.16", note.Title)

	note, err = repository.GetByVersion("14.01")
	require.NoError(t, err)
	assert.Nil(t, note)
}

// Puuids are fixed width, pad the marker out.
func testPuuid(marker string) string {
	padded := marker
	for len(padded) < 78 {
		padded += "0"
	}
	return padded
}
