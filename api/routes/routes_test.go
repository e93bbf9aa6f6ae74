package routes

import (
	"testing"

	"legendstats/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(
		&handlers.PlayerHandler{},
		&handlers.MatchHandler{},
		&handlers.TierlistHandler{},
		&handlers.LiveHandler{},
		&handlers.LeaderboardHandler{},
		&handlers.PatchHandler{},
	)

	routes := router.engine.Routes()
	assert.Len(t, routes, 9)

	paths := make(map[string]bool)
	for _, route := range routes {
		paths[route.Path] = true
	}
	assert.True(t, paths["/api/v1/jugadores/:region/:gameName/:tagLine"])
	assert.True(t, paths["/api/v1/partidas/:region/jugador/:puuid"])
	assert.True(t, paths["/api/v1/campeones/tierlist"])
	assert.True(t, paths["/api/v1/parches/:version"])
}
